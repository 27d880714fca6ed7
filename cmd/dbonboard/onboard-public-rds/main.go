package onboardpublicrds

import (
	"context"
	"io"

	"github.com/cloudanix/dbonboard/awscfg"
	"github.com/cloudanix/dbonboard/cmdutil"
	"github.com/cloudanix/dbonboard/onboard"
	"github.com/cloudanix/dbonboard/ui"
	"github.com/spf13/cobra"
)

func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "onboard-public-rds <config.json>",
		Short: "open database ports to requesters that reach RDS publicly",
		Long: `Open the MySQL and PostgreSQL ports in the listed RDS security groups to
each requester's CIDR and NAT gateway address. Use this when RDS is reached
over its public endpoint rather than through a peering connection. Each
processed entry is recorded in ` + onboard.PublicRDSAuditFilename + `.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			Main(cmdutil.Main(cmd, args))
		},
		DisableFlagsInUseLine: true,
	}
}

func Main(ctx context.Context, cfg *awscfg.Config, _ *cobra.Command, args []string, _ io.Writer) {
	doc, err := onboard.ReadDocument(args[0])
	ui.Must(err)
	if ui.Interactivity() == ui.FullyInteractive {
		ok, err := ui.Confirmf("open database ports for %d requesters? (yes/no)", len(doc.PublicRDSConfigs))
		ui.Must(err)
		if !ok {
			ui.Print("not opening anything")
			return
		}
	}
	ui.Must(onboard.OnboardPublicRDS(ctx, cfg.EC2(), doc, onboard.PublicRDSAuditFilename))
}
