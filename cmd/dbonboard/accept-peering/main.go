package acceptpeering

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
		Use:   "accept-peering <config.json>",
		Short: "accept VPC peering connections, route them, and open database ports",
		Long: `Accept every VPC peering connection in the configuration file, wait for
each to become active, route the requester's CIDR through it in every route
table in the accepter's VPC, and open the MySQL and PostgreSQL ports to the
requester in the listed RDS security groups. Each processed connection is
recorded in ` + onboard.AccepterAuditFilename + `.`,
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
	ui.Printf("accepting peering connections in %s", cfg.Region())
	if ui.Interactivity() == ui.FullyInteractive {
		ok, err := ui.Confirmf("accept %d peering connections and open database ports? (yes/no)", len(doc.VPCPeerings))
		ui.Must(err)
		if !ok {
			ui.Print("not accepting anything")
			return
		}
	}
	ui.Must(onboard.AcceptPeerings(ctx, cfg.EC2(), doc, onboard.AccepterAuditFilename))
}
