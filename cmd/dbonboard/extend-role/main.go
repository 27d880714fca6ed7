package extendrole

import (
	"context"
	"io"
	"strings"

	"github.com/cloudanix/dbonboard/awscfg"
	"github.com/cloudanix/dbonboard/cmdutil"
	"github.com/cloudanix/dbonboard/onboard"
	"github.com/cloudanix/dbonboard/ui"
	"github.com/spf13/cobra"
)

func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "extend-role [<role-name> [...]]",
		Short: "attach the RDS IAM authentication policies to IAM roles",
		Long: `Create the DBAccessRDSConnect and DBAccessRDSDescribe customer managed
policies (if they don't already exist) and attach both to every named IAM
role. With no arguments, prompt for the role names.`,
		Args: cobra.ArbitraryArgs,
		Run: func(cmd *cobra.Command, args []string) {
			Main(cmdutil.Main(cmd, args))
		},
		DisableFlagsInUseLine: true,
	}
}

func Main(ctx context.Context, cfg *awscfg.Config, _ *cobra.Command, args []string, _ io.Writer) {
	roleNames := args
	if len(roleNames) == 0 {
		s, err := ui.Prompt("which IAM roles should be able to connect to RDS? (space-separated)")
		ui.Must(err)
		roleNames = strings.Fields(s)
	}
	if len(roleNames) == 0 {
		ui.Fatal("no IAM roles given")
	}

	identity, err := cfg.Identity(ctx)
	ui.Must(err)
	ui.Must(onboard.ExtendRoles(ctx, cfg.IAM(), identity.AccountId, roleNames))
}
