package main

import (
	"github.com/cloudanix/dbonboard/cmdutil"
	"github.com/cloudanix/dbonboard/contextutil"
	"github.com/cloudanix/dbonboard/ui"
	"github.com/cloudanix/dbonboard/version"
	"github.com/spf13/cobra"

	acceptpeering "github.com/cloudanix/dbonboard/cmd/dbonboard/accept-peering"
	extendrole "github.com/cloudanix/dbonboard/cmd/dbonboard/extend-role"
	extendtrust "github.com/cloudanix/dbonboard/cmd/dbonboard/extend-trust"
	onboardprivaterds "github.com/cloudanix/dbonboard/cmd/dbonboard/onboard-private-rds"
	onboardpublicrds "github.com/cloudanix/dbonboard/cmd/dbonboard/onboard-public-rds"
	provisionpermissionset "github.com/cloudanix/dbonboard/cmd/dbonboard/provision-permission-set"
	"github.com/cloudanix/dbonboard/cmd/dbonboard/whoami"
)

func main() {
	cmd := &cobra.Command{
		Use:           "dbonboard <subcommand>",
		Short:         "onboard AWS accounts to the database-access workflow",
		Version:       version.Version + "-" + version.Commit,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			version.Print()
			ui.Must(cmdutil.Chdir())
			cmd.SetContext(contextutil.WithValues(
				cmd.Context(),
				cmd.Root().Name(),
				cmd.Name(),
			))
		},
	}
	cmd.PersistentFlags().AddFlagSet(ui.InteractivityFlagSet())
	cmd.PersistentFlags().AddFlag(cmdutil.QuietFlag())

	cmd.AddCommand(acceptpeering.Command())
	cmd.AddCommand(extendrole.Command())
	cmd.AddCommand(extendtrust.Command())
	cmd.AddCommand(onboardprivaterds.Command())
	cmd.AddCommand(onboardpublicrds.Command())
	cmd.AddCommand(provisionpermissionset.Command())
	cmd.AddCommand(whoami.Command())

	if err := cmd.Execute(); err != nil {
		ui.Fatal(err)
	}
}
