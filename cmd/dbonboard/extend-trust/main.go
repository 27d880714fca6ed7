package extendtrust

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudanix/dbonboard/awscfg"
	"github.com/cloudanix/dbonboard/cmdutil"
	"github.com/cloudanix/dbonboard/jsonutil"
	"github.com/cloudanix/dbonboard/onboard"
	"github.com/cloudanix/dbonboard/policies"
	"github.com/cloudanix/dbonboard/ui"
	"github.com/spf13/cobra"
)

var roleName, accountId = new(string), new(string)

func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extend-trust --role <role-name> --account <account-number>",
		Short: "let a foreign account's db-access role assume an IAM role here",
		Long: `Add a statement to the named IAM role's trust policy granting
sts:AssumeRole to the ` + policies.TrustedRoleName + ` role in the given AWS account. Other
trust statements are preserved and re-running doesn't duplicate the grant.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			Main(cmdutil.Main(cmd, args))
		},
		DisableFlagsInUseLine: true,
	}
	cmd.Flags().StringVar(roleName, "role", "", "name of the IAM role whose trust policy to extend")
	cmd.Flags().StringVar(accountId, "account", "", "12-digit account number hosting the "+policies.TrustedRoleName+" role")
	return cmd
}

func Main(ctx context.Context, cfg *awscfg.Config, _ *cobra.Command, _ []string, w io.Writer) {
	var err error
	if *roleName == "" {
		*roleName, err = ui.Prompt("which IAM role's trust policy should be extended?")
		ui.Must(err)
	}
	if *accountId == "" {
		*accountId, err = ui.Promptf("which account's %s role should be trusted?", policies.TrustedRoleName)
		ui.Must(err)
	}

	role, err := onboard.ExtendTrustPolicy(ctx, cfg.IAM(), *roleName, *accountId)
	ui.Must(err)
	fmt.Fprintln(w, jsonutil.MustString(role.AssumeRolePolicy))
}
