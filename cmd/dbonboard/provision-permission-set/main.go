package provisionpermissionset

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

var accountId, instanceArn, name = new(string), new(string), new(string)

func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provision-permission-set [--account <account-number>] [--instance <instance-arn>] [--name <name>]",
		Short: "provision the ECS/SSM permission set into an account",
		Long: `Ensure the permission set exists in IAM Identity Center, write its inline
policy granting SSM session and ECS exec access, and provision it into the
target account. Defaults to the caller's account and the organization's sole
Identity Center instance.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			Main(cmdutil.Main(cmd, args))
		},
		DisableFlagsInUseLine: true,
	}
	cmd.Flags().StringVar(accountId, "account", "", "12-digit account number to provision into (default the caller's account)")
	cmd.Flags().StringVar(instanceArn, "instance", "", "IAM Identity Center instance ARN (default the sole instance)")
	cmd.Flags().StringVar(name, "name", policies.PermissionSetName, "name of the permission set")
	return cmd
}

func Main(ctx context.Context, cfg *awscfg.Config, _ *cobra.Command, _ []string, w io.Writer) {
	if *accountId == "" {
		identity, err := cfg.Identity(ctx)
		ui.Must(err)
		*accountId = identity.AccountId
	}

	permissionSet, err := onboard.ProvisionPermissionSet(ctx, cfg.SSOAdmin(), *instanceArn, *name, *accountId)
	ui.Must(err)
	fmt.Fprintln(w, jsonutil.MustString(permissionSet))
}
