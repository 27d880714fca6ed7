package onboard

import (
	"context"

	"github.com/cloudanix/dbonboard/awsiam"
	"github.com/cloudanix/dbonboard/policies"
	"github.com/cloudanix/dbonboard/ui"
)

// ExtendRoles creates the customer managed policies for RDS IAM
// authentication and attaches both to every named role. Policies that
// already exist and attachments that already hold are fine; re-running
// converges to the same state.
func ExtendRoles(
	ctx context.Context,
	client awsiam.Client,
	accountId string,
	roleNames []string,
) error {
	connectPolicyArn, err := awsiam.EnsurePolicy(
		ctx,
		client,
		accountId,
		policies.RDSConnectPolicyName,
		policies.RDSConnect(accountId),
	)
	if err != nil {
		return err
	}
	describePolicyArn, err := awsiam.EnsurePolicy(
		ctx,
		client,
		accountId,
		policies.RDSDescribePolicyName,
		policies.RDSDescribe(accountId),
	)
	if err != nil {
		return err
	}

	for _, roleName := range roleNames {
		ui.Spinf("attaching database access policies to %s", roleName)
		for _, policyArn := range []string{connectPolicyArn, describePolicyArn} {
			if err := awsiam.AttachRolePolicy(ctx, client, roleName, policyArn); err != nil {
				return ui.StopErr(err)
			}
		}
		policyArns, err := awsiam.ListAttachedRolePolicies(ctx, client, roleName)
		if err != nil {
			return ui.StopErr(err)
		}
		ui.Stopf("%d attached", len(policyArns))
		for _, policyArn := range policyArns {
			ui.Printf("%s: %s", roleName, policyArn)
		}
	}
	return nil
}
