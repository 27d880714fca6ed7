package onboard

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudanix/dbonboard/awssso"
	"github.com/cloudanix/dbonboard/awsutil"
	"github.com/cloudanix/dbonboard/policies"
	"github.com/cloudanix/dbonboard/tagging"
	"github.com/cloudanix/dbonboard/version"
)

// ProvisioningWaiter bounds how long we'll wait for IAM Identity Center to
// finish provisioning the permission set into the target account.
var ProvisioningWaiter = awsutil.Waiter{Interval: 5 * time.Second, MaxAttempts: 120}

// ProvisionPermissionSet ensures the named permission set exists in the
// Identity Center instance, writes its inline policy, and provisions it
// into the target account. Pass instanceArn as the empty string to use the
// organization's sole instance.
func ProvisionPermissionSet(
	ctx context.Context,
	client awssso.Client,
	instanceArn, name, accountId string,
) (*awssso.PermissionSet, error) {
	if instanceArn == "" {
		instances, err := awssso.ListInstances(ctx, client)
		if err != nil {
			return nil, err
		}
		if len(instances) != 1 {
			return nil, fmt.Errorf("expected 1 IAM Identity Center instance but found %d; pass its ARN explicitly", len(instances))
		}
		instanceArn = instances[0].InstanceArn
	}

	permissionSet, err := awssso.EnsurePermissionSet(ctx, client, instanceArn, name, tagging.Map{
		tagging.Manager:          tagging.DBOnboard,
		tagging.Name:             name,
		tagging.DBOnboardVersion: version.Version,
	})
	if err != nil {
		return nil, err
	}

	if err := awssso.PutInlinePolicy(
		ctx,
		client,
		instanceArn,
		permissionSet.ARN,
		policies.ECSSSMAccess(),
	); err != nil {
		return nil, err
	}

	if err := awssso.ProvisionPermissionSet(
		ctx,
		client,
		instanceArn,
		permissionSet.ARN,
		accountId,
		ProvisioningWaiter,
	); err != nil {
		return nil, err
	}

	return awssso.DescribePermissionSet(ctx, client, instanceArn, permissionSet.ARN)
}
