package onboard

import (
	"context"
	"fmt"

	"github.com/cloudanix/dbonboard/awsiam"
	"github.com/cloudanix/dbonboard/awsutil"
	"github.com/cloudanix/dbonboard/policies"
	"github.com/cloudanix/dbonboard/ui"
)

// ExtendTrustPolicy lets the db-access role in the given foreign account
// assume roleName here. The role's other trust statements are preserved and
// re-running doesn't duplicate the grant. The returned role is re-fetched
// after the update so callers see what IAM actually stored.
func ExtendTrustPolicy(
	ctx context.Context,
	client awsiam.Client,
	roleName, trustedAccountId string,
) (*awsiam.Role, error) {
	principalARN := policies.TrustedRoleARN(trustedAccountId)
	ui.Spinf("allowing %s to assume %s", principalARN, roleName)

	role, err := awsiam.GetRole(ctx, client, roleName)
	if awsutil.ErrorCodeIs(err, awsiam.NoSuchEntity) {
		return nil, ui.StopErr(fmt.Errorf("no IAM role named %s in this account", roleName))
	}
	if err != nil {
		return nil, ui.StopErr(err)
	}
	doc := role.AssumeRolePolicy
	if doc == nil {
		doc = &policies.Document{}
	}
	doc.GrantAssumeRole(principalARN)
	if err := awsiam.UpdateAssumeRolePolicy(ctx, client, roleName, doc); err != nil {
		return nil, ui.StopErr(err)
	}

	if role, err = awsiam.GetRole(ctx, client, roleName); err != nil {
		return nil, ui.StopErr(err)
	}
	ui.Stop("ok")
	return role, nil
}
