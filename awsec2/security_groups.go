package awsec2

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/cloudanix/dbonboard/awsutil"
	"github.com/cloudanix/dbonboard/cidr"
	"github.com/cloudanix/dbonboard/ui"
)

const InvalidPermissionDuplicate = "InvalidPermission.Duplicate"

// DatabasePorts are the TCP ports onboarding opens in RDS security groups.
var DatabasePorts = []int32{3306, 5432} // MySQL, PostgreSQL

// EnsureDatabaseIngress authorizes TCP ingress on every database port from
// every source prefix, one permission at a time to tolerate duplicate
// errors. Duplicates are success; anything else is collected and returned
// after all the attempts so a bad rule can't shadow the rest.
func EnsureDatabaseIngress(
	ctx context.Context,
	client Client,
	securityGroupId string,
	sources []cidr.IPv4,
) error {
	var errs []error
	for _, port := range DatabasePorts {
		for _, source := range sources {
			ui.Spinf("authorizing ingress to %s on port %d from %s", securityGroupId, port, source)
			_, err := client.AuthorizeSecurityGroupIngress(ctx, &ec2.AuthorizeSecurityGroupIngressInput{
				GroupId: aws.String(securityGroupId),
				IpPermissions: []types.IpPermission{{ // one at a time to tolerate duplicate errors
					FromPort:   aws.Int32(port),
					IpProtocol: aws.String("tcp"),
					IpRanges:   []types.IpRange{{CidrIp: aws.String(source.String())}},
					ToPort:     aws.Int32(port),
				}},
			})
			if awsutil.ErrorCodeIs(err, InvalidPermissionDuplicate) {
				ui.Stop("rule already exists")
				continue
			}
			if err != nil {
				errs = append(errs, fmt.Errorf("port %d from %s: %w", port, source, err))
			}
			ui.StopErr(err)
		}
	}
	return errors.Join(errs...)
}
