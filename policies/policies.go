package policies

import "fmt"

const (
	RDSConnectPolicyName  = "DBAccessRDSConnect"
	RDSDescribePolicyName = "DBAccessRDSDescribe"

	PermissionSetName = "DBAccessECSSSM"

	// TrustedRoleName is the fixed role asserted in foreign accounts that are
	// granted sts:AssumeRole on a role here.
	TrustedRoleName = "db-access"
)

// PolicyARN predicts the ARN of a customer managed policy, which lets a
// re-run recover from iam:CreatePolicy reporting the policy already exists.
func PolicyARN(accountId, name string) string {
	return fmt.Sprintf("arn:aws:iam::%s:policy/%s", accountId, name)
}

// TrustedRoleARN names the role in a foreign account that's trusted to
// assume roles extended by this program.
func TrustedRoleARN(accountId string) string {
	return fmt.Sprintf("arn:aws:iam::%s:role/%s", accountId, TrustedRoleName)
}

// RDSConnect authorizes connecting to databases via RDS IAM authentication
// as any database user in the given account.
func RDSConnect(accountId string) *Document {
	return &Document{
		Statement: []Statement{{
			Action:   []string{"rds-db:connect"},
			Effect:   Allow,
			Resource: []string{fmt.Sprintf("arn:aws:rds-db:*:%s:dbuser:*/*", accountId)},
		}},
	}
}

// RDSDescribe authorizes enumerating DB clusters and instances plus
// generating auth tokens. (Token generation is gated by rds-db:connect;
// there is no separate IAM action for it.)
func RDSDescribe(accountId string) *Document {
	return &Document{
		Statement: []Statement{{
			Action: []string{
				"rds:DescribeDBClusters",
				"rds:DescribeDBInstances",
			},
			Effect:   Allow,
			Resource: []string{fmt.Sprintf("arn:aws:rds:*:%s:*", accountId)},
		}, {
			Action:   []string{"rds-db:connect"},
			Effect:   Allow,
			Resource: []string{fmt.Sprintf("arn:aws:rds-db:*:%s:dbuser:*/*", accountId)},
		}},
	}
}

// ECSSSMAccess is the inline policy for the permission set that lets humans
// open SSM sessions to ECS tasks and find the tasks to open them to.
func ECSSSMAccess() *Document {
	return &Document{
		Statement: []Statement{{
			Action: []string{
				"ssm:DescribeInstanceInformation",
				"ssm:DescribeSessions",
				"ssm:GetCommandInvocation",
				"ssm:GetConnectionStatus",
				"ssm:ResumeSession",
				"ssm:SendCommand",
				"ssm:StartSession",
				"ssm:TerminateSession",
			},
			Effect:   Allow,
			Resource: []string{"*"},
		}, {
			Action: []string{
				"ecs:DescribeClusters",
				"ecs:DescribeContainerInstances",
				"ecs:DescribeServices",
				"ecs:DescribeTasks",
				"ecs:ExecuteCommand",
				"ecs:ListClusters",
				"ecs:ListContainerInstances",
				"ecs:ListServices",
				"ecs:ListTasks",
			},
			Effect:   Allow,
			Resource: []string{"*"},
		}},
	}
}
