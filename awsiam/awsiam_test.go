package awsiam

import (
	"context"
	"net/url"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/aws/smithy-go"
	"github.com/cloudanix/dbonboard/policies"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	attachRolePolicy         func(*iam.AttachRolePolicyInput) (*iam.AttachRolePolicyOutput, error)
	createPolicy             func(*iam.CreatePolicyInput) (*iam.CreatePolicyOutput, error)
	getRole                  func(*iam.GetRoleInput) (*iam.GetRoleOutput, error)
	listAttachedRolePolicies func(*iam.ListAttachedRolePoliciesInput) (*iam.ListAttachedRolePoliciesOutput, error)
	updateAssumeRolePolicy   func(*iam.UpdateAssumeRolePolicyInput) (*iam.UpdateAssumeRolePolicyOutput, error)
}

var _ Client = (*fakeClient)(nil)

func (c *fakeClient) AttachRolePolicy(_ context.Context, in *iam.AttachRolePolicyInput, _ ...func(*iam.Options)) (*iam.AttachRolePolicyOutput, error) {
	return c.attachRolePolicy(in)
}

func (c *fakeClient) CreatePolicy(_ context.Context, in *iam.CreatePolicyInput, _ ...func(*iam.Options)) (*iam.CreatePolicyOutput, error) {
	return c.createPolicy(in)
}

func (c *fakeClient) GetRole(_ context.Context, in *iam.GetRoleInput, _ ...func(*iam.Options)) (*iam.GetRoleOutput, error) {
	return c.getRole(in)
}

func (c *fakeClient) ListAttachedRolePolicies(_ context.Context, in *iam.ListAttachedRolePoliciesInput, _ ...func(*iam.Options)) (*iam.ListAttachedRolePoliciesOutput, error) {
	return c.listAttachedRolePolicies(in)
}

func (c *fakeClient) UpdateAssumeRolePolicy(_ context.Context, in *iam.UpdateAssumeRolePolicyInput, _ ...func(*iam.Options)) (*iam.UpdateAssumeRolePolicyOutput, error) {
	return c.updateAssumeRolePolicy(in)
}

func TestEnsurePolicy(t *testing.T) {
	client := &fakeClient{
		createPolicy: func(in *iam.CreatePolicyInput) (*iam.CreatePolicyOutput, error) {
			require.Equal(t, policies.RDSConnectPolicyName, aws.ToString(in.PolicyName))
			require.Contains(t, aws.ToString(in.PolicyDocument), "rds-db:connect")
			return &iam.CreatePolicyOutput{Policy: &types.Policy{
				Arn: aws.String("arn:aws:iam::123456789012:policy/DBAccessRDSConnect"),
			}}, nil
		},
	}
	arn, err := EnsurePolicy(
		context.Background(),
		client,
		"123456789012",
		policies.RDSConnectPolicyName,
		policies.RDSConnect("123456789012"),
	)
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:iam::123456789012:policy/DBAccessRDSConnect", arn)
}

func TestEnsurePolicyAlreadyExists(t *testing.T) {
	client := &fakeClient{
		createPolicy: func(*iam.CreatePolicyInput) (*iam.CreatePolicyOutput, error) {
			return nil, &smithy.GenericAPIError{Code: EntityAlreadyExists}
		},
	}
	arn, err := EnsurePolicy(
		context.Background(),
		client,
		"123456789012",
		policies.RDSDescribePolicyName,
		policies.RDSDescribe("123456789012"),
	)
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:iam::123456789012:policy/DBAccessRDSDescribe", arn)
}

func TestListAttachedRolePoliciesPaginates(t *testing.T) {
	client := &fakeClient{
		listAttachedRolePolicies: func(in *iam.ListAttachedRolePoliciesInput) (*iam.ListAttachedRolePoliciesOutput, error) {
			require.Equal(t, "app", aws.ToString(in.RoleName))
			if in.Marker == nil {
				return &iam.ListAttachedRolePoliciesOutput{
					AttachedPolicies: []types.AttachedPolicy{{PolicyArn: aws.String("arn:1")}},
					IsTruncated:      true,
					Marker:           aws.String("m"),
				}, nil
			}
			return &iam.ListAttachedRolePoliciesOutput{
				AttachedPolicies: []types.AttachedPolicy{{PolicyArn: aws.String("arn:2")}},
			}, nil
		},
	}
	arns, err := ListAttachedRolePolicies(context.Background(), client, "app")
	require.NoError(t, err)
	assert.Equal(t, []string{"arn:1", "arn:2"}, arns)
}

func TestGetRoleUnescapesTrustPolicy(t *testing.T) {
	doc := `{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"Service":"ec2.amazonaws.com"},"Action":"sts:AssumeRole"}]}`
	client := &fakeClient{
		getRole: func(in *iam.GetRoleInput) (*iam.GetRoleOutput, error) {
			require.Equal(t, "app", aws.ToString(in.RoleName))
			return &iam.GetRoleOutput{Role: &types.Role{
				Arn:                      aws.String("arn:aws:iam::123456789012:role/app"),
				AssumeRolePolicyDocument: aws.String(url.PathEscape(doc)),
				RoleName:                 aws.String("app"),
			}}, nil
		},
	}
	role, err := GetRole(context.Background(), client, "app")
	require.NoError(t, err)
	assert.Equal(t, "app", role.Name)
	require.Len(t, role.AssumeRolePolicy.Statement, 1)
	assert.Equal(t, []string{"ec2.amazonaws.com"}, []string(role.AssumeRolePolicy.Statement[0].Principal.Service))
}
