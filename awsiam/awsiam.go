// Package awsiam wraps the IAM operations behind extending roles for RDS
// IAM authentication and editing trust policies.
package awsiam

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/iam"
)

// Client is the slice of *iam.Client this package actually calls, declared
// as an interface so tests can stand in a fake instead of the real control
// plane.
type Client interface {
	AttachRolePolicy(ctx context.Context, in *iam.AttachRolePolicyInput, optFns ...func(*iam.Options)) (*iam.AttachRolePolicyOutput, error)
	CreatePolicy(ctx context.Context, in *iam.CreatePolicyInput, optFns ...func(*iam.Options)) (*iam.CreatePolicyOutput, error)
	GetRole(ctx context.Context, in *iam.GetRoleInput, optFns ...func(*iam.Options)) (*iam.GetRoleOutput, error)
	ListAttachedRolePolicies(ctx context.Context, in *iam.ListAttachedRolePoliciesInput, optFns ...func(*iam.Options)) (*iam.ListAttachedRolePoliciesOutput, error)
	UpdateAssumeRolePolicy(ctx context.Context, in *iam.UpdateAssumeRolePolicyInput, optFns ...func(*iam.Options)) (*iam.UpdateAssumeRolePolicyOutput, error)
}

var _ Client = (*iam.Client)(nil)
