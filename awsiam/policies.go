package awsiam

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/cloudanix/dbonboard/awsutil"
	"github.com/cloudanix/dbonboard/policies"
	"github.com/cloudanix/dbonboard/ui"
)

func AttachRolePolicy(
	ctx context.Context,
	client Client,
	roleName, policyArn string,
) error {
	_, err := client.AttachRolePolicy(ctx, &iam.AttachRolePolicyInput{
		PolicyArn: aws.String(policyArn),
		RoleName:  aws.String(roleName),
	})
	return err // attaching an attached policy is a no-op, not an error
}

// EnsurePolicy creates the named customer managed policy with the given
// document and returns its ARN. A policy that already exists (from a
// previous run) is fine; its ARN is a pure function of the account and name
// so there's no need to go fetch it.
func EnsurePolicy(
	ctx context.Context,
	client Client,
	accountId, name string,
	doc *policies.Document,
) (string, error) {
	docJSON, err := doc.Marshal()
	if err != nil {
		return "", err
	}
	ui.Spinf("creating the %s policy", name)
	out, err := client.CreatePolicy(ctx, &iam.CreatePolicyInput{
		PolicyDocument: aws.String(docJSON),
		PolicyName:     aws.String(name),
	})
	if awsutil.ErrorCodeIs(err, EntityAlreadyExists) {
		ui.Stop("already exists")
		return policies.PolicyARN(accountId, name), nil
	}
	if err != nil {
		return "", ui.StopErr(err)
	}
	ui.Stopf("created %s", out.Policy.Arn)
	return aws.ToString(out.Policy.Arn), nil
}

func ListAttachedRolePolicies(
	ctx context.Context,
	client Client,
	roleName string,
) (policyArns []string, err error) {
	var marker *string
	for {
		var out *iam.ListAttachedRolePoliciesOutput
		if out, err = client.ListAttachedRolePolicies(ctx, &iam.ListAttachedRolePoliciesInput{
			Marker:   marker,
			RoleName: aws.String(roleName),
		}); err != nil {
			return
		}
		for _, policy := range out.AttachedPolicies {
			policyArns = append(policyArns, aws.ToString(policy.PolicyArn))
		}
		if !out.IsTruncated {
			break
		}
		marker = out.Marker
	}
	return
}
