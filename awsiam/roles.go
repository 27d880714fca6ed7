package awsiam

import (
	"context"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/cloudanix/dbonboard/policies"
)

type Role struct {
	Arn              string
	AssumeRolePolicy *policies.Document
	Name             string
}

func GetRole(ctx context.Context, client Client, roleName string) (*Role, error) {
	out, err := client.GetRole(ctx, &iam.GetRoleInput{
		RoleName: aws.String(roleName),
	})
	if err != nil {
		return nil, err
	}
	return roleFromAPI(out.Role)
}

func UpdateAssumeRolePolicy(
	ctx context.Context,
	client Client,
	roleName string,
	doc *policies.Document,
) error {
	docJSON, err := doc.Marshal()
	if err != nil {
		return err
	}
	_, err = client.UpdateAssumeRolePolicy(ctx, &iam.UpdateAssumeRolePolicyInput{
		PolicyDocument: aws.String(docJSON),
		RoleName:       aws.String(roleName),
	})
	return err
}

func roleFromAPI(role *types.Role) (*Role, error) {
	s, err := url.PathUnescape(aws.ToString(role.AssumeRolePolicyDocument)) // IAM URL-encodes the document
	if err != nil {
		return nil, err
	}
	doc, err := policies.UnmarshalString(s)
	return &Role{
		Arn:              aws.ToString(role.Arn),
		AssumeRolePolicy: doc,
		Name:             aws.ToString(role.RoleName),
	}, err
}
