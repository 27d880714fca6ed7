package awssso

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssoadmin"
	"github.com/aws/aws-sdk-go-v2/service/ssoadmin/types"
	"github.com/cloudanix/dbonboard/awsutil"
	"github.com/cloudanix/dbonboard/policies"
	"github.com/cloudanix/dbonboard/tagging"
	"github.com/cloudanix/dbonboard/ui"
)

// SessionDuration is how long a session through the database-access
// permission set lasts. ISO 8601, because that's what the API wants.
const SessionDuration = "PT8H"

type PermissionSet struct {
	ARN, Name, Description, SessionDuration string
}

func DescribePermissionSet(
	ctx context.Context,
	client Client,
	instanceArn, permissionSetArn string,
) (*PermissionSet, error) {
	out, err := client.DescribePermissionSet(ctx, &ssoadmin.DescribePermissionSetInput{
		InstanceArn:      aws.String(instanceArn),
		PermissionSetArn: aws.String(permissionSetArn),
	})
	if err != nil {
		return nil, err
	}
	return permissionSetFromAPI(out.PermissionSet), nil
}

// EnsurePermissionSet creates the named permission set. If a previous run
// already created it, the create reports ConflictException and the existing
// one is found by name instead.
func EnsurePermissionSet(
	ctx context.Context,
	client Client,
	instanceArn, name string,
	tags tagging.Map,
) (*PermissionSet, error) {
	ui.Spinf("creating the %s permission set", name)
	out, err := client.CreatePermissionSet(ctx, &ssoadmin.CreatePermissionSetInput{
		Description:     aws.String(name),
		InstanceArn:     aws.String(instanceArn),
		Name:            aws.String(name),
		SessionDuration: aws.String(SessionDuration),
		Tags:            tagStructs(tags),
	})
	if awsutil.ErrorCodeIs(err, ConflictException) {
		permissionSet, err := findPermissionSet(ctx, client, instanceArn, name)
		if err != nil {
			return nil, ui.StopErr(err)
		}
		ui.Stopf("found %s", permissionSet.ARN)
		return permissionSet, nil
	}
	if err != nil {
		return nil, ui.StopErr(err)
	}
	ui.Stopf("created %s", out.PermissionSet.PermissionSetArn)
	return permissionSetFromAPI(out.PermissionSet), nil
}

// ProvisionPermissionSet applies the permission set to the target account
// and waits for the provisioning request to reach a terminal status.
// FAILED returns *ProvisioningFailedError with the control plane's reason.
func ProvisionPermissionSet(
	ctx context.Context,
	client Client,
	instanceArn, permissionSetArn, accountId string,
	waiter awsutil.Waiter,
) error {
	ui.Spinf("provisioning %s in account %s", permissionSetArn, accountId)
	out, err := client.ProvisionPermissionSet(ctx, &ssoadmin.ProvisionPermissionSetInput{
		InstanceArn:      aws.String(instanceArn),
		PermissionSetArn: aws.String(permissionSetArn),
		TargetId:         aws.String(accountId),
		TargetType:       types.ProvisionTargetTypeAwsAccount,
	})
	if err != nil {
		return ui.StopErr(err)
	}
	requestId := aws.ToString(out.PermissionSetProvisioningStatus.RequestId)

	err = waiter.Wait(ctx, func(ctx context.Context) (bool, error) {
		out, err := client.DescribePermissionSetProvisioningStatus(ctx, &ssoadmin.DescribePermissionSetProvisioningStatusInput{
			InstanceArn:                     aws.String(instanceArn),
			ProvisionPermissionSetRequestId: aws.String(requestId),
		})
		if err != nil {
			return false, err
		}
		status := out.PermissionSetProvisioningStatus
		switch status.Status {
		case types.StatusValuesSucceeded:
			return true, nil
		case types.StatusValuesFailed:
			return false, &ProvisioningFailedError{
				RequestId:     requestId,
				FailureReason: aws.ToString(status.FailureReason),
			}
		}
		return false, nil // IN_PROGRESS
	})
	if err != nil {
		return ui.StopErr(err)
	}
	ui.Stop("provisioned")
	return nil
}

func PutInlinePolicy(
	ctx context.Context,
	client Client,
	instanceArn, permissionSetArn string,
	doc *policies.Document,
) error {
	docJSON, err := doc.Marshal()
	if err != nil {
		return err
	}
	_, err = client.PutInlinePolicyToPermissionSet(ctx, &ssoadmin.PutInlinePolicyToPermissionSetInput{
		InlinePolicy:     aws.String(docJSON),
		InstanceArn:      aws.String(instanceArn),
		PermissionSetArn: aws.String(permissionSetArn),
	})
	return err
}

// findPermissionSet resolves a permission set by name, which the API only
// allows by listing ARNs and describing each one.
func findPermissionSet(
	ctx context.Context,
	client Client,
	instanceArn, name string,
) (*PermissionSet, error) {
	var nextToken *string
	for {
		out, err := client.ListPermissionSets(ctx, &ssoadmin.ListPermissionSetsInput{
			InstanceArn: aws.String(instanceArn),
			NextToken:   nextToken,
		})
		if err != nil {
			return nil, err
		}
		for _, permissionSetArn := range out.PermissionSets {
			permissionSet, err := DescribePermissionSet(ctx, client, instanceArn, permissionSetArn)
			if err != nil {
				return nil, err
			}
			if permissionSet.Name == name {
				return permissionSet, nil
			}
		}
		if nextToken = out.NextToken; nextToken == nil {
			break
		}
	}
	return nil, NotFound{"permission set", name}
}

func permissionSetFromAPI(permissionSet *types.PermissionSet) *PermissionSet {
	return &PermissionSet{
		ARN:             aws.ToString(permissionSet.PermissionSetArn),
		Description:     aws.ToString(permissionSet.Description),
		Name:            aws.ToString(permissionSet.Name),
		SessionDuration: aws.ToString(permissionSet.SessionDuration),
	}
}

func tagStructs(tags tagging.Map) []types.Tag {
	structs := make([]types.Tag, 0, len(tags))
	for key, value := range tags {
		structs = append(structs, types.Tag{
			Key:   aws.String(key),
			Value: aws.String(value),
		})
	}
	return structs
}
