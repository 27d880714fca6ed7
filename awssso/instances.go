package awssso

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssoadmin"
)

type Instance struct {
	InstanceArn, IdentityStoreId string
}

func ListInstances(ctx context.Context, client Client) (instances []*Instance, err error) {
	var nextToken *string
	for {
		var out *ssoadmin.ListInstancesOutput
		if out, err = client.ListInstances(ctx, &ssoadmin.ListInstancesInput{
			NextToken: nextToken,
		}); err != nil {
			return
		}
		for _, im := range out.Instances {
			instances = append(instances, &Instance{
				InstanceArn:     aws.ToString(im.InstanceArn),
				IdentityStoreId: aws.ToString(im.IdentityStoreId),
			})
		}
		if nextToken = out.NextToken; nextToken == nil {
			break
		}
	}
	return
}
