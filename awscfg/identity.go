package awscfg

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

type Identity struct {
	AccountId, Arn, UserId string
}

func (c *Config) Identity(ctx context.Context) (*Identity, error) {
	out, err := c.STS().GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, err
	}
	return &Identity{
		AccountId: aws.ToString(out.Account),
		Arn:       aws.ToString(out.Arn),
		UserId:    aws.ToString(out.UserId),
	}, nil
}
