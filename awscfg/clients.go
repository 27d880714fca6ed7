package awscfg

import (
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/ssoadmin"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

func (c *Config) EC2() *ec2.Client {
	return ec2.NewFromConfig(c.cfg) // TODO memoize
}

func (c *Config) IAM() *iam.Client {
	return iam.NewFromConfig(c.cfg) // TODO memoize
}

func (c *Config) SSOAdmin() *ssoadmin.Client {
	return ssoadmin.NewFromConfig(c.cfg) // TODO memoize
}

func (c *Config) STS() *sts.Client {
	return sts.NewFromConfig(c.cfg) // TODO memoize
}
