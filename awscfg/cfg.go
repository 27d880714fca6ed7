package awscfg

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/cloudanix/dbonboard/ui"
)

// Config wraps an aws.Config so that the rest of the program can ask for
// typed service clients without caring how credentials were resolved.
// Assemble one at startup and pass it around; there are no ambient globals.
type Config struct {
	cfg aws.Config
}

func NewConfig(ctx context.Context) (*Config, error) {
	c := &Config{}
	var err error
	c.cfg, err = config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func Must(c *Config, err error) *Config {
	ui.Must(err)
	return c
}

func (c *Config) Region() string {
	return c.cfg.Region
}
