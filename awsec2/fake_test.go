package awsec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// fakeClient satisfies Client with per-operation function fields so each
// test only wires the operations it expects to see called.
type fakeClient struct {
	accept              func(*ec2.AcceptVpcPeeringConnectionInput) (*ec2.AcceptVpcPeeringConnectionOutput, error)
	authorize           func(*ec2.AuthorizeSecurityGroupIngressInput) (*ec2.AuthorizeSecurityGroupIngressOutput, error)
	createRoute         func(*ec2.CreateRouteInput) (*ec2.CreateRouteOutput, error)
	describeRouteTables func(*ec2.DescribeRouteTablesInput) (*ec2.DescribeRouteTablesOutput, error)
	describePeerings    func(*ec2.DescribeVpcPeeringConnectionsInput) (*ec2.DescribeVpcPeeringConnectionsOutput, error)
}

var _ Client = (*fakeClient)(nil)

func (c *fakeClient) AcceptVpcPeeringConnection(_ context.Context, in *ec2.AcceptVpcPeeringConnectionInput, _ ...func(*ec2.Options)) (*ec2.AcceptVpcPeeringConnectionOutput, error) {
	return c.accept(in)
}

func (c *fakeClient) AuthorizeSecurityGroupIngress(_ context.Context, in *ec2.AuthorizeSecurityGroupIngressInput, _ ...func(*ec2.Options)) (*ec2.AuthorizeSecurityGroupIngressOutput, error) {
	return c.authorize(in)
}

func (c *fakeClient) CreateRoute(_ context.Context, in *ec2.CreateRouteInput, _ ...func(*ec2.Options)) (*ec2.CreateRouteOutput, error) {
	return c.createRoute(in)
}

func (c *fakeClient) DescribeRouteTables(_ context.Context, in *ec2.DescribeRouteTablesInput, _ ...func(*ec2.Options)) (*ec2.DescribeRouteTablesOutput, error) {
	return c.describeRouteTables(in)
}

func (c *fakeClient) DescribeVpcPeeringConnections(_ context.Context, in *ec2.DescribeVpcPeeringConnectionsInput, _ ...func(*ec2.Options)) (*ec2.DescribeVpcPeeringConnectionsOutput, error) {
	return c.describePeerings(in)
}
