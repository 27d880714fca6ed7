package awsec2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/cloudanix/dbonboard/awsutil"
	"github.com/cloudanix/dbonboard/cidr"
	"github.com/cloudanix/dbonboard/ui"
)

const RouteAlreadyExists = "RouteAlreadyExists"

type RouteTable = types.RouteTable

// DescribeRouteTables enumerates every route table in the given VPC.
func DescribeRouteTables(
	ctx context.Context,
	client Client,
	vpcId string,
) (routeTables []RouteTable, err error) {
	var nextToken *string
	for {
		var out *ec2.DescribeRouteTablesOutput
		if out, err = client.DescribeRouteTables(ctx, &ec2.DescribeRouteTablesInput{
			Filters: []types.Filter{{
				Name:   aws.String("vpc-id"),
				Values: []string{vpcId},
			}},
			NextToken: nextToken,
		}); err != nil {
			return
		}
		routeTables = append(routeTables, out.RouteTables...)
		if nextToken = out.NextToken; nextToken == nil {
			break
		}
	}
	return
}

// EnsureVPCPeeringRoute routes traffic for the given destination through the
// peering connection. A route that already exists is fine.
func EnsureVPCPeeringRoute(
	ctx context.Context,
	client Client, // must be in the accepter's account and region
	routeTableId string,
	ipv4 cidr.IPv4,
	peeringConnectionId string,
) error {
	ui.Spinf("routing traffic from %s to %s via %s", routeTableId, ipv4, peeringConnectionId)
	_, err := client.CreateRoute(ctx, &ec2.CreateRouteInput{
		DestinationCidrBlock:   aws.String(ipv4.String()),
		RouteTableId:           aws.String(routeTableId),
		VpcPeeringConnectionId: aws.String(peeringConnectionId),
	})
	if awsutil.ErrorCodeIs(err, RouteAlreadyExists) {
		ui.Stop("route already exists")
		return nil
	}
	return ui.StopErr(err)
}

// EnsureVPCPeeringRoutes fans EnsureVPCPeeringRoute out over every route
// table in the VPC. Zero route tables is an error because it means traffic
// could never flow; a failure on one table doesn't stop the others.
func EnsureVPCPeeringRoutes(
	ctx context.Context,
	client Client, // must be in the accepter's account and region
	vpcId string,
	ipv4 cidr.IPv4,
	peeringConnectionId string,
) error {
	routeTables, err := DescribeRouteTables(ctx, client, vpcId)
	if err != nil {
		return err
	}
	if len(routeTables) == 0 {
		return fmt.Errorf("no route tables found in %s", vpcId)
	}
	for _, routeTable := range routeTables {
		if err := EnsureVPCPeeringRoute(
			ctx,
			client,
			aws.ToString(routeTable.RouteTableId),
			ipv4,
			peeringConnectionId,
		); err != nil {
			ui.Printf(
				"couldn't route %s via %s in %s: %s",
				ipv4,
				peeringConnectionId,
				aws.ToString(routeTable.RouteTableId),
				awsutil.ErrorMessage(err),
			)
		}
	}
	return nil
}
