package awsec2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/cloudanix/dbonboard/awsutil"
	"github.com/cloudanix/dbonboard/ui"
)

const (
	InvalidStateTransition             = "InvalidStateTransition"
	InvalidVpcPeeringConnectionIDError = "InvalidVpcPeeringConnectionID.NotFound"
)

type VPCPeeringConnection = types.VpcPeeringConnection

// PeeringFailedError reports a peering connection that reached a terminal
// state other than active, which means no route or security group work
// should happen for it.
type PeeringFailedError struct {
	PeeringConnectionId string
	Status              types.VpcPeeringConnectionStateReasonCode
	Message             string
}

func (err *PeeringFailedError) Error() string {
	return fmt.Sprintf("VPC peering connection %s is %s: %s", err.PeeringConnectionId, err.Status, err.Message)
}

// AcceptVPCPeeringConnection accepts the pending peering connection. The
// requester's already created it so the only error worth special handling is
// InvalidStateTransition, which means it's been accepted (or rejected)
// before; callers decide whether that's fatal.
func AcceptVPCPeeringConnection(
	ctx context.Context,
	client Client, // must be in the accepter's account
	peeringConnectionId string,
) (*VPCPeeringConnection, error) {
	ui.Spinf("accepting VPC peering connection %s", peeringConnectionId)
	out, err := client.AcceptVpcPeeringConnection(ctx, &ec2.AcceptVpcPeeringConnectionInput{
		VpcPeeringConnectionId: aws.String(peeringConnectionId),
	})
	if err != nil {
		return nil, ui.StopErr(err)
	}
	ui.Stopf("status %s", out.VpcPeeringConnection.Status.Code)
	return out.VpcPeeringConnection, nil
}

func DescribeVPCPeeringConnection(
	ctx context.Context,
	client Client,
	peeringConnectionId string,
) (*VPCPeeringConnection, error) {
	out, err := client.DescribeVpcPeeringConnections(ctx, &ec2.DescribeVpcPeeringConnectionsInput{
		VpcPeeringConnectionIds: []string{peeringConnectionId},
	})
	if err != nil {
		return nil, err
	}
	if len(out.VpcPeeringConnections) != 1 {
		return nil, fmt.Errorf("expected 1 VPC peering connection %s but found %d", peeringConnectionId, len(out.VpcPeeringConnections))
	}
	return &out.VpcPeeringConnections[0], nil
}

// WaitUntilVPCPeeringActive polls the peering connection through the given
// waiter until it's active. A failed (or otherwise dead) connection returns
// *PeeringFailedError; running out of attempts returns awsutil.ErrWaitTimeout.
func WaitUntilVPCPeeringActive(
	ctx context.Context,
	client Client,
	peeringConnectionId string,
	waiter awsutil.Waiter,
) error {
	ui.Spinf("waiting for VPC peering connection %s to become active", peeringConnectionId)
	err := waiter.Wait(ctx, func(ctx context.Context) (bool, error) {
		conn, err := DescribeVPCPeeringConnection(ctx, client, peeringConnectionId)
		if err != nil {
			return false, err
		}
		switch code := conn.Status.Code; code {
		case types.VpcPeeringConnectionStateReasonCodeActive:
			return true, nil
		case types.VpcPeeringConnectionStateReasonCodeFailed,
			types.VpcPeeringConnectionStateReasonCodeRejected,
			types.VpcPeeringConnectionStateReasonCodeDeleted,
			types.VpcPeeringConnectionStateReasonCodeDeleting,
			types.VpcPeeringConnectionStateReasonCodeExpired:
			return false, &PeeringFailedError{
				PeeringConnectionId: peeringConnectionId,
				Status:              code,
				Message:             aws.ToString(conn.Status.Message),
			}
		}
		return false, nil // pending-acceptance, provisioning
	})
	if err != nil {
		return ui.StopErr(err)
	}
	ui.Stop("active")
	return nil
}
