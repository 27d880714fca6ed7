package awsec2

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/cloudanix/dbonboard/awsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastWaiter() awsutil.Waiter {
	return awsutil.Waiter{Interval: time.Millisecond, MaxAttempts: 20}
}

func peeringWithStatus(code types.VpcPeeringConnectionStateReasonCode) *ec2.DescribeVpcPeeringConnectionsOutput {
	return &ec2.DescribeVpcPeeringConnectionsOutput{
		VpcPeeringConnections: []types.VpcPeeringConnection{{
			Status:                 &types.VpcPeeringConnectionStateReason{Code: code, Message: aws.String(string(code))},
			VpcPeeringConnectionId: aws.String("pcx-1"),
		}},
	}
}

func TestWaitUntilVPCPeeringActive(t *testing.T) {
	statuses := []types.VpcPeeringConnectionStateReasonCode{
		types.VpcPeeringConnectionStateReasonCodeProvisioning,
		types.VpcPeeringConnectionStateReasonCodeProvisioning,
		types.VpcPeeringConnectionStateReasonCodeActive,
	}
	var describes int
	client := &fakeClient{
		describePeerings: func(in *ec2.DescribeVpcPeeringConnectionsInput) (*ec2.DescribeVpcPeeringConnectionsOutput, error) {
			require.Equal(t, []string{"pcx-1"}, in.VpcPeeringConnectionIds)
			out := peeringWithStatus(statuses[describes])
			describes++
			return out, nil
		},
	}
	err := WaitUntilVPCPeeringActive(context.Background(), client, "pcx-1", fastWaiter())
	require.NoError(t, err)
	assert.Equal(t, 3, describes)
}

func TestWaitUntilVPCPeeringFailed(t *testing.T) {
	client := &fakeClient{
		describePeerings: func(*ec2.DescribeVpcPeeringConnectionsInput) (*ec2.DescribeVpcPeeringConnectionsOutput, error) {
			return peeringWithStatus(types.VpcPeeringConnectionStateReasonCodeFailed), nil
		},
	}
	err := WaitUntilVPCPeeringActive(context.Background(), client, "pcx-1", fastWaiter())
	var failed *PeeringFailedError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, "pcx-1", failed.PeeringConnectionId)
}

func TestWaitUntilVPCPeeringTimesOut(t *testing.T) {
	var describes int
	client := &fakeClient{
		describePeerings: func(*ec2.DescribeVpcPeeringConnectionsInput) (*ec2.DescribeVpcPeeringConnectionsOutput, error) {
			describes++
			return peeringWithStatus(types.VpcPeeringConnectionStateReasonCodePendingAcceptance), nil
		},
	}
	err := WaitUntilVPCPeeringActive(context.Background(), client, "pcx-1", fastWaiter())
	assert.ErrorIs(t, err, awsutil.ErrWaitTimeout)
	assert.Equal(t, 20, describes)
}

func TestAcceptVPCPeeringConnection(t *testing.T) {
	client := &fakeClient{
		accept: func(in *ec2.AcceptVpcPeeringConnectionInput) (*ec2.AcceptVpcPeeringConnectionOutput, error) {
			require.Equal(t, "pcx-1", aws.ToString(in.VpcPeeringConnectionId))
			return &ec2.AcceptVpcPeeringConnectionOutput{
				VpcPeeringConnection: &types.VpcPeeringConnection{
					Status:                 &types.VpcPeeringConnectionStateReason{Code: types.VpcPeeringConnectionStateReasonCodeProvisioning},
					VpcPeeringConnectionId: aws.String("pcx-1"),
				},
			}, nil
		},
	}
	conn, err := AcceptVPCPeeringConnection(context.Background(), client, "pcx-1")
	require.NoError(t, err)
	assert.Equal(t, "pcx-1", aws.ToString(conn.VpcPeeringConnectionId))
}
