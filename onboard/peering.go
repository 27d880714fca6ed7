package onboard

import (
	"context"
	"time"

	"github.com/cloudanix/dbonboard/awsec2"
	"github.com/cloudanix/dbonboard/awsutil"
	"github.com/cloudanix/dbonboard/cidr"
	"github.com/cloudanix/dbonboard/ui"
)

// PeeringWaiter bounds how long we'll wait for a peering connection to
// become active after accepting it. Acceptance usually settles in a minute
// or two; ten minutes means something's wrong on the requester's side.
var PeeringWaiter = awsutil.Waiter{Interval: 30 * time.Second, MaxAttempts: 20}

// AcceptPeerings accepts every peering connection in the document, routes
// the requester's CIDR through it in every route table in the accepter's
// VPC, and opens the database ports in the listed security groups. A bad
// entry is logged and skipped so one requester's mistake doesn't block the
// rest of the batch.
func AcceptPeerings(
	ctx context.Context,
	client awsec2.Client,
	doc *Document,
	auditPathname string,
) error {
	for _, request := range doc.VPCPeerings {
		if request.RequesterPeeringId == "" || request.AccepterVPCId == "" {
			ui.Printf("skipping an entry missing its peering connection or VPC id: %+v", request)
			continue
		}
		requesterCIDR, err := cidr.ParseIPv4(request.RequesterCIDR)
		if err != nil {
			ui.Printf("skipping %s: %s", request.RequesterPeeringId, err)
			continue
		}
		natIP, err := cidr.HostIPv4(request.RequesterNATGatewayIP)
		if err != nil {
			ui.Printf("skipping %s: %s", request.RequesterPeeringId, err)
			continue
		}

		if _, err := awsec2.AcceptVPCPeeringConnection(
			ctx,
			client,
			request.RequesterPeeringId,
		); awsutil.ErrorCodeIs(err, awsec2.InvalidStateTransition) {
			// already accepted (or rejected); the wait below finds out which
		} else if awsutil.ErrorCodeIs(err, awsec2.InvalidVpcPeeringConnectionIDError) {
			ui.Printf("skipping %s: no such peering connection", request.RequesterPeeringId)
			continue
		} else if err != nil {
			ui.Printf("skipping %s: %s", request.RequesterPeeringId, awsutil.ErrorMessage(err))
			continue
		}
		if err := awsec2.WaitUntilVPCPeeringActive(
			ctx,
			client,
			request.RequesterPeeringId,
			PeeringWaiter,
		); err != nil {
			ui.Printf("skipping %s: %s", request.RequesterPeeringId, awsutil.ErrorMessage(err))
			continue
		}

		if err := awsec2.EnsureVPCPeeringRoutes(
			ctx,
			client,
			request.AccepterVPCId,
			requesterCIDR,
			request.RequesterPeeringId,
		); err != nil {
			ui.Printf("skipping %s: %s", request.RequesterPeeringId, awsutil.ErrorMessage(err))
			continue
		}

		openDatabasePorts(ctx, client, request.RDSSecurityGroups, []cidr.IPv4{requesterCIDR, natIP})

		if err := appendAuditBlock(ctx, auditPathname, []auditField{
			{"Peering connection", request.RequesterPeeringId},
			{"Accepter VPC", request.AccepterVPCId},
			{"Requester CIDR", requesterCIDR.String()},
			{"Requester NAT IP", natIP.String()},
			{"Security groups", joinOrNone(request.RDSSecurityGroups)},
		}); err != nil {
			return err
		}
	}
	return nil
}
