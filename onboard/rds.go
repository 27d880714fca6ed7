package onboard

import (
	"context"
	"strings"

	"github.com/cloudanix/dbonboard/awsec2"
	"github.com/cloudanix/dbonboard/awsutil"
	"github.com/cloudanix/dbonboard/cidr"
	"github.com/cloudanix/dbonboard/ui"
)

// OnboardPrivateRDS opens the database ports to requesters that reach RDS
// over peering connections that are already active, so only their private
// CIDRs need to be allowed.
func OnboardPrivateRDS(
	ctx context.Context,
	client awsec2.Client,
	doc *Document,
	auditPathname string,
) error {
	for _, config := range doc.PrivateRDSConfigs {
		requesterCIDR, err := cidr.ParseIPv4(config.RequesterCIDR)
		if err != nil {
			ui.Printf("skipping %s: %s", config.RequesterCIDR, err)
			continue
		}

		openDatabasePorts(ctx, client, config.RDSSecurityGroups, []cidr.IPv4{requesterCIDR})

		if err := appendAuditBlock(ctx, auditPathname, []auditField{
			{"Requester CIDR", requesterCIDR.String()},
			{"Security groups", joinOrNone(config.RDSSecurityGroups)},
		}); err != nil {
			return err
		}
	}
	return nil
}

// OnboardPublicRDS opens the database ports to requesters that reach RDS
// publicly, which means their NAT gateway addresses need to be allowed
// alongside their CIDRs.
func OnboardPublicRDS(
	ctx context.Context,
	client awsec2.Client,
	doc *Document,
	auditPathname string,
) error {
	for _, config := range doc.PublicRDSConfigs {
		requesterCIDR, err := cidr.ParseIPv4(config.RequesterCIDR)
		if err != nil {
			ui.Printf("skipping %s: %s", config.RequesterCIDR, err)
			continue
		}
		natIP, err := cidr.HostIPv4(config.RequesterNATGatewayIP)
		if err != nil {
			ui.Printf("skipping %s: %s", config.RequesterCIDR, err)
			continue
		}

		openDatabasePorts(ctx, client, config.RDSSecurityGroups, []cidr.IPv4{requesterCIDR, natIP})

		if err := appendAuditBlock(ctx, auditPathname, []auditField{
			{"Requester CIDR", requesterCIDR.String()},
			{"Requester NAT IP", natIP.String()},
			{"Security groups", joinOrNone(config.RDSSecurityGroups)},
		}); err != nil {
			return err
		}
	}
	return nil
}

func joinOrNone(ss []string) string {
	if len(ss) == 0 {
		return "none"
	}
	return strings.Join(ss, ", ")
}

func openDatabasePorts(
	ctx context.Context,
	client awsec2.Client,
	securityGroupIds []string,
	sources []cidr.IPv4,
) {
	for _, securityGroupId := range securityGroupIds {
		if err := awsec2.EnsureDatabaseIngress(ctx, client, securityGroupId, sources); err != nil {
			ui.Printf("couldn't open database ports in %s: %s", securityGroupId, awsutil.ErrorMessage(err))
		}
	}
}
