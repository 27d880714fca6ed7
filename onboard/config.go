// Package onboard sequences the AWS calls that onboard an account to the
// database-access workflow: accepting VPC peering connections, opening
// database ports for peered and already-peered VPCs, extending IAM roles
// and trust policies for RDS IAM authentication, and provisioning the
// ECS/SSM permission set.
package onboard

import (
	"github.com/cloudanix/dbonboard/jsonutil"
)

// Document is the onboarding configuration file. Missing or malformed
// fields decode to empty values, which the sequences treat as "skip this
// entry" rather than as structured errors.
type Document struct {
	VPCPeerings       []PeeringRequest   `json:"vpc_peerings"`
	PrivateRDSConfigs []PrivateRDSConfig `json:"private_rds_configs"`
	PublicRDSConfigs  []PublicRDSConfig  `json:"public_rds_configs"`
}

// PeeringRequest describes one peering connection a requester's asked us to
// accept, plus the routing and security group work that follows acceptance.
type PeeringRequest struct {
	RequesterPeeringId    string   `json:"requester_peering_id"`
	AccepterVPCId         string   `json:"accepter_vpc_id"`
	RequesterCIDR         string   `json:"requester_cidr"`
	RequesterNATGatewayIP string   `json:"requester_nat_gateway_ip"`
	RDSSecurityGroups     []string `json:"rds_security_groups"`
}

// PrivateRDSConfig opens database ports to a requester that reaches RDS
// over an existing peering connection's private addresses.
type PrivateRDSConfig struct {
	RequesterCIDR     string   `json:"requester_cidr"`
	RDSSecurityGroups []string `json:"rds_security_groups"`
}

// PublicRDSConfig opens database ports to a requester that reaches RDS
// publicly, which means its NAT gateway address needs to be allowed, too.
type PublicRDSConfig struct {
	RequesterCIDR         string   `json:"requester_cidr"`
	RequesterNATGatewayIP string   `json:"requester_nat_gateway_ip"`
	RDSSecurityGroups     []string `json:"rds_security_groups"`
}

func ReadDocument(pathname string) (*Document, error) {
	doc := &Document{}
	if err := jsonutil.Read(pathname, doc); err != nil {
		return nil, err
	}
	return doc, nil
}
