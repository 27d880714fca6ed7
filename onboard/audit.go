package onboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cloudanix/dbonboard/contextutil"
	"github.com/cloudanix/dbonboard/fileutil"
)

// Audit file pathnames, relative to the working directory, one per
// onboarding flow. They're plain text and append-only.
const (
	AccepterAuditFilename   = "accepter-details.txt"
	PrivateRDSAuditFilename = "private-rds-onboard-details.txt"
	PublicRDSAuditFilename  = "public-rds-onboard-details.txt"
)

const auditRule = "---------------------------------------------"

var now = time.Now // swapped in tests

type auditField struct {
	Label, Value string
}

// appendAuditBlock appends one fixed-format block describing a processed
// configuration entry to the given audit file.
func appendAuditBlock(ctx context.Context, pathname string, fields []auditField) error {
	fields = append([]auditField{
		{"Command", contextutil.ValueString(ctx, contextutil.Subcommand)},
		{"Time", now().UTC().Format(time.RFC3339)},
	}, fields...)

	var b strings.Builder
	fmt.Fprintln(&b, auditRule)
	for _, field := range fields {
		fmt.Fprintf(&b, "%-20s %s\n", field.Label+":", field.Value)
	}
	fmt.Fprintln(&b, auditRule)
	return fileutil.Append(pathname, []byte(b.String()))
}
