package policies

// GrantAssumeRole rewrites d so that it contains exactly one statement
// granting sts:AssumeRole to the given principal ARN. Statements for other
// principals are preserved untouched; re-running is safe because the old
// statement for this principal is removed before the fresh one's appended.
func (d *Document) GrantAssumeRole(principalARN string) {
	d.RemoveAWSPrincipal(principalARN)
	d.Statement = append(d.Statement, Statement{
		Action:    []string{"sts:AssumeRole"},
		Effect:    Allow,
		Principal: &Principal{AWS: []string{principalARN}},
	})
}

// RemoveAWSPrincipal drops every statement whose AWS principal is exactly
// the given ARN.
func (d *Document) RemoveAWSPrincipal(principalARN string) {
	statements := d.Statement[:0]
	for _, statement := range d.Statement {
		if statementIsForAWSPrincipal(statement, principalARN) {
			continue
		}
		statements = append(statements, statement)
	}
	d.Statement = statements
}

func statementIsForAWSPrincipal(statement Statement, principalARN string) bool {
	if statement.Principal == nil {
		return false
	}
	return len(statement.Principal.AWS) == 1 && statement.Principal.AWS[0] == principalARN
}
