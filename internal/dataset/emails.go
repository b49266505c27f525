package dataset

import (
	"strings"

	"contactdesk/domain/table"
)

// ExtractEmails collects the distinct, non-empty, trimmed values found in
// the configured email columns. Order is first appearance across the
// concatenation of the columns; configured columns absent from the table
// are skipped.
func ExtractEmails(t *table.Table, emailColumns []string) []string {
	var emails []string
	seen := make(map[string]bool)

	for _, column := range emailColumns {
		if !t.HasColumn(column) {
			continue
		}
		for _, row := range t.Rows {
			v := strings.TrimSpace(row[column])
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			emails = append(emails, v)
		}
	}
	return emails
}
