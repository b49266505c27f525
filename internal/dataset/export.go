package dataset

import (
	"encoding/csv"
	"io"

	"contactdesk/domain/table"
	"contactdesk/internal/errors"
)

// ExportFilename is the fixed download name for exported views.
const ExportFilename = "contacts.csv"

// WriteCSV serializes a table as comma-separated text: one header row,
// one line per record, standard quoting for embedded separators.
func WriteCSV(w io.Writer, t *table.Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Headers); err != nil {
		return errors.Wrap(err, "failed to write CSV header")
	}

	record := make([]string, len(t.Headers))
	for _, row := range t.Rows {
		for i, h := range t.Headers {
			record[i] = row[h]
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, "failed to write CSV row")
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "failed to flush CSV")
}
