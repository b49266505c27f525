package ports

import "contactdesk/domain/table"

// SheetSource provides read-only access to the named sheets of a workbook.
type SheetSource interface {
	// SheetNames lists the sheets present in the workbook, in file order.
	SheetNames() ([]string, error)

	// ReadSheet loads the named sheet into a table. The first row is the
	// header row; cells come back as trimmed strings. Returns an error
	// with code SHEET_NOT_FOUND when the name is absent.
	ReadSheet(name string) (*table.Table, error)
}
