package table

// Row represents a single record as column-name → string cell pairs.
// Missing values are empty strings.
type Row map[string]string

// Table represents one sheet worth of tabular data: an ordered set of
// column headers and the rows beneath them, in source order.
type Table struct {
	Headers []string
	Rows    []Row
}

// New creates an empty table with the given headers.
func New(headers ...string) *Table {
	return &Table{Headers: headers}
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// Column returns the named column's cells in row order. Rows without the
// column contribute an empty string.
func (t *Table) Column(name string) []string {
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[name]
	}
	return values
}

// Clone returns a deep copy. Transforms operate on clones so the cached
// raw sheet is never mutated.
func (t *Table) Clone() *Table {
	headers := make([]string, len(t.Headers))
	copy(headers, t.Headers)

	rows := make([]Row, len(t.Rows))
	for i, row := range t.Rows {
		clone := make(Row, len(row))
		for k, v := range row {
			clone[k] = v
		}
		rows[i] = clone
	}
	return &Table{Headers: headers, Rows: rows}
}

// EnsureColumn appends the named column (with empty cells) if absent.
func (t *Table) EnsureColumn(name string) {
	if t.HasColumn(name) {
		return
	}
	t.Headers = append(t.Headers, name)
}

// Head returns a table with at most n leading rows, in current order.
// A non-positive n returns the table unchanged.
func (t *Table) Head(n int) *Table {
	if n <= 0 || n >= len(t.Rows) {
		return t
	}
	return &Table{Headers: t.Headers, Rows: t.Rows[:n]}
}

// Project returns a table containing only the requested columns that
// actually exist, in the requested order. Unknown column names are
// silently dropped; projecting onto nothing returns the table unchanged.
func (t *Table) Project(columns []string) *Table {
	if len(columns) == 0 {
		return t
	}

	present := make([]string, 0, len(columns))
	for _, c := range columns {
		if t.HasColumn(c) {
			present = append(present, c)
		}
	}
	if len(present) == 0 {
		return t
	}

	rows := make([]Row, len(t.Rows))
	for i, row := range t.Rows {
		projected := make(Row, len(present))
		for _, c := range present {
			projected[c] = row[c]
		}
		rows[i] = projected
	}
	return &Table{Headers: present, Rows: rows}
}

// Filter returns the rows for which keep returns true, preserving order.
func (t *Table) Filter(keep func(Row) bool) *Table {
	rows := make([]Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		if keep(row) {
			rows = append(rows, row)
		}
	}
	return &Table{Headers: t.Headers, Rows: rows}
}
