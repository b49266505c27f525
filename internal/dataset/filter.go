package dataset

import (
	"sort"
	"strconv"
	"strings"

	"contactdesk/domain/table"
	"contactdesk/internal/catalog"
)

// FilterAll is the sentinel select choice that passes every row.
const FilterAll = "All"

// FollowersColumn is the numeric column the range filter applies to.
const FollowersColumn = "Followers"

// FollowerRange is an inclusive bound on the followers count. Missing
// values compare as zero.
type FollowerRange struct {
	Min float64
	Max float64
}

// Criteria carries one interaction's worth of user-supplied filters. Zero
// values mean "no filtering" throughout.
type Criteria struct {
	// Selections maps a configured filter column to the chosen value.
	// Empty or FilterAll passes all rows for that column.
	Selections map[string]string

	// Keyword is matched case-insensitively against every column.
	Keyword string

	// Range bounds the followers count when non-nil.
	Range *FollowerRange

	// Limit caps the result to the first N rows when positive.
	Limit int
}

// FilterOptions returns the sorted distinct non-empty values of a column,
// or nil when the column is absent or holds no values. A nil result means
// the filter is not offered for this dataset.
func FilterOptions(t *table.Table, column string) []string {
	if !t.HasColumn(column) {
		return nil
	}

	set := make(map[string]bool)
	for _, row := range t.Rows {
		v := strings.TrimSpace(row[column])
		if v != "" {
			set[v] = true
		}
	}
	if len(set) == 0 {
		return nil
	}

	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Apply reduces the normalized table by the criteria: configured
// categorical filters, then keyword search, then the follower range, then
// the row cap. All criteria AND together; row order is preserved.
func Apply(t *table.Table, ds catalog.Dataset, c Criteria) *table.Table {
	for _, column := range ds.FilterColumns {
		choice, ok := c.Selections[column]
		if !ok || choice == "" || choice == FilterAll {
			continue
		}
		if !t.HasColumn(column) {
			continue
		}
		t = t.Filter(func(row table.Row) bool {
			return strings.TrimSpace(row[column]) == choice
		})
	}

	if keyword := strings.TrimSpace(c.Keyword); keyword != "" {
		needle := strings.ToLower(keyword)
		headers := t.Headers
		t = t.Filter(func(row table.Row) bool {
			for _, h := range headers {
				if strings.Contains(strings.ToLower(row[h]), needle) {
					return true
				}
			}
			return false
		})
	}

	if c.Range != nil && t.HasColumn(FollowersColumn) {
		t = t.Filter(func(row table.Row) bool {
			v := FollowerValue(row)
			return v >= c.Range.Min && v <= c.Range.Max
		})
	}

	return t.Head(c.Limit)
}

// FollowerValue parses a row's followers count, treating missing or
// unparseable cells as zero.
func FollowerValue(row table.Row) float64 {
	v, err := strconv.ParseFloat(row[FollowersColumn], 64)
	if err != nil {
		return 0
	}
	return v
}
