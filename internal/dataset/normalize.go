package dataset

import (
	"regexp"
	"strconv"
	"strings"

	"contactdesk/domain/table"
	"contactdesk/internal/catalog"
)

// A normalizer cleans one sheet's quirks in place: numeric-looking text
// columns, handle/URL derivation. Every rule is idempotent, so running a
// normalizer on already-normalized data is a no-op.
type normalizer func(*table.Table)

var normalizers = map[string]normalizer{
	catalog.InstagramTop1000: normalizeInstagram,
	catalog.TikTokTop100:     normalizeTikTok,
	catalog.XTop200:          normalizeX,
}

// xProfilePattern extracts the handle from an x.com profile URL. Alternate
// domains and protocol-relative URLs are left unmatched on purpose.
var xProfilePattern = regexp.MustCompile(`^https?://(?:www\.)?x\.com/([^/?#]+)`)

// Normalize applies the per-sheet cleanup rules to a raw sheet and returns
// a new table; the input is never mutated. Sheets without configured rules
// pass through (minus configured de-duplication) unchanged.
func Normalize(sheet string, raw *table.Table) *table.Table {
	t := raw.Clone()

	if ds, ok := catalog.Lookup(sheet); ok && len(ds.DedupeKeys) > 0 {
		t = dedupe(t, ds.DedupeKeys)
	}

	if fn, ok := normalizers[sheet]; ok {
		fn(t)
	}
	return t
}

func normalizeInstagram(t *table.Table) {
	for _, col := range []string{"Followers", "Avg_Engagement", "Authentic_Engagement"} {
		cleanNumericColumn(t, col)
	}
}

func normalizeTikTok(t *table.Table) {
	t.EnsureColumn("TikTok_URL")
	trimColumn(t, "TikTok_URL")

	if t.HasColumn("TikTok_Handle") {
		stripHandleColumn(t, "TikTok_Handle")
		for _, row := range t.Rows {
			if isMissing(row["TikTok_URL"]) {
				row["TikTok_URL"] = "https://www.tiktok.com/@" + row["TikTok_Handle"]
			}
		}
	}

	cleanNumericColumn(t, "Followers")
}

func normalizeX(t *table.Table) {
	t.EnsureColumn("X_Handle")
	t.EnsureColumn("X_URL")
	stripHandleColumn(t, "X_Handle")
	trimColumn(t, "X_URL")

	// Derivations run after the raw cleanup: handle from a recognized
	// profile URL first, then URL from the handle.
	for _, row := range t.Rows {
		if isMissing(row["X_Handle"]) {
			row["X_Handle"] = extractXHandle(row["X_URL"])
		}
	}
	for _, row := range t.Rows {
		if isMissing(row["X_URL"]) {
			row["X_URL"] = "https://x.com/" + row["X_Handle"]
		}
	}

	cleanNumericColumn(t, "Followers")
}

// extractXHandle pulls the handle out of an x.com profile URL, or returns
// an empty string when the URL doesn't match the known pattern.
func extractXHandle(url string) string {
	m := xProfilePattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}

// cleanNumericColumn strips thousands separators and spaces from a
// numeric-as-text column and re-renders parseable values canonically.
// Unparseable cells become the missing marker, never an error.
func cleanNumericColumn(t *table.Table, column string) {
	if !t.HasColumn(column) {
		return
	}
	for _, row := range t.Rows {
		cleaned := strings.NewReplacer(",", "", " ", "").Replace(row[column])
		v, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			row[column] = ""
			continue
		}
		row[column] = strconv.FormatFloat(v, 'f', -1, 64)
	}
}

// stripHandleColumn trims whitespace and removes a single leading "@".
func stripHandleColumn(t *table.Table, column string) {
	if !t.HasColumn(column) {
		return
	}
	for _, row := range t.Rows {
		row[column] = strings.TrimPrefix(strings.TrimSpace(row[column]), "@")
	}
}

func trimColumn(t *table.Table, column string) {
	if !t.HasColumn(column) {
		return
	}
	for _, row := range t.Rows {
		row[column] = strings.TrimSpace(row[column])
	}
}

// isMissing reports whether a cell holds no usable value. "nan" shows up
// in sheets exported from tooling that renders missing cells literally.
func isMissing(v string) bool {
	return v == "" || strings.EqualFold(v, "nan")
}

// dedupe drops rows sharing the same values in the key columns, keeping
// the first occurrence in source order.
func dedupe(t *table.Table, keys []string) *table.Table {
	seen := make(map[string]bool, len(t.Rows))
	return t.Filter(func(row table.Row) bool {
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = row[k]
		}
		key := strings.Join(parts, "\x1f")
		if seen[key] {
			return false
		}
		seen[key] = true
		return true
	})
}
