package catalog

import (
	"testing"
)

func TestGroupsCoverEveryDatasetOnce(t *testing.T) {
	seen := make(map[string]int)
	for _, g := range Groups {
		for _, sheet := range g.Sheets {
			seen[sheet]++
			if _, ok := Lookup(sheet); !ok {
				t.Errorf("group %s references unknown dataset %s", g.Label, sheet)
			}
		}
	}

	if len(seen) != 8 {
		t.Errorf("expected 8 datasets across groups, got %d", len(seen))
	}
	for sheet, n := range seen {
		if n != 1 {
			t.Errorf("dataset %s appears %d times in groups", sheet, n)
		}
	}
}

func TestLookup(t *testing.T) {
	ds, ok := Lookup(XTop200)
	if !ok {
		t.Fatal("expected Top_200_X to be configured")
	}
	if ds.DisplayName != "Influencers – X Top 200" {
		t.Errorf("unexpected display name %q", ds.DisplayName)
	}
	if len(ds.FilterColumns) != 1 || ds.FilterColumns[0] != "Category" {
		t.Errorf("unexpected filters %v", ds.FilterColumns)
	}

	if _, ok := Lookup("nope"); ok {
		t.Error("unknown sheet should not resolve")
	}
}

func TestDefaultSheet(t *testing.T) {
	if DefaultSheet() != EUMEPs {
		t.Errorf("default sheet should be the first of the first group, got %s", DefaultSheet())
	}
}

func TestDedupeOnlyConfiguredForInstagram(t *testing.T) {
	for _, sheet := range Sheets() {
		ds, _ := Lookup(sheet)
		if sheet == InstagramTop1000 {
			if len(ds.DedupeKeys) != 1 || ds.DedupeKeys[0] != "IG_Handle" {
				t.Errorf("Instagram should dedupe on IG_Handle, got %v", ds.DedupeKeys)
			}
			continue
		}
		if len(ds.DedupeKeys) != 0 {
			t.Errorf("dataset %s should not configure dedupe keys", sheet)
		}
	}
}

func TestDisplayColumnsConfigured(t *testing.T) {
	for _, sheet := range Sheets() {
		ds, _ := Lookup(sheet)
		if len(ds.DisplayColumns) == 0 {
			t.Errorf("dataset %s has no display columns", sheet)
		}
	}
}
