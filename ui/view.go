package ui

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"contactdesk/domain/table"
	"contactdesk/internal/catalog"
	"contactdesk/internal/dataset"

	"github.com/gin-gonic/gin"
)

// filterParamPrefix namespaces categorical filter query parameters, e.g.
// ?f.Party=M. Column names are used verbatim after the prefix.
const filterParamPrefix = "f."

// sidebarItem is one dataset entry in the selector panel.
type sidebarItem struct {
	Sheet       string
	DisplayName string
	Active      bool
}

// sidebarGroup is one labelled category of datasets.
type sidebarGroup struct {
	Label string
	Items []sidebarItem
}

// filterView is one categorical select filter with its current choice.
type filterView struct {
	Column   string
	Param    string
	Options  []string
	Selected string
}

// cellView is one rendered table cell.
type cellView struct {
	Value string
	Link  bool
}

// draftView is a rendered outreach message template.
type draftView struct {
	Label string
	HTML  template.HTML
}

// datasetView is everything the dataset page and its table fragment need.
type datasetView struct {
	Sheet           string
	DisplayName     string
	Description     string
	Sidebar         []sidebarGroup
	EmailColumns    string
	Filters         []filterView
	Keyword         string
	Followers       dataset.FollowerSummary
	RangeQueryMin   string
	RangeQueryMax   string
	Limit           int
	Columns         []string
	LinkColumns     map[string]bool
	Rows            [][]cellView
	TotalRows       int
	FilteredRows    int
	Emails          []string
	ExportURL       string
	Drafts          []draftView
	Error           string
}

// buildSidebar renders the category groups with the active dataset marked.
func buildSidebar(active string) []sidebarGroup {
	groups := make([]sidebarGroup, 0, len(catalog.Groups))
	for _, g := range catalog.Groups {
		items := make([]sidebarItem, 0, len(g.Sheets))
		for _, sheet := range g.Sheets {
			ds, ok := catalog.Lookup(sheet)
			if !ok {
				continue
			}
			items = append(items, sidebarItem{
				Sheet:       sheet,
				DisplayName: ds.DisplayName,
				Active:      sheet == active,
			})
		}
		groups = append(groups, sidebarGroup{Label: g.Label, Items: items})
	}
	return groups
}

// parseCriteria reads one interaction's filter state from query params.
// Malformed numbers degrade to "no filtering" rather than erroring.
func parseCriteria(c *gin.Context, ds catalog.Dataset) dataset.Criteria {
	criteria := dataset.Criteria{
		Selections: make(map[string]string, len(ds.FilterColumns)),
		Keyword:    c.Query("q"),
	}

	for _, column := range ds.FilterColumns {
		if choice := c.Query(filterParamPrefix + column); choice != "" {
			criteria.Selections[column] = choice
		}
	}

	minStr, maxStr := c.Query("fmin"), c.Query("fmax")
	if minStr != "" || maxStr != "" {
		// Bounds default open; malformed numbers are ignored.
		r := dataset.FollowerRange{Min: 0, Max: maxOpenBound}
		var ok bool
		if v, err := strconv.ParseFloat(minStr, 64); err == nil {
			r.Min = v
			ok = true
		}
		if v, err := strconv.ParseFloat(maxStr, 64); err == nil {
			r.Max = v
			ok = true
		}
		if ok {
			criteria.Range = &r
		}
	}

	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		criteria.Limit = limit
	}

	return criteria
}

const maxOpenBound = 1e18

// buildDatasetView runs the full pipeline for one interaction: cached
// sheet → normalizer → filter engine → projection, plus emails and the
// follower summary the page widgets need.
func (s *Server) buildDatasetView(c *gin.Context, sheet string) (*datasetView, error) {
	ds, ok := catalog.Lookup(sheet)
	if !ok {
		return nil, fmt.Errorf("unknown dataset %q", sheet)
	}

	view := &datasetView{
		Sheet:         sheet,
		DisplayName:   ds.DisplayName,
		Description:   ds.Description,
		Sidebar:       buildSidebar(sheet),
		EmailColumns:  strings.Join(ds.EmailColumns, ", "),
		LinkColumns:   catalog.LinkColumns,
		Keyword:       c.Query("q"),
		RangeQueryMin: c.Query("fmin"),
		RangeQueryMax: c.Query("fmax"),
		Drafts:        renderDrafts(),
	}

	raw, err := s.cache.Sheet(sheet)
	if err != nil {
		// Missing file or missing sheet: unrecoverable for this request,
		// surfaced as a page-level message.
		view.Error = err.Error()
		return view, nil
	}

	normalized := dataset.Normalize(sheet, raw)
	view.TotalRows = normalized.Len()
	view.Followers = dataset.SummarizeFollowers(normalized)

	for _, column := range ds.FilterColumns {
		options := dataset.FilterOptions(normalized, column)
		if options == nil {
			continue
		}
		view.Filters = append(view.Filters, filterView{
			Column:   column,
			Param:    filterParamPrefix + column,
			Options:  options,
			Selected: c.Query(filterParamPrefix + column),
		})
	}

	criteria := parseCriteria(c, ds)
	if criteria.Limit > 0 {
		view.Limit = criteria.Limit
	}

	filtered := dataset.Apply(normalized, ds, criteria)
	view.FilteredRows = filtered.Len()
	view.Emails = dataset.ExtractEmails(filtered, ds.EmailColumns)

	projected := filtered.Project(ds.DisplayColumns)
	view.Columns = projected.Headers
	view.Rows = renderRows(projected)

	view.ExportURL = "/datasets/" + sheet + "/export.csv"
	if rawQuery := c.Request.URL.RawQuery; rawQuery != "" {
		view.ExportURL += "?" + rawQuery
	}

	return view, nil
}

// projectedView recomputes only the filtered projection, for the export
// path where the page chrome is not needed.
func (s *Server) projectedView(c *gin.Context, sheet string) (*table.Table, error) {
	ds, ok := catalog.Lookup(sheet)
	if !ok {
		return nil, fmt.Errorf("unknown dataset %q", sheet)
	}

	raw, err := s.cache.Sheet(sheet)
	if err != nil {
		return nil, err
	}

	normalized := dataset.Normalize(sheet, raw)
	filtered := dataset.Apply(normalized, ds, parseCriteria(c, ds))
	return filtered.Project(ds.DisplayColumns), nil
}

func renderRows(t *table.Table) [][]cellView {
	rows := make([][]cellView, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]cellView, len(t.Headers))
		for j, h := range t.Headers {
			cells[j] = cellView{
				Value: row[h],
				Link:  catalog.LinkColumns[h] && row[h] != "",
			}
		}
		rows[i] = cells
	}
	return rows
}

func renderDrafts() []draftView {
	drafts := make([]draftView, 0, len(catalog.DraftMessages))
	for _, m := range catalog.DraftMessages {
		drafts = append(drafts, draftView{
			Label: m.Label,
			HTML:  renderMarkdown(m.Body),
		})
	}
	return drafts
}
