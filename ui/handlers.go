package ui

import (
	"fmt"
	"log"
	"net/http"

	"contactdesk/internal/catalog"
	"contactdesk/internal/dataset"
	"contactdesk/internal/errors"

	"github.com/gin-gonic/gin"
)

// handleIndex redirects to the default dataset page.
func (s *Server) handleIndex(c *gin.Context) {
	c.Redirect(http.StatusFound, "/datasets/"+catalog.DefaultSheet())
}

// handleDataset renders one dataset's full page: selector sidebar, filter
// panel, filtered table, emails, export link and draft messages.
func (s *Server) handleDataset(c *gin.Context) {
	sheet := c.Param("id")
	view, err := s.buildDatasetView(c, sheet)
	if err != nil {
		c.String(http.StatusNotFound, "Unknown dataset: %s", sheet)
		return
	}
	s.renderTemplate(c, "dataset.html", view)
}

// handleTableFragment re-renders the filter results for HTMX interactions.
func (s *Server) handleTableFragment(c *gin.Context) {
	sheet := c.Param("id")
	view, err := s.buildDatasetView(c, sheet)
	if err != nil {
		c.String(http.StatusNotFound, "Unknown dataset: %s", sheet)
		return
	}
	s.renderTemplate(c, "table.html", view)
}

// handleExportCSV streams the current filtered view as a CSV attachment.
func (s *Server) handleExportCSV(c *gin.Context) {
	sheet := c.Param("id")

	projected, err := s.projectedView(c, sheet)
	if err != nil {
		status := http.StatusNotFound
		if errors.HasCode(err, errors.CodeFileNotFound) {
			status = http.StatusServiceUnavailable
		}
		log.Printf("[Export] Failed to build view for %s: %v", sheet, err)
		c.String(status, "%v", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", dataset.ExportFilename))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)

	if err := dataset.WriteCSV(c.Writer, projected); err != nil {
		log.Printf("[Export] Failed to stream CSV for %s: %v", sheet, err)
	}
}

// handleEmails returns the distinct emails for the current filtered view.
func (s *Server) handleEmails(c *gin.Context) {
	sheet := c.Param("id")
	ds, ok := catalog.Lookup(sheet)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown dataset: " + sheet})
		return
	}

	raw, err := s.cache.Sheet(sheet)
	if err != nil {
		log.Printf("[API] Failed to load sheet %s: %v", sheet, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	normalized := dataset.Normalize(sheet, raw)
	filtered := dataset.Apply(normalized, ds, parseCriteria(c, ds))
	emails := dataset.ExtractEmails(filtered, ds.EmailColumns)

	c.JSON(http.StatusOK, gin.H{
		"dataset": sheet,
		"emails":  emails,
		"count":   len(emails),
	})
}

// handleCatalog lists the configured datasets.
func (s *Server) handleCatalog(c *gin.Context) {
	type entry struct {
		Sheet       string   `json:"sheet"`
		DisplayName string   `json:"display_name"`
		Description string   `json:"description"`
		Filters     []string `json:"filters,omitempty"`
		EmailCols   []string `json:"email_columns,omitempty"`
	}

	var entries []entry
	for _, sheet := range catalog.Sheets() {
		ds, ok := catalog.Lookup(sheet)
		if !ok {
			continue
		}
		entries = append(entries, entry{
			Sheet:       ds.Sheet,
			DisplayName: ds.DisplayName,
			Description: ds.Description,
			Filters:     ds.FilterColumns,
			EmailCols:   ds.EmailColumns,
		})
	}

	c.JSON(http.StatusOK, gin.H{"datasets": entries, "count": len(entries)})
}
