package ui

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"

	"contactdesk/internal/dataset"

	"github.com/gin-gonic/gin"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// Server is the web front end: one page per dataset, HTMX fragments for
// filter interactions, CSV export and email extraction endpoints.
type Server struct {
	router    *gin.Engine
	cache     *dataset.Cache
	templates *template.Template
}

// NewServer creates the web server over a populated sheet cache.
func NewServer(cache *dataset.Cache) (*Server, error) {
	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"kfmt": func(v float64) string {
			if v >= 1000 {
				return fmt.Sprintf("%.0fk", v/1000)
			}
			return fmt.Sprintf("%.0f", v)
		},
		"upper": strings.ToUpper,
		"contains": func(s, substr string) bool {
			return strings.Contains(s, substr)
		},
	}

	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html", "templates/fragments/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		router:    gin.Default(),
		cache:     cache,
		templates: templates,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s, nil
}

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() {
	s.router.Use(requestID())

	staticFS, err := fs.Sub(embeddedFiles, "static")
	if err != nil {
		log.Printf("[setupMiddleware] Error creating static filesystem: %v", err)
		return
	}
	s.router.StaticFS("/static", http.FS(staticFS))
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/datasets/:id", s.handleDataset)

	// HTMX fragment re-rendering the filtered table
	s.router.GET("/datasets/:id/table", s.handleTableFragment)

	// Export of the current filtered view
	s.router.GET("/datasets/:id/export.csv", s.handleExportCSV)

	// JSON API
	s.router.GET("/api/datasets", s.handleCatalog)
	s.router.GET("/api/datasets/:id/emails", s.handleEmails)
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	log.Printf("Starting contactdesk UI on http://%s", addr)
	return s.router.Run(addr)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// renderTemplate writes a template response, failing the request on error.
func (s *Server) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(c.Writer, templateName, data); err != nil {
		log.Printf("Template error: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

// isHTMX reports whether the request came from an HTMX interaction.
func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}
