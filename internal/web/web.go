// Package web holds the embedded HTML templates of the admin pages.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"listingadmin/internal/dto"
	"listingadmin/internal/models"
	"listingadmin/internal/services/feedback"
	"listingadmin/internal/services/listing"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Template names.
const (
	LoginPage     = "login.gohtml"
	DashboardPage = "dashboard.gohtml"
	EditPage      = "edit.gohtml"
	NotFoundPage  = "notfound.gohtml"
)

type LoginData struct {
	Error string
}

type DashboardData struct {
	Listings []models.Listing
	Total    int
	Counts   []dto.StatusCount
	Filter   dto.ListingFilter
	Feedback *feedback.Message
}

type EditData struct {
	Listing models.Listing
	Car     string
	Error   string
}

type NotFoundData struct {
	Message string
}

// Renderer executes the parsed page templates.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"label": listing.Label,
	}).ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Render executes name into a buffer first so a template error can still
// become a clean 500.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
