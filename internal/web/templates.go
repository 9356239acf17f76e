package web

import (
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/onboard/app/internal/form"
	"github.com/onboard/app/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// PlaceholderAvatar substitutes for a missing or broken profile photo.
const PlaceholderAvatar = "https://placehold.co/128x128/E0E0E0/BDBDBD?text=A"

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the named page. A template fault after headers are sent can
// only be logged.
func (r *Renderer) Render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("[Render] template=%s error=%v", name, err)
	}
}

type LoginView struct {
	Error          string
	GoogleClientID string
}

type RegisterView struct {
	Error string
}

type SetupView struct {
	Draft *form.Draft
	Error string
}

// ProgressPercent maps the current step onto the 0/50/100 progress bar.
func (v SetupView) ProgressPercent() int {
	return (v.Draft.Step.Index() - 1) * 50
}

type DashboardView struct {
	Profile    *models.Profile
	Flash      string
	LoadFailed bool
}

// PhotoURL returns the profile photo, or the placeholder when unset.
func (v DashboardView) PhotoURL() string {
	if v.Profile != nil && v.Profile.PhotoURL != "" {
		return v.Profile.PhotoURL
	}
	return PlaceholderAvatar
}

// Placeholder exposes the fallback image to templates for onerror swaps.
func (v DashboardView) Placeholder() string {
	return PlaceholderAvatar
}
