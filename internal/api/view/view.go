// Package view holds the HTML templates of the gallery pages.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/cuongbtq/wallpaper-gallery/internal/api/detail"
	"github.com/cuongbtq/wallpaper-gallery/internal/api/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Template names
const (
	WallpaperPage = "wallpaper.html"
	NotFoundPage  = "not_found.html"
)

// PageData is the input of WallpaperPage and NotFoundPage. NotFoundPage only reads Meta.
type PageData struct {
	Meta         detail.Metadata
	Primary      *domain.Wallpaper
	Secondary    *domain.Wallpaper
	Alternatives []domain.Wallpaper
}

// Load parses the embedded templates
func Load() (*template.Template, error) {
	tmpl, err := template.New("").
		Funcs(template.FuncMap{
			"isoTime": func(t time.Time) string { return t.UTC().Format(time.RFC3339) },
		}).
		ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return tmpl, nil
}
