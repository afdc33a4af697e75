package detail

import (
	"github.com/cuongbtq/wallpaper-gallery/internal/api/domain"
)

const (
	pageDescription = "Browse free wallpapers generated by AI, powered by Leap"
	creatorName     = "Leap"
	creatorURL      = "https://tryleap.ai"
)

// Author is an attribution entry
type Author struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// OpenGraph carries the link-preview image
type OpenGraph struct {
	Images []string `json:"images"`
}

// Robots controls search engine indexing
type Robots struct {
	Index bool `json:"index"`
}

// Metadata describes the page head. A nil OpenGraph is encoded as null,
// which tells the page to emit no preview tags.
type Metadata struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Creator     string     `json:"creator"`
	Authors     []Author   `json:"authors"`
	OpenGraph   *OpenGraph `json:"openGraph"`
	Robots      Robots     `json:"robots"`
}

// BuildPageMetadata never fails; a missing primary only drops the preview image.
func BuildPageMetadata(imageID string, primary *domain.Wallpaper) Metadata {
	md := Metadata{
		Title:       "Wallpaper #" + imageID + " | Generated by AI",
		Description: pageDescription,
		Creator:     creatorName,
		Authors:     []Author{{Name: creatorName, URL: creatorURL}},
		Robots:      Robots{Index: true},
	}

	if primary != nil && primary.ImageURL != "" {
		md.OpenGraph = &OpenGraph{Images: []string{primary.ImageURL}}
	}

	return md
}
