package dto

import (
	"time"

	"github.com/cuongbtq/wallpaper-gallery/internal/api/domain"
)

// WallpaperDTO keeps the field names the gallery frontend already uses
type WallpaperDTO struct {
	ID        int64  `json:"id"`
	ImageURL  string `json:"imageUrl"`
	Prompt    string `json:"prompt"`
	CreatedAt string `json:"created_at"`
	JobID     string `json:"jobId,omitempty"`
}

type WallpaperDetailResponse struct {
	Wallpaper  WallpaperDTO   `json:"wallpaper"`
	Mobile     *WallpaperDTO  `json:"mobile,omitempty"`
	BrowseMore []WallpaperDTO `json:"browseMore"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewWallpaperDTO(w *domain.Wallpaper) WallpaperDTO {
	return WallpaperDTO{
		ID:        w.ID,
		ImageURL:  w.ImageURL,
		Prompt:    w.Prompt,
		CreatedAt: w.CreatedAt.UTC().Format(time.RFC3339),
		JobID:     w.JobID,
	}
}

func NewWallpaperDetailResponse(primary, secondary *domain.Wallpaper, alternatives []domain.Wallpaper) WallpaperDetailResponse {
	resp := WallpaperDetailResponse{
		Wallpaper:  NewWallpaperDTO(primary),
		BrowseMore: make([]WallpaperDTO, len(alternatives)),
	}

	if secondary != nil {
		mobile := NewWallpaperDTO(secondary)
		resp.Mobile = &mobile
	}

	for i := range alternatives {
		resp.BrowseMore[i] = NewWallpaperDTO(&alternatives[i])
	}

	return resp
}
