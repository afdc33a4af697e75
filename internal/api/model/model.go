package model

import (
	"database/sql"
	"time"

	"github.com/cuongbtq/wallpaper-gallery/internal/api/domain"
)

// Wallpaper is a row of the images table
type Wallpaper struct {
	ID        int64          `db:"id"`
	ImageURL  string         `db:"image_url"`
	Prompt    string         `db:"prompt"`
	CreatedAt time.Time      `db:"created_at"`
	JobID     sql.NullString `db:"job_id"`
	Device    sql.NullString `db:"device"`
}

// ToDomain converts the row, collapsing NULLs to empty strings
func (w *Wallpaper) ToDomain() *domain.Wallpaper {
	return &domain.Wallpaper{
		ID:        w.ID,
		ImageURL:  w.ImageURL,
		Prompt:    w.Prompt,
		CreatedAt: w.CreatedAt,
		JobID:     w.JobID.String,
		Device:    w.Device.String,
	}
}
