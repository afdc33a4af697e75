package domain

import (
	"errors"
	"time"
)

// Device classes stored in images.device. A NULL device predates the
// desktop/mobile split and is read as desktop.
const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
)

// AlternativesLimit caps the "browse more" section
const AlternativesLimit = 12

var (
	// ErrWallpaperNotFound is returned when no desktop wallpaper matches the id
	ErrWallpaperNotFound = errors.New("wallpaper not found")

	// ErrAmbiguousResult is returned when a single-row lookup matches several rows
	ErrAmbiguousResult = errors.New("query returned more than one row")

	// ErrInvalidImageID is returned when the path id has no leading digits
	ErrInvalidImageID = errors.New("invalid image id")
)

// Wallpaper is a generated image as read by the detail page
type Wallpaper struct {
	ID        int64
	ImageURL  string
	Prompt    string
	CreatedAt time.Time
	JobID     string // empty for records older than dual-variant generation
	Device    string // empty means legacy desktop
}

// HasJob reports whether the wallpaper belongs to a multi-variant job
func (w *Wallpaper) HasJob() bool {
	return w.JobID != ""
}
