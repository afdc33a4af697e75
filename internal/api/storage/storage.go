package storage

import (
	"context"
	"fmt"

	"github.com/cuongbtq/wallpaper-gallery/internal/api/domain"
	"github.com/cuongbtq/wallpaper-gallery/internal/api/model"
	"github.com/cuongbtq/wallpaper-gallery/shared/database"
	"github.com/jmoiron/sqlx"
)

const wallpaperColumns = `id, image_url, prompt, created_at, job_id, device`

// Storage runs the read-only wallpaper queries. Queries are written with
// '?' placeholders and rebound for the active driver.
type Storage struct {
	db *sqlx.DB
}

func NewStorage(client *database.Client) *Storage {
	return &Storage{
		db: client.GetDB(),
	}
}

// GetDesktopWallpaper returns the desktop (or legacy, device-less) record with the given id
func (s *Storage) GetDesktopWallpaper(ctx context.Context, id int64) (*domain.Wallpaper, error) {
	query := s.db.Rebind(`
		SELECT ` + wallpaperColumns + `
		FROM images
		WHERE (device = ? OR device IS NULL)
		  AND id = ?
		LIMIT 2
	`)

	var rows []model.Wallpaper
	if err := s.db.SelectContext(ctx, &rows, query, domain.DeviceDesktop, id); err != nil {
		return nil, fmt.Errorf("failed to get wallpaper %d: %w", id, err)
	}

	return single(rows)
}

// ListAlternatives returns up to limit desktop records other than excludeID, newest id first
func (s *Storage) ListAlternatives(ctx context.Context, excludeID int64, limit int) ([]domain.Wallpaper, error) {
	query := s.db.Rebind(`
		SELECT ` + wallpaperColumns + `
		FROM images
		WHERE (device = ? OR device IS NULL)
		  AND id <> ?
		ORDER BY id DESC
		LIMIT ?
	`)

	var rows []model.Wallpaper
	if err := s.db.SelectContext(ctx, &rows, query, domain.DeviceDesktop, excludeID, limit); err != nil {
		return nil, fmt.Errorf("failed to list alternatives: %w", err)
	}

	wallpapers := make([]domain.Wallpaper, len(rows))
	for i := range rows {
		wallpapers[i] = *rows[i].ToDomain()
	}

	return wallpapers, nil
}

// GetMobileVariant returns the mobile record produced by the given generation job
func (s *Storage) GetMobileVariant(ctx context.Context, jobID string) (*domain.Wallpaper, error) {
	query := s.db.Rebind(`
		SELECT ` + wallpaperColumns + `
		FROM images
		WHERE device = ?
		  AND job_id = ?
		LIMIT 2
	`)

	var rows []model.Wallpaper
	if err := s.db.SelectContext(ctx, &rows, query, domain.DeviceMobile, jobID); err != nil {
		return nil, fmt.Errorf("failed to get mobile variant of job %s: %w", jobID, err)
	}

	return single(rows)
}

// single mirrors a "fetch exactly one row" contract
func single(rows []model.Wallpaper) (*domain.Wallpaper, error) {
	switch len(rows) {
	case 0:
		return nil, domain.ErrWallpaperNotFound
	case 1:
		return rows[0].ToDomain(), nil
	default:
		return nil, fmt.Errorf("%w: got %d", domain.ErrAmbiguousResult, len(rows))
	}
}
