// Package detail composes the wallpaper detail page: the requested desktop
// wallpaper, its mobile variant and a "browse more" list.
package detail

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cuongbtq/wallpaper-gallery/internal/api/domain"
)

// Store is the read side of the images table used by the resolver
type Store interface {
	GetDesktopWallpaper(ctx context.Context, id int64) (*domain.Wallpaper, error)
	ListAlternatives(ctx context.Context, excludeID int64, limit int) ([]domain.Wallpaper, error)
	GetMobileVariant(ctx context.Context, jobID string) (*domain.Wallpaper, error)
}

// Detail is the bundle handed to the renderer. A nil Primary means not found.
type Detail struct {
	Primary      *domain.Wallpaper
	Secondary    *domain.Wallpaper
	Alternatives []domain.Wallpaper
}

// Found reports whether the requested wallpaper exists
func (d Detail) Found() bool {
	return d.Primary != nil
}

// Resolver fetches a Detail. Datastore failures never escape it; they are
// logged and shrink the bundle instead.
type Resolver struct {
	store  Store
	logger *slog.Logger
}

func NewResolver(store Store, logger *slog.Logger) *Resolver {
	return &Resolver{
		store:  store,
		logger: logger,
	}
}

// Resolve runs the primary, alternatives and mobile lookups in that order
func (r *Resolver) Resolve(ctx context.Context, imageID string) Detail {
	id, err := parseLeadingInt(imageID)
	if err != nil {
		r.logger.Warn("Rejecting non-numeric image id",
			slog.String("image_id", imageID),
			slog.Any("error", err),
		)
		return Detail{}
	}

	primary, err := r.store.GetDesktopWallpaper(ctx, id)
	if err == nil && primary == nil {
		err = domain.ErrWallpaperNotFound
	}
	if err != nil {
		r.logLookupFailure(ctx, "Failed to fetch wallpaper", err, slog.Int64("image_id", id))
		return Detail{}
	}

	alternatives, err := r.store.ListAlternatives(ctx, id, domain.AlternativesLimit)
	if err != nil {
		r.logger.Error("Failed to fetch alternatives",
			slog.Int64("image_id", id),
			slog.Any("error", err),
		)
		alternatives = nil
	}

	detail := Detail{
		Primary:      primary,
		Alternatives: alternatives,
	}

	if !primary.HasJob() {
		return detail
	}

	secondary, err := r.store.GetMobileVariant(ctx, primary.JobID)
	if err == nil && secondary == nil {
		err = domain.ErrWallpaperNotFound
	}
	if err != nil {
		r.logLookupFailure(ctx, "Failed to fetch mobile variant", err,
			slog.Int64("image_id", id),
			slog.String("job_id", primary.JobID),
		)
		return detail
	}

	detail.Secondary = secondary
	return detail
}

// logLookupFailure logs a missing row at warn and anything else at error
func (r *Resolver) logLookupFailure(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	level := slog.LevelError
	if errors.Is(err, domain.ErrWallpaperNotFound) {
		level = slog.LevelWarn
	}

	args := make([]any, 0, len(attrs)+1)
	for _, a := range attrs {
		args = append(args, a)
	}
	args = append(args, slog.Any("error", err))

	r.logger.Log(ctx, level, msg, args...)
}
