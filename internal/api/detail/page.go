package detail

import (
	"context"

	"github.com/cuongbtq/wallpaper-gallery/internal/api/domain"
	"golang.org/x/sync/singleflight"
)

// RenderFunc draws a found wallpaper page
type RenderFunc func(primary, secondary *domain.Wallpaper, alternatives []domain.Wallpaper) error

// Page serves the body and the head of the detail page. Each performs its
// own lookup. A Page is shared by the whole process and coalesces lookups by
// the raw id string: concurrent lookups of the same id, from one request or
// from different ones, share a single resolution. Nothing is kept once it
// returns, so a later lookup queries the store again.
type Page struct {
	resolver *Resolver
	group    singleflight.Group
}

func NewPage(resolver *Resolver) *Page {
	return &Page{resolver: resolver}
}

// Detail resolves the page body. Callers must treat the result as read-only,
// it may be shared with a concurrent caller.
func (p *Page) Detail(ctx context.Context, imageID string) Detail {
	v, _, _ := p.group.Do(imageID, func() (interface{}, error) {
		// one caller going away must not degrade the result for the others
		return p.resolver.Resolve(context.WithoutCancel(ctx), imageID), nil
	})
	return v.(Detail)
}

// Metadata resolves the page head
func (p *Page) Metadata(ctx context.Context, imageID string) Metadata {
	return BuildPageMetadata(imageID, p.Detail(ctx, imageID).Primary)
}

// RenderPage short-circuits to ErrWallpaperNotFound before render is
// called when the bundle has no primary wallpaper.
func RenderPage(d Detail, render RenderFunc) error {
	if !d.Found() {
		return domain.ErrWallpaperNotFound
	}
	return render(d.Primary, d.Secondary, d.Alternatives)
}
