package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/cuongbtq/wallpaper-gallery/internal/api/detail"
	"github.com/cuongbtq/wallpaper-gallery/internal/api/domain"
	"github.com/cuongbtq/wallpaper-gallery/internal/api/dto"
	"github.com/cuongbtq/wallpaper-gallery/internal/api/view"
	"github.com/gin-gonic/gin"
)

// ShowPage handles GET /images/:imageId
// Renders the wallpaper detail page, or the not-found page
func (h *WallpaperHandler) ShowPage(c *gin.Context) {
	imageID := c.Param("imageId")

	h.logger.Info("ShowPage called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("image_id", imageID),
	)

	// head and body are resolved side by side, each with its own lookup.
	// Neither can fail: lookup errors only shrink the bundle.
	var (
		meta   detail.Metadata
		bundle detail.Detail
		wg     sync.WaitGroup
	)
	ctx := c.Request.Context()
	wg.Add(2)
	go func() {
		defer wg.Done()
		meta = h.page.Metadata(ctx, imageID)
	}()
	go func() {
		defer wg.Done()
		bundle = h.page.Detail(ctx, imageID)
	}()
	wg.Wait()

	err := detail.RenderPage(bundle, func(primary, secondary *domain.Wallpaper, alternatives []domain.Wallpaper) error {
		c.HTML(http.StatusOK, view.WallpaperPage, view.PageData{
			Meta:         meta,
			Primary:      primary,
			Secondary:    secondary,
			Alternatives: alternatives,
		})
		return nil
	})
	if errors.Is(err, domain.ErrWallpaperNotFound) {
		c.HTML(http.StatusNotFound, view.NotFoundPage, view.PageData{Meta: meta})
	}
}

// GetWallpaper handles GET /api/v1/wallpapers/:imageId
// Returns the detail bundle as JSON
func (h *WallpaperHandler) GetWallpaper(c *gin.Context) {
	imageID := c.Param("imageId")

	h.logger.Info("GetWallpaper called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("image_id", imageID),
	)

	bundle := h.page.Detail(c.Request.Context(), imageID)

	err := detail.RenderPage(bundle, func(primary, secondary *domain.Wallpaper, alternatives []domain.Wallpaper) error {
		c.JSON(http.StatusOK, dto.NewWallpaperDetailResponse(primary, secondary, alternatives))
		return nil
	})
	if errors.Is(err, domain.ErrWallpaperNotFound) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Wallpaper not found"})
	}
}

// GetMetadata handles GET /api/v1/wallpapers/:imageId/metadata
// Always succeeds; an unknown id only loses the preview image
func (h *WallpaperHandler) GetMetadata(c *gin.Context) {
	imageID := c.Param("imageId")

	h.logger.Info("GetMetadata called",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("image_id", imageID),
	)

	c.JSON(http.StatusOK, h.page.Metadata(c.Request.Context(), imageID))
}
