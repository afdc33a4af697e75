package router

import (
	"fmt"

	"github.com/cuongbtq/wallpaper-gallery/internal/api/handler"
	"github.com/cuongbtq/wallpaper-gallery/internal/api/view"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies) (*gin.Engine, error) {
	r := gin.New()

	tmpl, err := view.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load views: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	// Middleware
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware())

	r.GET("/health", handler.NewHealthHandler(deps).Check)

	wallpaperHandler := handler.NewWallpaperHandler(deps)

	// GET /images/:imageId - Wallpaper detail page
	r.GET("/images/:imageId", wallpaperHandler.ShowPage)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		wallpapers := v1.Group("/wallpapers")
		{
			// GET /api/v1/wallpapers/:imageId - Detail bundle
			wallpapers.GET("/:imageId", wallpaperHandler.GetWallpaper)

			// GET /api/v1/wallpapers/:imageId/metadata - Page metadata
			wallpapers.GET("/:imageId/metadata", wallpaperHandler.GetMetadata)
		}
	}

	return r, nil
}
