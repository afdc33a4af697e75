package handler

import (
	"context"
	"log/slog"

	"github.com/cuongbtq/wallpaper-gallery/internal/api/detail"
)

// HealthChecker is satisfied by *database.Client
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger  *slog.Logger
	Page    *detail.Page
	Health  HealthChecker
	Service string
}

// WallpaperHandler handles wallpaper page and API requests
type WallpaperHandler struct {
	logger *slog.Logger
	page   *detail.Page
}

// NewWallpaperHandler creates a new WallpaperHandler instance
func NewWallpaperHandler(deps *Dependencies) *WallpaperHandler {
	return &WallpaperHandler{
		logger: deps.Logger,
		page:   deps.Page,
	}
}

// HealthHandler reports datastore reachability
type HealthHandler struct {
	logger  *slog.Logger
	health  HealthChecker
	service string
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(deps *Dependencies) *HealthHandler {
	return &HealthHandler{
		logger:  deps.Logger,
		health:  deps.Health,
		service: deps.Service,
	}
}
