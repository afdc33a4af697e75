package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cuongbtq/wallpaper-gallery/internal/worker/domain"
	"github.com/cuongbtq/wallpaper-gallery/shared/database"
)

// Storage handles all database operations for the worker
type Storage struct {
	client *database.Client
	logger *slog.Logger
}

// NewStorage creates a new Storage instance
func NewStorage(client *database.Client, logger *slog.Logger) *Storage {
	return &Storage{
		client: client,
		logger: logger,
	}
}

// InsertGeneration stores every variant of a generation in one transaction.
// Variants already present for the job are skipped, so redelivered messages
// are harmless. It returns the number of rows actually inserted.
func (s *Storage) InsertGeneration(ctx context.Context, gen *domain.Generation) (int64, error) {
	tx, err := s.client.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	query := tx.Rebind(`
		INSERT INTO images (image_url, prompt, created_at, job_id, device)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`)

	var inserted int64
	for _, img := range gen.Images {
		result, err := tx.ExecContext(ctx, query, img.ImageURL, gen.Prompt, gen.CreatedAt, gen.JobID, img.Device)
		if err != nil {
			return 0, fmt.Errorf("failed to insert %s image: %w", img.Device, err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to get rows affected: %w", err)
		}

		if rows == 0 {
			s.logger.Warn("Image already stored for job, skipping",
				slog.String("job_id", gen.JobID),
				slog.String("device", img.Device),
			)
		}
		inserted += rows
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit generation: %w", err)
	}

	s.logger.Info("Generation stored",
		slog.String("job_id", gen.JobID),
		slog.Int64("inserted", inserted),
		slog.Int("variants", len(gen.Images)),
	)

	return inserted, nil
}
