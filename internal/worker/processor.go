package worker

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/cuongbtq/wallpaper-gallery/internal/worker/domain"
)

// processTask validates a generation and stores its images
func (w *Worker) processTask(ctx context.Context, task *domain.Task) error {
	msg := task.Message

	w.logger.Info("Processing generation",
		slog.String("job_id", msg.JobID),
		slog.Int("images", len(msg.Images)),
		slog.String("worker_id", w.workerID),
	)

	if err := validateImages(msg.Images); err != nil {
		return err
	}

	createdAt := task.Delivery.Timestamp
	if createdAt.IsZero() {
		createdAt = w.now()
	}

	gen := &domain.Generation{
		JobID:     msg.JobID,
		Prompt:    strings.TrimSpace(msg.Prompt),
		Images:    msg.Images,
		CreatedAt: createdAt.UTC(),
	}

	jobCtx := ctx
	if w.jobTimeout > 0 {
		var cancel context.CancelFunc
		jobCtx, cancel = context.WithTimeout(ctx, w.jobTimeout)
		defer cancel()
	}

	inserted, err := w.storage.InsertGeneration(jobCtx, gen)
	if err != nil {
		return domain.Transient("store generation", err)
	}

	w.logger.Info("Generation processed",
		slog.String("job_id", msg.JobID),
		slog.Int64("inserted", inserted),
	)

	return nil
}

// validateImages requires exactly one desktop variant, at most one mobile
// variant and absolute http(s) URLs.
func validateImages(images []domain.GeneratedImage) error {
	if len(images) == 0 {
		return fmt.Errorf("%w: no images", domain.ErrInvalidPayload)
	}

	seen := make(map[string]bool, len(images))
	for _, img := range images {
		switch img.Device {
		case domain.DeviceDesktop, domain.DeviceMobile:
		default:
			return fmt.Errorf("%w: unknown device %q", domain.ErrInvalidPayload, img.Device)
		}

		if seen[img.Device] {
			return fmt.Errorf("%w: duplicate %s image", domain.ErrInvalidPayload, img.Device)
		}
		seen[img.Device] = true

		u, err := url.Parse(img.ImageURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: invalid %s image url %q", domain.ErrInvalidPayload, img.Device, img.ImageURL)
		}
	}

	if !seen[domain.DeviceDesktop] {
		return fmt.Errorf("%w: desktop image is required", domain.ErrInvalidPayload)
	}

	return nil
}
