// Command generation-publisher publishes a finished generation to the ingest
// exchange. It is used to backfill images produced outside the pipeline.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/cuongbtq/wallpaper-gallery/internal/config"
	"github.com/cuongbtq/wallpaper-gallery/internal/worker/domain"
	"github.com/cuongbtq/wallpaper-gallery/shared/logger"
	"github.com/cuongbtq/wallpaper-gallery/shared/rabbitmq"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or flags")
	}

	defaultConfigPath := os.Getenv("WORKER_SERVICE_CONFIG_PATH")
	if defaultConfigPath == "" {
		defaultConfigPath = "configs/worker-service/config.yaml"
	}
	configPath := flag.String("config", defaultConfigPath, "Path to configuration file")
	jobID := flag.String("job-id", "", "Generation job id (a new UUID when empty)")
	prompt := flag.String("prompt", "", "Prompt the images were generated from")
	desktopURL := flag.String("desktop", "", "Desktop image URL (required)")
	mobileURL := flag.String("mobile", "", "Mobile image URL")
	timeout := flag.Duration("timeout", 10*time.Second, "Publish timeout")
	flag.Parse()

	msg, err := buildMessage(*jobID, *prompt, *desktopURL, *mobileURL)
	if err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.ValidatePublisherConfig(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	appLogger, err := logger.New(cfg.Logging.LoggerConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer appLogger.Close()

	rabbitClient, err := rabbitmq.NewClient(cfg.RabbitMQ.PublisherClientConfig(), appLogger.Logger)
	if err != nil {
		return fmt.Errorf("failed to initialize RabbitMQ: %w", err)
	}
	defer rabbitClient.Close()

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := rabbitClient.PublishWithRetry(ctx, body, "application/json"); err != nil {
		return err
	}

	appLogger.Info("Generation published",
		slog.String("job_id", msg.JobID),
		slog.Int("images", len(msg.Images)),
	)
	return nil
}

// buildMessage assembles the ingest message from flags
func buildMessage(jobID, prompt, desktopURL, mobileURL string) (*domain.GenerationMessage, error) {
	if desktopURL == "" {
		return nil, errors.New("-desktop is required")
	}

	if jobID == "" {
		jobID = uuid.NewString()
	} else if _, err := uuid.Parse(jobID); err != nil {
		return nil, fmt.Errorf("invalid -job-id: %w", err)
	}

	msg := &domain.GenerationMessage{
		JobID:  jobID,
		Prompt: prompt,
		Images: []domain.GeneratedImage{
			{Device: domain.DeviceDesktop, ImageURL: desktopURL},
		},
	}
	if mobileURL != "" {
		msg.Images = append(msg.Images, domain.GeneratedImage{Device: domain.DeviceMobile, ImageURL: mobileURL})
	}

	return msg, nil
}
