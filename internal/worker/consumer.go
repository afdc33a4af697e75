package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/cuongbtq/wallpaper-gallery/internal/worker/domain"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// setupConsumer starts consuming with the configured prefetch
func (w *Worker) setupConsumer() (<-chan amqp.Delivery, error) {
	// Unique consumer tag per worker process
	consumerTag := w.workerID

	deliveries, err := w.source.Consume(consumerTag, w.prefetchCount)
	if err != nil {
		return nil, fmt.Errorf("failed to start consuming: %w", err)
	}

	w.logger.Info("RabbitMQ consumer started",
		slog.String("consumer_tag", consumerTag),
		slog.String("queue", w.queueName),
		slog.Int("prefetch_count", w.prefetchCount),
	)

	return deliveries, nil
}

// startMessageDispatcher decodes deliveries and hands them to the pool.
// It returns domain.ErrDeliveriesClosed when the broker closes the channel
// and nil on shutdown.
func (w *Worker) startMessageDispatcher(ctx context.Context, deliveries <-chan amqp.Delivery) error {
	w.logger.Info("Message dispatcher started",
		slog.String("worker_id", w.workerID),
	)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Message dispatcher stopped - context canceled")
			return nil

		case <-w.stopChan:
			w.logger.Info("Message dispatcher stopped - stopChan closed")
			return nil

		case delivery, ok := <-deliveries:
			if !ok {
				w.logger.Warn("RabbitMQ delivery channel closed")
				return domain.ErrDeliveriesClosed
			}

			msg, err := decodeMessage(delivery.Body)
			if err != nil {
				w.logger.Error("Rejecting undecodable message",
					slog.Uint64("delivery_tag", delivery.DeliveryTag),
					slog.String("error", err.Error()),
					slog.String("body", string(delivery.Body)),
				)
				// Malformed messages go to the dead letter exchange, if any
				if nackErr := delivery.Nack(false, false); nackErr != nil {
					w.logger.Error("Failed to NACK malformed message",
						slog.String("error", nackErr.Error()),
					)
				}
				continue
			}

			task := &domain.Task{Message: *msg, Delivery: delivery}

			select {
			case w.jobsChan <- task:
				w.logger.Debug("Generation dispatched to worker pool",
					slog.String("job_id", msg.JobID),
					slog.Uint64("delivery_tag", delivery.DeliveryTag),
					slog.Bool("redelivered", delivery.Redelivered),
				)
			case <-ctx.Done():
				w.requeueOnShutdown(task)
				return nil
			case <-w.stopChan:
				w.requeueOnShutdown(task)
				return nil
			}
		}
	}
}

func (w *Worker) requeueOnShutdown(task *domain.Task) {
	w.logger.Info("Message dispatcher stopped while dispatching",
		slog.String("job_id", task.Message.JobID),
	)
	if err := task.Delivery.Nack(false, true); err != nil {
		w.logger.Error("Failed to NACK message on shutdown",
			slog.String("error", err.Error()),
		)
	}
}

// decodeMessage parses the envelope and checks the job id
func decodeMessage(body []byte) (*domain.GenerationMessage, error) {
	var msg domain.GenerationMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}

	if _, err := uuid.Parse(msg.JobID); err != nil {
		return nil, fmt.Errorf("%w: job_id %q is not a UUID", domain.ErrInvalidPayload, msg.JobID)
	}

	return &msg, nil
}
