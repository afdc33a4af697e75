package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cuongbtq/wallpaper-gallery/internal/worker/domain"
)

// startWorkers launches the goroutines that drain jobsChan
func (w *Worker) startWorkers(ctx context.Context) {
	w.logger.Info("Spawning worker pool",
		slog.Int("concurrency", w.concurrency),
		slog.String("worker_id", w.workerID),
	)

	w.wg.Add(w.concurrency)
	for n := range w.concurrency {
		go func() {
			defer w.wg.Done()
			w.runWorker(ctx, fmt.Sprintf("%s-%d", w.workerID, n))
		}()
	}
}

func (w *Worker) runWorker(ctx context.Context, name string) {
	log := w.logger.With(slog.String("worker_name", name))
	log.Debug("Worker goroutine started")

	for {
		task, reason := w.nextTask(ctx)
		if task == nil {
			log.Debug("Worker goroutine exiting", slog.String("reason", reason))
			return
		}
		w.settle(log, task, w.processTask(ctx, task))
	}
}

// nextTask blocks for the next task. A nil task comes with the reason the
// worker has to exit.
func (w *Worker) nextTask(ctx context.Context) (*domain.Task, string) {
	select {
	case <-w.stopChan:
		return nil, "stopped"
	case <-ctx.Done():
		return nil, "context canceled"
	case task, ok := <-w.jobsChan:
		if !ok {
			return nil, "dispatcher finished"
		}
		return task, ""
	}
}

// settle acks a stored generation. Failures are nacked, and requeued only
// when domain.ShouldRequeue says the next attempt may succeed.
func (w *Worker) settle(log *slog.Logger, task *domain.Task, err error) {
	log = log.With(slog.String("job_id", task.Message.JobID))

	if err == nil {
		if ackErr := task.Delivery.Ack(false); ackErr != nil {
			log.Error("Failed to ACK message", slog.Any("error", ackErr))
		}
		return
	}

	requeue := domain.ShouldRequeue(err)
	log.Error("Generation processing failed",
		slog.Bool("requeue", requeue),
		slog.Any("error", err),
	)

	if nackErr := task.Delivery.Nack(false, requeue); nackErr != nil {
		log.Error("Failed to NACK message", slog.Any("error", nackErr))
	}
}
