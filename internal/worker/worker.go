package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cuongbtq/wallpaper-gallery/internal/worker/domain"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Storage persists validated generations
type Storage interface {
	InsertGeneration(ctx context.Context, gen *domain.Generation) (int64, error)
}

// Source delivers generation messages from the broker
type Source interface {
	Consume(consumerTag string, prefetchCount int) (<-chan amqp.Delivery, error)
}

// Config holds worker configuration
type Config struct {
	Logger        *slog.Logger
	Storage       Storage
	Source        Source
	Concurrency   int
	PrefetchCount int
	JobTimeout    time.Duration
	QueueName     string
}

// Worker consumes generation results and stores them as images
type Worker struct {
	logger        *slog.Logger
	storage       Storage
	source        Source
	concurrency   int
	prefetchCount int
	jobTimeout    time.Duration
	queueName     string
	workerID      string
	now           func() time.Time

	jobsChan chan *domain.Task
	wg       sync.WaitGroup
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewWorker creates a new worker instance
func NewWorker(cfg *Config) *Worker {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	return &Worker{
		logger:        cfg.Logger,
		storage:       cfg.Storage,
		source:        cfg.Source,
		concurrency:   concurrency,
		prefetchCount: cfg.PrefetchCount,
		jobTimeout:    cfg.JobTimeout,
		queueName:     cfg.QueueName,
		workerID:      uuid.New().String(),
		now:           time.Now,
		jobsChan:      make(chan *domain.Task),
		stopChan:      make(chan struct{}),
	}
}

// Start consumes messages until the context is canceled, Stop is called or
// the broker closes the delivery channel. In-flight messages are settled
// before it returns.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("Starting worker",
		slog.String("worker_id", w.workerID),
		slog.Int("concurrency", w.concurrency),
		slog.Duration("job_timeout", w.jobTimeout),
	)

	deliveries, err := w.setupConsumer()
	if err != nil {
		return err
	}

	w.startWorkers(ctx)

	err = w.startMessageDispatcher(ctx, deliveries)

	close(w.jobsChan)
	w.wg.Wait()

	w.logger.Info("Worker drained", slog.String("worker_id", w.workerID))
	return err
}

// Stop gracefully stops the worker
func (w *Worker) Stop() {
	w.logger.Info("Stopping worker...")
	w.stopOnce.Do(func() { close(w.stopChan) })
	w.wg.Wait()
	w.logger.Info("Worker stopped")
}
