// Package warmer pre-populates the job-detail cache. Warm requests arrive
// over RabbitMQ (from the periodic sweeper or external tooling) and a worker
// pool resolves each one against PostgreSQL, writing the result to Redis
// with the standard detail TTL. Warming is best-effort end to end: a failed
// cache write is logged, not retried.
package warmer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/openhire/jobboard-be/internal/api/model"
	"github.com/openhire/jobboard-be/internal/warmer/domain"
	"github.com/openhire/jobboard-be/shared/rabbitmq"
)

// Storage is the primary-store surface the warmer needs.
type Storage interface {
	GetDetail(ctx context.Context, jobID int) (*model.JobDetail, error)
	ListRecentJobIDs(ctx context.Context, limit int) ([]int, error)
}

// DetailWarmer writes a job detail into the cache. Implemented by
// service.Service so the warmer and the read-through miss path share one
// serialization format.
type DetailWarmer interface {
	WarmDetail(ctx context.Context, detail *model.JobDetail) error
}

// Config holds warmer configuration
type Config struct {
	Logger        *slog.Logger
	Storage       Storage
	Warm          DetailWarmer
	RabbitClient  *rabbitmq.Client
	Concurrency   int
	PrefetchCount int
	WarmTimeout   time.Duration
}

// Warmer consumes warm requests and populates the detail cache.
type Warmer struct {
	logger        *slog.Logger
	storage       Storage
	warm          DetailWarmer
	rabbitClient  *rabbitmq.Client
	concurrency   int
	prefetchCount int
	warmTimeout   time.Duration
	warmerID      string
	jobsChan      chan *domain.WarmMessage
	wg            sync.WaitGroup
	stopChan      chan struct{}
}

// NewWarmer creates a new warmer instance
func NewWarmer(cfg *Config) *Warmer {
	return &Warmer{
		logger:        cfg.Logger,
		storage:       cfg.Storage,
		warm:          cfg.Warm,
		rabbitClient:  cfg.RabbitClient,
		concurrency:   cfg.Concurrency,
		prefetchCount: cfg.PrefetchCount,
		warmTimeout:   cfg.WarmTimeout,
		warmerID:      "warmer-" + uuid.New().String()[:8],
		jobsChan:      make(chan *domain.WarmMessage, cfg.Concurrency),
		stopChan:      make(chan struct{}),
	}
}

// Start begins consuming warm requests and blocks until ctx is canceled.
func (w *Warmer) Start(ctx context.Context) error {
	w.logger.Info("Starting cache warmer",
		slog.String("warmer_id", w.warmerID),
		slog.Int("concurrency", w.concurrency),
		slog.Duration("warm_timeout", w.warmTimeout),
	)

	deliveries, err := w.setupConsumer()
	if err != nil {
		return err
	}

	w.spawnPool(ctx)
	w.dispatch(ctx, deliveries)

	return nil
}

// Stop gracefully stops the warmer
func (w *Warmer) Stop() {
	w.logger.Info("Stopping cache warmer...")
	close(w.stopChan)
	w.wg.Wait()
	w.logger.Info("Cache warmer stopped")
}
