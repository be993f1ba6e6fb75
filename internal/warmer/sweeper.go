package warmer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/openhire/jobboard-be/shared/rabbitmq"
)

// Sweeper periodically enqueues warm requests for the most recent job ids so
// the cache stays hot across TTL expiry.
type Sweeper struct {
	cron         *cron.Cron
	storage      Storage
	rabbitClient *rabbitmq.Client
	logger       *slog.Logger
	interval     time.Duration
	size         int
}

// NewSweeper creates a Sweeper that fires every interval.
func NewSweeper(storage Storage, rabbitClient *rabbitmq.Client, logger *slog.Logger, interval time.Duration, size int) *Sweeper {
	return &Sweeper{
		cron:         cron.New(),
		storage:      storage,
		rabbitClient: rabbitClient,
		logger:       logger,
		interval:     interval,
		size:         size,
	}
}

// Start registers the sweep and starts the scheduler. One sweep also runs
// immediately so a fresh deployment serves warm details without waiting for
// the first tick.
func (s *Sweeper) Start(ctx context.Context) error {
	spec := fmt.Sprintf("@every %s", s.interval)
	if _, err := s.cron.AddFunc(spec, func() {
		s.runSweep(ctx)
	}); err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Sweep scheduler started",
		slog.String("spec", spec),
		slog.Int("sweep_size", s.size),
	)

	go s.runSweep(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Sweeper) Stop() {
	s.cron.Stop()
	s.logger.Info("Sweep scheduler stopped")
}

// runSweep enqueues one warm request per recent job id.
func (s *Sweeper) runSweep(ctx context.Context) {
	ids, err := s.storage.ListRecentJobIDs(ctx, s.size)
	if err != nil {
		s.logger.Error("Sweep failed to list recent job ids",
			slog.String("error", err.Error()),
		)
		return
	}

	if len(ids) == 0 {
		s.logger.Info("Sweep found no jobs to warm")
		return
	}

	enqueued := 0
	for _, id := range ids {
		body, err := json.Marshal(map[string]int{"job_id": id})
		if err != nil {
			continue
		}

		if err := s.rabbitClient.PublishWithRetry(ctx, body, "application/json"); err != nil {
			s.logger.Warn("Sweep failed to enqueue warm request",
				slog.Int("job_id", id),
				slog.String("error", err.Error()),
			)
			continue
		}
		enqueued++
	}

	s.logger.Info("Sweep cycle complete",
		slog.Int("candidates", len(ids)),
		slog.Int("enqueued", enqueued),
	)
}
