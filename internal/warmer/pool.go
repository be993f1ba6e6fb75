package warmer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/openhire/jobboard-be/internal/warmer/domain"
)

// spawnPool spawns N worker goroutines based on concurrency configuration
func (w *Warmer) spawnPool(ctx context.Context) {
	w.logger.Info("Spawning warm pool",
		slog.Int("concurrency", w.concurrency),
		slog.String("warmer_id", w.warmerID),
	)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.workerLoop(ctx, i)
	}
}

// workerLoop is the main processing loop for each pool goroutine
func (w *Warmer) workerLoop(ctx context.Context, workerNum int) {
	defer w.wg.Done()

	workerName := fmt.Sprintf("%s-%d", w.warmerID, workerNum)
	w.logger.Info("Warm worker started",
		slog.String("worker_name", workerName),
	)

	for {
		select {
		case <-w.stopChan:
			w.logger.Info("Warm worker stopping - stopChan closed",
				slog.String("worker_name", workerName),
			)
			return

		case <-ctx.Done():
			w.logger.Info("Warm worker stopping - context canceled",
				slog.String("worker_name", workerName),
			)
			return

		case msg, ok := <-w.jobsChan:
			if !ok {
				return
			}

			err := w.processWarm(ctx, msg)

			channel := w.rabbitClient.GetChannel()
			if channel == nil {
				w.logger.Error("Failed to get RabbitMQ channel for ACK/NACK",
					slog.String("worker_name", workerName),
					slog.Int("job_id", msg.JobID),
				)
				continue
			}

			if err != nil {
				requeue := w.shouldRequeue(err)
				w.logger.Error("Warm request failed",
					slog.String("worker_name", workerName),
					slog.Int("job_id", msg.JobID),
					slog.Bool("requeue", requeue),
					slog.String("error", err.Error()),
				)

				if nackErr := channel.Nack(msg.DeliveryTag, false, requeue); nackErr != nil {
					w.logger.Error("Failed to NACK warm request",
						slog.String("worker_name", workerName),
						slog.Int("job_id", msg.JobID),
						slog.String("error", nackErr.Error()),
					)
				}
				continue
			}

			if ackErr := channel.Ack(msg.DeliveryTag, false); ackErr != nil {
				w.logger.Error("Failed to ACK warm request",
					slog.String("worker_name", workerName),
					slog.Int("job_id", msg.JobID),
					slog.String("error", ackErr.Error()),
				)
			}
		}
	}
}

// shouldRequeue determines if a failed warm request is worth a redelivery.
func (w *Warmer) shouldRequeue(err error) bool {
	// The job id does not exist; redelivery cannot fix that
	if errors.Is(err, domain.ErrUnknownJob) {
		return false
	}

	if errors.Is(err, domain.ErrInvalidMessage) {
		return false
	}

	var retryableErr *domain.RetryableError
	if errors.As(err, &retryableErr) {
		return true
	}

	return false
}
