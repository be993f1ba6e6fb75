package warmer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	apidomain "github.com/openhire/jobboard-be/internal/api/domain"
	"github.com/openhire/jobboard-be/internal/warmer/domain"
)

// processWarm resolves one warm request: read the detail from the primary
// store and write it into the cache. A cache-write failure is logged and the
// message is still acked; warming carries no durability obligation.
func (w *Warmer) processWarm(ctx context.Context, msg *domain.WarmMessage) error {
	if msg.JobID <= 0 {
		return fmt.Errorf("%w: job_id %d", domain.ErrInvalidMessage, msg.JobID)
	}

	warmCtx := ctx
	if w.warmTimeout > 0 {
		var cancel context.CancelFunc
		warmCtx, cancel = context.WithTimeout(ctx, w.warmTimeout)
		defer cancel()
	}

	detail, err := w.storage.GetDetail(warmCtx, msg.JobID)
	if err != nil {
		if errors.Is(err, apidomain.ErrJobNotFound) {
			return fmt.Errorf("%w: %d", domain.ErrUnknownJob, msg.JobID)
		}
		// store errors are usually transient; let the broker redeliver
		return domain.NewRetryableError(fmt.Errorf("get detail for warm: %w", err))
	}

	if err := w.warm.WarmDetail(warmCtx, detail); err != nil {
		w.logger.Warn("Cache write failed during warm",
			slog.Int("job_id", msg.JobID),
			slog.String("error", err.Error()),
		)
		return nil
	}

	w.logger.Debug("Warmed job detail",
		slog.Int("job_id", msg.JobID),
	)

	return nil
}
