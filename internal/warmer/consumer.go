package warmer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/openhire/jobboard-be/internal/warmer/domain"
)

// setupConsumer configures QoS and returns the delivery channel.
func (w *Warmer) setupConsumer() (<-chan amqp.Delivery, error) {
	channel := w.rabbitClient.GetChannel()
	if channel == nil {
		return nil, fmt.Errorf("rabbitmq channel is nil")
	}

	// prefetch bounds unacknowledged messages per consumer
	if err := channel.Qos(w.prefetchCount, 0, false); err != nil {
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	deliveries, err := w.rabbitClient.Consume(w.warmerID)
	if err != nil {
		return nil, fmt.Errorf("failed to start consuming: %w", err)
	}

	w.logger.Info("Warm-request consumer started",
		slog.String("consumer_tag", w.warmerID),
		slog.Int("prefetch_count", w.prefetchCount),
	)

	return deliveries, nil
}

// dispatch reads deliveries and hands parsed warm requests to the pool.
func (w *Warmer) dispatch(ctx context.Context, deliveries <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Warm-request dispatcher stopped - context canceled")
			return

		case delivery, ok := <-deliveries:
			if !ok {
				w.logger.Warn("RabbitMQ delivery channel closed")
				return
			}

			var msg struct {
				JobID int `json:"job_id"`
			}

			if err := json.Unmarshal(delivery.Body, &msg); err != nil || msg.JobID <= 0 {
				w.logger.Error("Discarding malformed warm request",
					slog.String("body", string(delivery.Body)),
				)
				// malformed requests can never succeed; drop without requeue
				if nackErr := delivery.Nack(false, false); nackErr != nil {
					w.logger.Error("Failed to NACK malformed warm request",
						slog.String("error", nackErr.Error()),
					)
				}
				continue
			}

			warmMsg := &domain.WarmMessage{
				JobID:       msg.JobID,
				DeliveryTag: delivery.DeliveryTag,
			}

			select {
			case w.jobsChan <- warmMsg:
				w.logger.Debug("Warm request dispatched to pool",
					slog.Int("job_id", msg.JobID),
					slog.Uint64("delivery_tag", delivery.DeliveryTag),
				)
			case <-ctx.Done():
				w.logger.Info("Dispatcher stopped while dispatching warm request")
				if nackErr := delivery.Nack(false, true); nackErr != nil {
					w.logger.Error("Failed to NACK warm request on shutdown",
						slog.String("error", nackErr.Error()),
					)
				}
				return
			}
		}
	}
}
