package domain

// WarmMessage is a warm request paired with its broker delivery tag so the
// worker pool can ack or nack after processing.
type WarmMessage struct {
	JobID       int
	DeliveryTag uint64
}
