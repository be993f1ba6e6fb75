package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMessage marks a warm request that can never succeed
	// (malformed JSON, non-positive job id). Not requeued.
	ErrInvalidMessage = errors.New("invalid warm request")

	// ErrUnknownJob marks a warm request for a job id absent from the
	// primary store. Not requeued.
	ErrUnknownJob = errors.New("unknown job id")
)

// RetryableError wraps transient failures worth a redelivery.
type RetryableError struct {
	Err error
}

func NewRetryableError(err error) *RetryableError {
	return &RetryableError{Err: err}
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.Err)
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}
