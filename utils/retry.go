package utils

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks an answer that should be asked for again.
	ErrInvalidInput = errors.New("invalid input")
	// ErrTooManyAttempts is returned once MaxAttempts invalid answers were given.
	ErrTooManyAttempts = errors.New("too many invalid attempts")
)

// RetryConfig holds the parameters for the re-prompt loop.
// MaxAttempts <= 0 means keep asking forever.
type RetryConfig struct {
	MaxAttempts int
	Logger      *Logger
}

// Do calls fn until it succeeds. Errors wrapping ErrInvalidInput are retried,
// anything else (including io.EOF) is returned as is.
func (r *RetryConfig) Do(operationName string, fn func() error) error {
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrInvalidInput) {
			return err
		}

		if r.MaxAttempts > 0 && attempt >= r.MaxAttempts {
			return fmt.Errorf("%s failed after %d attempts: %w", operationName, attempt, ErrTooManyAttempts)
		}
		if r.Logger != nil {
			r.Logger.Debug("[retry] %s rejected (attempt %d): %v", operationName, attempt, err)
		}
	}
}
