package resilience

import (
	"context"
	"time"
)

type RetryConfig struct {
	// MaxRetries bounds additional attempts after the first; 0 disables
	// retrying entirely.
	MaxRetries int
	// Backoff is the base delay before a retry; attempt n waits n*Backoff.
	Backoff time.Duration
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 1,
		Backoff:    time.Second,
	}
}

func NormalizeRetryConfig(cfg RetryConfig) RetryConfig {
	defaults := DefaultRetryConfig()
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = defaults.MaxRetries
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = defaults.Backoff
	}
	return cfg
}

// Retry runs fn up to MaxRetries+1 times. fn reports whether its failure is
// transient; permanent failures return immediately. Backoff between attempts
// is interruptible by context cancellation.
func Retry(ctx context.Context, cfg RetryConfig, fn func() (retryable bool, err error)) error {
	cfg = NormalizeRetryConfig(cfg)

	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		retryable, err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable || attempt == cfg.MaxRetries {
			break
		}

		timer := time.NewTimer(time.Duration(attempt+1) * cfg.Backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return lastErr
}
