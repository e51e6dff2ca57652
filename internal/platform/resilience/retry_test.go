package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetry_StopsOnPermanentFailure(t *testing.T) {
	t.Parallel()

	permanent := errors.New("permanent")
	calls := 0
	err := Retry(context.Background(), RetryConfig{MaxRetries: 3, Backoff: time.Millisecond}, func() (bool, error) {
		calls++
		return false, permanent
	})

	if !errors.Is(err, permanent) {
		t.Fatalf("expected permanent error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("permanent failure must not be retried, got %d calls", calls)
	}
}

func TestRetry_BoundedTransientRetries(t *testing.T) {
	t.Parallel()

	transient := errors.New("transient")
	calls := 0
	err := Retry(context.Background(), RetryConfig{MaxRetries: 1, Backoff: time.Millisecond}, func() (bool, error) {
		calls++
		return true, transient
	})

	if !errors.Is(err, transient) {
		t.Fatalf("expected transient error, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected exactly one retry, got %d calls", calls)
	}
}

func TestRetry_SucceedsAfterRetry(t *testing.T) {
	t.Parallel()

	calls := 0
	err := Retry(context.Background(), RetryConfig{MaxRetries: 2, Backoff: time.Millisecond}, func() (bool, error) {
		calls++
		if calls < 2 {
			return true, errors.New("transient")
		}
		return false, nil
	})

	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("unexpected call count: %d", calls)
	}
}

func TestRetry_ContextCancelsBackoff(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Retry(ctx, RetryConfig{MaxRetries: 1, Backoff: time.Hour}, func() (bool, error) {
		return true, errors.New("transient")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}
