package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestBackoffWaitDuration(t *testing.T) {
	tests := []struct {
		name    string
		backoff *Backoff
		attempt int
		want    time.Duration
	}{
		{name: "nil backoff", backoff: nil, attempt: 1, want: 0},
		{name: "first attempt", backoff: NewBackoff(time.Second, 0, false), attempt: 0, want: time.Second},
		{name: "doubles", backoff: NewBackoff(time.Second, 0, false), attempt: 2, want: 4 * time.Second},
		{name: "capped", backoff: NewBackoff(time.Second, 3*time.Second, false), attempt: 5, want: 3 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.backoff.WaitDuration(tt.attempt); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDoStopsOnNonRetriable(t *testing.T) {
	permanent := errors.New("permanent")
	calls := 0

	err := Do(context.Background(), Policy{
		MaxRetries:  3,
		ShouldRetry: func(err error) bool { return false },
	}, func() error {
		calls++
		return permanent
	}, nil)

	if !errors.Is(err, permanent) {
		t.Fatalf("expected permanent error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := Do(context.Background(), Policy{MaxRetries: 3}, func() error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	}, nil)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}
