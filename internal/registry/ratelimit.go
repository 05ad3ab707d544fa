package registry

import (
	"context"
	"sync"
	"time"
)

// limiter enforces a minimum fixed interval between outbound requests.
// It is the sole rate control for the pipeline: every registry call waits
// here first, which serializes requests and caps the outbound rate no
// matter how many entities are being resolved.
type limiter struct {
	interval time.Duration
	next     time.Time
	mu       sync.Mutex
}

func newLimiter(interval time.Duration) *limiter {
	return &limiter{interval: interval}
}

// wait blocks until this caller's reserved slot arrives or the context is
// canceled.
func (l *limiter) wait(ctx context.Context) error {
	l.mu.Lock()
	now := time.Now()
	slot := l.next
	if slot.Before(now) {
		slot = now
	}
	l.next = slot.Add(l.interval)
	l.mu.Unlock()

	delay := time.Until(slot)
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
