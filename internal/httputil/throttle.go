// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"sync"
	"time"
)

// Throttle enforces a minimum interval between consecutive calls. The
// PubMed E-utilities allow at most 3 requests per second without an API
// key; a single Throttle shared by all call sites keeps the process under
// that ceiling.
type Throttle struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
}

// NewThrottle returns a Throttle with the given minimum interval between
// calls. An interval of zero or less disables throttling entirely.
func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{interval: interval}
}

// Wait blocks until at least the configured interval has passed since the
// previous call returned. The first call never blocks. Wait returns
// ctx.Err() if the context is cancelled while waiting.
func (t *Throttle) Wait(ctx context.Context) error {
	if t == nil || t.interval <= 0 {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.last.IsZero() {
		if gap := t.interval - time.Since(t.last); gap > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(gap):
			}
		}
	}
	t.last = time.Now()
	return nil
}
