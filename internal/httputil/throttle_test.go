// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThrottle_EnforcesInterval(t *testing.T) {
	th := NewThrottle(30 * time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, th.Wait(ctx))
	require.NoError(t, th.Wait(ctx))
	require.NoError(t, th.Wait(ctx))
	elapsed := time.Since(start)

	// Two gaps of 30ms must have passed between three calls.
	assert.GreaterOrEqual(t, elapsed, 60*time.Millisecond)
}

func TestThrottle_FirstCallDoesNotBlock(t *testing.T) {
	th := NewThrottle(1 * time.Hour)

	start := time.Now()
	require.NoError(t, th.Wait(context.Background()))
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestThrottle_ZeroIntervalDisabled(t *testing.T) {
	th := NewThrottle(0)

	start := time.Now()
	for i := 0; i < 100; i++ {
		require.NoError(t, th.Wait(context.Background()))
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)
}

func TestThrottle_ContextCancelledWhileWaiting(t *testing.T) {
	th := NewThrottle(1 * time.Hour)
	require.NoError(t, th.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := th.Wait(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestThrottle_NilIsNoOp(t *testing.T) {
	var th *Throttle
	require.NoError(t, th.Wait(context.Background()))
}
