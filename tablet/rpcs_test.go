package tablet

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRpcsCancel(t *testing.T) {
	r := NewRpcs()
	done := make(chan error, 1)
	h := r.Start(time.Minute, func(ctx context.Context) {
		<-ctx.Done()
		done <- ctx.Err()
	})
	require.NotEqual(t, invalidHandle, h)
	r.Cancel(h)
	require.Equal(t, context.Canceled, <-done)
	r.Shutdown()
}

func TestRpcsTimeout(t *testing.T) {
	r := NewRpcs()
	done := make(chan error, 1)
	r.Start(10*time.Millisecond, func(ctx context.Context) {
		<-ctx.Done()
		done <- ctx.Err()
	})
	require.Equal(t, context.DeadlineExceeded, <-done)
	r.Shutdown()
}

func TestRpcsShutdownWaitsForCompletions(t *testing.T) {
	r := NewRpcs()
	var finished int32
	r.Start(time.Minute, func(ctx context.Context) {
		<-ctx.Done()
		atomic.StoreInt32(&finished, 1)
	})
	r.Shutdown()
	require.Equal(t, int32(1), atomic.LoadInt32(&finished))

	r.mu.Lock()
	remaining := len(r.calls)
	r.mu.Unlock()
	require.Equal(t, 0, remaining)

	// Calls started after shutdown still run, with a dead context.
	done := make(chan error, 1)
	r.Start(time.Minute, func(ctx context.Context) {
		done <- ctx.Err()
	})
	require.Equal(t, context.Canceled, <-done)
}
