package tablet

import (
	"context"
	"sync"
	"time"
)

// Handle identifies one in-flight outbound call registered with Rpcs.
type Handle uint64

const invalidHandle Handle = 0

type call struct {
	cancel context.CancelFunc
}

// Rpcs tracks every outbound call the participant has in flight so that a
// single call can be cancelled by handle and all of them can be cancelled
// at shutdown. Completion functions run on their own goroutines; Shutdown
// waits for them to return.
type Rpcs struct {
	mu     sync.Mutex
	calls  map[Handle]*call
	next   Handle
	closed bool
	wg     sync.WaitGroup
}

func NewRpcs() *Rpcs {
	return &Rpcs{
		calls: make(map[Handle]*call),
	}
}

// Start registers a call bounded by timeout and runs it on its own
// goroutine. The call is unregistered automatically when run returns.
// After Shutdown the call still runs, but with an already-cancelled
// context, so its completion path fires with a cancellation error instead
// of silently never happening.
func (r *Rpcs) Start(timeout time.Duration, run func(ctx context.Context)) Handle {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	r.mu.Lock()
	if r.closed {
		cancel()
	}
	r.next++
	h := r.next
	r.calls[h] = &call{cancel: cancel}
	r.wg.Add(1)
	r.mu.Unlock()
	go func() {
		defer r.wg.Done()
		defer r.unregister(h)
		run(ctx)
	}()
	return h
}

// Cancel aborts the call registered under h, if it is still in flight.
func (r *Rpcs) Cancel(h Handle) {
	r.mu.Lock()
	c := r.calls[h]
	r.mu.Unlock()
	if c != nil {
		c.cancel()
	}
}

func (r *Rpcs) unregister(h Handle) {
	r.mu.Lock()
	c := r.calls[h]
	delete(r.calls, h)
	r.mu.Unlock()
	if c != nil {
		// Release the deadline timer.
		c.cancel()
	}
}

// Shutdown cancels every in-flight call and waits until all completion
// functions have returned. No new call started afterwards gets a live
// context.
func (r *Rpcs) Shutdown() {
	r.mu.Lock()
	r.closed = true
	cancels := make([]context.CancelFunc, 0, len(r.calls))
	for _, c := range r.calls {
		cancels = append(cancels, c.cancel)
	}
	r.mu.Unlock()
	for _, cancel := range cancels {
		cancel()
	}
	r.wg.Wait()
}
