// Package cli holds the process-level plumbing of the kevm binary:
// signal-driven cancellation and the temp-file janitor that backs the
// guaranteed-release guarantee on signal exit paths.
package cli

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// SignalWatcher cancels its context on SIGINT/SIGTERM and remembers which
// signal fired, so main can exit with the conventional 128+signal status
// after cleanup has run. Dispatch work runs under Context(): cancellation
// kills any in-flight subprocess and control unwinds through the deferred
// resource releases.
type SignalWatcher struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	fired os.Signal
}

// NewSignalWatcher starts listening immediately.
func NewSignalWatcher() *SignalWatcher {
	sw := &SignalWatcher{}
	sw.ctx, sw.cancel = context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig, ok := <-ch
		if !ok {
			return
		}
		sw.mu.Lock()
		sw.fired = sig
		sw.mu.Unlock()
		sw.cancel()
	}()

	return sw
}

// Context returns the cancellation context for dispatch work.
func (sw *SignalWatcher) Context() context.Context {
	return sw.ctx
}

// Fired reports the signal that caused cancellation, if any.
func (sw *SignalWatcher) Fired() (os.Signal, bool) {
	sw.mu.Lock()
	defer sw.mu.Unlock()
	return sw.fired, sw.fired != nil
}

// Stop stops listening and releases the context.
func (sw *SignalWatcher) Stop() {
	sw.cancel()
}

// ExitStatus maps a fired signal to the shell convention 128+signum.
func ExitStatus(sig os.Signal) int {
	if s, ok := sig.(syscall.Signal); ok {
		return 128 + int(s)
	}
	return 130
}
