package services

import (
	"sync"
	"time"
)

// DefaultIdleTimeout is how long the dashboard may sit without input
// before the session is considered abandoned.
const DefaultIdleTimeout = 15 * time.Minute

// Watchdog fires once when no activity has been reported for the
// configured timeout. Every user action resets the countdown.
type Watchdog struct {
	timeout time.Duration

	mu       sync.Mutex
	deadline time.Time

	expired  chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
}

// NewWatchdog creates and starts a watchdog. A non-positive timeout
// falls back to DefaultIdleTimeout.
func NewWatchdog(timeout time.Duration) *Watchdog {
	if timeout <= 0 {
		timeout = DefaultIdleTimeout
	}

	w := &Watchdog{
		timeout: timeout,
		expired: make(chan struct{}),
		stop:    make(chan struct{}),
	}
	w.deadline = time.Now().Add(timeout)

	go w.run()
	return w
}

// Reset pushes the deadline out by the full timeout.
func (w *Watchdog) Reset() {
	w.mu.Lock()
	w.deadline = time.Now().Add(w.timeout)
	w.mu.Unlock()
}

// Stop disarms the watchdog. Safe to call more than once; Expired
// never fires after Stop returns.
func (w *Watchdog) Stop() {
	w.stopOnce.Do(func() {
		close(w.stop)
	})
}

// Expired is closed exactly once when the deadline passes.
func (w *Watchdog) Expired() <-chan struct{} {
	return w.expired
}

// run sleeps until the current deadline and re-arms whenever a Reset
// moved it. The loop exits on Stop or on firing.
func (w *Watchdog) run() {
	for {
		w.mu.Lock()
		deadline := w.deadline
		w.mu.Unlock()

		wait := time.Until(deadline)
		if wait <= 0 {
			close(w.expired)
			return
		}

		timer := time.NewTimer(wait)
		select {
		case <-w.stop:
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}
