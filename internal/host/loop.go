// Package host provides the serial event loop that dispatches all editor
// callbacks. Sessions assume single-threaded cooperative execution; the loop
// is what guarantees it.
package host

import (
	"context"
	"errors"
	"sync"
)

// ErrLoopStopped is returned when posting to a stopped loop.
var ErrLoopStopped = errors.New("event loop is stopped")

// Loop runs queued callbacks one at a time on a single goroutine, in the
// order they were posted.
type Loop struct {
	tasks chan func()

	mu      sync.RWMutex
	stopped bool
}

// NewLoop creates an event loop with the given queue depth.
func NewLoop(depth int) *Loop {
	if depth <= 0 {
		depth = 64
	}
	return &Loop{tasks: make(chan func(), depth)}
}

// Post enqueues a callback for serial execution. It blocks while the queue
// is full and fails once the loop has stopped. The read lock is held across
// the send so a callback accepted here is enqueued before Run marks the loop
// stopped, and therefore runs before Run returns.
func (l *Loop) Post(fn func()) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.stopped {
		return ErrLoopStopped
	}
	l.tasks <- fn
	return nil
}

// Run executes callbacks until the context is cancelled, then drains what
// was already queued so no accepted callback is lost.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			// Keep executing while in-flight Posts land; once the write lock
			// is held no reader remains, so everything accepted is queued.
			quiesced := make(chan struct{})
			go func() {
				l.mu.Lock()
				l.stopped = true
				l.mu.Unlock()
				close(quiesced)
			}()
			for {
				select {
				case fn := <-l.tasks:
					fn()
				case <-quiesced:
					for {
						select {
						case fn := <-l.tasks:
							fn()
						default:
							return ctx.Err()
						}
					}
				}
			}
		case fn := <-l.tasks:
			fn()
		}
	}
}
