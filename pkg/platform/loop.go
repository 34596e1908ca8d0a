package platform

import (
	"context"
	"sync"

	"github.com/go-drift/vitro/pkg/errors"
)

// Loop is a cooperative UI-thread task queue. Tasks may be posted from any
// goroutine; they always run on the goroutine that drives the loop through
// Run or RunPending, one after another.
type Loop struct {
	mu     sync.Mutex
	queue  []func()
	wake   chan struct{}
	closed bool
}

// NewLoop creates an empty loop.
func NewLoop() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Dispatch schedules callback to run on the loop.
// Returns false if the loop is closed or the callback is nil.
func (l *Loop) Dispatch(callback func()) bool {
	if callback == nil {
		return false
	}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, callback)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Pending returns the number of queued tasks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// RunPending runs the tasks queued before the call and returns how many ran.
// Tasks posted while it runs wait for the next cycle.
func (l *Loop) RunPending() int {
	l.mu.Lock()
	batch := l.queue
	l.queue = nil
	l.mu.Unlock()

	for _, task := range batch {
		runTask(task)
	}
	return len(batch)
}

// Run processes tasks until ctx is done or the loop is closed.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.RunPending()

		l.mu.Lock()
		closed := l.closed
		l.mu.Unlock()
		if closed {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

// Close stops accepting tasks and drops the ones still queued.
func (l *Loop) Close() {
	l.mu.Lock()
	l.closed = true
	l.queue = nil
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func runTask(task func()) {
	defer errors.Recover("platform.Loop")
	task()
}
