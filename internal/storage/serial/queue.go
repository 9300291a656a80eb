package serial

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrClosed = errors.New("write queue closed")

type job struct {
	ctx context.Context
	fn  func(ctx context.Context) error
	res chan error
}

// Queue runs submitted operations one at a time in submission order on a
// single goroutine. A caller's context only bounds the wait for a slot: once
// the queue has taken an operation it runs to completion with its own
// timeout, detached from the caller's cancellation.
type Queue struct {
	jobs    chan job
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
	timeout time.Duration
}

func NewQueue(timeout time.Duration) *Queue {
	q := &Queue{
		jobs:    make(chan job),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		timeout: timeout,
	}
	go q.run()
	return q
}

func (q *Queue) run() {
	defer close(q.stopped)

	for {
		select {
		case j := <-q.jobs:
			j.res <- q.exec(j)
		case <-q.done:
			return
		}
	}
}

func (q *Queue) exec(j job) error {
	ctx := context.WithoutCancel(j.ctx)
	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}
	return j.fn(ctx)
}

// Do submits fn and waits for its result.
func (q *Queue) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	j := job{ctx: ctx, fn: fn, res: make(chan error, 1)}

	select {
	case q.jobs <- j:
	case <-ctx.Done():
		return ctx.Err()
	case <-q.done:
		return ErrClosed
	}

	return <-j.res
}

// Close stops accepting operations and waits for the one in flight.
func (q *Queue) Close(ctx context.Context) error {
	q.once.Do(func() { close(q.done) })

	select {
	case <-q.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
