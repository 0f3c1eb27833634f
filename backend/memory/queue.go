package memory

import (
	"context"
	"sync"

	"github.com/relaymq/eventflow/backend"
	"github.com/relaymq/eventflow/event"
)

type entry struct {
	key     string
	payload event.Event
}

// Queue is an unbounded FIFO shared by reference between backends. One
// queue, one order: payloads come out in Put order regardless of key, and a
// payload is delivered to exactly one Get caller.
type Queue struct {
	mu     sync.Mutex
	items  []entry
	notify chan struct{}
	closed bool
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{notify: make(chan struct{})}
}

// Put appends a payload. It fails only on a closed queue.
func (q *Queue) Put(key string, payload event.Event) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return backend.ErrQueueClosed
	}
	q.items = append(q.items, entry{key: key, payload: payload})
	notify := q.notify
	q.notify = make(chan struct{})
	q.mu.Unlock()

	close(notify)
	return nil
}

// Get pops the oldest payload, blocking until one is available, the context
// is cancelled, or the queue is closed and drained.
func (q *Queue) Get(ctx context.Context) (string, event.Event, error) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			e := q.items[0]
			q.items = q.items[1:]
			q.mu.Unlock()
			return e.key, e.payload, nil
		}
		if q.closed {
			q.mu.Unlock()
			return "", nil, backend.ErrQueueClosed
		}
		notify := q.notify
		q.mu.Unlock()

		select {
		case <-ctx.Done():
			return "", nil, ctx.Err()
		case <-notify:
		}
	}
}

// Len reports the number of queued payloads.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close marks the queue exhausted. Pending Get calls return once the
// remaining payloads drain; Put calls fail. Closing twice is a no-op.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	notify := q.notify
	q.notify = make(chan struct{})
	q.mu.Unlock()

	close(notify)
}
