package notify

import "sync"

// Queue holds secondary notifications until the primary one for the same
// operation has been delivered.
type Queue struct {
	mu      sync.Mutex
	pending []Notification
}

// Defer schedules n for the next Flush.
func (q *Queue) Defer(n Notification) {
	q.mu.Lock()
	q.pending = append(q.pending, n)
	q.mu.Unlock()
}

// Len is the number of pending notifications.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Flush delivers pending notifications to to in the order they were deferred
// and empties the queue.
func (q *Queue) Flush(to Notifier) {
	q.mu.Lock()
	pending := q.pending
	q.pending = nil
	q.mu.Unlock()

	if to == nil {
		return
	}
	for _, n := range pending {
		to.Notify(n)
	}
}
