// Package toast implements a queue of short-lived notifications. Every toast
// owns its own expiry timer; expiring one never touches another.
package toast

import (
	"log/slog"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/charchat/internal/logger"
)

// Duration is how long a toast stays visible after it is enqueued.
const Duration = 3000 * time.Millisecond

var nextID atomic.Uint64

// Kind selects the toast styling.
type Kind int

const (
	Success Kind = iota
	Error
)

func (k Kind) String() string {
	if k == Error {
		return "error"
	}
	return "success"
}

// Toast is one notification in the queue.
type Toast struct {
	ID        uint64
	Message   string
	Kind      Kind
	CreatedAt time.Time
}

// Deadline is the instant the toast stops being visible.
func (t Toast) Deadline() time.Time {
	return t.CreatedAt.Add(Duration)
}

// ExpiredMsg is delivered by a toast's timer when its duration has elapsed.
type ExpiredMsg struct {
	ID uint64
}

// Scheduler arranges for fn to be called after d. tea.Tick satisfies it.
type Scheduler func(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd

// Option configures a Queue.
type Option func(*Queue)

// WithScheduler replaces tea.Tick as the timer source.
func WithScheduler(s Scheduler) Option {
	return func(q *Queue) { q.schedule = s }
}

// WithClock replaces time.Now for stamping CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(q *Queue) { q.now = now }
}

// Queue holds the visible toasts in enqueue order.
type Queue struct {
	items    []Toast
	schedule Scheduler
	now      func() time.Time
	log      *slog.Logger
}

// New creates an empty queue.
func New(opts ...Option) *Queue {
	q := &Queue{
		schedule: tea.Tick,
		now:      time.Now,
		log:      logger.WithComponent("toast"),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Enqueue appends a toast and returns the command that expires it.
func (q *Queue) Enqueue(message string, kind Kind) (Toast, tea.Cmd) {
	id := nextID.Add(1)
	t := Toast{
		ID:        id,
		Message:   message,
		Kind:      kind,
		CreatedAt: q.now(),
	}
	q.items = append(q.items, t)
	q.log.Debug("toast enqueued", "id", id, "kind", kind, "message", message)

	cmd := q.schedule(Duration, func(time.Time) tea.Msg {
		return ExpiredMsg{ID: id}
	})
	return t, cmd
}

// Expire removes the toast with the given id. Unknown ids are ignored.
func (q *Queue) Expire(id uint64) bool {
	for i, t := range q.items {
		if t.ID == id {
			q.items = append(q.items[:i:i], q.items[i+1:]...)
			q.log.Debug("toast expired", "id", id)
			return true
		}
	}
	return false
}

// Items returns a copy of the queue, oldest first.
func (q *Queue) Items() []Toast {
	out := make([]Toast, len(q.items))
	copy(out, q.items)
	return out
}

// Active returns the toasts still within their display window at now. A
// toast whose timer message is still in flight is already hidden here.
func (q *Queue) Active(now time.Time) []Toast {
	var out []Toast
	for _, t := range q.items {
		if now.Before(t.Deadline()) {
			out = append(out, t)
		}
	}
	return out
}

// Len returns the number of queued toasts.
func (q *Queue) Len() int {
	return len(q.items)
}
