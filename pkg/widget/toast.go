package widget

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level classifies a toast for styling by the host.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Toast is one notification. Duration is how long it stays visible once
// shown; zero falls back to the queue default.
type Toast struct {
	ID       string
	Level    Level
	Message  string
	Duration time.Duration

	deadline time.Time
}

// ToastQueue holds the currently visible toasts, oldest first. Beyond
// capacity, pushing dismisses the oldest toast to make room.
type ToastQueue struct {
	mu        sync.Mutex
	capacity  int
	ttl       time.Duration
	toasts    []Toast
	onShow    func(Toast)
	onDismiss func(Toast)
	log       *slog.Logger
	now       func() time.Time
}

// ToastOption configures a ToastQueue.
type ToastOption func(*ToastQueue)

// WithToastTTL sets the default visibility duration. The default is five
// seconds.
func WithToastTTL(d time.Duration) ToastOption {
	return func(q *ToastQueue) {
		if d > 0 {
			q.ttl = d
		}
	}
}

// WithShowCallback fires after a toast becomes visible.
func WithShowCallback(fn func(Toast)) ToastOption {
	return func(q *ToastQueue) { q.onShow = fn }
}

// WithDismissCallback fires after a toast leaves the queue, whether
// dismissed explicitly, expired, or evicted to make room.
func WithDismissCallback(fn func(Toast)) ToastOption {
	return func(q *ToastQueue) { q.onDismiss = fn }
}

// WithToastLogger enables debug logging of queue activity. Nil loggers are
// ignored.
func WithToastLogger(log *slog.Logger) ToastOption {
	return func(q *ToastQueue) { q.log = log }
}

// NewToastQueue creates a queue showing at most capacity toasts. Capacity
// must be positive, otherwise it panics.
func NewToastQueue(capacity int, opts ...ToastOption) *ToastQueue {
	if capacity <= 0 {
		panic("widget: toast queue capacity must be positive")
	}

	q := &ToastQueue{
		capacity: capacity,
		ttl:      5 * time.Second,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Push shows a new toast and returns it with its assigned ID.
func (q *ToastQueue) Push(level Level, message string) Toast {
	q.mu.Lock()

	t := Toast{
		ID:       uuid.NewString(),
		Level:    level,
		Message:  message,
		Duration: q.ttl,
	}
	t.deadline = q.now().Add(t.Duration)

	var evicted []Toast
	if len(q.toasts) >= q.capacity {
		evicted = append(evicted, q.toasts[0])
		q.toasts = q.toasts[1:]
	}
	q.toasts = append(q.toasts, t)
	q.mu.Unlock()

	for _, old := range evicted {
		q.notifyDismiss(old)
	}
	if q.log != nil {
		q.log.Debug("toast shown",
			slog.String("id", t.ID),
			slog.String("level", string(level)),
		)
	}
	if q.onShow != nil {
		q.onShow(t)
	}
	return t
}

// Dismiss removes a toast by ID and reports whether it was present.
func (q *ToastQueue) Dismiss(id string) bool {
	q.mu.Lock()
	var dismissed *Toast
	for i, t := range q.toasts {
		if t.ID == id {
			dismissed = &t
			q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
			break
		}
	}
	q.mu.Unlock()

	if dismissed == nil {
		return false
	}
	q.notifyDismiss(*dismissed)
	return true
}

// Active returns the visible toasts, oldest first.
func (q *ToastQueue) Active() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Toast(nil), q.toasts...)
}

// DismissExpired removes every toast whose visibility window has passed and
// returns how many were removed.
func (q *ToastQueue) DismissExpired() int {
	q.mu.Lock()
	now := q.now()

	var expired []Toast
	kept := q.toasts[:0]
	for _, t := range q.toasts {
		if now.After(t.deadline) {
			expired = append(expired, t)
			continue
		}
		kept = append(kept, t)
	}
	q.toasts = kept
	q.mu.Unlock()

	for _, t := range expired {
		q.notifyDismiss(t)
	}
	return len(expired)
}

// Run auto-dismisses expired toasts until ctx is canceled.
func (q *ToastQueue) Run(ctx context.Context) error {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			q.DismissExpired()
		}
	}
}

func (q *ToastQueue) notifyDismiss(t Toast) {
	if q.log != nil {
		q.log.Debug("toast dismissed", slog.String("id", t.ID))
	}
	if q.onDismiss != nil {
		q.onDismiss(t)
	}
}
