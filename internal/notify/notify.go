// Package notify is the ephemeral user-feedback bus. Notifications
// expire on their own; nothing here is persisted.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity classifies a notification for presentation.
type Severity string

const (
	Success Severity = "success"
	Info    Severity = "info"
	Warning Severity = "warning"
	Error   Severity = "error"
)

// DefaultLifespan is used when a caller passes a lifespan <= 0.
const DefaultLifespan = 3 * time.Second

// maxVisible bounds the bus; pushing beyond it evicts the oldest
// notification early.
const maxVisible = 32

// Notification is a single ephemeral message.
type Notification struct {
	ID       string
	Message  string
	Severity Severity
	Lifespan time.Duration
}

// Bus holds currently visible notifications in push order. Each entry
// removes itself once its lifespan elapses. Multiple notifications
// may be visible concurrently.
type Bus struct {
	mu      sync.Mutex
	items   []Notification
	timers  map[string]*time.Timer
	updates chan struct{}
	closed  bool
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		timers:  make(map[string]*time.Timer),
		updates: make(chan struct{}, 1),
	}
}

// Push appends a notification and schedules its removal.
// A lifespan <= 0 uses DefaultLifespan. Returns the notification ID.
func (b *Bus) Push(message string, severity Severity, lifespan time.Duration) string {
	if severity == "" {
		severity = Info
	}
	if lifespan <= 0 {
		lifespan = DefaultLifespan
	}
	n := Notification{
		ID:       uuid.NewString(),
		Message:  message,
		Severity: severity,
		Lifespan: lifespan,
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return n.ID
	}
	if len(b.items) >= maxVisible {
		oldest := b.items[0]
		b.items = b.items[1:]
		if t := b.timers[oldest.ID]; t != nil {
			t.Stop()
			delete(b.timers, oldest.ID)
		}
	}
	b.items = append(b.items, n)
	b.timers[n.ID] = time.AfterFunc(lifespan, func() {
		b.remove(n.ID)
	})
	b.mu.Unlock()

	b.signal()
	return n.ID
}

// Active returns the currently visible notifications in push order.
func (b *Bus) Active() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	result := make([]Notification, len(b.items))
	copy(result, b.items)
	return result
}

// Updates signals (coalesced) whenever the visible set changes.
func (b *Bus) Updates() <-chan struct{} {
	return b.updates
}

// Close stops all expiry timers and drops pending notifications.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, t := range b.timers {
		t.Stop()
		delete(b.timers, id)
	}
	b.items = nil
}

func (b *Bus) remove(id string) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	delete(b.timers, id)
	for i := range b.items {
		if b.items[i].ID == id {
			b.items = append(b.items[:i], b.items[i+1:]...)
			break
		}
	}
	b.mu.Unlock()

	b.signal()
}

// signal notifies watchers without blocking.
func (b *Bus) signal() {
	select {
	case b.updates <- struct{}{}:
	default:
	}
}
