package store

import (
	"sync"
	"time"
)

// ToastLevel classifies a toast
type ToastLevel string

const (
	ToastInfo    ToastLevel = "info"
	ToastSuccess ToastLevel = "success"
	ToastError   ToastLevel = "error"
)

// Toast is one transient user-facing message.
type Toast struct {
	Level   ToastLevel
	Message string
	At      time.Time
}

// Toasts fans transient messages out to subscribers. Each subscriber
// gets a buffered channel; a subscriber that falls behind drops
// messages rather than blocking the publisher.
type Toasts struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Toast
}

// NewToasts creates an empty toast hub.
func NewToasts() *Toasts {
	return &Toasts{subs: make(map[int]chan Toast)}
}

// Subscribe registers a listener and returns its id and channel. The
// channel closes on Unsubscribe.
func (t *Toasts) Subscribe() (int, <-chan Toast) {
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextID
	t.nextID++
	ch := make(chan Toast, 8)
	t.subs[id] = ch
	return id, ch
}

// Unsubscribe removes a listener and closes its channel.
func (t *Toasts) Unsubscribe(id int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if ch, ok := t.subs[id]; ok {
		close(ch)
		delete(t.subs, id)
	}
}

// Push publishes a toast to every subscriber.
func (t *Toasts) Push(level ToastLevel, message string) {
	toast := Toast{Level: level, Message: message, At: time.Now()}
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, ch := range t.subs {
		select {
		case ch <- toast:
		default:
			// Slow subscriber, drop rather than block
		}
	}
}
