package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/datsan-vn/datsan-go/internal/domain"
	"github.com/datsan-vn/datsan-go/internal/logger"
)

// NotificationAPI is the slice of the notification service the inbox
// needs for confirmation calls.
type NotificationAPI interface {
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

// Inbox holds the notification list with optimistic mutations: state
// changes locally first, the confirming API call is fired without
// being awaited, and a failed call is only logged. A failure leaves
// client state diverged until the next full refetch; that window is
// accepted, not guarded.
type Inbox struct {
	mu    sync.RWMutex
	items []domain.Notification
	api   NotificationAPI
	log   *logger.Logger

	confirmTimeout time.Duration
	inflight       sync.WaitGroup
}

// NewInbox creates an inbox store backed by the given API.
func NewInbox(api NotificationAPI, log *logger.Logger) *Inbox {
	if log == nil {
		log = logger.Get()
	}
	return &Inbox{
		api:            api,
		log:            log,
		confirmTimeout: 10 * time.Second,
	}
}

// Set replaces the inbox contents after a fetch, discarding any
// diverged optimistic state.
func (b *Inbox) Set(items []domain.Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = make([]domain.Notification, len(items))
	copy(b.items, items)
}

// Items returns a copy of the current inbox.
func (b *Inbox) Items() []domain.Notification {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]domain.Notification, len(b.items))
	copy(out, b.items)
	return out
}

// UnreadCount returns the number of unread notifications.
func (b *Inbox) UnreadCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	count := 0
	for _, n := range b.items {
		if !n.IsRead {
			count++
		}
	}
	return count
}

// MarkRead flips the read flag locally and fires the confirming call.
func (b *Inbox) MarkRead(id string) {
	b.mu.Lock()
	changed := false
	for i := range b.items {
		if b.items[i].ID == id && !b.items[i].IsRead {
			b.items[i].IsRead = true
			changed = true
			break
		}
	}
	b.mu.Unlock()

	if !changed {
		return
	}
	b.confirm("mark read", func(ctx context.Context) error {
		return b.api.MarkRead(ctx, id)
	})
}

// MarkAllRead flips every read flag locally and fires one confirming
// call.
func (b *Inbox) MarkAllRead() {
	b.mu.Lock()
	changed := false
	for i := range b.items {
		if !b.items[i].IsRead {
			b.items[i].IsRead = true
			changed = true
		}
	}
	b.mu.Unlock()

	if !changed {
		return
	}
	b.confirm("mark all read", func(ctx context.Context) error {
		return b.api.MarkAllRead(ctx)
	})
}

// Remove deletes the notification locally and fires the confirming
// call.
func (b *Inbox) Remove(id string) {
	b.mu.Lock()
	removed := false
	for i := range b.items {
		if b.items[i].ID == id {
			b.items = append(b.items[:i], b.items[i+1:]...)
			removed = true
			break
		}
	}
	b.mu.Unlock()

	if !removed {
		return
	}
	b.confirm("delete", func(ctx context.Context) error {
		return b.api.Delete(ctx, id)
	})
}

// confirm fires the API call in the background. No rollback on
// failure.
func (b *Inbox) confirm(action string, call func(ctx context.Context) error) {
	b.inflight.Add(1)
	go func() {
		defer b.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), b.confirmTimeout)
		defer cancel()
		if err := call(ctx); err != nil {
			b.log.Warn("inbox confirmation failed, state diverged until next refetch",
				zap.String("action", action),
				zap.Error(err),
			)
		}
	}()
}

// Wait blocks until every in-flight confirmation call has finished.
// A long-lived UI never needs this; short-lived callers (the CLI) must
// join before exiting or the process dies with the PUT still in flight.
func (b *Inbox) Wait() {
	b.inflight.Wait()
}
