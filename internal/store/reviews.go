package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/datsan-vn/datsan-go/internal/domain"
	"github.com/datsan-vn/datsan-go/internal/dto"
	"github.com/datsan-vn/datsan-go/internal/logger"
)

// ReviewAPI is the slice of the review service the feed needs for
// confirmation calls.
type ReviewAPI interface {
	ToggleLike(ctx context.Context, reviewID string) (*dto.LikeResponse, error)
	Delete(ctx context.Context, reviewID string) error
}

// ReviewFeed holds the locally mutated copy of a location's reviews:
// like counts flip optimistically, expanded reply panels are tracked,
// and everything is overwritten on the next fetch. Like toggles carry
// no rollback path at all.
type ReviewFeed struct {
	mu       sync.RWMutex
	items    []domain.Review
	expanded map[string]bool
	api      ReviewAPI
	log      *logger.Logger

	confirmTimeout time.Duration
}

// NewReviewFeed creates a feed backed by the given API.
func NewReviewFeed(api ReviewAPI, log *logger.Logger) *ReviewFeed {
	if log == nil {
		log = logger.Get()
	}
	return &ReviewFeed{
		expanded:       make(map[string]bool),
		api:            api,
		log:            log,
		confirmTimeout: 10 * time.Second,
	}
}

// Set replaces the feed after a fetch. Expand/collapse state survives
// the refetch; likes do not, the server copy wins.
func (f *ReviewFeed) Set(items []domain.Review) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = make([]domain.Review, len(items))
	copy(f.items, items)
}

// Items returns a copy of the current feed.
func (f *ReviewFeed) Items() []domain.Review {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]domain.Review, len(f.items))
	copy(out, f.items)
	return out
}

// Get returns one review by id.
func (f *ReviewFeed) Get(id string) (domain.Review, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, r := range f.items {
		if r.ID == id {
			return r, true
		}
	}
	return domain.Review{}, false
}

// ToggleLike flips the like state optimistically: likes+1 when liking,
// likes-1 when unliking, then fires the API call without awaiting it.
func (f *ReviewFeed) ToggleLike(id string) {
	f.mu.Lock()
	found := false
	for i := range f.items {
		if f.items[i].ID == id {
			if f.items[i].IsLiked {
				f.items[i].IsLiked = false
				f.items[i].Likes--
			} else {
				f.items[i].IsLiked = true
				f.items[i].Likes++
			}
			found = true
			break
		}
	}
	f.mu.Unlock()

	if !found {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), f.confirmTimeout)
		defer cancel()
		if _, err := f.api.ToggleLike(ctx, id); err != nil {
			f.log.Warn("like toggle failed, state diverged until next refetch",
				zap.String("review_id", id),
				zap.Error(err),
			)
		}
	}()
}

// Remove deletes a review locally and fires the confirming call.
func (f *ReviewFeed) Remove(id string) {
	f.mu.Lock()
	removed := false
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			removed = true
			break
		}
	}
	delete(f.expanded, id)
	f.mu.Unlock()

	if !removed {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), f.confirmTimeout)
		defer cancel()
		if err := f.api.Delete(ctx, id); err != nil {
			f.log.Warn("review delete failed, state diverged until next refetch",
				zap.String("review_id", id),
				zap.Error(err),
			)
		}
	}()
}

// ToggleExpanded flips the reply panel for a review and returns the
// new state. Pure UI state, never sent anywhere.
func (f *ReviewFeed) ToggleExpanded(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expanded[id] = !f.expanded[id]
	return f.expanded[id]
}

// IsExpanded reports whether the reply panel is open.
func (f *ReviewFeed) IsExpanded(id string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.expanded[id]
}
