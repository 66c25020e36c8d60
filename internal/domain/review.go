package domain

import "time"

// Review is a user review for a location. The client holds a locally
// mutated copy for optimistic UI (like count, expanded replies) that is
// overwritten on the next fetch.
type Review struct {
	ID         string    `json:"id"`
	LocationID string    `json:"location_id"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	UserAvatar string    `json:"user_avatar,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	Images     []string  `json:"images,omitempty"`
	Likes      int       `json:"likes"`
	IsLiked    bool      `json:"is_liked"`
	Replies    []Reply   `json:"replies,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ValidateRating checks the 1-5 rating bound.
func (r *Review) ValidateRating() error {
	if r.Rating < 1 || r.Rating > 5 {
		return ErrInvalidRating
	}
	return nil
}

// Reply is a nested comment under a review. Replies carry no rating.
type Reply struct {
	ID         string    `json:"id"`
	ReviewID   string    `json:"review_id"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	UserAvatar string    `json:"user_avatar,omitempty"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}
