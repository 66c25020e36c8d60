package api

import (
	"context"
	"errors"

	"github.com/datsan-vn/datsan-go/internal/domain"
	"github.com/datsan-vn/datsan-go/internal/dto"
)

// ReviewService wraps the review, reply and like endpoints
type ReviewService struct {
	client *Client
}

// NewReviewService creates a new ReviewService
func NewReviewService(client *Client) *ReviewService {
	return &ReviewService{client: client}
}

// ListByLocation fetches the reviews of one location, replies nested
func (s *ReviewService) ListByLocation(ctx context.Context, locationID string) ([]domain.Review, error) {
	var out []domain.Review
	if err := s.client.get(ctx, "/locations/"+locationID+"/reviews", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create posts a review for a location
func (s *ReviewService) Create(ctx context.Context, locationID string, req *dto.CreateReviewRequest) (*domain.Review, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, errors.New(msg)
	}
	var out domain.Review
	if err := s.client.post(ctx, "/locations/"+locationID+"/reviews", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update edits an existing review
func (s *ReviewService) Update(ctx context.Context, reviewID string, req *dto.UpdateReviewRequest) (*domain.Review, error) {
	var out domain.Review
	if err := s.client.put(ctx, "/reviews/"+reviewID, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a review
func (s *ReviewService) Delete(ctx context.Context, reviewID string) error {
	return s.client.delete(ctx, "/reviews/"+reviewID)
}

// Reply posts a reply under a review
func (s *ReviewService) Reply(ctx context.Context, reviewID string, req *dto.CreateReplyRequest) (*domain.Reply, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, errors.New(msg)
	}
	var out domain.Reply
	if err := s.client.post(ctx, "/reviews/"+reviewID+"/replies", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteReply removes a reply
func (s *ReviewService) DeleteReply(ctx context.Context, replyID string) error {
	return s.client.delete(ctx, "/replies/"+replyID)
}

// ToggleLike flips the caller's like on a review and returns the new
// count. The UI does not wait for this call; see store.ReviewFeed.
func (s *ReviewService) ToggleLike(ctx context.Context, reviewID string) (*dto.LikeResponse, error) {
	var out dto.LikeResponse
	if err := s.client.post(ctx, "/reviews/"+reviewID+"/like", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadImage uploads a review photo, compressing sources over 1 MB
func (s *ReviewService) UploadImage(ctx context.Context, fileName string, data []byte) (*dto.UploadResponse, error) {
	return s.client.uploadImage(ctx, "/reviews/images", "image", fileName, data)
}
