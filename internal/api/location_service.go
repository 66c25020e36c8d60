package api

import (
	"context"

	"github.com/datsan-vn/datsan-go/internal/domain"
)

// LocationService wraps the venue listing endpoints
type LocationService struct {
	client *Client
}

// NewLocationService creates a new LocationService
func NewLocationService(client *Client) *LocationService {
	return &LocationService{client: client}
}

// List fetches every location. Filtering, sorting and pagination are
// applied client-side over this list.
func (s *LocationService) List(ctx context.Context) ([]domain.Location, error) {
	var out []domain.Location
	if err := s.client.get(ctx, "/locations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches one location by id
func (s *LocationService) Get(ctx context.Context, id string) (*domain.Location, error) {
	var out domain.Location
	if err := s.client.get(ctx, "/locations/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
