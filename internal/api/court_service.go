package api

import (
	"context"
	"net/url"

	"github.com/datsan-vn/datsan-go/internal/domain"
	"github.com/datsan-vn/datsan-go/internal/dto"
)

// CourtService wraps the court and availability endpoints
type CourtService struct {
	client *Client
}

// NewCourtService creates a new CourtService
func NewCourtService(client *Client) *CourtService {
	return &CourtService{client: client}
}

// ListByLocation fetches the courts of one location
func (s *CourtService) ListByLocation(ctx context.Context, locationID string) ([]domain.Court, error) {
	var out []domain.Court
	if err := s.client.get(ctx, "/locations/"+locationID+"/courts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Availability fetches the bookable hours for one court on one date
// (YYYY-MM-DD). The backend supplies the set wholesale; the client only
// looks hours up against it.
func (s *CourtService) Availability(ctx context.Context, courtID, date string) (domain.AvailabilitySet, error) {
	query := url.Values{}
	query.Set("date", date)

	var out dto.AvailabilityResponse
	if err := s.client.get(ctx, "/courts/"+courtID+"/availability", query, &out); err != nil {
		return nil, err
	}
	return domain.NewAvailabilitySet(out.Hours), nil
}
