package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/datsan-vn/datsan-go/internal/domain"
	"github.com/datsan-vn/datsan-go/internal/dto"
)

// BookingService wraps the booking endpoints
type BookingService struct {
	client *Client
}

// NewBookingService creates a new BookingService
func NewBookingService(client *Client) *BookingService {
	return &BookingService{client: client}
}

// Create submits a booking. The backend is the sole authority on slot
// conflicts; a race with another user comes back as a 409 and is
// surfaced untouched. An idempotency key guards against duplicate
// submission when the connection drops mid-request.
func (s *BookingService) Create(ctx context.Context, req *dto.CreateBookingRequest) (*domain.Booking, error) {
	headers := http.Header{}
	headers.Set(IdempotencyKeyHeader, uuid.New().String())

	var out domain.Booking
	if err := s.client.do(ctx, http.MethodPost, "/bookings", nil, req, &out, headers); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListMine fetches the current user's bookings
func (s *BookingService) ListMine(ctx context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	if err := s.client.get(ctx, "/bookings/me", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Cancel cancels a booking by id
func (s *BookingService) Cancel(ctx context.Context, id string) error {
	return s.client.delete(ctx, "/bookings/"+id)
}
