package dto

import "github.com/datsan-vn/datsan-go/internal/domain"

// CreateBookingRequest represents the request to create a booking.
// Hours always carry the literal slot list chosen by the user, never a
// collapsed range; the backend is the sole authority on conflicts.
type CreateBookingRequest struct {
	CourtID       string               `json:"court_id"`
	Date          string               `json:"date"` // YYYY-MM-DD
	Hours         []int                `json:"hours"`
	ContactName   string               `json:"contact_name"`
	ContactPhone  string               `json:"contact_phone"`
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
}

// FromDraft builds the wire request from a validated booking draft.
func FromDraft(d *domain.BookingDraft) *CreateBookingRequest {
	return &CreateBookingRequest{
		CourtID:       d.CourtID,
		Date:          d.Date,
		Hours:         d.Hours,
		ContactName:   d.ContactName,
		ContactPhone:  d.ContactPhone,
		PaymentMethod: d.Payment,
	}
}

// AvailabilityResponse is the per-court-per-date availability payload:
// a flat list of bookable hours supplied wholesale by the backend.
type AvailabilityResponse struct {
	CourtID string `json:"court_id"`
	Date    string `json:"date"`
	Hours   []int  `json:"hours"`
}
