package domain

import "errors"

// Domain errors
var (
	// Slot errors
	ErrHourNotAvailable = errors.New("hour is not available for this court")
	ErrHourOutOfRange   = errors.New("hour is outside the bookable range")
	ErrEmptySelection   = errors.New("no hours selected")

	// Booking errors
	ErrInvalidCourtID       = errors.New("invalid court id")
	ErrInvalidBookingDate   = errors.New("invalid booking date")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrMissingContactName   = errors.New("contact name is required")
	ErrMissingContactPhone  = errors.New("contact phone is required")

	// Review errors
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// Session errors
	ErrNoSession      = errors.New("no active session")
	ErrSessionExpired = errors.New("session has expired")
)
