package domain

import (
	"strings"
	"time"
)

// PaymentMethod represents how a booking is paid
type PaymentMethod string

const (
	// PaymentMethodCash is the deposit flow: 50% upfront by bank
	// transfer, the remainder paid on-site.
	PaymentMethodCash PaymentMethod = "CASH"
	// PaymentMethodVNPay charges the full total through VNPAY.
	PaymentMethodVNPay PaymentMethod = "VNPAY"
)

// IsValid checks if the method is a valid PaymentMethod
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodVNPay:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// DepositRate is the upfront fraction for the CASH deposit flow.
const DepositRate = 0.5

// BookingStatus represents the status of a submitted booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// String returns the string representation of BookingStatus
func (s BookingStatus) String() string {
	return string(s)
}

// BookingDraft is the client-side booking under construction. It is
// created when the user proceeds to confirmation and discarded if they
// navigate away before submission. The backend booking-creation call is
// the sole authority; the draft carries the literal slot list, never a
// collapsed range.
type BookingDraft struct {
	CourtID      string        `json:"court_id"`
	Date         string        `json:"date"` // YYYY-MM-DD
	Hours        []int         `json:"hours"`
	PricePerHour int64         `json:"price_per_hour"`
	ContactName  string        `json:"contact_name"`
	ContactPhone string        `json:"contact_phone"`
	Payment      PaymentMethod `json:"payment_method"`
}

// TotalPrice returns len(hours) * price per hour.
func (d *BookingDraft) TotalPrice() int64 {
	return int64(len(d.Hours)) * d.PricePerHour
}

// DepositAmount returns the upfront amount for the chosen payment
// method: half the total for CASH, the full total for VNPAY.
func (d *BookingDraft) DepositAmount() int64 {
	if d.Payment == PaymentMethodCash {
		return int64(float64(d.TotalPrice()) * DepositRate)
	}
	return d.TotalPrice()
}

// Validate validates the draft before submission. Contiguity of hours
// is deliberately not enforced; split bookings are allowed.
func (d *BookingDraft) Validate() error {
	if strings.TrimSpace(d.CourtID) == "" {
		return ErrInvalidCourtID
	}
	if _, err := time.Parse("2006-01-02", d.Date); err != nil {
		return ErrInvalidBookingDate
	}
	if len(d.Hours) == 0 {
		return ErrEmptySelection
	}
	if strings.TrimSpace(d.ContactName) == "" {
		return ErrMissingContactName
	}
	if strings.TrimSpace(d.ContactPhone) == "" {
		return ErrMissingContactPhone
	}
	if !d.Payment.IsValid() {
		return ErrInvalidPaymentMethod
	}
	return nil
}

// Booking is a server-side booking as returned by the backend.
type Booking struct {
	ID           string        `json:"id"`
	CourtID      string        `json:"court_id"`
	LocationID   string        `json:"location_id"`
	UserID       string        `json:"user_id"`
	Date         string        `json:"date"`
	Hours        []int         `json:"hours"`
	TotalPrice   int64         `json:"total_price"`
	Payment      PaymentMethod `json:"payment_method"`
	Status       BookingStatus `json:"status"`
	ContactName  string        `json:"contact_name"`
	ContactPhone string        `json:"contact_phone"`
	CreatedAt    time.Time     `json:"created_at"`
}
