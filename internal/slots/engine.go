// Package slots derives which hours of a court are selectable on a
// date and summarizes the user's selection for display and pricing.
package slots

import (
	"fmt"
	"sort"
	"strings"

	"github.com/datsan-vn/datsan-go/internal/domain"
)

const (
	// FirstHour and LastHour bound the bookable grid, inclusive.
	FirstHour = 5
	LastHour  = 22
	// GridSize is the number of hour cells rendered per court/date.
	GridSize = LastHour - FirstHour + 1
)

// Hours returns the fixed hour grid, 05:00 through 22:00.
func Hours() []int {
	hours := make([]int, 0, GridSize)
	for h := FirstHour; h <= LastHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// InGrid reports whether the hour falls inside the bookable range.
func InGrid(hour int) bool {
	return hour >= FirstHour && hour <= LastHour
}

// Selection is the ordered set of hours chosen for one court on one
// date. Every member is unique and was available at the time it was
// added; contiguity is deliberately not enforced.
type Selection struct {
	courtID      string
	date         string
	pricePerHour int64
	hours        []int
	availability domain.AvailabilitySet
}

// NewSelection creates an empty selection for a court/date pair.
func NewSelection(courtID, date string, pricePerHour int64, availability domain.AvailabilitySet) *Selection {
	return &Selection{
		courtID:      courtID,
		date:         date,
		pricePerHour: pricePerHour,
		availability: availability,
	}
}

// CourtID returns the selected court.
func (s *Selection) CourtID() string { return s.courtID }

// Date returns the selected date (YYYY-MM-DD).
func (s *Selection) Date() string { return s.date }

// Hours returns the chosen hours in selection order.
func (s *Selection) Hours() []int {
	out := make([]int, len(s.hours))
	copy(out, s.hours)
	return out
}

// Contains reports whether the hour is currently selected.
func (s *Selection) Contains(hour int) bool {
	for _, h := range s.hours {
		if h == hour {
			return true
		}
	}
	return false
}

// Toggle adds the hour if it is available and not yet selected, and
// removes it if it is already selected. Toggling an unavailable hour is
// rejected; toggling twice returns the selection to its prior state.
func (s *Selection) Toggle(hour int) error {
	if !InGrid(hour) {
		return domain.ErrHourOutOfRange
	}
	for i, h := range s.hours {
		if h == hour {
			s.hours = append(s.hours[:i], s.hours[i+1:]...)
			return nil
		}
	}
	if !s.availability.Contains(hour) {
		return domain.ErrHourNotAvailable
	}
	s.hours = append(s.hours, hour)
	return nil
}

// SetCourt switches the selected court, clearing the selection and
// swapping in the new court's availability.
func (s *Selection) SetCourt(courtID string, availability domain.AvailabilitySet) {
	s.courtID = courtID
	s.availability = availability
	s.hours = nil
}

// SetDate switches the selected date, clearing the selection. The
// caller re-fetches availability for the new date and installs it via
// SetAvailability.
func (s *Selection) SetDate(date string) {
	s.date = date
	s.hours = nil
}

// SetAvailability installs a freshly fetched availability set.
func (s *Selection) SetAvailability(availability domain.AvailabilitySet) {
	s.availability = availability
}

// Summary renders the selection for display. A contiguous run of hours
// collapses to "{min}:00 - {max+1}:00"; anything else is a comma-joined
// list of "{h}h" entries in selection order. Display only: price and
// submission always use the literal hour list.
func (s *Selection) Summary() string {
	if len(s.hours) == 0 {
		return ""
	}

	sorted := make([]int, len(s.hours))
	copy(sorted, s.hours)
	sort.Ints(sorted)

	if isContiguous(sorted) {
		return fmt.Sprintf("%d:00 - %d:00", sorted[0], sorted[len(sorted)-1]+1)
	}

	parts := make([]string, len(s.hours))
	for i, h := range s.hours {
		parts[i] = fmt.Sprintf("%dh", h)
	}
	return strings.Join(parts, ", ")
}

// TotalPrice returns len(hours) * price per hour.
func (s *Selection) TotalPrice() int64 {
	return int64(len(s.hours)) * s.pricePerHour
}

// Deposit returns the upfront amount for the payment method.
func (s *Selection) Deposit(method domain.PaymentMethod) int64 {
	if method == domain.PaymentMethodCash {
		return int64(float64(s.TotalPrice()) * domain.DepositRate)
	}
	return s.TotalPrice()
}

// Draft builds a booking draft from the current selection.
func (s *Selection) Draft(contactName, contactPhone string, method domain.PaymentMethod) *domain.BookingDraft {
	return &domain.BookingDraft{
		CourtID:      s.courtID,
		Date:         s.date,
		Hours:        s.Hours(),
		PricePerHour: s.pricePerHour,
		ContactName:  contactName,
		ContactPhone: contactPhone,
		Payment:      method,
	}
}

// isContiguous reports whether sorted hours form the exact interval
// [min, max] with no gaps.
func isContiguous(sorted []int) bool {
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			return false
		}
	}
	return true
}
