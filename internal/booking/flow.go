// Package booking coordinates the slot-selection flow: fetching
// availability for every court of a location, maintaining the user's
// selection, and submitting the resulting draft.
package booking

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/datsan-vn/datsan-go/internal/domain"
	"github.com/datsan-vn/datsan-go/internal/dto"
	"github.com/datsan-vn/datsan-go/internal/logger"
	"github.com/datsan-vn/datsan-go/internal/slots"
)

// CourtAPI is the slice of the court service the flow needs.
type CourtAPI interface {
	ListByLocation(ctx context.Context, locationID string) ([]domain.Court, error)
	Availability(ctx context.Context, courtID, date string) (domain.AvailabilitySet, error)
}

// BookingAPI is the slice of the booking service the flow needs.
type BookingAPI interface {
	Create(ctx context.Context, req *dto.CreateBookingRequest) (*domain.Booking, error)
}

// Flow drives one booking attempt for a location. It is bound to the
// UI thread model of the original client: not safe for concurrent use.
type Flow struct {
	courts   CourtAPI
	bookings BookingAPI
	log      *logger.Logger

	location     *domain.Location
	courtList    []domain.Court
	availability map[string]domain.AvailabilitySet // by court id
	selection    *slots.Selection
}

// NewFlow creates a booking flow for one location.
func NewFlow(courts CourtAPI, bookings BookingAPI, location *domain.Location, log *logger.Logger) *Flow {
	if log == nil {
		log = logger.Get()
	}
	return &Flow{
		courts:       courts,
		bookings:     bookings,
		log:          log,
		location:     location,
		availability: make(map[string]domain.AvailabilitySet),
	}
}

// Open loads the location's courts and their availability for the
// date, then starts an empty selection on the first court.
func (f *Flow) Open(ctx context.Context, date string) error {
	courts, err := f.courts.ListByLocation(ctx, f.location.ID)
	if err != nil {
		return err
	}
	f.courtList = courts
	f.availability = f.fetchAvailability(ctx, date)

	var firstID string
	if len(courts) > 0 {
		firstID = courts[0].ID
	}
	f.selection = slots.NewSelection(firstID, date, f.location.PricePerHour, f.availability[firstID])
	return nil
}

// fetchAvailability queries every court of the location in parallel.
// One court's failure is isolated: it yields an empty set and the
// siblings are unaffected.
func (f *Flow) fetchAvailability(ctx context.Context, date string) map[string]domain.AvailabilitySet {
	results := make(map[string]domain.AvailabilitySet, len(f.courtList))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, court := range f.courtList {
		wg.Add(1)
		go func(courtID string) {
			defer wg.Done()
			set, err := f.courts.Availability(ctx, courtID, date)
			if err != nil {
				f.log.Warn("availability fetch failed, treating court as fully booked",
					zap.String("court_id", courtID),
					zap.String("date", date),
					zap.Error(err),
				)
				set = domain.AvailabilitySet{}
			}
			mu.Lock()
			results[courtID] = set
			mu.Unlock()
		}(court.ID)
	}

	wg.Wait()
	return results
}

// Courts returns the location's courts.
func (f *Flow) Courts() []domain.Court {
	return f.courtList
}

// Availability returns the fetched availability for a court.
func (f *Flow) Availability(courtID string) domain.AvailabilitySet {
	return f.availability[courtID]
}

// Selection returns the live selection.
func (f *Flow) Selection() *slots.Selection {
	return f.selection
}

// SelectCourt switches courts, clearing the selection.
func (f *Flow) SelectCourt(courtID string) {
	f.selection.SetCourt(courtID, f.availability[courtID])
}

// SelectDate switches dates: the selection clears and availability is
// re-fetched for every court at the location.
func (f *Flow) SelectDate(ctx context.Context, date string) {
	f.selection.SetDate(date)
	f.availability = f.fetchAvailability(ctx, date)
	f.selection.SetAvailability(f.availability[f.selection.CourtID()])
}

// Submit validates the draft and creates the booking. The backend is
// the sole authority; there is no compensating logic when it rejects
// the draft for a slot race, the error is surfaced as-is.
func (f *Flow) Submit(ctx context.Context, contactName, contactPhone string, method domain.PaymentMethod) (*domain.Booking, error) {
	draft := f.selection.Draft(contactName, contactPhone, method)
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	return f.bookings.Create(ctx, dto.FromDraft(draft))
}
