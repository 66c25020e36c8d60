package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/datsan-vn/datsan-go/internal/domain"
	"github.com/datsan-vn/datsan-go/internal/dto"
)

// MockCourtAPI serves canned courts and per-court availability.
type MockCourtAPI struct {
	mu           sync.Mutex
	courts       []domain.Court
	listErr      error
	availability map[string][]int
	failCourts   map[string]bool
	fetchCount   int
}

func (m *MockCourtAPI) ListByLocation(ctx context.Context, locationID string) ([]domain.Court, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.courts, nil
}

func (m *MockCourtAPI) Availability(ctx context.Context, courtID, date string) (domain.AvailabilitySet, error) {
	m.mu.Lock()
	m.fetchCount++
	m.mu.Unlock()
	if m.failCourts[courtID] {
		return nil, errors.New("availability backend down")
	}
	return domain.NewAvailabilitySet(m.availability[courtID]), nil
}

func (m *MockCourtAPI) fetches() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetchCount
}

// MockBookingAPI records created bookings.
type MockBookingAPI struct {
	created   []*dto.CreateBookingRequest
	createErr error
}

func (m *MockBookingAPI) Create(ctx context.Context, req *dto.CreateBookingRequest) (*domain.Booking, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, req)
	return &domain.Booking{
		ID:      "bkg-1",
		CourtID: req.CourtID,
		Date:    req.Date,
		Hours:   req.Hours,
		Status:  domain.BookingStatusPending,
	}, nil
}

func testLocation() *domain.Location {
	return &domain.Location{
		ID:           "loc-1",
		Name:         "San Thanh Cong",
		PricePerHour: 80000,
		Status:       domain.LocationStatusActive,
	}
}

func threeCourts() []domain.Court {
	return []domain.Court{
		{ID: "court-1", LocationID: "loc-1", Name: "Sân 1"},
		{ID: "court-2", LocationID: "loc-1", Name: "Sân 2"},
		{ID: "court-3", LocationID: "loc-1", Name: "Sân 3"},
	}
}

func TestFlow_OpenFetchesEveryCourt(t *testing.T) {
	courts := &MockCourtAPI{
		courts: threeCourts(),
		availability: map[string][]int{
			"court-1": {5, 6, 7},
			"court-2": {18, 19},
			"court-3": {10},
		},
	}
	flow := NewFlow(courts, &MockBookingAPI{}, testLocation(), nil)

	assert.NoError(t, flow.Open(context.Background(), "2026-09-05"))
	assert.Len(t, flow.Courts(), 3)
	assert.Equal(t, 3, courts.fetches())

	assert.Equal(t, 3, flow.Availability("court-1").Len())
	assert.True(t, flow.Availability("court-2").Contains(18))

	// selection starts empty on the first court
	sel := flow.Selection()
	assert.Equal(t, "court-1", sel.CourtID())
	assert.Empty(t, sel.Hours())
}

func TestFlow_FailedCourtIsTreatedAsFullyBooked(t *testing.T) {
	courts := &MockCourtAPI{
		courts: threeCourts(),
		availability: map[string][]int{
			"court-1": {5, 6},
			"court-3": {18},
		},
		failCourts: map[string]bool{"court-2": true},
	}
	flow := NewFlow(courts, &MockBookingAPI{}, testLocation(), nil)

	assert.NoError(t, flow.Open(context.Background(), "2026-09-05"))

	// the failed court yields an empty set, siblings are unaffected
	assert.Equal(t, 0, flow.Availability("court-2").Len())
	assert.Equal(t, 2, flow.Availability("court-1").Len())
	assert.True(t, flow.Availability("court-3").Contains(18))

	flow.SelectCourt("court-2")
	assert.ErrorIs(t, flow.Selection().Toggle(18), domain.ErrHourNotAvailable)
}

func TestFlow_OpenPropagatesCourtListError(t *testing.T) {
	courts := &MockCourtAPI{listErr: errors.New("backend down")}
	flow := NewFlow(courts, &MockBookingAPI{}, testLocation(), nil)
	assert.Error(t, flow.Open(context.Background(), "2026-09-05"))
}

func TestFlow_SelectCourtClearsSelection(t *testing.T) {
	courts := &MockCourtAPI{
		courts: threeCourts(),
		availability: map[string][]int{
			"court-1": {18, 19},
			"court-2": {18},
		},
	}
	flow := NewFlow(courts, &MockBookingAPI{}, testLocation(), nil)
	assert.NoError(t, flow.Open(context.Background(), "2026-09-05"))

	assert.NoError(t, flow.Selection().Toggle(18))
	assert.NoError(t, flow.Selection().Toggle(19))

	flow.SelectCourt("court-2")
	assert.Empty(t, flow.Selection().Hours())
	assert.Equal(t, "court-2", flow.Selection().CourtID())

	// the new court's availability governs
	assert.ErrorIs(t, flow.Selection().Toggle(19), domain.ErrHourNotAvailable)
	assert.NoError(t, flow.Selection().Toggle(18))
}

func TestFlow_SelectDateRefetchesAllCourts(t *testing.T) {
	courts := &MockCourtAPI{
		courts: threeCourts(),
		availability: map[string][]int{
			"court-1": {18},
			"court-2": {18},
			"court-3": {18},
		},
	}
	flow := NewFlow(courts, &MockBookingAPI{}, testLocation(), nil)
	assert.NoError(t, flow.Open(context.Background(), "2026-09-05"))
	assert.NoError(t, flow.Selection().Toggle(18))

	flow.SelectDate(context.Background(), "2026-09-06")

	assert.Empty(t, flow.Selection().Hours())
	assert.Equal(t, "2026-09-06", flow.Selection().Date())
	assert.Equal(t, 6, courts.fetches(), "3 on open + 3 on date switch")
}

func TestFlow_Submit(t *testing.T) {
	courts := &MockCourtAPI{
		courts:       threeCourts(),
		availability: map[string][]int{"court-1": {18, 19, 20}},
	}
	bookings := &MockBookingAPI{}
	flow := NewFlow(courts, bookings, testLocation(), nil)
	assert.NoError(t, flow.Open(context.Background(), "2026-09-05"))

	assert.NoError(t, flow.Selection().Toggle(19))
	assert.NoError(t, flow.Selection().Toggle(18))

	booked, err := flow.Submit(context.Background(), "Nguyen Van A", "0901234567", domain.PaymentMethodCash)
	assert.NoError(t, err)
	assert.Equal(t, "bkg-1", booked.ID)

	assert.Len(t, bookings.created, 1)
	req := bookings.created[0]
	assert.Equal(t, "court-1", req.CourtID)
	assert.Equal(t, []int{19, 18}, req.Hours, "literal selection order, never a collapsed range")
	assert.Equal(t, domain.PaymentMethodCash, req.PaymentMethod)
}

func TestFlow_SubmitRejectsInvalidDraft(t *testing.T) {
	courts := &MockCourtAPI{
		courts:       threeCourts(),
		availability: map[string][]int{"court-1": {18}},
	}
	bookings := &MockBookingAPI{}
	flow := NewFlow(courts, bookings, testLocation(), nil)
	assert.NoError(t, flow.Open(context.Background(), "2026-09-05"))

	// nothing selected
	_, err := flow.Submit(context.Background(), "Nguyen Van A", "0901234567", domain.PaymentMethodCash)
	assert.ErrorIs(t, err, domain.ErrEmptySelection)
	assert.Empty(t, bookings.created)

	// missing contact name
	assert.NoError(t, flow.Selection().Toggle(18))
	_, err = flow.Submit(context.Background(), "", "0901234567", domain.PaymentMethodCash)
	assert.ErrorIs(t, err, domain.ErrMissingContactName)
	assert.Empty(t, bookings.created)
}

func TestFlow_SubmitSurfacesConflictUntouched(t *testing.T) {
	courts := &MockCourtAPI{
		courts:       threeCourts(),
		availability: map[string][]int{"court-1": {18}},
	}
	conflict := errors.New("slot taken")
	bookings := &MockBookingAPI{createErr: conflict}
	flow := NewFlow(courts, bookings, testLocation(), nil)
	assert.NoError(t, flow.Open(context.Background(), "2026-09-05"))
	assert.NoError(t, flow.Selection().Toggle(18))

	_, err := flow.Submit(context.Background(), "Nguyen Van A", "0901234567", domain.PaymentMethodCash)
	assert.ErrorIs(t, err, conflict)
}
