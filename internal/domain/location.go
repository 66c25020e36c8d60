package domain

// LocationStatus represents the operational status of a location
type LocationStatus string

const (
	LocationStatusActive      LocationStatus = "ACTIVE"
	LocationStatusMaintenance LocationStatus = "MAINTENANCE"
)

// IsValid checks if the status is a valid LocationStatus
func (s LocationStatus) IsValid() bool {
	switch s {
	case LocationStatusActive, LocationStatusMaintenance:
		return true
	}
	return false
}

// String returns the string representation of LocationStatus
func (s LocationStatus) String() string {
	return string(s)
}

// Location represents a badminton venue with one or more courts.
// Locations are owned by the backend and read-only to the client.
type Location struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Address      string         `json:"address"`
	Description  string         `json:"description,omitempty"`
	Phone        string         `json:"phone,omitempty"`
	PricePerHour int64          `json:"price_per_hour"`
	Rating       float64        `json:"rating"`
	Status       LocationStatus `json:"status"`
	OpenTime     string         `json:"open_time,omitempty"`  // HH:mm
	CloseTime    string         `json:"close_time,omitempty"` // HH:mm
	Images       []string       `json:"images,omitempty"`
}

// IsBookable reports whether the location accepts new bookings.
func (l *Location) IsBookable() bool {
	return l.Status == LocationStatusActive
}

// Court represents a single court inside a location.
type Court struct {
	ID         string `json:"id"`
	LocationID string `json:"location_id"`
	Name       string `json:"name"`
	OpenTime   string `json:"open_time,omitempty"`  // HH:mm
	CloseTime  string `json:"close_time,omitempty"` // HH:mm
}

// AvailabilitySet is the server-declared set of bookable hours (0-23)
// for one court on one date. The client never computes availability,
// it only looks hours up against this set.
type AvailabilitySet map[int]bool

// NewAvailabilitySet builds a set from the backend's flat hour list.
func NewAvailabilitySet(hours []int) AvailabilitySet {
	set := make(AvailabilitySet, len(hours))
	for _, h := range hours {
		set[h] = true
	}
	return set
}

// Contains reports whether the hour is bookable.
func (a AvailabilitySet) Contains(hour int) bool {
	return a[hour]
}

// Len returns the number of bookable hours.
func (a AvailabilitySet) Len() int {
	return len(a)
}
