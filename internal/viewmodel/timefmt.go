package viewmodel

import (
	"fmt"
	"strings"
	"time"
)

// DisplayZone is the timezone every timestamp is rendered in.
const DisplayZone = "Asia/Ho_Chi_Minh"

var displayLocation = func() *time.Location {
	loc, err := time.LoadLocation(DisplayZone)
	if err != nil {
		return time.FixedZone("ICT", 7*60*60)
	}
	return loc
}()

// ParseServerTime parses a backend timestamp. Timestamps without a
// timezone suffix are interpreted as UTC.
func ParseServerTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	formats := []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp: %q", s)
}

// FormatTimestamp renders a timestamp in Vietnam local time with
// relative phrasing for recent values: minutes/hours ago within the
// last day, "Hôm qua" for 24-48 hours ago, the full date beyond that.
func FormatTimestamp(t, now time.Time) string {
	t = t.In(displayLocation)
	now = now.In(displayLocation)
	age := now.Sub(t)

	switch {
	case age < time.Minute:
		return "Vừa xong"
	case age < time.Hour:
		return fmt.Sprintf("%d phút trước", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%d giờ trước", int(age.Hours()))
	case age < 48*time.Hour:
		return fmt.Sprintf("Hôm qua %s", t.Format("15:04"))
	default:
		return t.Format("02/01/2006 15:04")
	}
}

// FormatDate renders a date-only value in Vietnam local time.
func FormatDate(t time.Time) string {
	return t.In(displayLocation).Format("02/01/2006")
}
