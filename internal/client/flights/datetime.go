package flights

import (
	"fmt"
	"math"
	"time"
)

// FormatDate renders a calendar date the way the API expects it.
func FormatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// CalculateTripDuration returns the trip length in whole days, rounding up.
// A one-way trip (empty return date) or malformed input yields 0.
func CalculateTripDuration(departureDate, returnDate string) int {
	if returnDate == "" {
		return 0
	}
	dep, err := time.Parse("2006-01-02", departureDate)
	if err != nil {
		return 0
	}
	ret, err := time.Parse("2006-01-02", returnDate)
	if err != nil {
		return 0
	}
	return int(math.Ceil(ret.Sub(dep).Hours() / 24))
}

// ParseDateTime splits an API timestamp into display date and clock strings.
// Malformed input yields two empty strings.
func ParseDateTime(s string) (date, clock string) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		// leg timestamps frequently arrive without a zone offset
		t, err = time.Parse("2006-01-02T15:04:05", s)
		if err != nil {
			return "", ""
		}
	}
	return t.Format("2006-01-02"), t.Format("15:04")
}

// FormatDuration renders minutes as "2h 30m", "2h" or "45m".
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", mins)
	case mins == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
}
