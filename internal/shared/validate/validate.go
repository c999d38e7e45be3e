package validate

import (
	"math"
	"regexp"
	"time"
)

// Pure field predicates shared by services and middlewares. None of
// these raise; callers translate a false result into a domain error.

var (
	phoneRegex = regexp.MustCompile(`^[0-9]{10}$`)
	taxIDRegex = regexp.MustCompile(`^[0-9]{9}$`)
)

// DateLayout is the accepted wire format for purchase dates.
const DateLayout = "2006/01/02"

// Date reports whether t is a usable calendar instant.
func Date(t time.Time) bool {
	return !t.IsZero()
}

// ParseDate parses s in YYYY/MM/DD form and reports whether it is a
// real calendar date.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// PhoneNumber reports whether s is empty (the field is optional) or
// exactly 10 decimal digits.
func PhoneNumber(s string) bool {
	if s == "" {
		return true
	}
	return phoneRegex.MatchString(s)
}

// Latitude reports whether v is a valid latitude in [-90, 90].
func Latitude(v float64) bool {
	return !math.IsNaN(v) && v >= -90 && v <= 90
}

// Longitude reports whether v is a valid longitude in [-180, 180].
func Longitude(v float64) bool {
	return !math.IsNaN(v) && v >= -180 && v <= 180
}

// TaxID reports whether s is exactly 9 decimal digits.
func TaxID(s string) bool {
	return taxIDRegex.MatchString(s)
}
