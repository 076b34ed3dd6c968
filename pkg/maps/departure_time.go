package maps

import (
	"strconv"
	"time"
)

// TimeLayout is used when times appear in messages.
const TimeLayout = "2006-01-02 03:04:05 PM"

const departNowCode = "now"

// FormatTime renders t for diagnostics.
func FormatTime(t time.Time) string {
	return t.Format(TimeLayout)
}

// UnixCode renders t as the wire form: seconds since the Unix epoch.
func UnixCode(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}

// DepartureTime is either "now" or a fixed instant.
type DepartureTime struct {
	now bool
	at  time.Time
}

// DepartNow departs at the time the request is served.
func DepartNow() DepartureTime {
	return DepartureTime{now: true}
}

// DepartAt departs at t.
func DepartAt(t time.Time) DepartureTime {
	return DepartureTime{at: t}
}

// ParseDepartureTime accepts "now" or Unix seconds.
func ParseDepartureTime(code string) (DepartureTime, error) {
	if code == departNowCode {
		return DepartNow(), nil
	}
	secs, err := strconv.ParseInt(code, 10, 64)
	if err != nil {
		return DepartureTime{}, &InvalidCodeError{Type: "DepartureTime", Code: code}
	}
	return DepartAt(time.Unix(secs, 0)), nil
}

// IsNow reports whether this is the "now" departure.
func (d DepartureTime) IsNow() bool {
	return d.now
}

// Time returns the fixed instant, false for "now".
func (d DepartureTime) Time() (time.Time, bool) {
	return d.at, !d.now
}

// Code renders the wire form.
func (d DepartureTime) Code() string {
	if d.now {
		return departNowCode
	}
	return UnixCode(d.at)
}

// String renders the diagnostic form.
func (d DepartureTime) String() string {
	if d.now {
		return departNowCode
	}
	return FormatTime(d.at)
}
