package maps

import "time"

// Distance is a length in meters with its localized text.
type Distance struct {
	Meters int    `json:"value"`
	Text   string `json:"text"`
}

// Duration is a length of time in seconds with its localized text.
type Duration struct {
	Seconds int    `json:"value"`
	Text    string `json:"text"`
}

// Value returns the duration as a time.Duration.
func (d Duration) Value() time.Duration {
	return time.Duration(d.Seconds) * time.Second
}

// LocalTime is an instant reported together with the time zone it is
// displayed in.
type LocalTime struct {
	Unix     int64  `json:"value"`
	Text     string `json:"text"`
	TimeZone string `json:"time_zone"`
}

// Time converts the instant into the reported time zone, or UTC when the
// zone is unknown.
func (t LocalTime) Time() time.Time {
	instant := time.Unix(t.Unix, 0)
	if loc, err := time.LoadLocation(t.TimeZone); err == nil && t.TimeZone != "" {
		return instant.In(loc)
	}
	return instant.UTC()
}

// Fare is the total transit fare of a route.
type Fare struct {
	Currency string  `json:"currency"`
	Value    float64 `json:"value"`
	Text     string  `json:"text"`
}

// Polyline is an encoded polyline.
type Polyline struct {
	Points string `json:"points"`
}

// Bounds is a viewport.
type Bounds struct {
	Northeast LatLng `json:"northeast"`
	Southwest LatLng `json:"southwest"`
}
