package places

import "github.com/richxcame/mapsclient/pkg/maps"

// Response is the body of a place details reply.
type Response struct {
	Status           maps.Status `json:"status"`
	ErrorMessage     string      `json:"error_message,omitempty"`
	HTMLAttributions []string    `json:"html_attributions"`
	Result           Place       `json:"result"`
}

// Err reports a failure status as *maps.APIError.
func (r *Response) Err() error {
	return r.Status.Err(Endpoint.Family, r.ErrorMessage)
}

// Place holds the requested fields; fields that were not requested stay zero.
type Place struct {
	PlaceID                  string             `json:"place_id"`
	Name                     string             `json:"name"`
	BusinessStatus           string             `json:"business_status,omitempty"`
	FormattedAddress         string             `json:"formatted_address,omitempty"`
	AddressComponents        []AddressComponent `json:"address_components,omitempty"`
	AdrAddress               string             `json:"adr_address,omitempty"`
	Geometry                 *Geometry          `json:"geometry,omitempty"`
	Icon                     string             `json:"icon,omitempty"`
	PlusCode                 *PlusCode          `json:"plus_code,omitempty"`
	Types                    []string           `json:"types,omitempty"`
	URL                      string             `json:"url,omitempty"`
	UTCOffset                *int               `json:"utc_offset,omitempty"`
	Vicinity                 string             `json:"vicinity,omitempty"`
	FormattedPhoneNumber     string             `json:"formatted_phone_number,omitempty"`
	InternationalPhoneNumber string             `json:"international_phone_number,omitempty"`
	OpeningHours             *OpeningHours      `json:"opening_hours,omitempty"`
	CurrentOpeningHours      *OpeningHours      `json:"current_opening_hours,omitempty"`
	Website                  string             `json:"website,omitempty"`
	PriceLevel               *int               `json:"price_level,omitempty"`
	Rating                   float64            `json:"rating,omitempty"`
	UserRatingsTotal         int                `json:"user_ratings_total,omitempty"`
	EditorialSummary         *EditorialSummary  `json:"editorial_summary,omitempty"`
	Reviews                  []Review           `json:"reviews,omitempty"`
	Photos                   []Photo            `json:"photos,omitempty"`
	Takeout                  *bool              `json:"takeout,omitempty"`
	Delivery                 *bool              `json:"delivery,omitempty"`
	DineIn                   *bool              `json:"dine_in,omitempty"`
	Reservable               *bool              `json:"reservable,omitempty"`
	WheelchairAccessible     *bool              `json:"wheelchair_accessible_entrance,omitempty"`
}

type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

type Geometry struct {
	Location maps.LatLng  `json:"location"`
	Viewport *maps.Bounds `json:"viewport,omitempty"`
}

type PlusCode struct {
	GlobalCode   string `json:"global_code"`
	CompoundCode string `json:"compound_code,omitempty"`
}

type OpeningHours struct {
	OpenNow     *bool    `json:"open_now,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

type EditorialSummary struct {
	Language string `json:"language,omitempty"`
	Overview string `json:"overview,omitempty"`
}

type Review struct {
	AuthorName              string `json:"author_name"`
	Rating                  int    `json:"rating"`
	Text                    string `json:"text"`
	Time                    int64  `json:"time"`
	RelativeTimeDescription string `json:"relative_time_description"`
	Language                string `json:"language,omitempty"`
	OriginalLanguage        string `json:"original_language,omitempty"`
	Translated              bool   `json:"translated,omitempty"`
}

type Photo struct {
	PhotoReference   string   `json:"photo_reference"`
	Height           int      `json:"height"`
	Width            int      `json:"width"`
	HTMLAttributions []string `json:"html_attributions"`
}
