package places

import "github.com/richxcame/mapsclient/pkg/maps"

// Field selects one part of the place record. Fields are billed by SKU, so
// requesting only the needed ones keeps the call cheap.
type Field string

// Basic
const (
	FieldAddressComponent             Field = "address_components"
	FieldAdrAddress                   Field = "adr_address"
	FieldBusinessStatus               Field = "business_status"
	FieldFormattedAddress             Field = "formatted_address"
	FieldGeometry                     Field = "geometry"
	FieldIcon                         Field = "icon"
	FieldIconBackgroundColor          Field = "icon_background_color"
	FieldIconMaskBaseURI              Field = "icon_mask_base_uri"
	FieldName                         Field = "name"
	FieldPhotos                       Field = "photos"
	FieldPlaceID                      Field = "place_id"
	FieldPlusCode                     Field = "plus_code"
	FieldTypes                        Field = "types"
	FieldURL                          Field = "url"
	FieldUTCOffset                    Field = "utc_offset"
	FieldVicinity                     Field = "vicinity"
	FieldWheelchairAccessibleEntrance Field = "wheelchair_accessible_entrance"
)

// Contact
const (
	FieldCurrentOpeningHours      Field = "current_opening_hours"
	FieldFormattedPhoneNumber     Field = "formatted_phone_number"
	FieldInternationalPhoneNumber Field = "international_phone_number"
	FieldOpeningHours             Field = "opening_hours"
	FieldSecondaryOpeningHours    Field = "secondary_opening_hours"
	FieldWebsite                  Field = "website"
)

// Atmosphere
const (
	FieldCurbsidePickup       Field = "curbside_pickup"
	FieldDelivery             Field = "delivery"
	FieldDineIn               Field = "dine_in"
	FieldEditorialSummary     Field = "editorial_summary"
	FieldPriceLevel           Field = "price_level"
	FieldRating               Field = "rating"
	FieldReservable           Field = "reservable"
	FieldReviews              Field = "reviews"
	FieldServesBeer           Field = "serves_beer"
	FieldServesBreakfast      Field = "serves_breakfast"
	FieldServesBrunch         Field = "serves_brunch"
	FieldServesDinner         Field = "serves_dinner"
	FieldServesLunch          Field = "serves_lunch"
	FieldServesVegetarianFood Field = "serves_vegetarian_food"
	FieldServesWine           Field = "serves_wine"
	FieldTakeout              Field = "takeout"
	FieldUserRatingsTotal     Field = "user_ratings_total"
)

var fields = maps.NewCodeTable("Field",
	FieldAddressComponent, FieldAdrAddress, FieldBusinessStatus, FieldFormattedAddress,
	FieldGeometry, FieldIcon, FieldIconBackgroundColor, FieldIconMaskBaseURI, FieldName,
	FieldPhotos, FieldPlaceID, FieldPlusCode, FieldTypes, FieldURL, FieldUTCOffset,
	FieldVicinity, FieldWheelchairAccessibleEntrance,
	FieldCurrentOpeningHours, FieldFormattedPhoneNumber, FieldInternationalPhoneNumber,
	FieldOpeningHours, FieldSecondaryOpeningHours, FieldWebsite,
	FieldCurbsidePickup, FieldDelivery, FieldDineIn, FieldEditorialSummary, FieldPriceLevel,
	FieldRating, FieldReservable, FieldReviews, FieldServesBeer, FieldServesBreakfast,
	FieldServesBrunch, FieldServesDinner, FieldServesLunch, FieldServesVegetarianFood,
	FieldServesWine, FieldTakeout, FieldUserRatingsTotal)

// ParseField looks up a field by its wire code.
func ParseField(code string) (Field, error) { return fields.Parse(code) }

// Fields lists every field that can be requested.
func Fields() []Field { return fields.All() }

func (f Field) String() string { return string(f) }

func (f Field) MarshalText() ([]byte, error) { return fields.Marshal(f) }

func (f *Field) UnmarshalText(text []byte) error { return fields.Unmarshal(text, f) }

// SortOrder orders the returned reviews. The service uses
// SortOrderMostRelevant when none is sent.
type SortOrder string

const (
	SortOrderMostRelevant SortOrder = "most_relevant"
	SortOrderNewest       SortOrder = "newest"
)

var sortOrders = maps.NewCodeTable("SortOrder", SortOrderMostRelevant, SortOrderNewest)

// ParseSortOrder looks up a review order by its wire code.
func ParseSortOrder(code string) (SortOrder, error) { return sortOrders.Parse(code) }

// SortOrders lists every review order.
func SortOrders() []SortOrder { return sortOrders.All() }

func (s SortOrder) String() string { return string(s) }

// Label is the human readable name.
func (s SortOrder) Label() string {
	switch s {
	case SortOrderMostRelevant:
		return "Most Relevant"
	case SortOrderNewest:
		return "Newest"
	default:
		return string(s)
	}
}

func (s SortOrder) MarshalText() ([]byte, error) { return sortOrders.Marshal(s) }

func (s *SortOrder) UnmarshalText(text []byte) error { return sortOrders.Unmarshal(text, s) }
