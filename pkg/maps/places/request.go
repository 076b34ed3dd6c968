// Package places builds and dispatches Place Details requests.
package places

import (
	"context"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/richxcame/mapsclient/pkg/maps"
)

// Endpoint is the Place Details API resource.
var Endpoint = maps.Endpoint{Family: "places", Service: maps.ServiceMaps, Path: "/place/details/json"}

// NewSessionToken returns a random token grouping an autocomplete session
// with the details call that ends it.
func NewSessionToken() string {
	return uuid.NewString()
}

type params struct {
	placeID               string
	fields                []Field
	language              *maps.Language
	region                *maps.Region
	reviewsNoTranslations *bool
	reviewsSort           *SortOrder
	sessionToken          *string
}

func (p params) hasReviewsField() bool {
	return len(p.fields) == 0 || slices.Contains(p.fields, FieldReviews)
}

// Request accumulates the parameters of one place details query.
type Request struct {
	core      maps.Core[params]
	transport maps.Transport
}

// New starts a request for the place with the given id.
func New(transport maps.Transport, placeID string) *Request {
	return &Request{
		core:      maps.NewCore(params{placeID: placeID}, rules, encode),
		transport: transport,
	}
}

// WithFields restricts the response to the given fields. Repeated calls
// accumulate; without any call every field is returned.
func (r *Request) WithFields(fields ...Field) *Request {
	r.core.Update(func(p *params) { p.fields = append(p.fields, fields...) })
	return r
}

// WithLanguage sets the language of the returned text.
func (r *Request) WithLanguage(language maps.Language) *Request {
	r.core.Update(func(p *params) { p.language = &language })
	return r
}

// WithRegion biases results towards a region.
func (r *Request) WithRegion(region maps.Region) *Request {
	r.core.Update(func(p *params) { p.region = &region })
	return r
}

// WithReviewsNoTranslations returns reviews in their original language.
func (r *Request) WithReviewsNoTranslations(noTranslations bool) *Request {
	r.core.Update(func(p *params) { p.reviewsNoTranslations = &noTranslations })
	return r
}

// WithReviewsSort orders the returned reviews. Needs the reviews field.
func (r *Request) WithReviewsSort(order SortOrder) *Request {
	r.core.Update(func(p *params) { p.reviewsSort = &order })
	return r
}

// WithSessionToken attaches an autocomplete session token.
func (r *Request) WithSessionToken(token string) *Request {
	r.core.Update(func(p *params) { p.sessionToken = &token })
	return r
}

// Validate checks the parameter combination.
func (r *Request) Validate() error {
	return r.core.Validate()
}

// Query returns the encoded query of a validated request, without the key.
func (r *Request) Query() (string, error) {
	return r.core.Query()
}

// Params returns the query pairs of a validated request.
func (r *Request) Params() (maps.Query, error) {
	return r.core.Params()
}

// Get dispatches a validated request.
func (r *Request) Get(ctx context.Context) (*Response, error) {
	query, err := r.core.Query()
	if err != nil {
		return nil, err
	}
	return maps.Fetch[Response](ctx, r.transport, Endpoint, query)
}

// Execute validates and dispatches the request.
func (r *Request) Execute(ctx context.Context) (*Response, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r.Get(ctx)
}

func encode(p params) maps.Query {
	var q maps.Query
	q.Add("place_id", p.placeID)
	if len(p.fields) > 0 {
		q.Add("fields", joinFields(p.fields))
	}
	if p.language != nil {
		q.Add("language", p.language.String())
	}
	if p.region != nil {
		q.Add("region", p.region.String())
	}
	if p.reviewsNoTranslations != nil {
		q.Add("reviews_no_translations", maps.FormatBool(*p.reviewsNoTranslations))
	}
	if p.reviewsSort != nil {
		q.Add("reviews_sort", p.reviewsSort.String())
	}
	if p.sessionToken != nil {
		q.Add("sessiontoken", *p.sessionToken)
	}
	return q
}

func joinFields(fields []Field) string {
	codes := make([]string, len(fields))
	for i, f := range fields {
		codes[i] = string(f)
	}
	return strings.Join(codes, ",")
}
