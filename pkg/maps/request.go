package maps

import (
	"net/url"
	"slices"
	"strings"
)

// Param is one key/value pair of a query.
type Param struct {
	Key   string
	Value string
}

// Query is an ordered list of parameters. Order is significant: it is the
// canonical order of the request family and is kept when encoding.
type Query []Param

// Add appends a parameter.
func (q *Query) Add(key, value string) {
	*q = append(*q, Param{Key: key, Value: value})
}

// Get returns the value of the first parameter named key.
func (q Query) Get(key string) (string, bool) {
	for _, p := range q {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Encode renders "k1=v1&k2=v2" with form escaping, in order.
func (q Query) Encode() string {
	var b strings.Builder
	for i, p := range q {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// Rule inspects a parameter set and returns the first violation it finds.
type Rule[P any] func(params P) error

// Core is the state shared by all request families: the accumulated
// parameters, the family's rules and encoder, and the validation state.
//
// Any mutation through Update clears the validation state, so a query can only
// be produced for the exact parameters that passed validation.
type Core[P any] struct {
	params    P
	rules     []Rule[P]
	encode    func(P) Query
	validated bool
	query     Query
}

// NewCore returns an unvalidated core.
func NewCore[P any](params P, rules []Rule[P], encode func(P) Query) Core[P] {
	return Core[P]{params: params, rules: rules, encode: encode}
}

// Update applies mutate to the parameters and invalidates the request.
func (c *Core[P]) Update(mutate func(*P)) {
	mutate(&c.params)
	c.validated = false
	c.query = nil
}

// Snapshot returns the current parameters.
func (c *Core[P]) Snapshot() P {
	return c.params
}

// Validated reports whether the current parameters passed validation.
func (c *Core[P]) Validated() bool {
	return c.validated
}

// Validate runs the rules in order and stops at the first failure, leaving
// the request unchanged. On success the query is encoded and cached.
func (c *Core[P]) Validate() error {
	if c.validated {
		return nil
	}
	for _, rule := range c.rules {
		if err := rule(c.params); err != nil {
			return err
		}
	}
	c.query = c.encode(c.params)
	c.validated = true
	return nil
}

// Params returns the query pairs of a validated request.
func (c *Core[P]) Params() (Query, error) {
	if !c.validated {
		return nil, ErrNotValidated
	}
	return slices.Clone(c.query), nil
}

// Query returns the encoded query string of a validated request.
func (c *Core[P]) Query() (string, error) {
	if !c.validated {
		return "", ErrNotValidated
	}
	return c.query.Encode(), nil
}
