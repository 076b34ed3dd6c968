package maps

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testParams struct {
	name  string
	tags  []string
	limit int
}

var errTooMany = errors.New("too many tags")

func newTestCore() Core[testParams] {
	rules := []Rule[testParams]{
		func(p testParams) error {
			if p.name == "" {
				return errors.New("name required")
			}
			return nil
		},
		func(p testParams) error {
			if p.limit > 0 && len(p.tags) > p.limit {
				return errTooMany
			}
			return nil
		},
	}
	encode := func(p testParams) Query {
		var q Query
		q.Add("name", p.name)
		for _, tag := range p.tags {
			q.Add("tag", tag)
		}
		return q
	}
	return NewCore(testParams{}, rules, encode)
}

func TestQueryEncodeKeepsOrder(t *testing.T) {
	q := Query{{Key: "destination", Value: "Boston"}, {Key: "origin", Value: "New York"}, {Key: "avoid", Value: "tolls|ferries"}}
	assert.Equal(t, "destination=Boston&origin=New+York&avoid=tolls%7Cferries", q.Encode())

	v, ok := q.Get("origin")
	assert.True(t, ok)
	assert.Equal(t, "New York", v)
	_, ok = q.Get("mode")
	assert.False(t, ok)
}

func TestCoreRequiresValidation(t *testing.T) {
	core := newTestCore()
	core.Update(func(p *testParams) { p.name = "x" })

	_, err := core.Query()
	assert.ErrorIs(t, err, ErrNotValidated)
	_, err = core.Params()
	assert.ErrorIs(t, err, ErrNotValidated)

	require.NoError(t, core.Validate())
	query, err := core.Query()
	require.NoError(t, err)
	assert.Equal(t, "name=x", query)
}

func TestCoreUpdateInvalidates(t *testing.T) {
	core := newTestCore()
	core.Update(func(p *testParams) { p.name = "x" })
	require.NoError(t, core.Validate())
	assert.True(t, core.Validated())

	core.Update(func(p *testParams) { p.tags = append(p.tags, "a") })
	assert.False(t, core.Validated())
	_, err := core.Query()
	assert.ErrorIs(t, err, ErrNotValidated)

	require.NoError(t, core.Validate())
	query, err := core.Query()
	require.NoError(t, err)
	assert.Equal(t, "name=x&tag=a", query)
}

func TestCoreFirstRuleWins(t *testing.T) {
	core := newTestCore()
	core.Update(func(p *testParams) {
		p.tags = []string{"a", "b"}
		p.limit = 1
	})

	err := core.Validate()
	require.Error(t, err)
	assert.EqualError(t, err, "name required")
}

func TestCoreFailedValidationLeavesStateAlone(t *testing.T) {
	core := newTestCore()
	core.Update(func(p *testParams) {
		p.name = "x"
		p.tags = []string{"a", "b"}
		p.limit = 1
	})
	before := core.Snapshot()

	assert.ErrorIs(t, core.Validate(), errTooMany)
	assert.Equal(t, before, core.Snapshot())
	assert.False(t, core.Validated())
}

func TestCoreValidateIsIdempotent(t *testing.T) {
	core := newTestCore()
	core.Update(func(p *testParams) { p.name = "x" })
	require.NoError(t, core.Validate())
	first, err := core.Query()
	require.NoError(t, err)

	require.NoError(t, core.Validate())
	second, err := core.Query()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCoreParamsIsACopy(t *testing.T) {
	core := newTestCore()
	core.Update(func(p *testParams) { p.name = "x" })
	require.NoError(t, core.Validate())

	params, err := core.Params()
	require.NoError(t, err)
	params[0].Value = "tampered"

	query, err := core.Query()
	require.NoError(t, err)
	assert.Equal(t, "name=x", query)
}

func TestIndependentCores(t *testing.T) {
	a := newTestCore()
	b := newTestCore()
	a.Update(func(p *testParams) { p.name = "a" })
	b.Update(func(p *testParams) { p.name = "b" })
	require.NoError(t, a.Validate())

	assert.True(t, a.Validated())
	assert.False(t, b.Validated())
}
