package mapstest

import (
	"encoding"
	"testing"

	"github.com/richxcame/mapsclient/pkg/maps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Code is a string enum backed by a maps.CodeTable.
type Code interface {
	~string
	String() string
	MarshalText() ([]byte, error)
}

// AssertCodeTable checks that every value in values survives both
// Parse(String()) and MarshalText/UnmarshalText, and that unknown codes are
// rejected with a *maps.InvalidCodeError naming typeName.
func AssertCodeTable[T Code, PT interface {
	*T
	encoding.TextUnmarshaler
}](t *testing.T, typeName string, values []T, parse func(string) (T, error)) {
	t.Helper()
	require.NotEmpty(t, values, typeName)

	for _, v := range values {
		parsed, err := parse(v.String())
		require.NoError(t, err, "%s %q", typeName, v)
		assert.Equal(t, v, parsed)

		text, err := v.MarshalText()
		require.NoError(t, err, "%s %q", typeName, v)
		var decoded T
		require.NoError(t, PT(&decoded).UnmarshalText(text))
		assert.Equal(t, v, decoded)
	}

	_, err := parse("no-such-code")
	var codeErr *maps.InvalidCodeError
	require.ErrorAs(t, err, &codeErr, typeName)
	assert.Equal(t, typeName, codeErr.Type)
	assert.ErrorIs(t, err, maps.ErrInvalidCode)

	keep := values[0]
	assert.Error(t, PT(&keep).UnmarshalText([]byte("no-such-code")))
	assert.Equal(t, values[0], keep)
}
