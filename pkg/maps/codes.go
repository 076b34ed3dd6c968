package maps

import "slices"

// CodeTable maps wire codes onto the values of a closed enumeration. Tables
// are built during package initialisation and are read-only afterwards, so
// they can be shared between goroutines.
type CodeTable[T ~string] struct {
	name   string
	values []T
	byCode map[string]T
}

// NewCodeTable builds a table; name appears in *InvalidCodeError.
func NewCodeTable[T ~string](name string, values ...T) CodeTable[T] {
	byCode := make(map[string]T, len(values))
	for _, v := range values {
		byCode[string(v)] = v
	}
	return CodeTable[T]{name: name, values: values, byCode: byCode}
}

// Parse looks up an exact wire code.
func (t CodeTable[T]) Parse(code string) (T, error) {
	if v, ok := t.byCode[code]; ok {
		return v, nil
	}
	var zero T
	return zero, &InvalidCodeError{Type: t.name, Code: code}
}

// Contains reports whether v is one of the table values.
func (t CodeTable[T]) Contains(v T) bool {
	_, ok := t.byCode[string(v)]
	return ok
}

// All returns a copy of the values in declaration order.
func (t CodeTable[T]) All() []T {
	return slices.Clone(t.values)
}

// Marshal rejects values that were built by conversion rather than taken
// from the constant set.
func (t CodeTable[T]) Marshal(v T) ([]byte, error) {
	if !t.Contains(v) {
		return nil, &InvalidCodeError{Type: t.name, Code: string(v)}
	}
	return []byte(v), nil
}

// Unmarshal parses text into dst, leaving dst untouched on failure.
func (t CodeTable[T]) Unmarshal(text []byte, dst *T) error {
	v, err := t.Parse(string(text))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
