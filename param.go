package dynsql

import (
	"fmt"
	"reflect"
)

// Args maps parameter names to bind values. A missing key means the
// parameter was not supplied and the sub-expressions that depend on it are
// pruned (or rejected, for set membership). A nil value is a supplied NULL,
// which is not the same thing as an absent parameter.
type Args map[string]any

// Has reports whether name was supplied.
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// TryP creates a quoted parameter placeholder, returning an error if the
// name is invalid.
func TryP(name string) (*Param, error) {
	if !isValidParamName(name) {
		return nil, fmt.Errorf("invalid parameter name %q: must be alphanumeric with underscores, starting with a letter", name)
	}
	return &Param{Name: name}, nil
}

// P creates a quoted parameter placeholder.
// This is the primary way to reference caller values in queries.
func P(name string) *Param {
	p, err := TryP(name)
	if err != nil {
		panic(err)
	}
	return p
}

// TryPRaw creates an unquoted parameter placeholder, returning an error if
// the name is invalid.
func TryPRaw(name string) (*Param, error) {
	p, err := TryP(name)
	if err != nil {
		return nil, err
	}
	p.Unquoted = true
	return p, nil
}

// PRaw creates an unquoted parameter placeholder. Its bound value is
// emitted as raw SQL text, so it must only be bound to trusted values such
// as LIMIT/OFFSET counts.
func PRaw(name string) *Param {
	p, err := TryPRaw(name)
	if err != nil {
		panic(err)
	}
	return p
}

// Only allows alphanumeric characters and underscores, must start with a letter.
func isValidParamName(name string) bool {
	if name == "" {
		return false
	}
	first := name[0]
	if !((first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z')) {
		return false
	}
	for i := 1; i < len(name); i++ {
		ch := name[i]
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '_') {
			return false
		}
	}
	return true
}

// asList normalizes a bound value into a slice of elements. Strings and
// byte slices are scalars, not lists.
func asList(v any) ([]any, bool) {
	switch x := v.(type) {
	case nil:
		return nil, false
	case []any:
		return x, true
	case string, []byte:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
