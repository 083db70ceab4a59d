package enum

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// Variant is a single declared name→value association within a Set.
type Variant[T comparable] struct {
	// Name is the symbolic identifier, unique within the set.
	Name string
	// Value is the constant the name stands for.
	Value T
}

// V constructs a Variant for use in a Declare call.
func V[T comparable](name string, value T) Variant[T] {
	return Variant[T]{Name: name, Value: value}
}

// Set is a closed, ordered collection of named constant values.
//
// A Set is created only by Declare, normally as a package-level var at the
// vocabulary's definition site. It has no exported fields and no mutation
// path: once declared, the variant set is fixed for the life of the
// process.
type Set[T comparable] struct {
	name     string
	variants []Variant[T]
	byName   map[string]int
}

// Declare defines a new variant set under the given name.
//
// Variant names must be unique within the set; a duplicate is a defect at
// the declaration site and panics at package load, the closest Go analogue
// to the compile error a duplicated constant would produce. An empty
// variant list is valid and yields an empty set.
func Declare[T comparable](name string, variants ...Variant[T]) *Set[T] {
	s := &Set[T]{
		name:     name,
		variants: make([]Variant[T], len(variants)),
		byName:   make(map[string]int, len(variants)),
	}
	copy(s.variants, variants)
	for i, v := range variants {
		if v.Name == "" {
			panic(fmt.Sprintf("enum: empty variant name in set %q", name))
		}
		if _, dup := s.byName[v.Name]; dup {
			panic(fmt.Sprintf("enum: duplicate variant name %q in set %q", v.Name, name))
		}
		s.byName[v.Name] = i
	}
	return s
}

// Name returns the set's declared name.
func (s *Set[T]) Name() string { return s.name }

// Len returns the number of declared variants.
func (s *Set[T]) Len() int { return len(s.variants) }

// Values returns the complete set of declared name→value associations in
// declaration order. The returned slice is a copy; callers may not alter
// the set through it.
func (s *Set[T]) Values() []Variant[T] {
	out := make([]Variant[T], len(s.variants))
	copy(out, s.variants)
	return out
}

// Names returns the variant names in declaration order.
func (s *Set[T]) Names() []string {
	out := make([]string, len(s.variants))
	for i, v := range s.variants {
		out[i] = v.Name
	}
	return out
}

// Map returns the name→value associations as a plain map. Go maps carry no
// order; use Values when declaration order matters.
func (s *Set[T]) Map() map[string]T {
	out := make(map[string]T, len(s.variants))
	for _, v := range s.variants {
		out[v.Name] = v.Value
	}
	return out
}

// ValueOf returns the value declared under name.
func (s *Set[T]) ValueOf(name string) (T, bool) {
	if i, ok := s.byName[name]; ok {
		return s.variants[i].Value, true
	}
	var zero T
	return zero, false
}

// NameOf returns the name of the first variant declared with value.
func (s *Set[T]) NameOf(value T) (string, bool) {
	for _, v := range s.variants {
		if v.Value == value {
			return v.Name, true
		}
	}
	return "", false
}

// Contains reports whether value is one of the declared values, compared
// strictly as T.
func (s *Set[T]) Contains(value T) bool {
	for _, v := range s.variants {
		if v.Value == value {
			return true
		}
	}
	return false
}

// IsValue reports whether candidate equals one of the declared values.
//
// Comparison is by value, not by name, and is loose across scalar
// representations: a plain string matches a defined string type with the
// same underlying text, and numeric candidates match declared numbers
// regardless of width or signedness. Non-scalar candidates only match a
// declared value of the exact same dynamic type.
func (s *Set[T]) IsValue(candidate any) bool {
	cn, scalar := normalizeScalar(candidate)
	for _, v := range s.variants {
		if scalar {
			if dn, ok := normalizeScalar(any(v.Value)); ok && scalarEqual(dn, cn) {
				return true
			}
			continue
		}
		if c, ok := candidate.(T); ok && v.Value == c {
			return true
		}
	}
	return false
}

// String renders the set as "name[N1, N2, ...]" for logs and errors.
func (s *Set[T]) String() string {
	return s.name + "[" + strings.Join(s.Names(), ", ") + "]"
}

// New always fails with the construction InvalidOperationError. A Set is a
// namespace of values, not an object; no construction path succeeds.
func (s *Set[T]) New() (*Set[T], error) {
	return nil, ErrNewInstance
}

// Clone always fails with the clone InvalidOperationError.
func (s *Set[T]) Clone() (*Set[T], error) {
	return nil, ErrCloneInstance
}

// normalizeScalar reduces a scalar to a canonical comparable form: strings
// to string, booleans to bool, signed integers to int64, unsigned integers
// to uint64, and floats to float64. It reports false for non-scalar
// values, including nil.
func normalizeScalar(v any) (any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return rv.Bool(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return nil, false
	}
}

// scalarEqual compares two normalized scalars. Strings and booleans match
// only their own kind. Numbers compare across representations, staying in
// the integer domain whenever both sides are integers so values past
// float64's 2^53 integer precision never conflate.
func scalarEqual(a, b any) bool {
	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		return ok && x == y
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	case int64:
		switch y := b.(type) {
		case int64:
			return x == y
		case uint64:
			return x >= 0 && uint64(x) == y
		case float64:
			return floatEqualsInt(y, x)
		}
	case uint64:
		switch y := b.(type) {
		case int64:
			return y >= 0 && uint64(y) == x
		case uint64:
			return x == y
		case float64:
			return floatEqualsUint(y, x)
		}
	case float64:
		switch y := b.(type) {
		case int64:
			return floatEqualsInt(x, y)
		case uint64:
			return floatEqualsUint(x, y)
		case float64:
			return x == y
		}
	}
	return false
}

// floatEqualsInt reports whether f is exactly the integer i. The integral
// and range checks make the int64 conversion exact, so the comparison
// never rounds through float64.
func floatEqualsInt(f float64, i int64) bool {
	if math.Trunc(f) != f || f < -(1<<63) || f >= 1<<63 {
		return false
	}
	return int64(f) == i
}

// floatEqualsUint reports whether f is exactly the unsigned integer u.
func floatEqualsUint(f float64, u uint64) bool {
	if math.Trunc(f) != f || f < 0 || f >= 1<<64 {
		return false
	}
	return uint64(f) == u
}
