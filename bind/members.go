// Package bind provides the default binder: the member inventory of a
// struct type and the population step that writes generated values into an
// instance.
package bind

import (
	"reflect"

	"autofaker/fake"
)

// SkipTag is the struct tag that excludes a field from automatic
// population: `fake:"-"`.
const SkipTag = "fake"

// Members returns the settable members of t keyed by name: exported fields
// not tagged `fake:"-"`. Pointer types are unwrapped first. Non-struct types
// have an empty inventory; that is not an error.
func Members(t reflect.Type) (map[string]fake.Member, error) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	out := make(map[string]fake.Member)
	if t == nil || t.Kind() != reflect.Struct {
		return out, nil
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue // unexported
		}

		if tag, ok := field.Tag.Lookup(SkipTag); ok && tag == "-" {
			continue
		}

		out[field.Name] = fake.Member{
			Name:  field.Name,
			Type:  field.Type,
			Index: field.Index,
			Tag:   field.Tag,
		}
	}

	return out, nil
}
