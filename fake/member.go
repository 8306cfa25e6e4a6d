package fake

import "reflect"

// Member describes one settable member of a struct type.
type Member struct {
	// Name is the field name.
	Name string
	// Type is the field type.
	Type reflect.Type
	// Index is the reflect field index path within the owning struct.
	Index []int
	// Tag is the raw struct tag of the field.
	Tag reflect.StructTag
}

// Generator produces one value of the context's target type.
type Generator interface {
	Generate(ctx *Context) (any, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx *Context) (any, error)

// Generate implements Generator.
func (f GeneratorFunc) Generate(ctx *Context) (any, error) { return f(ctx) }

// Factory resolves the context's target type to a Generator.
type Factory interface {
	Generator(ctx *Context) (Generator, error)
}

// Binder provides the member inventory of a type and writes generated
// values into an instance's members.
type Binder interface {
	// Members returns the settable members of t keyed by name. Non-struct
	// types have no members; that is not an error.
	Members(t reflect.Type) (map[string]Member, error)

	// PopulateInstance generates and assigns values for exactly the given
	// members of v, which must be a non-nil pointer to a struct. Members
	// assigned before a failure stay assigned.
	PopulateInstance(v any, ctx *Context, members []Member) error
}
