package synth

import (
	"errors"
	"fmt"
	"reflect"

	"autofaker/fake"
)

var (
	ErrNoTargetType    = errors.New("context has no target type")
	ErrUnsupportedType = errors.New("no generator available for type")
)

const (
	defaultRepeatCount    = 3
	defaultRecursionDepth = 2
)

// Factory is the default fake.Factory. It is stateless; generators capture
// the type they produce and read everything else from the call context.
type Factory struct{}

// New returns the default generator factory.
func New() *Factory { return &Factory{} }

// Generator resolves the context's target type to a value generator.
func (f *Factory) Generator(ctx *fake.Context) (fake.Generator, error) {
	if ctx == nil || ctx.TargetType == nil {
		return nil, ErrNoTargetType
	}

	return f.generatorFor(ctx.TargetType)
}

func (f *Factory) generatorFor(t reflect.Type) (fake.Generator, error) {
	if kind := FromReflectType(t); kind != 0 {
		return f.scalarGenerator(kind, t), nil
	}

	switch t.Kind() {
	case reflect.Pointer:
		return f.pointerGenerator(t), nil
	case reflect.Slice:
		return f.sliceGenerator(t), nil
	case reflect.Array:
		return f.arrayGenerator(t), nil
	case reflect.Map:
		return f.mapGenerator(t), nil
	case reflect.Struct:
		return f.structGenerator(t), nil
	default:
		return nil, fmt.Errorf("%w: %s (%s)", ErrUnsupportedType, t, t.Kind())
	}
}

// value synthesizes one value of type t as a settable reflect.Value. Shared
// by the pointer, collection and map generators for their element types.
func (f *Factory) value(ctx *fake.Context, t reflect.Type) (reflect.Value, error) {
	gen, err := f.generatorFor(t)
	if err != nil {
		return reflect.Value{}, err
	}

	val, err := gen.Generate(ctx)
	if err != nil {
		return reflect.Value{}, err
	}

	out := reflect.New(t).Elem()
	if err := fake.Assign(out, val); err != nil {
		return reflect.Value{}, err
	}

	return out, nil
}

func repeatCount(ctx *fake.Context) int {
	if n := ctx.Config.RepeatCount; n > 0 {
		return n
	}

	return defaultRepeatCount
}

func recursionDepth(ctx *fake.Context) int {
	if n := ctx.Config.RecursionDepth; n > 0 {
		return n
	}

	return defaultRecursionDepth
}
