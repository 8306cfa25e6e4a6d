package synth

import (
	"reflect"

	"autofaker/fake"
)

func (f *Factory) pointerGenerator(t reflect.Type) fake.Generator {
	return fake.GeneratorFunc(func(ctx *fake.Context) (any, error) {
		elem, err := f.value(ctx, t.Elem())
		if err != nil {
			return nil, err
		}

		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)

		// Named pointer types need a final conversion.
		if ptr.Type() != t {
			return ptr.Convert(t).Interface(), nil
		}

		return ptr.Interface(), nil
	})
}

func (f *Factory) sliceGenerator(t reflect.Type) fake.Generator {
	return fake.GeneratorFunc(func(ctx *fake.Context) (any, error) {
		n := repeatCount(ctx)
		out := reflect.MakeSlice(t, n, n)

		for i := 0; i < n; i++ {
			elem, err := f.value(ctx, t.Elem())
			if err != nil {
				return nil, err
			}

			out.Index(i).Set(elem)
		}

		return out.Interface(), nil
	})
}

func (f *Factory) arrayGenerator(t reflect.Type) fake.Generator {
	return fake.GeneratorFunc(func(ctx *fake.Context) (any, error) {
		out := reflect.New(t).Elem()

		for i := 0; i < t.Len(); i++ {
			elem, err := f.value(ctx, t.Elem())
			if err != nil {
				return nil, err
			}

			out.Index(i).Set(elem)
		}

		return out.Interface(), nil
	})
}

func (f *Factory) mapGenerator(t reflect.Type) fake.Generator {
	return fake.GeneratorFunc(func(ctx *fake.Context) (any, error) {
		n := repeatCount(ctx)
		out := reflect.MakeMapWithSize(t, n)

		// Key collisions shrink the map below n; acceptable for fixtures.
		for i := 0; i < n; i++ {
			key, err := f.value(ctx, t.Key())
			if err != nil {
				return nil, err
			}

			val, err := f.value(ctx, t.Elem())
			if err != nil {
				return nil, err
			}

			out.SetMapIndex(key, val)
		}

		return out.Interface(), nil
	})
}
