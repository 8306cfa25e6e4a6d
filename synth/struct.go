package synth

import (
	"errors"
	"reflect"
	"sort"

	"autofaker/fake"
)

// ErrNoBinder is returned when a struct must be populated but the call's
// configuration carries no binder.
var ErrNoBinder = errors.New("config has no binder")

// structGenerator synthesizes a struct by delegating member population to
// the configured binder. Types already on the generation stack more than
// RecursionDepth times yield their zero value, which is what breaks circular
// type graphs.
func (f *Factory) structGenerator(t reflect.Type) fake.Generator {
	return fake.GeneratorFunc(func(ctx *fake.Context) (any, error) {
		if ctx.TypeCount(t) >= recursionDepth(ctx) {
			return reflect.New(t).Elem().Interface(), nil
		}

		binder := ctx.Config.Binder
		if binder == nil {
			return nil, ErrNoBinder
		}

		inventory, err := binder.Members(t)
		if err != nil {
			return nil, err
		}

		ctx.PushType(t)
		defer ctx.PopType()

		ptr := reflect.New(t)
		if err := binder.PopulateInstance(ptr.Interface(), ctx, sortedMembers(inventory)); err != nil {
			return nil, err
		}

		return ptr.Elem().Interface(), nil
	})
}

// sortedMembers flattens an inventory into name order so generation order is
// stable for a seeded random source.
func sortedMembers(inventory map[string]fake.Member) []fake.Member {
	out := make([]fake.Member, 0, len(inventory))
	for _, m := range inventory {
		out = append(out, m)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}
