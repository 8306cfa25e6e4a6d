package bind

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/hashicorp/go-multierror"

	"autofaker/fake"
)

var (
	ErrNotPointer = errors.New("populate target must be a non-nil pointer to a struct")
	ErrNoFactory  = errors.New("config has no generator factory")
)

// Binder is the default fake.Binder. It generates a value for each given
// member through the configured factory and writes it into the instance.
type Binder struct{}

// New returns the default binder.
func New() *Binder { return &Binder{} }

// Members implements fake.Binder.
func (b *Binder) Members(t reflect.Type) (map[string]fake.Member, error) {
	return Members(t)
}

// PopulateInstance generates and assigns values for exactly the given
// members of v. Failures are collected per member and returned together;
// members assigned before a failing one stay assigned.
func (b *Binder) PopulateInstance(v any, ctx *fake.Context, members []fake.Member) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w, got %T", ErrNotPointer, v)
	}

	factory := ctx.Config.Factory
	if factory == nil {
		return ErrNoFactory
	}

	elem := rv.Elem()

	var errs *multierror.Error
	for _, m := range members {
		field := elem.FieldByIndex(m.Index)
		if !field.CanSet() {
			continue
		}

		ctx.TargetType = m.Type
		ctx.TargetMember = m.Name

		gen, err := factory.Generator(ctx)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("member %s: %w", m.Name, err))
			continue
		}

		val, err := gen.Generate(ctx)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("member %s: %w", m.Name, err))
			continue
		}

		if err := fake.Assign(field, val); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("member %s: %w", m.Name, err))
		}
	}

	return errs.ErrorOrNil()
}
