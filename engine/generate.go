package engine

import (
	"errors"
	"fmt"
	"reflect"

	"autofaker/fake"
)

var (
	ErrNilContext    = errors.New("generation context is nil")
	ErrNegativeCount = errors.New("generation count is negative")
	ErrUnknownMember = errors.New("explicit rule targets an unknown member")
)

// Generate constructs one T and populates it. Construction uses the create
// action registered under the current rule set, falling back to zero-value
// construction when none is registered.
func (f *Faker[T]) Generate(ctx *fake.Context) (T, error) {
	var zero T

	if ctx == nil {
		return zero, ErrNilContext
	}

	create, ok := f.CreateAction(f.current)
	if !ok {
		create = DefaultCreate[T]()
	}

	v, err := create(ctx)
	if err != nil {
		return zero, err
	}

	if err := f.Populate(ctx, &v); err != nil {
		return v, err
	}

	return v, nil
}

// GenerateN constructs n instances, each driven through the same create,
// rule and finish phases. n == 0 yields an empty slice.
func (f *Faker[T]) GenerateN(ctx *fake.Context, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}

	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := f.Generate(ctx)
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return out, nil
}

// Populate applies the active rule sets' explicit rules to v in registration
// order, then runs the finish action registered under the current rule set,
// once. Rule failures abort population; members assigned before the failure
// stay assigned.
func (f *Faker[T]) Populate(ctx *fake.Context, v *T) error {
	if ctx == nil {
		return ErrNilContext
	}

	if v == nil {
		return errors.New("populate target is nil")
	}

	active := ctx.RuleSets
	if len(active) == 0 {
		active = []string{f.current}
	}

	for _, name := range active {
		rs, ok := f.sets[name]
		if !ok {
			continue
		}

		if err := f.applyRules(ctx, rs, v); err != nil {
			return err
		}
	}

	if finish, ok := f.FinishAction(f.current); ok {
		return finish(ctx, v)
	}

	return nil
}

func (f *Faker[T]) applyRules(ctx *fake.Context, rs *ruleSet[T], v *T) error {
	if len(rs.order) == 0 {
		return nil
	}

	rv := reflect.ValueOf(v).Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("explicit rules require a struct target, got %s", rv.Type())
	}

	for _, member := range rs.order {
		field := rv.FieldByName(member)
		if !field.IsValid() {
			return fmt.Errorf("%w: %s has no member %q", ErrUnknownMember, rv.Type(), member)
		}

		ctx.TargetType = field.Type()
		ctx.TargetMember = member

		val, err := rs.rules[member](ctx)
		if err != nil {
			return fmt.Errorf("rule for member %q: %w", member, err)
		}

		if err := fake.Assign(field, val); err != nil {
			return fmt.Errorf("rule for member %q: %w", member, err)
		}
	}

	return nil
}
