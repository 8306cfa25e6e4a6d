// Package auto layers automatic, reflection-driven generation on top of the
// base faking engine. Members covered by explicit rules keep their rule
// values; every other member of the target type is populated through the
// binder and generator factory.
package auto

import (
	"fmt"
	"reflect"
	"strings"

	"autofaker/engine"
	"autofaker/fake"
)

// Faker generates or populates instances of T. Explicit rules are
// registered through the embedded engine API (RuleFor, RuleSet, CreateWith,
// FinishWith); anything they do not claim is generated automatically.
//
// A Faker is meant for sequential use. Registering rules or generating from
// multiple goroutines on the same instance is not supported.
type Faker[T any] struct {
	*engine.Faker[T]

	locale string
	binder fake.Binder
	config *fake.Config

	createHook hookLifecycle
	finishHook hookLifecycle

	// fallbackCreate is the root-construction behavior that existed before
	// the create hook was installed. The hook defers to it when the call
	// activates only non-default rule sets.
	fallbackCreate engine.CreateFunc[T]
}

// New returns a Faker for T.
func New[T any](opts ...Option) *Faker[T] {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	return &Faker[T]{
		Faker:  engine.New[T](),
		locale: s.locale,
		binder: s.binder,
		config: s.config,
	}
}

// hookLifecycle guards one-time hook installation: Uninitialized until the
// first Ensure, Installed forever after.
type hookLifecycle struct {
	installed bool
}

// Ensure runs install on the first call and nothing on later calls.
func (h *hookLifecycle) Ensure(install func()) {
	if h.installed {
		return
	}

	h.installed = true
	install()
}

// Generate builds one T. ruleSets entries may each hold a comma-delimited
// list; no entries means the default rule set.
func (a *Faker[T]) Generate(ruleSets ...string) (T, error) {
	ctx := a.newContext(ruleSets)
	a.prepareCreate()
	a.prepareFinish()

	return a.Faker.Generate(ctx)
}

// GenerateN builds n instances; each goes through the same create, rule and
// finish phases. n == 0 yields an empty slice without generating anything.
func (a *Faker[T]) GenerateN(n int, ruleSets ...string) ([]T, error) {
	ctx := a.newContext(ruleSets)
	a.prepareCreate()
	a.prepareFinish()

	return a.Faker.GenerateN(ctx, n)
}

// Populate fills an existing instance: explicit rules first, then automatic
// population of unclaimed members. Root construction never runs.
func (a *Faker[T]) Populate(v *T, ruleSets ...string) error {
	ctx := a.newContext(ruleSets)
	a.prepareFinish()

	return a.Faker.Populate(ctx, v)
}

func (a *Faker[T]) newContext(ruleSets []string) *fake.Context {
	return fake.NewContext(a.resolveConfig(), ParseRuleSets(strings.Join(ruleSets, ",")))
}

// prepareCreate installs the root-creation hook, at most once per instance.
// If the caller already registered a create action under the default rule
// set, the hook stays out of the way entirely.
func (a *Faker[T]) prepareCreate() {
	a.createHook.Ensure(func() {
		if _, ok := a.Faker.CreateAction(engine.DefaultRuleSet); ok {
			return
		}

		a.fallbackCreate = engine.DefaultCreate[T]()

		a.Faker.SetCreateAction(engine.DefaultRuleSet, func(ctx *fake.Context) (T, error) {
			// Calls that activate only non-default rule sets own object
			// construction themselves.
			if !ctx.HasRuleSet(engine.DefaultRuleSet) {
				return a.fallbackCreate(ctx)
			}

			var zero T

			ctx.TargetType = reflect.TypeFor[T]()
			ctx.TargetMember = ""

			gen, err := ctx.Config.Factory.Generator(ctx)
			if err != nil {
				return zero, err
			}

			val, err := gen.Generate(ctx)
			if err != nil {
				return zero, err
			}

			return castTo[T](val)
		})
	})
}

// prepareFinish installs the finish hook, at most once per instance. The
// hook populates every member no active rule set claims, then hands the
// instance to whatever finish action was registered before installation.
func (a *Faker[T]) prepareFinish() {
	a.finishHook.Ensure(func() {
		prev, _ := a.Faker.FinishAction(engine.DefaultRuleSet)

		a.Faker.SetFinishAction(engine.DefaultRuleSet, func(ctx *fake.Context, v *T) error {
			binder := ctx.Config.Binder

			inventory, err := binder.Members(reflect.TypeFor[T]())
			if err != nil {
				return err
			}

			remaining := unclaimedMembers(inventory, ctx.RuleSets, a.Faker.RuleTargets)
			if len(remaining) > 0 {
				if err := binder.PopulateInstance(v, ctx, remaining); err != nil {
					return err
				}
			}

			if prev != nil {
				return prev(ctx, v)
			}

			return nil
		})
	})
}

func castTo[T any](val any) (T, error) {
	if out, ok := val.(T); ok {
		return out, nil
	}

	var zero T

	want := reflect.TypeFor[T]()
	if val != nil {
		rv := reflect.ValueOf(val)
		if rv.Type().ConvertibleTo(want) {
			return rv.Convert(want).Interface().(T), nil
		}
	}

	return zero, fmt.Errorf("generator produced %T, want %s", val, want)
}
