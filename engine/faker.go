// Package engine implements the base faking engine: named rule sets holding
// explicit member rules, an optional create action and an optional finish
// action, plus the drive loop that applies them to instances.
package engine

import (
	"autofaker/fake"
)

// DefaultRuleSet is the rule-set name used when a caller specifies none.
// Registration calls outside a RuleSet scope target this set.
const DefaultRuleSet = "default"

// RuleFunc is an explicit, member-scoped value rule.
type RuleFunc func(ctx *fake.Context) (any, error)

// CreateFunc constructs the root instance for a generation.
type CreateFunc[T any] func(ctx *fake.Context) (T, error)

// FinishFunc runs after an instance has been created and its explicit rules
// applied.
type FinishFunc[T any] func(ctx *fake.Context, v *T) error

// DefaultCreate returns the engine's built-in root construction: the zero
// value of T.
func DefaultCreate[T any]() CreateFunc[T] {
	return func(*fake.Context) (T, error) {
		var v T
		return v, nil
	}
}

type ruleSet[T any] struct {
	order  []string
	rules  map[string]RuleFunc
	create CreateFunc[T]
	finish FinishFunc[T]
}

func (rs *ruleSet[T]) put(member string, fn RuleFunc) {
	if rs.rules == nil {
		rs.rules = make(map[string]RuleFunc)
	}

	if _, seen := rs.rules[member]; !seen {
		rs.order = append(rs.order, member)
	}

	rs.rules[member] = fn
}

// Faker stores per-rule-set generation rules for values of type T and drives
// their application. The zero value is not usable; construct with New.
type Faker[T any] struct {
	current string
	sets    map[string]*ruleSet[T]
}

// New returns an empty Faker whose current rule set is DefaultRuleSet.
func New[T any]() *Faker[T] {
	return &Faker[T]{
		current: DefaultRuleSet,
		sets:    make(map[string]*ruleSet[T]),
	}
}

// CurrentRuleSet returns the name registrations target by default.
func (f *Faker[T]) CurrentRuleSet() string { return f.current }

func (f *Faker[T]) set(name string) *ruleSet[T] {
	rs, ok := f.sets[name]
	if !ok {
		rs = &ruleSet[T]{}
		f.sets[name] = rs
	}

	return rs
}

// RuleFor registers an explicit rule for member under the current rule set.
// Registering twice for the same member replaces the rule.
func (f *Faker[T]) RuleFor(member string, fn RuleFunc) *Faker[T] {
	f.set(f.current).put(member, fn)
	return f
}

// CreateWith registers a root-construction action under the current rule
// set.
func (f *Faker[T]) CreateWith(fn CreateFunc[T]) *Faker[T] {
	f.set(f.current).create = fn
	return f
}

// FinishWith registers a finish action under the current rule set.
func (f *Faker[T]) FinishWith(fn FinishFunc[T]) *Faker[T] {
	f.set(f.current).finish = fn
	return f
}

// Rules is a registrar scoped to one named rule set.
type Rules[T any] struct {
	faker *Faker[T]
	name  string
}

// RuleSet returns a registrar whose registrations target the named rule set
// instead of the current one.
func (f *Faker[T]) RuleSet(name string) *Rules[T] {
	return &Rules[T]{faker: f, name: name}
}

// RuleFor registers an explicit rule for member under this rule set.
func (r *Rules[T]) RuleFor(member string, fn RuleFunc) *Rules[T] {
	r.faker.set(r.name).put(member, fn)
	return r
}

// CreateWith registers a root-construction action under this rule set.
func (r *Rules[T]) CreateWith(fn CreateFunc[T]) *Rules[T] {
	r.faker.set(r.name).create = fn
	return r
}

// FinishWith registers a finish action under this rule set.
func (r *Rules[T]) FinishWith(fn FinishFunc[T]) *Rules[T] {
	r.faker.set(r.name).finish = fn
	return r
}

// RuleTargets returns, in registration order, the member names that have an
// explicit rule under the named rule set. A rule set that was never
// registered yields nil.
func (f *Faker[T]) RuleTargets(name string) []string {
	rs, ok := f.sets[name]
	if !ok {
		return nil
	}

	out := make([]string, len(rs.order))
	copy(out, rs.order)

	return out
}

// CreateAction returns the create action registered under the named rule
// set, if any.
func (f *Faker[T]) CreateAction(name string) (CreateFunc[T], bool) {
	rs, ok := f.sets[name]
	if !ok || rs.create == nil {
		return nil, false
	}

	return rs.create, true
}

// SetCreateAction installs a create action under the named rule set,
// replacing any existing one.
func (f *Faker[T]) SetCreateAction(name string, fn CreateFunc[T]) {
	f.set(name).create = fn
}

// FinishAction returns the finish action registered under the named rule
// set, if any.
func (f *Faker[T]) FinishAction(name string) (FinishFunc[T], bool) {
	rs, ok := f.sets[name]
	if !ok || rs.finish == nil {
		return nil, false
	}

	return rs.finish, true
}

// SetFinishAction installs a finish action under the named rule set,
// replacing any existing one.
func (f *Faker[T]) SetFinishAction(name string, fn FinishFunc[T]) {
	f.set(name).finish = fn
}
