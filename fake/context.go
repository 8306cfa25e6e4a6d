// Package fake holds the contracts shared between the faking engine, the
// value synthesizers and the member binder: the per-call generation context,
// the resolved configuration record and the collaborator interfaces.
package fake

import (
	"math/rand/v2"
	"reflect"
	"time"
)

// Config is the configuration record resolved for a single generation call.
// A Context holds its Config by value, so the record a call observes cannot
// be changed from the outside for the lifetime of that call.
type Config struct {
	// Locale selects the vocabulary used for string synthesis, as a BCP-47
	// tag ("en", "en-US", "de"). Unknown tags fall back to English.
	Locale string
	// Binder writes generated values into instance members.
	Binder Binder
	// Factory maps a target type to a value generator.
	Factory Factory
	// RepeatCount is the element count used for generated slices and maps.
	RepeatCount int
	// RecursionDepth is the number of times a struct type may appear on the
	// generation stack before further occurrences yield its zero value.
	RecursionDepth int
	// Seed seeds the random source for the call. Zero means a time-derived
	// seed, one per context.
	Seed uint64
}

// Context carries the state of one generation call. It is built fresh per
// public call and threaded as a parameter into every rule, create action and
// finish action, so hooks installed on an earlier call always observe the
// current call's context.
type Context struct {
	// Config is the configuration resolved for this call.
	Config Config
	// RuleSets is the ordered list of active rule-set names. Never empty.
	RuleSets []string
	// Rand is the random source for this call.
	Rand *rand.Rand

	// TargetType is the type a generator is being asked to produce. It is
	// assigned immediately before each generator or binder invocation.
	TargetType reflect.Type
	// TargetMember is the member name the current generation targets. Empty
	// for root-object generation.
	TargetMember string

	stack []reflect.Type
}

// NewContext builds a context for one call. The rule-set list must already
// be parsed; an empty list is kept as-is and is the caller's mistake.
func NewContext(cfg Config, ruleSets []string) *Context {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Context{
		Config:   cfg,
		RuleSets: ruleSets,
		Rand:     rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}

// HasRuleSet reports whether name is among the call's active rule sets.
func (c *Context) HasRuleSet(name string) bool {
	for _, rs := range c.RuleSets {
		if rs == name {
			return true
		}
	}

	return false
}

// PushType records t on the generation stack. Callers must pair it with
// PopType.
func (c *Context) PushType(t reflect.Type) {
	c.stack = append(c.stack, t)
}

// PopType removes the most recently pushed type.
func (c *Context) PopType() {
	if len(c.stack) == 0 {
		return
	}

	c.stack = c.stack[:len(c.stack)-1]
}

// TypeCount returns how many times t currently appears on the generation
// stack. Used to cut off circular type graphs.
func (c *Context) TypeCount(t reflect.Type) int {
	n := 0
	for _, s := range c.stack {
		if s == t {
			n++
		}
	}

	return n
}
