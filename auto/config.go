package auto

import (
	"autofaker/bind"
	"autofaker/fake"
	"autofaker/locale"
	"autofaker/synth"
)

const (
	defaultRepeatCount    = 3
	defaultRecursionDepth = 2
)

// DefaultConfig returns the baseline configuration: English locale, the
// default binder and factory, three elements per collection and a recursion
// depth of two.
func DefaultConfig() fake.Config {
	return fake.Config{
		Locale:         locale.Default,
		Binder:         bind.New(),
		Factory:        synth.New(),
		RepeatCount:    defaultRepeatCount,
		RecursionDepth: defaultRecursionDepth,
	}
}

// processConfig is the process-wide default every Faker starts from unless
// it carries its own baseline.
var processConfig = DefaultConfig()

// SetDefaultConfig replaces the process-wide default configuration. Like
// generation itself, this is not safe for concurrent use.
func SetDefaultConfig(cfg fake.Config) {
	processConfig = cfg
}

// settings carries the per-instance overrides collected from Options.
type settings struct {
	locale string
	binder fake.Binder
	config *fake.Config
}

// Option configures a Faker at construction time.
type Option func(*settings)

// WithLocale overrides the locale for this instance.
func WithLocale(tag string) Option {
	return func(s *settings) { s.locale = tag }
}

// WithBinder overrides the binder for this instance.
func WithBinder(b fake.Binder) Option {
	return func(s *settings) { s.binder = b }
}

// WithConfig gives this instance its own baseline configuration instead of
// the process-wide default. Locale and binder overrides still apply on top.
func WithConfig(cfg fake.Config) Option {
	return func(s *settings) { s.config = &cfg }
}

// resolveConfig builds the configuration record for one call: clone the
// instance baseline (or the process-wide default), overlay the instance
// locale and binder when set, then fill anything still unset so downstream
// collaborators never see a hole.
func (a *Faker[T]) resolveConfig() fake.Config {
	cfg := processConfig
	if a.config != nil {
		cfg = *a.config
	}

	if a.locale != "" {
		cfg.Locale = a.locale
	}

	if a.binder != nil {
		cfg.Binder = a.binder
	}

	if cfg.Locale == "" {
		cfg.Locale = locale.Default
	}

	if cfg.Binder == nil {
		cfg.Binder = bind.New()
	}

	if cfg.Factory == nil {
		cfg.Factory = synth.New()
	}

	if cfg.RepeatCount <= 0 {
		cfg.RepeatCount = defaultRepeatCount
	}

	if cfg.RecursionDepth <= 0 {
		cfg.RecursionDepth = defaultRecursionDepth
	}

	return cfg
}
