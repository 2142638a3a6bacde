package maskformat

import (
	"net/http"

	"github.com/goliatone/go-maskfield/pkg/field"
)

type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath    string
	PatternParam string
	FieldParam   string
	ValueParam   string
	MaxBodyBytes int64
	Guard        GuardFunc

	// Patterns overrides the pattern used for field lookups. Identities not
	// listed fall back to their built-in pattern.
	Patterns map[field.Identity]string
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:    "/api/mask/format",
		PatternParam: "pattern",
		FieldParam:   "field",
		ValueParam:   "value",
		MaxBodyBytes: 4 << 10,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/api/mask/format"
	}
	if opts.PatternParam == "" {
		opts.PatternParam = "pattern"
	}
	if opts.FieldParam == "" {
		opts.FieldParam = "field"
	}
	if opts.ValueParam == "" {
		opts.ValueParam = "value"
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 4 << 10
	}
	if opts.Patterns != nil {
		patterns := make(map[field.Identity]string, len(opts.Patterns))
		for id, pattern := range opts.Patterns {
			patterns[id] = pattern
		}
		opts.Patterns = patterns
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithPatternParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.PatternParam = name
	}
}

func WithFieldParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.FieldParam = name
	}
}

func WithValueParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ValueParam = name
	}
}

func WithMaxBodyBytes(limit int64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxBodyBytes = limit
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

// WithPatterns sets per-identity pattern overrides, typically taken from a
// loaded fieldset.
func WithPatterns(patterns map[field.Identity]string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Patterns = patterns
	}
}

func (o Options) patternFor(id field.Identity) string {
	if pattern, ok := o.Patterns[id]; ok && pattern != "" {
		return pattern
	}
	return field.DisplayFor(id).Pattern
}
