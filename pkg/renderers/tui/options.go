package tui

import (
	"fmt"
	"strings"
)

// OutputFormat selects how Render encodes the collected values.
type OutputFormat string

const (
	OutputFormatJSON       OutputFormat = "json"
	OutputFormatPrettyText OutputFormat = "pretty"
)

// ParseOutputFormat maps a flag value onto an OutputFormat. "text" is
// accepted as an alias for pretty.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "json":
		return OutputFormatJSON, nil
	case "pretty", "text":
		return OutputFormatPrettyText, nil
	default:
		return "", fmt.Errorf("tui: unknown output format %q", raw)
	}
}

// Theme holds the prefixes written in front of prompts, summary lines and
// incomplete-value notices.
type Theme struct {
	PromptPrefix string
	InfoPrefix   string
	ErrorPrefix  string
}

// DefaultTheme marks notices with "! " and leaves prompts bare.
func DefaultTheme() Theme {
	return Theme{ErrorPrefix: "! "}
}

// SubmitTransformer rewrites the name to value map before it is encoded.
type SubmitTransformer func(map[string]string) (map[string]string, error)

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver swaps the survey driver, typically for tests.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the encoding; blank keeps the current one.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithSubmitTransformer sets fn to run on the collected values.
func WithSubmitTransformer(fn SubmitTransformer) Option {
	return func(r *Renderer) {
		r.submitTransformer = fn
	}
}

// WithTheme replaces DefaultTheme.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithConfirmPartial asks before keeping a partially filled optional field.
// Without it partial optional values are kept silently.
func WithConfirmPartial(enabled bool) Option {
	return func(r *Renderer) {
		r.confirmPartial = enabled
	}
}
