package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goliatone/go-maskfield/pkg/field"
	"github.com/goliatone/go-maskfield/pkg/mask"
	"github.com/goliatone/go-maskfield/pkg/render"
)

// Renderer implements render.Renderer for terminal-driven sessions. Each
// field is prompted in form order with focus moved onto it, and every answer
// flows through field.State.Edit so the stored value is always masked.
type Renderer struct {
	driver            PromptDriver
	outputFormat      OutputFormat
	submitTransformer SubmitTransformer
	theme             Theme
	confirmPartial    bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	driver, err := newSurveyDriver()
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		driver:       driver,
		outputFormat: OutputFormatJSON,
		theme:        DefaultTheme(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatPrettyText {
		return "text/plain; charset=utf-8"
	}
	return "application/json"
}

// Render prompts for every field and serialises the collected masked values
// keyed by field name. opts.State, when set, seeds defaults and receives the
// edits; otherwise a fresh state is used.
func (r *Renderer) Render(ctx context.Context, form render.Form, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	state := opts.State
	if state == nil {
		state = field.NewState()
	}

	defs := make([]field.Definition, 0, len(form.Fields))
	for _, def := range form.Fields {
		def = def.Normalize()
		if err := r.promptField(ctx, def, state); err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	values := make(map[string]string, len(defs))
	for _, def := range defs {
		values[def.Name] = state.Value(def.Identity)
	}
	if r.submitTransformer != nil {
		var err error
		values, err = r.submitTransformer(values)
		if err != nil {
			return nil, fmt.Errorf("tui: submit transformer: %w", err)
		}
	}
	return r.serialize(defs, values)
}

func (r *Renderer) promptField(ctx context.Context, def field.Definition, state *field.State) error {
	id := def.Identity
	pattern := def.Mask()

	state.Focus(id)
	defer state.Blur(id)

	for {
		current := state.Value(id)
		response, err := r.driver.Input(ctx, InputConfig{
			Message:     r.theme.PromptPrefix + def.Label,
			Default:     current,
			Help:        def.Help,
			Placeholder: pattern.Placeholder(current),
			Transform: func(raw string) string {
				return mask.Apply(def.Pattern, raw)
			},
			Validator: requiredValidator(def),
		})
		if err != nil {
			return err
		}

		value := state.Edit(id, def.Pattern, response)
		complete := pattern.Complete(mask.ExtractDigits(value))
		if complete || value == "" && !def.Required {
			return nil
		}
		if def.Required {
			if err := r.driver.Info(ctx, fmt.Sprintf("%s%s: %v", r.theme.ErrorPrefix, def.Label, ErrIncomplete)); err != nil {
				return err
			}
			continue
		}
		if !r.confirmPartial {
			return nil
		}
		keep, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Keep partial %s %q?", def.Label, value),
		})
		if err != nil {
			return err
		}
		if keep {
			return nil
		}
	}
}

func requiredValidator(def field.Definition) func(string) error {
	if !def.Required {
		return nil
	}
	pattern := def.Mask()
	return func(raw string) error {
		if pattern.Complete(mask.ExtractDigits(mask.Apply(def.Pattern, raw))) {
			return nil
		}
		return ErrIncomplete
	}
}

func (r *Renderer) serialize(defs []field.Definition, values map[string]string) ([]byte, error) {
	if r.outputFormat == OutputFormatPrettyText {
		var buf bytes.Buffer
		for _, def := range defs {
			value, ok := values[def.Name]
			if !ok {
				continue
			}
			fmt.Fprintf(&buf, "%s%s: %s\n", r.theme.InfoPrefix, def.Label, value)
		}
		return buf.Bytes(), nil
	}
	payload, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("tui: encode values: %w", err)
	}
	return payload, nil
}
