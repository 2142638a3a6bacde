package schema

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-maskfield/pkg/field"
	"github.com/goliatone/go-maskfield/pkg/widgets"
)

// Options tune OpenAPI imports.
type Options struct {
	// Registry resolves identities. Defaults to widgets.NewRegistry().
	Registry *widgets.Registry
	// Validate runs the kin-openapi document validator before importing.
	Validate bool
}

// Option mutates Options.
type Option func(*Options)

// WithRegistry injects a custom identity registry.
func WithRegistry(reg *widgets.Registry) Option {
	return func(o *Options) {
		if reg != nil {
			o.Registry = reg
		}
	}
}

// WithValidation enables document validation.
func WithValidation(enabled bool) Option {
	return func(o *Options) {
		o.Validate = enabled
	}
}

// FromOpenAPI loads an OpenAPI 3 document and turns the masked string
// properties of components.schemas[schemaName] into field definitions,
// ordered by property name.
func FromOpenAPI(ctx context.Context, data []byte, schemaName string, options ...Option) ([]field.Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("schema: document payload is empty")
	}

	opts := Options{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&opts)
	}
	if opts.Registry == nil {
		opts.Registry = widgets.NewRegistry()
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("schema: load document: %w", err)
	}
	if opts.Validate {
		if err := doc.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			return nil, fmt.Errorf("schema: validate: %w", err)
		}
	}

	if doc.Components == nil || doc.Components.Schemas == nil {
		return nil, fmt.Errorf("schema: document has no component schemas")
	}
	ref, ok := doc.Components.Schemas[schemaName]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("schema: component schema %q not found", schemaName)
	}

	return Definitions(ref.Value, opts.Registry)
}

// Definitions extracts masked field definitions from the properties of s.
// Field state holds one value per identity, so two properties resolving to
// the same identity are an error.
func Definitions(s *openapi3.Schema, reg *widgets.Registry) ([]field.Definition, error) {
	if s == nil || len(s.Properties) == 0 {
		return nil, nil
	}
	required := make(map[string]struct{}, len(s.Required))
	for _, name := range s.Required {
		required[name] = struct{}{}
	}

	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	var defs []field.Definition
	owners := make(map[field.Identity]string, len(names))
	for _, name := range names {
		prop := s.Properties[name]
		if prop == nil || prop.Value == nil || !isString(prop.Value) {
			continue
		}
		def, ok := reg.Definition(widgets.Hint{
			Name:       name,
			Format:     prop.Value.Format,
			Pattern:    prop.Value.Pattern,
			Extensions: prop.Value.Extensions,
		})
		if !ok {
			continue
		}
		if owner, taken := owners[def.Identity]; taken {
			return nil, fmt.Errorf("schema: identity %s used by %s and %s", def.Identity, owner, name)
		}
		owners[def.Identity] = name
		if title := strings.TrimSpace(prop.Value.Title); title != "" {
			def.Label = title
		}
		def.Help = strings.TrimSpace(prop.Value.Description)
		_, def.Required = required[name]
		defs = append(defs, def)
	}
	return defs, nil
}

func isString(s *openapi3.Schema) bool {
	if s.Type == nil {
		return false
	}
	return s.Type.Is(openapi3.TypeString)
}
