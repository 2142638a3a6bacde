// Package maskfield is the top-level entry point for masked text fields:
// digit masking against wildcard patterns, per-field state and rendering
// through the orchestrator.
package maskfield

import (
	"context"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-maskfield/pkg/field"
	"github.com/goliatone/go-maskfield/pkg/mask"
	"github.com/goliatone/go-maskfield/pkg/orchestrator"
	"github.com/goliatone/go-maskfield/pkg/render"
	"github.com/goliatone/go-maskfield/pkg/renderers/vanilla"
	"github.com/goliatone/go-maskfield/pkg/schema"
)

// RenderOptions carries the field state and style handed to renderers.
type RenderOptions = render.RenderOptions

// Definition describes one masked field.
type Definition = field.Definition

// State holds stored values and focus for a group of fields.
type State = field.State

// Format masks input against pattern: digits are extracted, overlaid on the
// wildcard slots and any trailing literals are trimmed.
func Format(pattern, input string) string {
	return mask.Apply(pattern, input)
}

// Placeholder returns masked followed by the unrendered remainder of pattern.
func Placeholder(pattern, masked string) string {
	return mask.Placeholder(pattern, masked)
}

// NewState returns an empty field state.
func NewState(options ...field.StateOption) *State {
	return field.NewState(options...)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML renders the named fieldset with the vanilla renderer.
func GenerateHTML(ctx context.Context, fieldsetName string, opts RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Fieldset:      fieldsetName,
		Renderer:      "vanilla",
		RenderOptions: opts,
	})
}

// GenerateHTMLFromOpenAPI renders the masked properties of schemaName in the
// OpenAPI document behind source.
func GenerateHTMLFromOpenAPI(ctx context.Context, source schema.Source, schemaName string, opts RenderOptions, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:        source,
		SchemaName:    schemaName,
		Renderer:      "vanilla",
		RenderOptions: opts,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// EmbeddedTemplates exposes the built-in vanilla renderer templates.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// RuntimeAssetsFS exposes the stylesheet and browser runtime used by the
// vanilla renderer.
//
// Typical mount:
//
//	mux.Handle("/maskfield/",
//	  http.StripPrefix("/maskfield/",
//	    http.FileServerFS(maskfield.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
