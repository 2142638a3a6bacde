package vanilla

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-maskfield/pkg/field"
	"github.com/goliatone/go-maskfield/pkg/render"
	rendertemplate "github.com/goliatone/go-maskfield/pkg/render/template"
	"github.com/goliatone/go-maskfield/pkg/render/template/gotemplate"
	"github.com/goliatone/go-maskfield/pkg/style"
)

const formTemplate = "templates/form.tmpl"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	endpoint         string
	inlineStyle      bool
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithFormatEndpoint sets the URL of the live format endpoint the runtime
// script calls on every keystroke.
func WithFormatEndpoint(url string) Option {
	return func(cfg *config) {
		cfg.endpoint = strings.TrimSpace(url)
	}
}

// WithInlineStyle emits the style CSS variables in a <style> block.
func WithInlineStyle(enabled bool) Option {
	return func(cfg *config) {
		cfg.inlineStyle = enabled
	}
}

type Renderer struct {
	templates   rendertemplate.TemplateRenderer
	endpoint    string
	inlineStyle bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), inlineStyle: true}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:   renderer,
		endpoint:    cfg.endpoint,
		inlineStyle: cfg.inlineStyle,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render draws every field of form with the stored value, the composed
// placeholder and the focus state taken from opts.State.
func (r *Renderer) Render(ctx context.Context, form render.Form, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("vanilla renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	styleCfg := opts.ResolvedStyle()
	fields := make([]map[string]any, 0, len(form.Fields))
	for _, def := range form.Fields {
		fields = append(fields, fieldView(def.Normalize(), opts, styleCfg))
	}

	data := map[string]any{
		"form": map[string]any{
			"name":   form.Name,
			"fields": fields,
		},
		"endpoint": r.endpoint,
	}
	if r.inlineStyle {
		data["style"] = styleCfg.CSSVarsStyle(".maskfield-form")
	}

	result, err := r.templates.RenderTemplate(formTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func fieldView(def field.Definition, opts render.RenderOptions, styleCfg style.Config) map[string]any {
	state := opts.State
	value := state.Value(def.Identity)
	focused := state.IsFocused(def.Identity)
	display := styleCfg.Display(def.Identity)
	pattern := def.Mask()

	return map[string]any{
		"id":            controlID(def.Name),
		"name":          def.Name,
		"identity":      def.Identity.String(),
		"label":         sanitizeLabel(def.Label),
		"help":          sanitizeHelp(def.Help),
		"value":         value,
		"placeholder":   pattern.Placeholder(value),
		"pattern":       def.Pattern,
		"maxLength":     pattern.Len(),
		"required":      def.Required,
		"focused":       focused,
		"raised":        focused || value != "",
		"fontSize":      display.FontSize,
		"letterSpacing": display.LetterSpacing,
		"error":         strings.TrimSpace(opts.Errors[def.Name]),
	}
}

func controlID(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return "mf-" + strings.ReplaceAll(trimmed, " ", "-")
}
