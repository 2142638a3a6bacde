package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-maskfield/pkg/fieldset"
	"github.com/goliatone/go-maskfield/pkg/render"
	"github.com/goliatone/go-maskfield/pkg/renderers/vanilla"
	"github.com/goliatone/go-maskfield/pkg/schema"
	"github.com/goliatone/go-maskfield/pkg/style"
	"github.com/goliatone/go-maskfield/pkg/widgets"
)

const defaultRendererName = "vanilla"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithFieldsets injects a pre-loaded fieldset store.
func WithFieldsets(store *fieldset.Store) Option {
	return func(o *Orchestrator) {
		o.fieldsets = store
	}
}

// WithFieldsetFS loads fieldsets from fsys instead of the embedded defaults.
func WithFieldsetFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.fieldsetFS = fsys
	}
}

// WithSchemaReader injects the reader used for OpenAPI sources.
func WithSchemaReader(reader *schema.Reader) Option {
	return func(o *Orchestrator) {
		o.reader = reader
	}
}

// WithIdentityRegistry injects the registry that resolves identities for
// OpenAPI properties.
func WithIdentityRegistry(registry *widgets.Registry) Option {
	return func(o *Orchestrator) {
		o.identities = registry
	}
}

// WithTransformer registers a Transformer that runs before rendering.
func WithTransformer(t Transformer) Option {
	return func(o *Orchestrator) {
		o.transformer = t
	}
}

// WithThemeSelector resolves request theme names through selector.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// Orchestrator coordinates the full pipeline from fieldset or OpenAPI
// document to rendered output.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	fieldsets       *fieldset.Store
	fieldsetFS      fs.FS
	reader          *schema.Reader
	identities      *widgets.Registry
	transformer     Transformer
	themeSelector   theme.ThemeSelector
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one render.
type Request struct {
	// Fieldset names the fieldset to render. Ignored when Source or Document
	// is set. Defaults to fieldset.DefaultName.
	Fieldset string

	// Source points at an OpenAPI document read through the schema reader.
	Source schema.Source

	// Document is a raw OpenAPI payload that bypasses the reader.
	Document []byte

	// SchemaName selects components.schemas entry for OpenAPI requests.
	SchemaName string

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant are resolved through the theme selector.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries the field state and explicit style. Explicit
	// style values win over the fieldset style, which wins over the theme.
	RenderOptions render.RenderOptions
}

// Generate resolves the form, applies the transformer and renders it.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	form, formStyle, err := o.resolveForm(ctx, req)
	if err != nil {
		return nil, err
	}
	if o.transformer != nil {
		if err := o.transformer.Transform(ctx, &form); err != nil {
			return nil, fmt.Errorf("orchestrator: transform form: %w", err)
		}
	}

	opts := req.RenderOptions
	opts.Style = opts.Style.Merge(formStyle)
	if req.ThemeName != "" || req.ThemeVariant != "" {
		themed, err := o.resolveTheme(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return nil, err
		}
		opts.Style = opts.Style.Merge(themed)
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}
	output, err := renderer.Render(ctx, form, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Fieldsets exposes the loaded fieldset store.
func (o *Orchestrator) Fieldsets() *fieldset.Store {
	return o.fieldsets
}

func (o *Orchestrator) resolveForm(ctx context.Context, req Request) (render.Form, style.Config, error) {
	if req.Source == nil && len(req.Document) == 0 {
		name := req.Fieldset
		if name == "" {
			name = fieldset.DefaultName
		}
		set, err := o.fieldsets.Get(name)
		if err != nil {
			return render.Form{}, style.Config{}, fmt.Errorf("orchestrator: %w", err)
		}
		return render.Form{Name: set.Name, Fields: set.Fields}, set.Style, nil
	}

	if req.SchemaName == "" {
		return render.Form{}, style.Config{}, errors.New("orchestrator: schema name is required for OpenAPI requests")
	}
	data := req.Document
	if len(data) == 0 {
		var err error
		data, err = o.reader.Read(ctx, req.Source)
		if err != nil {
			return render.Form{}, style.Config{}, fmt.Errorf("orchestrator: read document: %w", err)
		}
	}
	defs, err := schema.FromOpenAPI(ctx, data, req.SchemaName, schema.WithRegistry(o.identities))
	if err != nil {
		return render.Form{}, style.Config{}, fmt.Errorf("orchestrator: import schema: %w", err)
	}
	return render.Form{Name: req.SchemaName, Fields: defs}, style.Config{}, nil
}

func (o *Orchestrator) resolveTheme(name, variant string) (style.Config, error) {
	if o.themeSelector == nil {
		return style.Config{}, errors.New("orchestrator: theme requested but no selector configured")
	}
	cfg, err := style.Select(o.themeSelector, name, variant)
	if err != nil {
		return style.Config{}, fmt.Errorf("orchestrator: %w", err)
	}
	return cfg, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}
	renderer, err := o.registry.Resolve(name, o.defaultRenderer)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.reader == nil {
		o.reader = schema.NewReader()
	}
	if o.identities == nil {
		o.identities = widgets.NewRegistry()
	}
	if o.fieldsets == nil {
		var (
			store *fieldset.Store
			err   error
		)
		if o.fieldsetFS != nil {
			store, err = fieldset.LoadFS(o.fieldsetFS)
		} else {
			store, err = fieldset.LoadDefaults()
		}
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load fieldsets: %w", err)
			return
		}
		o.fieldsets = store
	}
}
