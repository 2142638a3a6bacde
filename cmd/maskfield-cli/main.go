package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/goliatone/go-maskfield/components/maskformat"
	"github.com/goliatone/go-maskfield/pkg/fieldset"
	"github.com/goliatone/go-maskfield/pkg/orchestrator"
	"github.com/goliatone/go-maskfield/pkg/render"
	"github.com/goliatone/go-maskfield/pkg/renderers/tui"
	"github.com/goliatone/go-maskfield/pkg/renderers/vanilla"
	"github.com/goliatone/go-maskfield/pkg/schema"
)

type options struct {
	configDir  string
	fieldset   string
	renderer   string
	output     string
	pattern    string
	field      string
	value      string
	serve      string
	openapi    string
	schemaName string
	preset     string
	tuiOutput  string
}

func main() {
	var opts options
	flag.StringVar(&opts.configDir, "config", "", "directory of fieldset YAML/JSON files (embedded defaults if empty)")
	flag.StringVar(&opts.fieldset, "fieldset", fieldset.DefaultName, "fieldset to render")
	flag.StringVar(&opts.renderer, "renderer", "vanilla", "renderer to use (vanilla|tui)")
	flag.StringVar(&opts.output, "output", "", "output file (stdout if empty)")
	flag.StringVar(&opts.pattern, "pattern", "", "pattern for a one-shot format")
	flag.StringVar(&opts.field, "field", "", "field identity for a one-shot format (telephone, credit-card, digit-code)")
	flag.StringVar(&opts.value, "value", "", "input for a one-shot format")
	flag.StringVar(&opts.serve, "serve", "", "serve the rendered fieldset and format endpoint on addr (e.g. :8080)")
	flag.StringVar(&opts.openapi, "openapi", "", "OpenAPI document path or URL to import fields from")
	flag.StringVar(&opts.schemaName, "schema", "", "component schema to import when -openapi is set")
	flag.StringVar(&opts.preset, "preset", "", "JSON preset file patching field labels and patterns")
	flag.StringVar(&opts.tuiOutput, "tui-output", "json", "tui renderer output (json|pretty)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := run(context.Background(), opts); err != nil {
		slog.Error("maskfield-cli failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	if opts.pattern != "" || opts.field != "" {
		return formatOnce(opts)
	}

	orchOptions, err := orchestratorOptions(opts)
	if err != nil {
		return err
	}

	if opts.serve != "" {
		return serve(ctx, opts, orchOptions)
	}

	gen := orchestrator.New(orchOptions...)
	req, err := generateRequest(opts)
	if err != nil {
		return err
	}
	out, err := gen.Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	return writeOutput(opts.output, out)
}

func formatOnce(opts options) error {
	result, err := maskformat.Format(maskformat.Request{
		Pattern: opts.pattern,
		Field:   opts.field,
		Value:   opts.value,
	}, maskformat.DefaultOptions())
	if err != nil {
		return err
	}
	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return writeOutput(opts.output, append(payload, '\n'))
}

func orchestratorOptions(opts options) ([]orchestrator.Option, error) {
	registry := render.NewRegistry()
	html, err := vanilla.New()
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: %w", err)
	}
	registry.MustRegister(html)

	tuiFormat, err := tui.ParseOutputFormat(opts.tuiOutput)
	if err != nil {
		return nil, err
	}
	prompts, err := tui.New(tui.WithOutputFormat(tuiFormat))
	if err != nil {
		return nil, fmt.Errorf("tui renderer: %w", err)
	}
	registry.MustRegister(prompts)

	out := []orchestrator.Option{
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(opts.renderer),
	}
	if opts.configDir != "" {
		out = append(out, orchestrator.WithFieldsetFS(os.DirFS(opts.configDir)))
	}
	if opts.openapi != "" {
		out = append(out, orchestrator.WithSchemaReader(schema.NewReader(schema.WithHTTPFallback(0))))
	}
	if opts.preset != "" {
		data, err := os.ReadFile(opts.preset)
		if err != nil {
			return nil, fmt.Errorf("read preset: %w", err)
		}
		preset, err := orchestrator.NewJSONPresetTransformer(data)
		if err != nil {
			return nil, err
		}
		out = append(out, orchestrator.WithTransformer(preset))
	}
	return out, nil
}

func generateRequest(opts options) (orchestrator.Request, error) {
	req := orchestrator.Request{
		Fieldset: opts.fieldset,
		Renderer: opts.renderer,
	}
	if opts.openapi == "" {
		return req, nil
	}
	src, err := schema.ParseSource(opts.openapi)
	if err != nil {
		return orchestrator.Request{}, err
	}
	if strings.TrimSpace(opts.schemaName) == "" {
		return orchestrator.Request{}, fmt.Errorf("-schema is required with -openapi")
	}
	req.Source = src
	req.SchemaName = opts.schemaName
	return req, nil
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	slog.Info("output written", "path", path, "bytes", len(data))
	return nil
}
