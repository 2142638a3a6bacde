package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goliatone/go-maskfield/components/maskformat"
	"github.com/goliatone/go-maskfield/components/maskformat/vanillawiring"
	"github.com/goliatone/go-maskfield/pkg/field"
	"github.com/goliatone/go-maskfield/pkg/orchestrator"
	"github.com/goliatone/go-maskfield/pkg/render"
	"github.com/goliatone/go-maskfield/pkg/render/template"
	"github.com/goliatone/go-maskfield/pkg/render/template/gotemplate"
	"github.com/goliatone/go-maskfield/pkg/renderers/vanilla"
	"github.com/goliatone/go-maskfield/pkg/validation"
)

const assetsPrefix = "/maskfield/"

const pageTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{ title }}</title>
  <link rel="stylesheet" href="{{ assets }}{{ stylesheet }}">
</head>
<body>
<form method="post" action="/">
{{ form|safe }}
<button type="submit">Submit</button>
</form>
{% if submitted %}<pre class="maskfield-submission">{{ submitted }}</pre>
{% endif %}<script src="{{ assets }}{{ script }}" defer></script>
</body>
</html>
`

func serve(ctx context.Context, opts options, orchOptions []orchestrator.Option) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	handler, route, err := newServeHandler(opts, orchOptions)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              opts.serve,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", opts.serve, "fieldset", opts.fieldset, "format", route)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

// newServeHandler wires the format endpoint, the static assets and the demo
// page for the selected fieldset. It returns the mounted format route.
func newServeHandler(opts options, orchOptions []orchestrator.Option) (http.Handler, string, error) {
	// The served page uses the HTML renderer regardless of -renderer.
	lookup := orchestrator.New(orchOptions...)
	set, err := lookup.Fieldsets().Get(opts.fieldset)
	if err != nil {
		return nil, "", err
	}

	format := maskformat.New(maskformat.WithPatterns(set.Patterns()))
	html, err := vanilla.New(vanillawiring.FormatEndpointOption("", maskformat.WithRoutePath(format.Options().RoutePath)))
	if err != nil {
		return nil, "", fmt.Errorf("vanilla renderer: %w", err)
	}
	registry := render.NewRegistry()
	registry.MustRegister(html)
	gen := orchestrator.New(append(orchOptions, orchestrator.WithRegistry(registry), orchestrator.WithDefaultRenderer(html.Name()))...)

	page, err := gotemplate.New(
		gotemplate.WithFS(vanilla.TemplatesFS()),
		gotemplate.WithGlobalData(map[string]any{
			"assets":     assetsPrefix,
			"stylesheet": vanilla.StylesheetName,
			"script":     vanilla.RuntimeScriptName,
		}),
	)
	if err != nil {
		return nil, "", fmt.Errorf("page template: %w", err)
	}

	mux := http.NewServeMux()
	route, err := format.RegisterRoutes(mux, "")
	if err != nil {
		return nil, "", err
	}
	mux.Handle(assetsPrefix, http.StripPrefix(assetsPrefix, http.FileServerFS(vanilla.AssetsFS())))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if err := r.ParseForm(); err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		state := field.NewState()
		submitted := make(map[string]string, len(set.Fields))
		for _, def := range set.Fields {
			if raw := r.Form.Get(def.Name); raw != "" {
				submitted[def.Name] = state.Edit(def.Identity, def.Pattern, raw)
			}
		}

		renderOpts := render.RenderOptions{State: state}
		var summary string
		if r.Method == http.MethodPost {
			result := validation.Validate(set.Fields, submitted)
			renderOpts.Errors = result.Messages()
			slog.Info("submission", "fieldset", set.Name, "valid", result.Valid, "issues", len(result.Issues))
			if result.Valid {
				payload, _ := json.MarshalIndent(submitted, "", "  ")
				summary = string(payload)
			}
		}

		form, err := gen.Generate(r.Context(), orchestrator.Request{
			Fieldset:      set.Name,
			RenderOptions: renderOpts,
		})
		if err != nil {
			slog.Error("render page", "fieldset", set.Name, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		writePage(w, page, pageTemplate, html.ContentType(), map[string]any{
			"title":     set.Name,
			"form":      string(form),
			"submitted": summary,
		})
	})

	return mux, route, nil
}

// writePage renders shell before touching w so a failed render still
// answers with a 500.
func writePage(w http.ResponseWriter, page template.TemplateRenderer, shell, contentType string, data map[string]any) {
	body, err := page.RenderString(shell, data)
	if err != nil {
		slog.Error("render page shell", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	if _, err := io.WriteString(w, body); err != nil {
		slog.Error("write page", "error", err)
	}
}
