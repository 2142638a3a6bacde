package gotemplate_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-maskfield/pkg/render/template/gotemplate"
)

func newEngine(t *testing.T, options ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()

	files := fstest.MapFS{
		"hello.tmpl":      {Data: []byte(`Hello {{ name }}`)},
		"phone.tmpl":      {Data: []byte(`{{ raw|mask:pattern }}|{{ raw|mask:pattern|placeholder:pattern }}|{{ raw|digits }}`)},
		"use-global.tmpl": {Data: []byte(`env={{ settings.env }}`)},
	}
	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(files)}, options...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderTemplateWritesOutput(t *testing.T) {
	engine := newEngine(t)

	var buf bytes.Buffer
	result, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "Hello Ada" || buf.String() != result {
		t.Fatalf("unexpected output: result=%q writer=%q", result, buf.String())
	}
}

func TestEngine_MaskFilters(t *testing.T) {
	engine := newEngine(t)

	result, err := engine.RenderTemplate("phone.tmpl", map[string]any{
		"raw":     "555-12",
		"pattern": "(000) 000 - 0000",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "(555) 12|(555) 120 - 0000|55512"
	if result != want {
		t.Fatalf("unexpected filter output\nwant: %q\n got: %q", want, result)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}))

	result, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "env=staging" {
		t.Fatalf("unexpected output: %q", result)
	}
}

func TestEngine_RenderStringWithStruct(t *testing.T) {
	engine := newEngine(t)

	type payload struct {
		Label string `json:"label"`
	}
	result, err := engine.RenderString(`[{{ label }}]`, payload{Label: "Code"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "[Code]" {
		t.Fatalf("unexpected output: %q", result)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	name := fmt.Sprintf("shout_%d", len(t.Name()))
	err := engine.RegisterFilter(name, func(input any, _ any) (any, error) {
		return strings.ToUpper(fmt.Sprint(input)) + "!", nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter(name, func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}

	result, err := engine.RenderString(`{{ name|`+name+` }}`, map[string]any{"name": "ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "ADA!" {
		t.Fatalf("unexpected output: %q", result)
	}
}

func TestNew_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without templates")
	}
}
