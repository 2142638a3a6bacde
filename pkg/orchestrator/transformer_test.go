package orchestrator

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-maskfield/pkg/field"
	"github.com/goliatone/go-maskfield/pkg/render"
)

func TestJSONPresetTransformer_PatchesFields(t *testing.T) {
	files := fstest.MapFS{"preset.json": {Data: []byte(`{
  "fields": {
    "telephone": {"label": "Mobile", "pattern": "000-000-0000", "required": true},
    "digit-code": {"rename": "otp", "help": "Check your inbox"}
  }
}`)}}
	preset, err := NewJSONPresetTransformerFromFS(files, "preset.json")
	if err != nil {
		t.Fatalf("load preset: %v", err)
	}

	form := render.Form{Fields: []field.Definition{
		field.DefaultDefinition(field.Telephone),
		field.DefaultDefinition(field.DigitCode),
	}}
	if err := preset.Transform(context.Background(), &form); err != nil {
		t.Fatalf("transform: %v", err)
	}

	want := []field.Definition{
		{Name: "telephone", Identity: field.Telephone, Pattern: "000-000-0000", Label: "Mobile", Required: true},
		{Name: "otp", Identity: field.DigitCode, Pattern: "______", Label: "Code", Help: "Check your inbox"},
	}
	if diff := cmp.Diff(want, form.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONPresetTransformer_Errors(t *testing.T) {
	if _, err := NewJSONPresetTransformer([]byte("  ")); err == nil {
		t.Fatalf("expected error for empty document")
	}
	if _, err := NewJSONPresetTransformer([]byte("{")); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := NewJSONPresetTransformerFromFS(nil, "x.json"); err == nil {
		t.Fatalf("expected error for nil filesystem")
	}

	preset, err := NewJSONPresetTransformer([]byte(`{"fields":{"missing":{"label":"x"}}}`))
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	form := render.Form{Fields: []field.Definition{field.DefaultDefinition(field.Telephone)}}
	if err := preset.Transform(context.Background(), &form); err == nil {
		t.Fatalf("expected error for unknown field")
	}
	if err := preset.Transform(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil form")
	}
}

func TestTransformerFunc(t *testing.T) {
	var nilFn TransformerFunc
	if err := nilFn.Transform(context.Background(), &render.Form{}); err != nil {
		t.Fatalf("nil func should be a no-op: %v", err)
	}

	fn := TransformerFunc(func(_ context.Context, form *render.Form) error {
		form.Name = "renamed"
		return nil
	})
	form := render.Form{}
	if err := fn.Transform(context.Background(), &form); err != nil || form.Name != "renamed" {
		t.Fatalf("unexpected result: %v %q", err, form.Name)
	}
}
