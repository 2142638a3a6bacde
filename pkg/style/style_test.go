package style

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-maskfield/pkg/field"
)

func testManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			TokenFontFamily: "Inter",
			TokenTextColor:  "#111111",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					TokenTextColor:  "#eeeeee",
					TokenFocusColor: "#ffcc00",
				},
			},
		},
	}
}

func TestFromManifest_VariantOverridesBase(t *testing.T) {
	cfg := FromManifest(testManifest(), "dark")
	defaults := Default()

	want := Config{
		Theme:            "acme",
		Variant:          "dark",
		FontFamily:       "Inter",
		TextColor:        "#eeeeee",
		PlaceholderColor: defaults.PlaceholderColor,
		LabelColor:       defaults.LabelColor,
		FocusColor:       "#ffcc00",
		BorderColor:      defaults.BorderColor,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestFromManifest_UnknownVariantUsesBase(t *testing.T) {
	cfg := FromManifest(testManifest(), "sepia")
	if cfg.TextColor != "#111111" {
		t.Fatalf("expected base token, got %q", cfg.TextColor)
	}
	if got := FromManifest(nil, ""); got != Default() {
		t.Fatalf("expected defaults for nil manifest, got %#v", got)
	}
}

func TestSelect_UsesSelector(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:    "acme",
		Variant:  "dark",
		Manifest: testManifest(),
	}}

	cfg, err := Select(selector, "acme", "dark")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if len(selector.calls) != 1 || selector.calls[0] != "acme/dark" {
		t.Fatalf("unexpected selector calls: %v", selector.calls)
	}
	if cfg.FocusColor != "#ffcc00" || cfg.Theme != "acme" {
		t.Fatalf("unexpected config: %#v", cfg)
	}

	failing := &stubThemeSelector{err: errors.New("missing")}
	if _, err := Select(failing, "nope", ""); err == nil {
		t.Fatalf("expected selector error to surface")
	}
	if _, err := Select(nil, "acme", ""); err == nil {
		t.Fatalf("expected error for nil selector")
	}
}

func TestConfig_CSSVarsAndRendererConfig(t *testing.T) {
	cfg := Config{Theme: "acme", Variant: "dark", FontFamily: "Inter", FocusColor: "#fc0"}

	wantVars := map[string]string{
		"--maskfield-font-family": "Inter",
		"--maskfield-focus":       "#fc0",
	}
	if diff := cmp.Diff(wantVars, cfg.CSSVars()); diff != "" {
		t.Fatalf("css vars mismatch (-want +got):\n%s", diff)
	}

	wantStyle := ".maskfield {\n  --maskfield-focus: #fc0;\n  --maskfield-font-family: Inter;\n}"
	if got := cfg.CSSVarsStyle(".maskfield"); got != wantStyle {
		t.Fatalf("unexpected style block:\n%s", got)
	}

	rc := cfg.RendererConfig()
	if rc.Theme != "acme" || rc.Variant != "dark" {
		t.Fatalf("unexpected renderer config: %#v", rc)
	}
	if rc.CSSVars["--maskfield-focus"] != "#fc0" || rc.Tokens[TokenFocusColor] != "#fc0" {
		t.Fatalf("tokens not propagated: %#v", rc)
	}
}

func TestConfig_DisplayDelegatesToFieldTable(t *testing.T) {
	if got := Default().Display(field.DigitCode); got.FontSize != 26 {
		t.Fatalf("unexpected display: %#v", got)
	}
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []string
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, name+"/"+variant)
	return s.selection, s.err
}
