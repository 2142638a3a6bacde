package style

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-maskfield/pkg/field"
)

// Token keys read from go-theme manifests.
const (
	TokenFontFamily       = "font.family"
	TokenTextColor        = "color.text"
	TokenPlaceholderColor = "color.placeholder"
	TokenLabelColor       = "color.label"
	TokenFocusColor       = "color.focus"
	TokenBorderColor      = "color.border"
)

// Config is the read-only presentation configuration handed to renderers.
// It replaces process-wide style globals: every renderer receives one
// explicitly through its options.
type Config struct {
	Theme            string `json:"theme,omitempty" yaml:"theme,omitempty"`
	Variant          string `json:"variant,omitempty" yaml:"variant,omitempty"`
	FontFamily       string `json:"fontFamily,omitempty" yaml:"fontFamily,omitempty"`
	TextColor        string `json:"textColor,omitempty" yaml:"textColor,omitempty"`
	PlaceholderColor string `json:"placeholderColor,omitempty" yaml:"placeholderColor,omitempty"`
	LabelColor       string `json:"labelColor,omitempty" yaml:"labelColor,omitempty"`
	FocusColor       string `json:"focusColor,omitempty" yaml:"focusColor,omitempty"`
	BorderColor      string `json:"borderColor,omitempty" yaml:"borderColor,omitempty"`
}

// Default returns the built-in palette.
func Default() Config {
	return Config{
		FontFamily:       "system-ui, sans-serif",
		TextColor:        "#1f2933",
		PlaceholderColor: "#9aa5b1",
		LabelColor:       "#52606d",
		FocusColor:       "#2680c2",
		BorderColor:      "#cbd2d9",
	}
}

// Merge returns c with blank fields filled from fallback.
func (c Config) Merge(fallback Config) Config {
	pick := func(value, alt string) string {
		if strings.TrimSpace(value) == "" {
			return alt
		}
		return value
	}
	return Config{
		Theme:            pick(c.Theme, fallback.Theme),
		Variant:          pick(c.Variant, fallback.Variant),
		FontFamily:       pick(c.FontFamily, fallback.FontFamily),
		TextColor:        pick(c.TextColor, fallback.TextColor),
		PlaceholderColor: pick(c.PlaceholderColor, fallback.PlaceholderColor),
		LabelColor:       pick(c.LabelColor, fallback.LabelColor),
		FocusColor:       pick(c.FocusColor, fallback.FocusColor),
		BorderColor:      pick(c.BorderColor, fallback.BorderColor),
	}
}

// Display returns the per-identity display parameters.
func (c Config) Display(id field.Identity) field.Display {
	return field.DisplayFor(id)
}

// Tokens returns the config as go-theme token keys.
func (c Config) Tokens() map[string]string {
	tokens := map[string]string{}
	set := func(key, value string) {
		if value != "" {
			tokens[key] = value
		}
	}
	set(TokenFontFamily, c.FontFamily)
	set(TokenTextColor, c.TextColor)
	set(TokenPlaceholderColor, c.PlaceholderColor)
	set(TokenLabelColor, c.LabelColor)
	set(TokenFocusColor, c.FocusColor)
	set(TokenBorderColor, c.BorderColor)
	return tokens
}

// CSSVars maps tokens to --maskfield-* custom properties.
func (c Config) CSSVars() map[string]string {
	tokens := c.Tokens()
	vars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		vars[cssVarName(key)] = value
	}
	return vars
}

// CSSVarsStyle renders the CSS variables as a stable, sorted declaration
// block scoped to selector.
func (c Config) CSSVarsStyle(selector string) string {
	vars := c.CSSVars()
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, key := range keys {
		fmt.Fprintf(&b, "  %s: %s;\n", key, vars[key])
	}
	b.WriteString("}")
	return b.String()
}

// RendererConfig converts the config into the go-theme renderer contract.
func (c Config) RendererConfig() *theme.RendererConfig {
	return &theme.RendererConfig{
		Theme:   c.Theme,
		Variant: c.Variant,
		Tokens:  c.Tokens(),
		CSSVars: c.CSSVars(),
	}
}

func cssVarName(token string) string {
	name := strings.TrimPrefix(token, "color.")
	name = strings.ReplaceAll(name, ".", "-")
	return "--maskfield-" + name
}
