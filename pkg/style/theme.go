package style

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// FromManifest builds a config from manifest tokens. Tokens declared by the
// named variant override the base tokens; anything still missing falls back
// to Default.
func FromManifest(manifest *theme.Manifest, variant string) Config {
	if manifest == nil {
		return Default()
	}
	tokens := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}
	variant = strings.TrimSpace(variant)
	if variant != "" {
		if v, ok := manifest.Variants[variant]; ok {
			for key, value := range v.Tokens {
				tokens[key] = value
			}
		}
	}

	cfg := fromTokens(tokens)
	cfg.Theme = manifest.Name
	cfg.Variant = variant
	return cfg.Merge(Default())
}

// FromSelection builds a config from a resolved go-theme selection.
func FromSelection(selection *theme.Selection) Config {
	if selection == nil {
		return Default()
	}
	cfg := FromManifest(selection.Manifest, selection.Variant)
	if selection.Theme != "" {
		cfg.Theme = selection.Theme
	}
	return cfg
}

// Select resolves name/variant through selector and builds a config.
func Select(selector theme.ThemeSelector, name, variant string) (Config, error) {
	if selector == nil {
		return Config{}, fmt.Errorf("style: theme selector is required")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return Config{}, fmt.Errorf("style: select theme %q/%q: %w", name, variant, err)
	}
	return FromSelection(selection), nil
}

func fromTokens(tokens map[string]string) Config {
	return Config{
		FontFamily:       tokens[TokenFontFamily],
		TextColor:        tokens[TokenTextColor],
		PlaceholderColor: tokens[TokenPlaceholderColor],
		LabelColor:       tokens[TokenLabelColor],
		FocusColor:       tokens[TokenFocusColor],
		BorderColor:      tokens[TokenBorderColor],
	}
}
