package render

import (
	"github.com/goliatone/go-maskfield/pkg/field"
	"github.com/goliatone/go-maskfield/pkg/style"
)

// RenderOptions describe per-request data that renderers use to draw the
// current field state without owning it.
type RenderOptions struct {
	// State carries stored values and focus. A nil state renders every field
	// empty and unfocused.
	State *field.State
	// Style is the explicit presentation configuration. The zero value
	// falls back to style.Default().
	Style style.Config
	// Errors maps field names to a message rendered next to the field,
	// typically validation.Result.Messages().
	Errors map[string]string
}

// ResolvedStyle returns the configured style merged over the defaults.
func (o RenderOptions) ResolvedStyle() style.Config {
	return o.Style.Merge(style.Default())
}
