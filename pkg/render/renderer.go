package render

import (
	"context"

	"github.com/goliatone/go-maskfield/pkg/field"
)

// Form is the group of masked fields a renderer draws.
type Form struct {
	Name   string
	Fields []field.Definition
}

// Renderer converts a Form and its state into a byte representation (HTML,
// serialised prompt answers, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form Form, options RenderOptions) ([]byte, error)
}
