package orchestrator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/goliatone/go-maskfield/pkg/field"
	"github.com/goliatone/go-maskfield/pkg/render"
)

// Transformer mutates a form after it is resolved and before it is rendered.
type Transformer interface {
	Transform(ctx context.Context, form *render.Form) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, form *render.Form) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, form *render.Form) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, form)
}

// JSONPresetTransformer applies declarative per-field patches loaded from
// JSON:
//
//	{
//	  "fields": {
//	    "telephone": {"label": "Mobile", "pattern": "000-000-0000", "required": true},
//	    "digit-code": {"rename": "otp"}
//	  }
//	}
type JSONPresetTransformer struct {
	document jsonTransformDocument
}

type jsonTransformDocument struct {
	Fields map[string]jsonFieldPatch `json:"fields"`
}

type jsonFieldPatch struct {
	Label    string `json:"label"`
	Help     string `json:"help"`
	Pattern  string `json:"pattern"`
	Rename   string `json:"rename"`
	Required *bool  `json:"required"`
}

// NewJSONPresetTransformer constructs a transformer from raw JSON bytes.
func NewJSONPresetTransformer(data []byte) (*JSONPresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("json preset transformer: document is empty")
	}
	var document jsonTransformDocument
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("json preset transformer: parse document: %w", err)
	}
	return &JSONPresetTransformer{document: document}, nil
}

// NewJSONPresetTransformerFromFS loads a JSON transformer document from the
// provided filesystem path.
func NewJSONPresetTransformerFromFS(fsys fs.FS, path string) (*JSONPresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("json preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("json preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("json preset transformer: read %s: %w", path, err)
	}
	return NewJSONPresetTransformer(data)
}

// Transform applies the patches onto the named fields of form.
func (t *JSONPresetTransformer) Transform(ctx context.Context, form *render.Form) error {
	if form == nil {
		return errors.New("json preset transformer: form is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	for name, patch := range t.document.Fields {
		def := findField(form.Fields, name)
		if def == nil {
			return fmt.Errorf("json preset transformer: field %q not found", name)
		}
		applyFieldPatch(def, patch)
	}
	return nil
}

func applyFieldPatch(def *field.Definition, patch jsonFieldPatch) {
	if patch.Label != "" {
		def.Label = patch.Label
	}
	if patch.Help != "" {
		def.Help = patch.Help
	}
	if patch.Pattern != "" {
		def.Pattern = patch.Pattern
	}
	if patch.Required != nil {
		def.Required = *patch.Required
	}
	if name := strings.TrimSpace(patch.Rename); name != "" {
		def.Name = name
	}
}

func findField(fields []field.Definition, name string) *field.Definition {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	for idx := range fields {
		if fields[idx].Name == name {
			return &fields[idx]
		}
	}
	return nil
}
