// Package validation checks submitted masked values against their field
// definitions. Every rule is derived from the field's pattern: a required
// value must fill it and any value must already be in masked form. Length,
// regex and cross-field rules do not belong here.
package validation

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-maskfield/pkg/field"
	"github.com/goliatone/go-maskfield/pkg/mask"
)

// Issue codes.
const (
	CodeRequired   = "required"
	CodeIncomplete = "incomplete"
	CodeFormat     = "format"
)

// Issue is one problem with a submitted value.
type Issue struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result captures validation outcomes for a submission.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Messages maps field names to the first issue message, the shape
// render.RenderOptions.Errors expects.
func (r Result) Messages() map[string]string {
	if len(r.Issues) == 0 {
		return nil
	}
	out := make(map[string]string, len(r.Issues))
	for _, issue := range r.Issues {
		if _, exists := out[issue.Field]; !exists {
			out[issue.Field] = issue.Message
		}
	}
	return out
}

// Validate checks values (keyed by field name) against defs. A value is
// well-formed when masking it again yields the same string. Optional fields
// may be empty or partial; required fields must fill every input slot.
func Validate(defs []field.Definition, values map[string]string) Result {
	result := Result{Valid: true}
	for _, def := range defs {
		def = def.Normalize()
		if issue, ok := check(def, values[def.Name]); !ok {
			result.Valid = false
			result.Issues = append(result.Issues, issue)
		}
	}
	return result
}

func check(def field.Definition, value string) (Issue, bool) {
	value = strings.TrimSpace(value)
	label := def.Label
	if value == "" {
		if def.Required {
			return Issue{Field: def.Name, Code: CodeRequired, Message: fmt.Sprintf("%s is required", label)}, false
		}
		return Issue{}, true
	}

	if masked := mask.Apply(def.Pattern, value); masked != value {
		return Issue{Field: def.Name, Code: CodeFormat, Message: fmt.Sprintf("%s must match %s", label, def.Pattern)}, false
	}
	if def.Required && !def.Mask().Complete(mask.ExtractDigits(value)) {
		return Issue{Field: def.Name, Code: CodeIncomplete, Message: fmt.Sprintf("%s is incomplete", label)}, false
	}
	return Issue{}, true
}
