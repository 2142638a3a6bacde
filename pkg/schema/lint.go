package schema

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-maskfield/pkg/field"
	"github.com/goliatone/go-maskfield/pkg/mask"
	"github.com/goliatone/go-maskfield/pkg/widgets"
)

// Violation is a single lint finding.
type Violation struct {
	Location string
	Message  string
}

func (v Violation) String() string {
	return v.Location + " -> " + v.Message
}

// Lint checks the x-mask and x-mask-field extensions of every component
// schema property and returns findings sorted by location.
func Lint(ctx context.Context, data []byte) ([]Violation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("schema: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("schema: load document: %w", err)
	}
	if doc.Components == nil {
		return nil, nil
	}

	var result []Violation
	for name, ref := range doc.Components.Schemas {
		if ref == nil || ref.Value == nil {
			continue
		}
		result = append(result, lintSchema([]string{"components", "schemas", name}, ref.Value, 0)...)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Location == result[j].Location {
			return result[i].Message < result[j].Message
		}
		return result[i].Location < result[j].Location
	})
	return result, nil
}

const maxLintDepth = 16

func lintSchema(path []string, s *openapi3.Schema, depth int) []Violation {
	if s == nil || depth > maxLintDepth {
		return nil
	}

	result := lintExtensions(path, s)
	for name, prop := range s.Properties {
		if prop == nil || prop.Value == nil {
			continue
		}
		result = append(result, lintSchema(appendPath(path, "properties."+name), prop.Value, depth+1)...)
	}
	if s.Items != nil && s.Items.Value != nil {
		result = append(result, lintSchema(appendPath(path, "items"), s.Items.Value, depth+1)...)
	}
	return result
}

func lintExtensions(path []string, s *openapi3.Schema) []Violation {
	rawPattern, hasPattern := s.Extensions[widgets.ExtensionPattern]
	rawIdentity, hasIdentity := s.Extensions[widgets.ExtensionIdentity]
	if !hasPattern && !hasIdentity {
		return nil
	}

	location := strings.Join(path, " > ")
	var result []Violation
	add := func(format string, args ...any) {
		result = append(result, Violation{Location: location, Message: fmt.Sprintf(format, args...)})
	}

	if !isString(s) {
		add("masked properties must have type string")
	}

	if hasIdentity {
		name, ok := rawIdentity.(string)
		if !ok {
			add("%s must be a string, found %T", widgets.ExtensionIdentity, rawIdentity)
		} else if _, err := field.ParseIdentity(name); err != nil {
			add("unknown %s %q", widgets.ExtensionIdentity, name)
		}
	}

	if hasPattern {
		pattern, ok := rawPattern.(string)
		switch {
		case !ok:
			add("%s must be a string, found %T", widgets.ExtensionPattern, rawPattern)
		case mask.Capacity(pattern) == 0:
			add("%s %q has no input slots", widgets.ExtensionPattern, pattern)
		case hasDigitLiteral(pattern):
			add("%s %q contains digit literals that are re-read as input on the next edit", widgets.ExtensionPattern, pattern)
		}
	}
	return result
}

func hasDigitLiteral(pattern string) bool {
	for _, tok := range mask.Tokenize(pattern) {
		if tok.Kind == mask.Literal && tok.Char >= '0' && tok.Char <= '9' {
			return true
		}
	}
	return false
}

func appendPath(path []string, segment string) []string {
	next := append([]string(nil), path...)
	return append(next, segment)
}
