package field

import (
	"strings"

	"github.com/goliatone/go-maskfield/pkg/mask"
)

// Definition describes one masked field instance.
type Definition struct {
	Name     string   `json:"name" yaml:"name"`
	Identity Identity `json:"identity" yaml:"identity"`
	Pattern  string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Label    string   `json:"label,omitempty" yaml:"label,omitempty"`
	Help     string   `json:"help,omitempty" yaml:"help,omitempty"`
	Required bool     `json:"required,omitempty" yaml:"required,omitempty"`
}

// DefaultDefinition returns the built-in definition for id.
func DefaultDefinition(id Identity) Definition {
	display := DisplayFor(id)
	return Definition{
		Name:     id.String(),
		Identity: id,
		Pattern:  display.Pattern,
		Label:    display.Label,
	}
}

// Normalize fills blank name, pattern and label from the identity defaults.
func (d Definition) Normalize() Definition {
	defaults := DefaultDefinition(d.Identity)
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		d.Name = defaults.Name
	}
	if d.Pattern == "" {
		d.Pattern = defaults.Pattern
	}
	if strings.TrimSpace(d.Label) == "" {
		d.Label = defaults.Label
	}
	return d
}

// Display returns the display parameters of the definition's identity.
func (d Definition) Display() Display {
	return DisplayFor(d.Identity)
}

// Mask compiles the definition pattern.
func (d Definition) Mask() mask.Pattern {
	return mask.Compile(d.Pattern)
}
