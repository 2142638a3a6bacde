package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-maskfield/pkg/field"
)

// Extension keys recognised on schema properties.
const (
	ExtensionPattern  = "x-mask"
	ExtensionIdentity = "x-mask-field"
)

// Hint is the loose description of a schema property the registry resolves
// an identity for.
type Hint struct {
	Name       string
	Format     string
	Pattern    string
	Extensions map[string]any
}

// Matcher decides whether an identity applies to the supplied hint.
type Matcher func(hint Hint) bool

type rule struct {
	identity field.Identity
	priority int
	match    Matcher
	order    int
}

// Registry selects a masked field identity for schema hints based on an
// explicit x-mask-field extension or registered matchers. Higher priority
// wins; ties fall back to registration order. An empty registry only honours
// explicit extensions.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher for identity with the provided priority. Invalid
// identities and nil matchers are ignored.
func (r *Registry) Register(identity field.Identity, priority int, matcher Matcher) {
	if r == nil || matcher == nil || !identity.Valid() {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		identity: identity,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the identity for a hint. The x-mask-field extension is
// honoured before matcher evaluation.
func (r *Registry) Resolve(hint Hint) (field.Identity, bool) {
	if explicit, ok := explicitIdentity(hint); ok {
		return explicit, true
	}
	if r == nil {
		return field.IdentityNone, false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return field.IdentityNone, false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(hint) {
			return entry.identity, true
		}
	}
	return field.IdentityNone, false
}

// Definition resolves the hint into a normalised field definition. The
// x-mask extension, when present, overrides the identity's default pattern.
func (r *Registry) Definition(hint Hint) (field.Definition, bool) {
	id, ok := r.Resolve(hint)
	if !ok {
		return field.Definition{}, false
	}
	def := field.Definition{
		Name:     hint.Name,
		Identity: id,
		Pattern:  explicitPattern(hint),
	}
	return def.Normalize(), true
}

func explicitIdentity(hint Hint) (field.Identity, bool) {
	raw, ok := hint.Extensions[ExtensionIdentity].(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return field.IdentityNone, false
	}
	id, err := field.ParseIdentity(raw)
	if err != nil {
		return field.IdentityNone, false
	}
	return id, true
}

func explicitPattern(hint Hint) string {
	if raw, ok := hint.Extensions[ExtensionPattern].(string); ok && raw != "" {
		return raw
	}
	return ""
}

func formatIs(hint Hint, formats ...string) bool {
	format := strings.ToLower(strings.TrimSpace(hint.Format))
	if format == "" {
		return false
	}
	for _, candidate := range formats {
		if format == candidate {
			return true
		}
	}
	return false
}

func nameContains(hint Hint, needles ...string) bool {
	name := strings.ToLower(hint.Name)
	for _, needle := range needles {
		if strings.Contains(name, needle) {
			return true
		}
	}
	return false
}

func (r *Registry) registerBuiltins() {
	r.Register(field.Telephone, 90, func(hint Hint) bool {
		return formatIs(hint, "tel", "phone", "telephone")
	})

	r.Register(field.CreditCard, 90, func(hint Hint) bool {
		return formatIs(hint, "credit-card", "card", "pan")
	})

	r.Register(field.DigitCode, 90, func(hint Hint) bool {
		return formatIs(hint, "otp", "pin", "digit-code")
	})

	// Name heuristics only apply once a property has opted in with a mask.
	r.Register(field.Telephone, 50, func(hint Hint) bool {
		return explicitPattern(hint) != "" && nameContains(hint, "phone", "tel", "mobile")
	})

	r.Register(field.CreditCard, 50, func(hint Hint) bool {
		return explicitPattern(hint) != "" && nameContains(hint, "card")
	})

	r.Register(field.DigitCode, 40, func(hint Hint) bool {
		return explicitPattern(hint) != ""
	})
}
