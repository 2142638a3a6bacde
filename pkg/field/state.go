package field

import (
	"sort"

	"github.com/goliatone/go-maskfield/pkg/mask"
)

// BlurPolicy decides how Blur treats the identity it is given.
type BlurPolicy uint8

const (
	// BlurAny clears focus on every blur, whichever field reports it. This
	// is the long-standing widget behaviour and the default.
	BlurAny BlurPolicy = iota
	// BlurMatching clears focus only when the blurred field is the one
	// currently focused. A stale blur from another field is ignored.
	BlurMatching
)

// StateOption configures a State.
type StateOption func(*State)

// WithBlurPolicy selects the blur handling rule.
func WithBlurPolicy(policy BlurPolicy) StateOption {
	return func(s *State) {
		s.blurPolicy = policy
	}
}

// WithValues seeds stored values. Each value goes through the same pipeline
// as an edit against the pattern registered for its identity in patterns.
func WithValues(values map[Identity]string, patterns map[Identity]string) StateOption {
	return func(s *State) {
		for id, value := range values {
			s.Edit(id, patterns[id], value)
		}
	}
}

// State holds the stored masked value of every field and the single focus
// reference. It is owned by one UI component and processes one event at a
// time; it is not safe for concurrent use.
type State struct {
	values     map[Identity]string
	patterns   map[Identity]string
	focused    Identity
	blurPolicy BlurPolicy
}

// NewState returns an empty state with no focused field.
func NewState(options ...StateOption) *State {
	s := &State{
		values:   make(map[Identity]string),
		patterns: make(map[Identity]string),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Edit applies an input event and returns the new stored value. The stored
// value is the masked string itself; digits are re-extracted from the next
// input so the literals it carries are discarded again.
func (s *State) Edit(id Identity, pattern, input string) string {
	if s == nil {
		return mask.Apply(pattern, input)
	}
	next := mask.Apply(pattern, input)
	s.values[id] = next
	s.patterns[id] = pattern
	return next
}

// Value returns the stored masked value for id.
func (s *State) Value(id Identity) string {
	if s == nil {
		return ""
	}
	return s.values[id]
}

// Digits returns the digits of the stored value for id.
func (s *State) Digits(id Identity) string {
	return mask.ExtractDigits(s.Value(id))
}

// Placeholder composes the placeholder text for id using the pattern from
// its last edit. Fields that were never edited fall back to the identity's
// default pattern.
func (s *State) Placeholder(id Identity) string {
	pattern := DisplayFor(id).Pattern
	if s != nil {
		if p, ok := s.patterns[id]; ok {
			pattern = p
		}
	}
	return mask.Placeholder(pattern, s.Value(id))
}

// Focus moves focus to id.
func (s *State) Focus(id Identity) {
	if s == nil {
		return
	}
	s.focused = id
}

// Blur reports that id lost focus. Whether focus is cleared depends on the
// configured BlurPolicy.
func (s *State) Blur(id Identity) {
	if s == nil {
		return
	}
	if s.blurPolicy == BlurMatching && s.focused != id {
		return
	}
	s.focused = IdentityNone
}

// Focused returns the focused identity and whether any field has focus.
func (s *State) Focused() (Identity, bool) {
	if s == nil || s.focused == IdentityNone {
		return IdentityNone, false
	}
	return s.focused, true
}

// IsFocused reports whether id holds focus.
func (s *State) IsFocused(id Identity) bool {
	focused, ok := s.Focused()
	return ok && focused == id
}

// Values returns a copy of the stored values keyed by identity name.
func (s *State) Values() map[string]string {
	if s == nil {
		return map[string]string{}
	}
	out := make(map[string]string, len(s.values))
	for id, value := range s.values {
		out[id.String()] = value
	}
	return out
}

// Edited lists identities that have received an edit, in identity order.
func (s *State) Edited() []Identity {
	if s == nil {
		return nil
	}
	ids := make([]Identity, 0, len(s.values))
	for id := range s.values {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
