package field

import (
	"fmt"
	"strings"
)

// Identity tags which masked field variant is active. It only selects display
// parameters and defaults; masking behaviour is driven by the pattern alone.
type Identity uint8

const (
	// IdentityNone is the zero value and matches no field.
	IdentityNone Identity = iota
	Telephone
	CreditCard
	DigitCode
)

// Identities lists the concrete identities in display order.
func Identities() []Identity {
	return []Identity{Telephone, CreditCard, DigitCode}
}

func (id Identity) String() string {
	switch id {
	case Telephone:
		return "telephone"
	case CreditCard:
		return "credit-card"
	case DigitCode:
		return "digit-code"
	default:
		return ""
	}
}

// Valid reports whether id names a concrete field variant.
func (id Identity) Valid() bool {
	_, ok := displayTable[id]
	return ok
}

// ParseIdentity resolves canonical names and common aliases.
func ParseIdentity(raw string) (Identity, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer("_", "-", " ", "-").Replace(key)
	if id, ok := identityAliases[key]; ok {
		return id, nil
	}
	return IdentityNone, fmt.Errorf("field: unknown identity %q", raw)
}

var identityAliases = map[string]Identity{
	"telephone":   Telephone,
	"tel":         Telephone,
	"phone":       Telephone,
	"credit-card": CreditCard,
	"creditcard":  CreditCard,
	"card":        CreditCard,
	"cc":          CreditCard,
	"digit-code":  DigitCode,
	"digitcode":   DigitCode,
	"code":        DigitCode,
	"otp":         DigitCode,
	"pin":         DigitCode,
}

// MarshalText implements encoding.TextMarshaler.
func (id Identity) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so identities can be
// read from JSON and YAML config.
func (id *Identity) UnmarshalText(text []byte) error {
	parsed, err := ParseIdentity(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Display holds the per-variant presentation tweaks.
type Display struct {
	FontSize      int    `json:"fontSize" yaml:"fontSize"`
	LetterSpacing int    `json:"letterSpacing" yaml:"letterSpacing"`
	Pattern       string `json:"pattern" yaml:"pattern"`
	Label         string `json:"label" yaml:"label"`
}

var displayTable = map[Identity]Display{
	Telephone: {
		FontSize:      18,
		LetterSpacing: 1,
		Pattern:       "(000) 000 - 0000",
		Label:         "Telephone",
	},
	CreditCard: {
		FontSize:      18,
		LetterSpacing: 2,
		Pattern:       "0000 - 0000 - 0000 - 0000",
		Label:         "Credit card",
	},
	DigitCode: {
		FontSize:      26,
		LetterSpacing: 8,
		Pattern:       "______",
		Label:         "Code",
	},
}

// DisplayFor returns the display parameters for id. Unknown identities get
// the telephone defaults without a pattern or label.
func DisplayFor(id Identity) Display {
	if display, ok := displayTable[id]; ok {
		return display
	}
	fallback := displayTable[Telephone]
	return Display{FontSize: fallback.FontSize, LetterSpacing: fallback.LetterSpacing}
}
