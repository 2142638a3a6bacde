package mask

// Wildcard runes recognised in a pattern. Both stand for one user digit.
const (
	DigitMarker = '0'
	BlankMarker = '_'
)

// TokenKind classifies a single pattern rune.
type TokenKind uint8

const (
	// InputSlot accepts one user digit.
	InputSlot TokenKind = iota
	// Literal is rendered verbatim and is never editable.
	Literal
)

func (k TokenKind) String() string {
	switch k {
	case InputSlot:
		return "slot"
	case Literal:
		return "literal"
	default:
		return "unknown"
	}
}

// Token is the classification of one pattern rune. Char holds the literal
// rune for Literal tokens and the wildcard rune itself for InputSlot tokens.
type Token struct {
	Kind TokenKind
	Char rune
}

// Pattern is an immutable literal template. The zero value is an empty
// pattern that formats every input to the empty string.
type Pattern struct {
	source string
	tokens []Token
	slots  int
}

// Compile scans source once and classifies every rune.
func Compile(source string) Pattern {
	tokens := Tokenize(source)
	slots := 0
	for _, tok := range tokens {
		if tok.Kind == InputSlot {
			slots++
		}
	}
	return Pattern{source: source, tokens: tokens, slots: slots}
}

// Tokenize classifies each rune of pattern as an InputSlot or a Literal.
func Tokenize(pattern string) []Token {
	if pattern == "" {
		return nil
	}
	tokens := make([]Token, 0, len(pattern))
	for _, r := range pattern {
		tokens = append(tokens, Token{Kind: kindOf(r), Char: r})
	}
	return tokens
}

// IsWildcard reports whether r marks an input slot.
func IsWildcard(r rune) bool {
	return r == DigitMarker || r == BlankMarker
}

func kindOf(r rune) TokenKind {
	if IsWildcard(r) {
		return InputSlot
	}
	return Literal
}

// String returns the pattern source.
func (p Pattern) String() string {
	return p.source
}

// Tokens returns a copy of the classified pattern.
func (p Pattern) Tokens() []Token {
	if len(p.tokens) == 0 {
		return nil
	}
	return append([]Token(nil), p.tokens...)
}

// Capacity reports how many digits the pattern can hold.
func (p Pattern) Capacity() int {
	return p.slots
}

// Len reports the pattern length in runes.
func (p Pattern) Len() int {
	return len(p.tokens)
}

// Format renders digits against the compiled pattern. See Format.
func (p Pattern) Format(digits string) string {
	return formatTokens(p.tokens, digits)
}

// Placeholder composes the display placeholder for masked. See Placeholder.
func (p Pattern) Placeholder(masked string) string {
	return placeholderTokens(p.tokens, masked)
}

// Complete reports whether digits fill every slot of the pattern.
func (p Pattern) Complete(digits string) bool {
	return p.slots > 0 && countDigits(digits) >= p.slots
}
