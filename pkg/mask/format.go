package mask

import "strings"

// Format overlays rawDigits onto pattern. rawDigits is expected to contain
// digits only; filtering is the caller's job (see ExtractDigits).
//
// An empty rawDigits yields "" so bare literals are never rendered. Digits
// beyond the pattern's capacity are dropped. A pattern without wildcards
// yields its literals up to the end of the pattern.
func Format(pattern, rawDigits string) string {
	if rawDigits == "" {
		return ""
	}
	return formatTokens(Tokenize(pattern), rawDigits)
}

func formatTokens(tokens []Token, rawDigits string) string {
	if rawDigits == "" || len(tokens) == 0 {
		return ""
	}
	digits := []rune(rawDigits)

	var b strings.Builder
	b.Grow(len(tokens))

	ti, di := 0, 0
	for ti < len(tokens) && di < len(digits) {
		tok := tokens[ti]
		if tok.Kind == Literal {
			b.WriteRune(tok.Char)
			ti++
			continue
		}
		b.WriteRune(digits[di])
		ti++
		di++
	}
	return b.String()
}

// ExtractDigits strips every rune of input that is not an ASCII digit.
func ExtractDigits(input string) string {
	if input == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if isDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TrimTrailingLiterals removes any run of non-digit runes from the end of
// masked.
func TrimTrailingLiterals(masked string) string {
	return strings.TrimRightFunc(masked, func(r rune) bool {
		return !isDigit(r)
	})
}

// Apply runs the full edit pipeline: extract digits from input, format them
// against pattern and trim any dangling literal suffix.
func Apply(pattern, input string) string {
	return TrimTrailingLiterals(Format(pattern, ExtractDigits(input)))
}

// Placeholder returns masked followed by the part of pattern that has not
// been rendered yet, measured in runes.
func Placeholder(pattern, masked string) string {
	return placeholderTokens(Tokenize(pattern), masked)
}

func placeholderTokens(tokens []Token, masked string) string {
	rendered := len([]rune(masked))
	if rendered >= len(tokens) {
		return masked
	}
	var b strings.Builder
	b.WriteString(masked)
	for _, tok := range tokens[rendered:] {
		b.WriteRune(tok.Char)
	}
	return b.String()
}

// Capacity reports how many digits pattern can hold.
func Capacity(pattern string) int {
	slots := 0
	for _, r := range pattern {
		if IsWildcard(r) {
			slots++
		}
	}
	return slots
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if isDigit(r) {
			n++
		}
	}
	return n
}
