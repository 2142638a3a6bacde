package mask_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-maskfield/pkg/mask"
)

const (
	phonePattern = "(000) 000 - 0000"
	cardPattern  = "0000 - 0000 - 0000 - 0000"
	codePattern  = "______"
)

func TestApply_Scenarios(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
		typed   string
		want    string
	}{
		{name: "first phone digit", pattern: phonePattern, typed: "5", want: "(5"},
		{name: "full phone number", pattern: phonePattern, typed: "5551234567", want: "(555) 123 - 4567"},
		{name: "first card group", pattern: cardPattern, typed: "4111", want: "4111"},
		{name: "blank markers", pattern: codePattern, typed: "123456", want: "123456"},
		{name: "delete last digit", pattern: phonePattern, typed: "(", want: ""},
		{name: "exact capacity", pattern: "0000 - 0000", typed: "12345678", want: "1234 - 5678"},
		{name: "extra digit ignored", pattern: "0000 - 0000", typed: "123456789", want: "1234 - 5678"},
		{name: "reformats pasted text", pattern: phonePattern, typed: "555-123-4567", want: "(555) 123 - 4567"},
		{name: "no wildcards", pattern: "abc", typed: "1", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mask.Apply(tc.pattern, tc.typed); got != tc.want {
				t.Fatalf("Apply(%q, %q) = %q, want %q", tc.pattern, tc.typed, got, tc.want)
			}
		})
	}
}

func TestFormat_EmptyInputLaw(t *testing.T) {
	for _, pattern := range []string{"", phonePattern, cardPattern, codePattern, "abc", "(("} {
		if got := mask.Format(pattern, ""); got != "" {
			t.Fatalf("Format(%q, \"\") = %q, want empty", pattern, got)
		}
	}
}

func TestFormat_StopsBeforeDanglingLiteral(t *testing.T) {
	if got := mask.Format(phonePattern, "555"); got != "(555" {
		t.Fatalf("expected walk to stop after last digit, got %q", got)
	}
	if got := mask.Format("(000)", "123"); got != "(123" {
		t.Fatalf("expected closing literal to be dropped, got %q", got)
	}
}

func TestFormat_MalformedPatternEmitsLiteralsOnly(t *testing.T) {
	if got := mask.Format("abc", "12"); got != "abc" {
		t.Fatalf("expected literal-only output, got %q", got)
	}
	if got := mask.TrimTrailingLiterals(mask.Format("abc", "12")); got != "" {
		t.Fatalf("expected trim to drop literal-only output, got %q", got)
	}
}

func TestFormat_Properties(t *testing.T) {
	patterns := []string{phonePattern, cardPattern, codePattern, "0000 - 0000", "+(00) 0", "ÅÄ 00 ÖÖ 0"}
	inputs := []string{"", "1", "12", "5551234567", "12345678901234567890", "9a8b7c", "(555) 12"}

	for _, pattern := range patterns {
		capacity := mask.Capacity(pattern)
		for _, input := range inputs {
			digits := mask.ExtractDigits(input)
			first := mask.Format(pattern, digits)
			second := mask.Format(pattern, digits)
			if first != second {
				t.Fatalf("Format not deterministic for %q/%q: %q vs %q", pattern, digits, first, second)
			}

			consumed := mask.ExtractDigits(first)
			if len(consumed) > capacity {
				t.Fatalf("consumed %d digits with capacity %d (%q/%q)", len(consumed), capacity, pattern, input)
			}

			want := digits
			if len(want) > capacity {
				want = want[:capacity]
			}
			if consumed != want {
				t.Fatalf("round trip mismatch for %q/%q: got %q want %q", pattern, input, consumed, want)
			}

			if first != "" && !strings.ContainsAny(string([]rune(first)[len([]rune(first))-1:]), "0123456789") {
				t.Fatalf("Format(%q, %q) ends with a literal: %q", pattern, digits, first)
			}

			literals := len([]rune(first)) - len([]rune(consumed))
			if literals != literalsBefore(pattern, len([]rune(first))) {
				t.Fatalf("literal count mismatch for %q/%q: %q", pattern, input, first)
			}
		}
	}
}

func TestPlaceholder_ComposesSuffix(t *testing.T) {
	cases := []struct {
		pattern string
		masked  string
		want    string
	}{
		{pattern: phonePattern, masked: "", want: phonePattern},
		{pattern: phonePattern, masked: "(5", want: "(500) 000 - 0000"},
		{pattern: phonePattern, masked: "(555) 123 - 4567", want: "(555) 123 - 4567"},
		{pattern: codePattern, masked: "12", want: "12____"},
		{pattern: "ÅÄ 00", masked: "ÅÄ 1", want: "ÅÄ 10"},
	}
	for _, tc := range cases {
		if got := mask.Placeholder(tc.pattern, tc.masked); got != tc.want {
			t.Fatalf("Placeholder(%q, %q) = %q, want %q", tc.pattern, tc.masked, got, tc.want)
		}
	}
}

func TestExtractDigits_DropsNonASCIIDigits(t *testing.T) {
	if got := mask.ExtractDigits("(٣) 12-a3"); got != "123" {
		t.Fatalf("unexpected digits: %q", got)
	}
}

func TestTrimTrailingLiterals(t *testing.T) {
	if got := mask.TrimTrailingLiterals("(555) "); got != "(555" {
		t.Fatalf("unexpected trim result: %q", got)
	}
	if got := mask.TrimTrailingLiterals("(("); got != "" {
		t.Fatalf("unexpected trim result: %q", got)
	}
}

func TestCompile_TokensAndCapacity(t *testing.T) {
	p := mask.Compile("(0_)")
	want := []mask.Token{
		{Kind: mask.Literal, Char: '('},
		{Kind: mask.InputSlot, Char: '0'},
		{Kind: mask.InputSlot, Char: '_'},
		{Kind: mask.Literal, Char: ')'},
	}
	if diff := cmp.Diff(want, p.Tokens()); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
	if p.Capacity() != 2 || p.Len() != 4 || p.String() != "(0_)" {
		t.Fatalf("unexpected pattern metadata: capacity=%d len=%d source=%q", p.Capacity(), p.Len(), p.String())
	}
	if got := p.Format("98"); got != "(98" {
		t.Fatalf("unexpected compiled format: %q", got)
	}
	if !p.Complete("98") || p.Complete("9") {
		t.Fatalf("unexpected completeness")
	}
	if mask.Compile("abc").Complete("123") {
		t.Fatalf("pattern without slots should never be complete")
	}
}

func literalsBefore(pattern string, n int) int {
	count := 0
	for i, r := range []rune(pattern) {
		if i >= n {
			break
		}
		if !mask.IsWildcard(r) {
			count++
		}
	}
	return count
}
