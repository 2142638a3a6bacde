package field

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const phonePattern = "(000) 000 - 0000"

func TestState_EditStoresMaskedValue(t *testing.T) {
	s := NewState()

	if got := s.Edit(Telephone, phonePattern, "5"); got != "(5" {
		t.Fatalf("unexpected value after first digit: %q", got)
	}
	if got := s.Value(Telephone); got != "(5" {
		t.Fatalf("stored value mismatch: %q", got)
	}

	// The control echoes the stored value plus the new keystrokes.
	next := s.Value(Telephone) + "551234567"
	if got := s.Edit(Telephone, phonePattern, next); got != "(555) 123 - 4567" {
		t.Fatalf("unexpected full value: %q", got)
	}
	if got := s.Digits(Telephone); got != "5551234567" {
		t.Fatalf("unexpected digits: %q", got)
	}
}

func TestState_DeletingLastDigitClearsValue(t *testing.T) {
	s := NewState()
	s.Edit(Telephone, phonePattern, "5")

	stored := s.Value(Telephone)
	afterBackspace := stored[:len(stored)-1]
	if got := s.Edit(Telephone, phonePattern, afterBackspace); got != "" {
		t.Fatalf("expected empty value, got %q", got)
	}
}

func TestState_DeletingAcrossLiteralTrimsSuffix(t *testing.T) {
	s := NewState()
	s.Edit(Telephone, phonePattern, "5551")
	if got := s.Value(Telephone); got != "(555) 1" {
		t.Fatalf("unexpected value: %q", got)
	}
	if got := s.Edit(Telephone, phonePattern, "(555) "); got != "(555" {
		t.Fatalf("expected trailing literals trimmed, got %q", got)
	}
}

func TestState_ExtraDigitsIgnored(t *testing.T) {
	s := NewState()
	if got := s.Edit(DigitCode, "0000 - 0000", "123456789"); got != "1234 - 5678" {
		t.Fatalf("unexpected value: %q", got)
	}
}

func TestState_FieldsAreIndependent(t *testing.T) {
	s := NewState()
	s.Edit(Telephone, phonePattern, "555")
	s.Edit(CreditCard, "0000 - 0000 - 0000 - 0000", "4111")

	want := map[string]string{
		"telephone":   "(555",
		"credit-card": "4111",
	}
	if diff := cmp.Diff(want, s.Values()); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Identity{Telephone, CreditCard}, s.Edited()); diff != "" {
		t.Fatalf("edited mismatch (-want +got):\n%s", diff)
	}
}

func TestState_Placeholder(t *testing.T) {
	s := NewState()
	if got := s.Placeholder(Telephone); got != phonePattern {
		t.Fatalf("expected default pattern as placeholder, got %q", got)
	}
	s.Edit(DigitCode, "______", "12")
	if got := s.Placeholder(DigitCode); got != "12____" {
		t.Fatalf("unexpected placeholder: %q", got)
	}
}

func TestState_FocusAndBlurAny(t *testing.T) {
	s := NewState()
	if _, ok := s.Focused(); ok {
		t.Fatalf("expected no focus initially")
	}

	s.Focus(Telephone)
	if !s.IsFocused(Telephone) {
		t.Fatalf("expected telephone focused")
	}

	s.Focus(CreditCard)
	if s.IsFocused(Telephone) || !s.IsFocused(CreditCard) {
		t.Fatalf("expected focus to move to credit card")
	}

	// A blur from a different field still clears focus under BlurAny.
	s.Blur(Telephone)
	if _, ok := s.Focused(); ok {
		t.Fatalf("expected focus cleared by any blur")
	}
}

func TestState_BlurMatchingIgnoresStaleBlur(t *testing.T) {
	s := NewState(WithBlurPolicy(BlurMatching))
	s.Focus(CreditCard)

	s.Blur(Telephone)
	if !s.IsFocused(CreditCard) {
		t.Fatalf("expected stale blur to be ignored")
	}

	s.Blur(CreditCard)
	if _, ok := s.Focused(); ok {
		t.Fatalf("expected focus cleared by matching blur")
	}
}

func TestState_WithValuesSeedsThroughPipeline(t *testing.T) {
	s := NewState(WithValues(
		map[Identity]string{Telephone: "555-123-4567"},
		map[Identity]string{Telephone: phonePattern},
	))
	if got := s.Value(Telephone); got != "(555) 123 - 4567" {
		t.Fatalf("unexpected seeded value: %q", got)
	}
}

func TestState_NilReceiver(t *testing.T) {
	var s *State
	if got := s.Edit(Telephone, phonePattern, "5"); got != "(5" {
		t.Fatalf("nil state should still mask, got %q", got)
	}
	s.Focus(Telephone)
	s.Blur(Telephone)
	if s.Value(Telephone) != "" {
		t.Fatalf("nil state should hold no values")
	}
}
