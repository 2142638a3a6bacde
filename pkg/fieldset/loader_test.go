package fieldset_test

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-maskfield/pkg/field"
	"github.com/goliatone/go-maskfield/pkg/fieldset"
	"github.com/goliatone/go-maskfield/pkg/style"
)

func TestLoadDefaults(t *testing.T) {
	store, err := fieldset.LoadDefaults()
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}

	set, err := store.Get("")
	if err != nil {
		t.Fatalf("get default: %v", err)
	}
	if got := len(set.Fields); got != 3 {
		t.Fatalf("expected 3 fields, got %d", got)
	}
	want := []field.Identity{field.Telephone, field.CreditCard, field.DigitCode}
	var got []field.Identity
	for _, def := range set.Fields {
		got = append(got, def.Identity)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("identities mismatch (-want +got):\n%s", diff)
	}
	if set.Style != (style.Config{}) {
		t.Fatalf("expected no style overrides, got %#v", set.Style)
	}
	if set.ResolvedStyle() != style.Default() {
		t.Fatalf("expected resolved style to match defaults: %#v", set.ResolvedStyle())
	}
}

func TestLoadFS_YAMLFillsDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"contact.yaml": {Data: []byte(`
fieldsets:
  contact:
    style:
      fontFamily: Inter
    fields:
      - name: mobile
        identity: phone
        pattern: "+00 000 000 000"
      - identity: otp
        required: true
`)},
	}

	store, err := fieldset.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	set, err := store.Get("contact")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	want := []field.Definition{
		{Name: "mobile", Identity: field.Telephone, Pattern: "+00 000 000 000", Label: "Telephone"},
		{Name: "digit-code", Identity: field.DigitCode, Pattern: "______", Label: "Code", Required: true},
	}
	if diff := cmp.Diff(want, set.Fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if set.Style.FontFamily != "Inter" || set.Style.TextColor != "" || set.ResolvedStyle().TextColor == "" {
		t.Fatalf("unexpected style: %#v", set.Style)
	}
	if set.Patterns()[field.Telephone] != "+00 000 000 000" {
		t.Fatalf("unexpected patterns: %#v", set.Patterns())
	}
}

func TestLoadFS_JSON(t *testing.T) {
	fsys := fstest.MapFS{
		"sets/card.json": {Data: []byte(`{"fieldsets":{"checkout":{"fields":[{"name":"card","identity":"credit-card"}]}}}`)},
		"README.md":      {Data: []byte("ignored")},
	}
	store, err := fieldset.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"checkout"}, store.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFS_Errors(t *testing.T) {
	cases := map[string]string{
		"empty file":         ``,
		"unknown identity":   "fieldsets:\n  a:\n    fields:\n      - identity: zip\n",
		"missing identity":   "fieldsets:\n  a:\n    fields:\n      - name: x\n",
		"no fields":          "fieldsets:\n  a:\n    fields: []\n",
		"duplicate name":     "fieldsets:\n  a:\n    fields:\n      - {name: x, identity: tel}\n      - {name: x, identity: otp}\n",
		"duplicate identity": "fieldsets:\n  a:\n    fields:\n      - {name: x, identity: tel}\n      - {name: y, identity: phone}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := fieldset.LoadFS(fstest.MapFS{"doc.yaml": {Data: []byte(doc)}})
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.HasPrefix(err.Error(), "fieldset:") && !strings.Contains(err.Error(), "field:") {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestStore_GetMissing(t *testing.T) {
	store, err := fieldset.LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("expected empty store")
	}
	if _, err := store.Get("nope"); !errors.Is(err, fieldset.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
