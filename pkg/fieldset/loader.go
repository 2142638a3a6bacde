package fieldset

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-maskfield/pkg/field"
	"github.com/goliatone/go-maskfield/pkg/style"
)

// DefaultName is the fieldset used when callers do not name one.
const DefaultName = "default"

// ErrNotFound is returned when a named fieldset is missing from a store.
var ErrNotFound = errors.New("fieldset: not found")

//go:embed defaults/*.yaml
var embeddedDefaults embed.FS

// EmbeddedFS returns the bundled fieldset documents.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedDefaults, "defaults")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// Fieldset is one named group of masked fields plus its style.
type Fieldset struct {
	Name   string
	Source string
	Style  style.Config
	Fields []field.Definition
}

// ResolvedStyle returns the fieldset style with blanks filled from
// style.Default.
func (f Fieldset) ResolvedStyle() style.Config {
	return f.Style.Merge(style.Default())
}

// Patterns maps each field identity to its pattern.
func (f Fieldset) Patterns() map[field.Identity]string {
	out := make(map[field.Identity]string, len(f.Fields))
	for _, def := range f.Fields {
		out[def.Identity] = def.Pattern
	}
	return out
}

// Store keeps parsed fieldsets. It is safe for concurrent readers when
// treated as immutable after construction.
type Store struct {
	fieldsets map[string]Fieldset
}

// Get returns the fieldset registered under name.
func (s *Store) Get(name string) (Fieldset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	if s != nil {
		if fs, ok := s.fieldsets[name]; ok {
			return fs, nil
		}
	}
	return Fieldset{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Names lists the fieldsets in the store, sorted.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.fieldsets))
	for name := range s.fieldsets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any fieldsets.
func (s *Store) Empty() bool {
	return s == nil || len(s.fieldsets) == 0
}

// LoadDefaults parses the embedded fieldsets.
func LoadDefaults() (*Store, error) {
	return LoadFS(EmbeddedFS())
}

// LoadFS walks fsys and parses every JSON/YAML fieldset document. When fsys
// is nil or holds no documents the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{fieldsets: make(map[string]Fieldset)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isConfigFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("fieldset: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for rawName, raw := range doc.Fieldsets {
			name := strings.TrimSpace(rawName)
			if name == "" {
				return fmt.Errorf("fieldset: file %s defines an empty fieldset name", path)
			}
			if _, exists := store.fieldsets[name]; exists {
				return fmt.Errorf("fieldset: duplicate fieldset %q (file %s)", name, path)
			}
			set, err := normaliseFieldset(raw, name, path)
			if err != nil {
				return err
			}
			store.fieldsets[name] = set
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

type documentFile struct {
	Fieldsets map[string]fieldsetFile `json:"fieldsets" yaml:"fieldsets"`
}

type fieldsetFile struct {
	Style  style.Config       `json:"style" yaml:"style"`
	Fields []field.Definition `json:"fields" yaml:"fields"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("fieldset: file %s is empty", source)
	}

	if strings.EqualFold(filepath.Ext(source), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("fieldset: parse %s: %w", source, err)
		}
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("fieldset: parse %s: %w", source, err)
	}
	return doc, nil
}

func normaliseFieldset(raw fieldsetFile, name, source string) (Fieldset, error) {
	if len(raw.Fields) == 0 {
		return Fieldset{}, fmt.Errorf("fieldset: %q (file %s) has no fields", name, source)
	}

	set := Fieldset{
		Name:   name,
		Source: source,
		Style:  raw.Style,
		Fields: make([]field.Definition, 0, len(raw.Fields)),
	}

	names := make(map[string]struct{}, len(raw.Fields))
	identities := make(map[field.Identity]struct{}, len(raw.Fields))
	for idx, def := range raw.Fields {
		if !def.Identity.Valid() {
			return Fieldset{}, fmt.Errorf("fieldset: %q (file %s) field %d is missing an identity", name, source, idx)
		}
		def = def.Normalize()
		if _, exists := names[def.Name]; exists {
			return Fieldset{}, fmt.Errorf("fieldset: %q (file %s) defines duplicate field %q", name, source, def.Name)
		}
		// Field state is keyed by identity, so each variant appears once.
		if _, exists := identities[def.Identity]; exists {
			return Fieldset{}, fmt.Errorf("fieldset: %q (file %s) defines identity %s more than once", name, source, def.Identity)
		}
		names[def.Name] = struct{}{}
		identities[def.Identity] = struct{}{}
		set.Fields = append(set.Fields, def)
	}
	return set, nil
}

func isConfigFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
