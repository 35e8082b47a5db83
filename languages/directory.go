package languages

import (
	"fmt"
	"maps"
	"strings"

	"github.com/samber/mo"

	"reacjilator/utils"
)

// Directory maps emoji keys (flag country codes) to ISO 639-1 language codes.
// It is read-only once built and safe for concurrent use.
type Directory struct {
	entries map[string]string
}

// Default returns the built-in directory
func Default() *Directory {
	d, err := New(defaultEntries)
	utils.AssertInvariant(err == nil, "built-in language table must be valid")
	return d
}

// New builds a directory from the given entries. Keys are lowercased; every
// key must map to a non-empty language code.
func New(entries map[string]string) (*Directory, error) {
	normalized := make(map[string]string, len(entries))
	for key, code := range entries {
		key = normalizeKey(key)
		code = strings.TrimSpace(code)
		if key == "" {
			return nil, fmt.Errorf("language directory key cannot be empty")
		}
		if code == "" {
			return nil, fmt.Errorf("language code for %q cannot be empty", key)
		}
		normalized[key] = code
	}

	return &Directory{entries: normalized}, nil
}

// WithOverrides returns a new directory with the overrides applied on top.
// An empty override value removes the key.
func (d *Directory) WithOverrides(overrides map[string]string) (*Directory, error) {
	merged := maps.Clone(d.entries)
	for key, code := range overrides {
		key = normalizeKey(key)
		if key == "" {
			return nil, fmt.Errorf("language directory key cannot be empty")
		}
		code = strings.TrimSpace(code)
		if code == "" {
			delete(merged, key)
			continue
		}
		merged[key] = code
	}

	return &Directory{entries: merged}, nil
}

// Lookup returns the language code for key, or None when the key is unknown
func (d *Directory) Lookup(key string) mo.Option[string] {
	code, ok := d.entries[normalizeKey(key)]
	if !ok {
		return mo.None[string]()
	}
	return mo.Some(code)
}

// Has reports whether key is present in the directory
func (d *Directory) Has(key string) bool {
	_, ok := d.entries[normalizeKey(key)]
	return ok
}

func (d *Directory) Len() int {
	return len(d.entries)
}

// Entries returns a copy of the directory contents
func (d *Directory) Entries() map[string]string {
	return maps.Clone(d.entries)
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
