package languages

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile returns the built-in directory with the overrides from a YAML file
// applied. The file is a flat mapping of key to language code:
//
//	jp: ja
//	ch: de
//	in: ""   # removes the built-in entry
//
// An empty path returns the built-in directory unchanged.
func LoadFile(path string) (*Directory, error) {
	base := Default()
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read languages file %s: %w", path, err)
	}

	var overrides map[string]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse languages file %s: %w", path, err)
	}

	dir, err := base.WithOverrides(overrides)
	if err != nil {
		return nil, fmt.Errorf("invalid languages file %s: %w", path, err)
	}

	log.Printf("✅ Loaded %d language overrides from %s (%d entries total)", len(overrides), path, dir.Len())
	return dir, nil
}
