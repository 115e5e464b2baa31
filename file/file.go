package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/jsphweid/seedsong/model"
)

// LoadParams reads Params from a YAML or JSON file. Top-level fields missing from the
// file keep their DefaultParams value.
func LoadParams(path string) (model.Params, error) {
	p := model.DefaultParams()
	if err := load(path, &p); err != nil {
		return model.Params{}, err
	}
	return p, nil
}

func load(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, v); err != nil {
			if err := json.Unmarshal(data, v); err != nil {
				return fmt.Errorf("failed to parse file (tried YAML and JSON): %w", err)
			}
		}
	}
	return nil
}

// EnsureDir creates dir and its parents if needed.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create %s: %w", dir, err)
	}
	return nil
}
