package manifest

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// ParseFile reads a template descriptor.
func ParseFile(path string) (*TemplateManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, path)
}

// Parse unmarshals descriptor bytes; path is only used in error messages.
func Parse(data []byte, path string) (*TemplateManifest, error) {
	var m TemplateManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
