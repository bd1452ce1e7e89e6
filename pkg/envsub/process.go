package envsub

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ResolveBytes decodes YAML bytes into a generic node and resolves every
// placeholder in it.
func ResolveBytes(data []byte, options ...Option) (Node, error) {
	var node Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return NewResolver(options...).Resolve(node)
}

// ResolveReader reads YAML from r and resolves every placeholder in it.
func ResolveReader(r io.Reader, options ...Option) (Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read data: %w", err)
	}
	return ResolveBytes(data, options...)
}

// ResolveFile reads a YAML file and resolves every placeholder in it.
func ResolveFile(path string, options ...Option) (Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ResolveBytes(data, options...)
}
