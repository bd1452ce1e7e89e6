package task

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/taskbeat/taskbeat/pkg/envsub"
)

// Load reads a task document, resolves env!() placeholders against the
// environment snapshot, and decodes the result into a validated Config. Any
// failure is fatal: config loading is all-or-nothing.
func Load(path string, options ...envsub.Option) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return LoadBytes(data, options...)
}

// LoadBytes is Load for in-memory documents.
func LoadBytes(data []byte, options ...envsub.Option) (*Config, error) {
	node, err := envsub.ResolveBytes(data, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve environment placeholders: %w", err)
	}
	processed, err := yaml.Marshal(node)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resolved config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(processed, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
