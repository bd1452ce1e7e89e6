package task

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/taskbeat/taskbeat/engine/value"
)

// Headers maps header names to restricted-mode values: a header is a single
// textual scalar or a value resolved at send time, never a structured,
// boolean, or null value.
type Headers map[string]value.Value

// UnmarshalYAML parses each entry through the restricted-mode parser. The
// first invalid entry aborts decoding with the header name attached.
func (h *Headers) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]value.Entry
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("headers must map names to tagged entries: %w", err)
	}
	headers := make(Headers, len(raw))
	for name, entry := range raw {
		parsed, err := value.ParseBasicEntry(entry)
		if err != nil {
			return fmt.Errorf("header %q: %w", name, err)
		}
		headers[name] = parsed
	}
	*h = headers
	return nil
}
