package task

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/taskbeat/taskbeat/engine/value"
)

// Body is a request body keyed by content type. JSON is the only supported
// content type; its value is a full-mode tagged entry.
type Body struct {
	JSON value.Value
}

// UnmarshalYAML dispatches on the content-type key and parses the tagged
// entry in full mode.
func (b *Body) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]value.Entry
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("body must map a content type to a tagged entry: %w", err)
	}
	if len(raw) == 0 {
		return fmt.Errorf("body must declare a content type")
	}
	for contentType, entry := range raw {
		switch contentType {
		case "json":
			parsed, err := value.ParseEntry(entry)
			if err != nil {
				return fmt.Errorf("body json: %w", err)
			}
			b.JSON = parsed
		default:
			return fmt.Errorf("unknown body content type %q, expected one of [json]", contentType)
		}
	}
	return nil
}
