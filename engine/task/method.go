package task

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Method is an HTTP method. Matching is case-sensitive and exact.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
	MethodPatch  Method = "PATCH"
)

// UnmarshalYAML decodes and validates the method in one step so that a typo
// fails config loading with the offending value named.
func (m *Method) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("method must be a string: %w", err)
	}
	switch Method(raw) {
	case MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch:
		*m = Method(raw)
		return nil
	default:
		return fmt.Errorf("unknown method %q, expected one of [GET, POST, PUT, DELETE, PATCH]", raw)
	}
}

func (m Method) String() string {
	return string(m)
}
