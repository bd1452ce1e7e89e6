package envsub

import (
	"fmt"
	"strings"
)

// Node represents a YAML document node (map, slice, or scalar).
type Node = any

const marker = "env!("

// maxSubstitutions bounds the rescan loop for a single string. An environment
// value may legitimately introduce another env!() placeholder, but a value
// chain that keeps producing markers past this cap is treated as a cycle.
const maxSubstitutions = 1000

// Resolver rewrites env!(NAME) placeholders in a document tree against an
// environment snapshot captured at construction time. A Resolver is read-only
// after construction and safe to share across goroutines.
type Resolver struct {
	envs EnvMap
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithEnv sets the environment snapshot, replacing the process environment.
func WithEnv(envs EnvMap) Option {
	return func(r *Resolver) {
		r.envs = envs
	}
}

// NewResolver creates a Resolver. Without options it snapshots the process
// environment once; the live environment is never re-read during a walk.
func NewResolver(options ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range options {
		opt(r)
	}
	if r.envs == nil {
		r.envs = Environ()
	}
	return r
}

// Resolve walks the node and returns a copy with every env!(NAME) placeholder
// in string leaves replaced. The first malformed or unresolvable placeholder
// aborts the walk; no partial document is returned.
func (r *Resolver) Resolve(node Node) (Node, error) {
	switch v := node.(type) {
	case string:
		return r.resolveString(v)
	case map[string]any:
		result := make(map[string]any, len(v))
		for key, value := range v {
			resolved, err := r.Resolve(value)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve %s: %w", key, err)
			}
			result[key] = resolved
		}
		return result, nil
	case []any:
		result := make([]any, len(v))
		for i, value := range v {
			resolved, err := r.Resolve(value)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve index %d: %w", i, err)
			}
			result[i] = resolved
		}
		return result, nil
	default:
		// nil, booleans, numbers, and any opaque scalar pass through untouched.
		return node, nil
	}
}

// resolveString substitutes placeholders one at a time, rescanning the result
// from the start after each substitution so that placeholders introduced by a
// substitution are resolved too. The final string contains no residual marker.
func (r *Resolver) resolveString(s string) (string, error) {
	for i := 0; i < maxSubstitutions; i++ {
		name, found, err := findPlaceholder(s)
		if err != nil {
			return "", err
		}
		if !found {
			return s, nil
		}
		value, ok := r.envs[name]
		if !ok {
			return "", &NotFoundError{Name: name}
		}
		s = strings.ReplaceAll(s, marker+name+")", value)
	}
	return "", &LimitError{Limit: maxSubstitutions}
}

// findPlaceholder locates the first env!( marker in s and returns the variable
// name between it and the next closing parenthesis. A marker without a closing
// parenthesis is a syntax error.
func findPlaceholder(s string) (string, bool, error) {
	index := strings.Index(s, marker)
	if index < 0 {
		return "", false, nil
	}
	rest := s[index+len(marker):]
	end := strings.IndexByte(rest, ')')
	if end < 0 {
		return "", false, ErrInvalidSyntax
	}
	return rest[:end], true, nil
}
