// Package tool holds the callable tool surface: the registry of
// definitions and the executors that wire validation, query building, the
// catalog client and the derivations together.
package tool

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrExecutorAlreadyRegistered = errors.New("tool executor already registered")
	ErrExecutorNotRegistered     = errors.New("tool executor not registered")
	ErrValidationFailed          = errors.New("tool params validation failed")
)

// Definition describes one callable tool as exposed to the invoking
// caller.
type Definition struct {
	Name        string
	Description string
	InputSchema json.RawMessage
}

// Registry holds the fixed set of tool definitions and their executors.
// It is populated once at startup and read-only afterwards, so lookups
// need no locking.
type Registry struct {
	defs      []Definition
	executors map[string]Executor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{executors: make(map[string]Executor)}
}

// Register adds a definition with its executor. Duplicate names are
// rejected.
func (r *Registry) Register(def Definition, executor Executor) error {
	name := strings.TrimSpace(def.Name)
	if name == "" || executor == nil {
		return ErrExecutorNotRegistered
	}
	if _, exists := r.executors[name]; exists {
		return fmt.Errorf("%w: %s", ErrExecutorAlreadyRegistered, name)
	}
	def.Name = name
	r.defs = append(r.defs, def)
	r.executors[name] = executor
	return nil
}

// Get returns the executor registered under name.
func (r *Registry) Get(name string) (Executor, error) {
	executor, ok := r.executors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrExecutorNotRegistered, name)
	}
	return executor, nil
}

// Definitions returns the registered definitions in registration order.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

// ValidateParams checks params against the definition's schema: required
// keys must be present, and unknown keys are rejected when the schema
// closes additionalProperties.
func ValidateParams(def Definition, params json.RawMessage) error {
	if len(params) == 0 {
		params = json.RawMessage(`{}`)
	}

	var input map[string]any
	if err := json.Unmarshal(params, &input); err != nil {
		return fmt.Errorf("%w: params must be a json object", ErrValidationFailed)
	}

	var schema map[string]any
	if err := json.Unmarshal(def.InputSchema, &schema); err != nil {
		return fmt.Errorf("%w: invalid schema for %s", ErrValidationFailed, def.Name)
	}

	return validateAgainstMinimalSchema(input, schema)
}

func validateAgainstMinimalSchema(input, schema map[string]any) error {
	for _, key := range extractStringSlice(schema["required"]) {
		if _, ok := input[key]; !ok {
			return fmt.Errorf("%w: missing required field %q", ErrValidationFailed, key)
		}
	}

	allowAdditional := true
	if v, ok := schema["additionalProperties"].(bool); ok {
		allowAdditional = v
	}

	allowedProps := map[string]struct{}{}
	if props, ok := schema["properties"].(map[string]any); ok {
		for key := range props {
			allowedProps[key] = struct{}{}
		}
	}

	if !allowAdditional {
		for key := range input {
			if _, ok := allowedProps[key]; !ok {
				return fmt.Errorf("%w: unknown field %q", ErrValidationFailed, key)
			}
		}
	}

	return nil
}

func extractStringSlice(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if ok && strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
