package toolrouter

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/xeipuuv/gojsonschema"
)

// Registry holds the set of callable tools, keyed by name. Insertion order
// is preserved so catalog rendering stays deterministic.
//
// The intended lifecycle is build-then-freeze: register every tool up
// front, then serve concurrent read-only lookups and dispatches. The lock
// makes late registration safe but interleaving it with dispatch is not a
// supported pattern.
type Registry struct {
	mu      sync.RWMutex
	tools   map[string]ToolSpec
	schemas map[string]*gojsonschema.Schema
	names   []string
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools:   make(map[string]ToolSpec),
		schemas: make(map[string]*gojsonschema.Schema),
	}
}

// Register adds a tool. It fails with *DuplicateToolError if the name is
// taken; the existing registration is never overwritten. The tool's
// argument schema is compiled here so dispatch only validates.
func (r *Registry) Register(spec ToolSpec) error {
	if err := validateSpec(spec); err != nil {
		return fmt.Errorf("invalid tool definition: %w", err)
	}

	schema, err := compileSchema(spec)
	if err != nil {
		return fmt.Errorf("failed to compile schema for %s: %w", spec.Name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[spec.Name]; exists {
		return &DuplicateToolError{Name: spec.Name}
	}

	r.tools[spec.Name] = spec
	r.schemas[spec.Name] = schema
	r.names = append(r.names, spec.Name)

	log.Debug().Str("tool", spec.Name).Int("params", len(spec.Params)).Msg("Tool registered")

	return nil
}

// Lookup returns the tool registered under name, or *UnknownToolError.
func (r *Registry) Lookup(name string) (ToolSpec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spec, ok := r.tools[name]
	if !ok {
		return ToolSpec{}, &UnknownToolError{Name: name}
	}
	return spec, nil
}

// List returns all registered tools in insertion order.
func (r *Registry) List() []ToolSpec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ToolSpec, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.tools[name])
	}
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.names)
}

// get returns the spec and its compiled schema in one lock acquisition.
func (r *Registry) get(name string) (ToolSpec, *gojsonschema.Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spec, ok := r.tools[name]
	if !ok {
		return ToolSpec{}, nil, &UnknownToolError{Name: name}
	}
	return spec, r.schemas[name], nil
}

// validateSpec checks a tool definition before registration.
func validateSpec(spec ToolSpec) error {
	if spec.Name == "" {
		return fmt.Errorf("tool name cannot be empty")
	}
	if spec.Description == "" {
		return fmt.Errorf("tool description cannot be empty")
	}
	if spec.Handler == nil {
		return fmt.Errorf("tool handler cannot be nil")
	}

	seen := make(map[string]bool, len(spec.Params))
	for _, param := range spec.Params {
		if param.Name == "" {
			return fmt.Errorf("parameter name cannot be empty")
		}
		if seen[param.Name] {
			return fmt.Errorf("duplicate parameter: %s", param.Name)
		}
		seen[param.Name] = true
		if !validParamTypes[param.Type] {
			return fmt.Errorf("invalid parameter type %s for %s", param.Type, param.Name)
		}
	}

	return nil
}

// compileSchema builds the gojsonschema validator for a tool's arguments.
func compileSchema(spec ToolSpec) (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewGoLoader(InputSchema(spec)))
}
