package toolrouter

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/xeipuuv/gojsonschema"
)

// Dispatcher resolves decisions against a registry and executes them.
// Stateless apart from the registry reference; each Dispatch call is an
// independent request/response transaction and never mutates the registry.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Dispatch resolves the decision's tool name, validates its arguments
// against the declared parameters and invokes the implementation.
//
// Failure modes: *UnknownToolError for an unregistered name (propagated
// unchanged, no partial execution), *ArgumentMismatchError when argument
// keys or values do not match the declared parameters, *ToolExecutionError
// wrapping any failure from the implementation. No retries; tool
// implementations are assumed side-effect-bearing. Cancellation is the
// handler's contract: ctx is passed through, nothing more.
func (d *Dispatcher) Dispatch(ctx context.Context, decision Decision) (DispatchResult, error) {
	start := time.Now()

	spec, schema, err := d.registry.get(decision.Tool)
	if err != nil {
		return DispatchResult{}, err
	}

	if err := validateArguments(spec, schema, decision.Arguments); err != nil {
		return DispatchResult{}, err
	}

	log.Debug().Str("tool", decision.Tool).Msg("Dispatching tool")

	output, err := spec.Handler(ctx, decision.Arguments)
	if err != nil {
		return DispatchResult{}, &ToolExecutionError{Tool: decision.Tool, Err: err}
	}

	duration := time.Since(start)
	log.Debug().Str("tool", decision.Tool).Dur("duration", duration).Msg("Tool dispatch completed")

	return DispatchResult{
		ID:       uuid.New().String(),
		Decision: decision,
		Output:   output,
		Duration: duration,
	}, nil
}

// validateArguments enforces the exact-match contract: every declared
// parameter present, no undeclared extras, values valid under the tool's
// compiled schema.
func validateArguments(spec ToolSpec, schema *gojsonschema.Schema, args map[string]interface{}) error {
	declared := make(map[string]bool, len(spec.Params))
	var missing []string
	for _, param := range spec.Params {
		declared[param.Name] = true
		if _, ok := args[param.Name]; !ok {
			missing = append(missing, param.Name)
		}
	}

	var extra []string
	for name := range args {
		if !declared[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)

	if len(missing) > 0 || len(extra) > 0 {
		return &ArgumentMismatchError{Tool: spec.Name, Missing: missing, Extra: extra}
	}

	if schema == nil {
		return nil
	}

	if args == nil {
		args = map[string]interface{}{}
	}
	result, err := schema.Validate(gojsonschema.NewGoLoader(args))
	if err != nil {
		return &ArgumentMismatchError{Tool: spec.Name, Violations: []string{err.Error()}}
	}
	if !result.Valid() {
		violations := make([]string, 0, len(result.Errors()))
		for _, resultErr := range result.Errors() {
			violations = append(violations, resultErr.String())
		}
		return &ArgumentMismatchError{Tool: spec.Name, Violations: violations}
	}

	return nil
}
