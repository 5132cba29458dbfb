package toolrouter

import (
	"context"
	"time"
)

// ParamType is the JSON type of a tool parameter.
type ParamType string

const (
	TypeString  ParamType = "string"
	TypeNumber  ParamType = "number"
	TypeInteger ParamType = "integer"
	TypeBoolean ParamType = "boolean"
	TypeObject  ParamType = "object"
	TypeArray   ParamType = "array"
)

// validParamTypes is the set of types accepted at registration.
var validParamTypes = map[ParamType]bool{
	TypeString:  true,
	TypeNumber:  true,
	TypeInteger: true,
	TypeBoolean: true,
	TypeObject:  true,
	TypeArray:   true,
}

// Param declares one tool parameter. The order of a tool's Params slice is
// its positional order; every declared parameter must be supplied at dispatch.
type Param struct {
	Name        string    `json:"name"`
	Type        ParamType `json:"type"`
	Description string    `json:"description,omitempty"`
}

// Handler is the function signature for tool execution. Arguments arrive
// keyed by parameter name, already validated against the declared schema.
type Handler func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// ToolSpec defines a callable tool: its name, description, declared
// parameters and implementation. Immutable once registered.
type ToolSpec struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Params      []Param `json:"params"`
	Handler     Handler `json:"-"`
}

// OrderedArgs returns the argument values in declared parameter order.
// Handlers that prefer positional destructuring over map access can use
// this to recover the positional view of a validated argument map.
func (s ToolSpec) OrderedArgs(args map[string]interface{}) []interface{} {
	out := make([]interface{}, len(s.Params))
	for i, p := range s.Params {
		out[i] = args[p.Name]
	}
	return out
}

// Decision is the model's structured choice of a tool and its arguments.
// Transient; produced per model response.
type Decision struct {
	Tool      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments"`
}

// DispatchResult pairs a decision with the output of executing it.
type DispatchResult struct {
	ID       string        `json:"id"`
	Decision Decision      `json:"decision"`
	Output   interface{}   `json:"output,omitempty"`
	Duration time.Duration `json:"duration"`
}
