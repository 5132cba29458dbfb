package toolrouter

import (
	"fmt"
	"strings"
)

// Render produces the textual tool catalog embedded in a model prompt:
// one line per tool of the form
//
//	name(param1: type1, param2: type2) -> description
//
// newline-joined, in the order given. Pure; identical input yields
// identical output.
func Render(tools []ToolSpec) string {
	lines := make([]string, 0, len(tools))
	for _, tool := range tools {
		params := make([]string, 0, len(tool.Params))
		for _, p := range tool.Params {
			params = append(params, fmt.Sprintf("%s: %s", p.Name, p.Type))
		}
		lines = append(lines, fmt.Sprintf("%s(%s) -> %s", tool.Name, strings.Join(params, ", "), tool.Description))
	}
	return strings.Join(lines, "\n")
}

// InputSchema returns the JSON Schema for a tool's arguments as a plain
// map. Every declared parameter is required and undeclared keys are
// rejected, matching the exact-match contract enforced at dispatch.
func InputSchema(spec ToolSpec) map[string]interface{} {
	properties := make(map[string]interface{}, len(spec.Params))
	required := make([]string, 0, len(spec.Params))

	for _, param := range spec.Params {
		prop := map[string]interface{}{
			"type": string(param.Type),
		}
		if param.Description != "" {
			prop["description"] = param.Description
		}
		properties[param.Name] = prop
		required = append(required, param.Name)
	}

	schema := map[string]interface{}{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}
