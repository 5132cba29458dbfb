package toolrouter

import (
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"
)

// AnthropicTools renders the catalog in Anthropic's tool wire format, for
// callers assembling a Messages API request. Order is preserved. The model
// call itself stays outside this package.
func AnthropicTools(tools []ToolSpec) []anthropic.ToolUnionParam {
	out := make([]anthropic.ToolUnionParam, 0, len(tools))
	for _, tool := range tools {
		schema := InputSchema(tool)
		param := anthropic.ToolParam{
			Name:        tool.Name,
			Description: anthropic.String(tool.Description),
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: schema["properties"],
			},
		}
		if required, ok := schema["required"].([]string); ok {
			param.InputSchema.Required = required
		}
		out = append(out, anthropic.ToolUnionParam{OfTool: &param})
	}
	return out
}

// DecisionsFromAnthropic extracts tool decisions from an Anthropic message
// response, one per tool_use block, in content order. A block whose input
// is not a JSON object fails with *InvalidArgumentShapeError.
func DecisionsFromAnthropic(message *anthropic.Message) ([]Decision, error) {
	var decisions []Decision
	for _, block := range message.Content {
		toolUse, ok := block.AsAny().(anthropic.ToolUseBlock)
		if !ok {
			continue
		}

		raw := json.RawMessage(toolUse.JSON.Input.Raw())
		if kind := jsonKind(raw); kind != "object" {
			return nil, &InvalidArgumentShapeError{Got: kind}
		}
		var args map[string]interface{}
		if err := json.Unmarshal(raw, &args); err != nil {
			return nil, &InvalidArgumentShapeError{Got: "invalid JSON"}
		}

		decisions = append(decisions, Decision{Tool: toolUse.Name, Arguments: args})
	}
	return decisions, nil
}
