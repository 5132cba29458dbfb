package toolrouter

import (
	"encoding/json"

	"github.com/openai/openai-go"
)

// OpenAITools renders the catalog in OpenAI's function-tool wire format,
// for callers assembling a chat completion request. Order is preserved.
func OpenAITools(tools []ToolSpec) []openai.ChatCompletionToolParam {
	out := make([]openai.ChatCompletionToolParam, 0, len(tools))
	for _, tool := range tools {
		out = append(out, openai.ChatCompletionToolParam{
			Type: "function",
			Function: openai.FunctionDefinitionParam{
				Name:        tool.Name,
				Description: openai.String(tool.Description),
				Parameters:  openai.FunctionParameters(InputSchema(tool)),
			},
		})
	}
	return out
}

// DecisionsFromOpenAI extracts tool decisions from a chat completion's
// first choice, one per tool call, in call order. A call whose arguments
// string does not decode to a JSON object fails with
// *MalformedDecisionError or *InvalidArgumentShapeError.
func DecisionsFromOpenAI(completion *openai.ChatCompletion) ([]Decision, error) {
	if len(completion.Choices) == 0 {
		return nil, &MalformedDecisionError{Reason: "completion has no choices"}
	}

	var decisions []Decision
	for _, call := range completion.Choices[0].Message.ToolCalls {
		if call.Function.Name == "" {
			return nil, &MalformedDecisionError{Reason: "tool call has no function name"}
		}

		raw := json.RawMessage(call.Function.Arguments)
		// Empty arguments string means a no-parameter call.
		if len(raw) == 0 {
			decisions = append(decisions, Decision{Tool: call.Function.Name, Arguments: map[string]interface{}{}})
			continue
		}
		if kind := jsonKind(raw); kind != "object" {
			return nil, &InvalidArgumentShapeError{Got: kind}
		}
		var args map[string]interface{}
		if err := json.Unmarshal(raw, &args); err != nil {
			return nil, &InvalidArgumentShapeError{Got: "invalid JSON"}
		}

		decisions = append(decisions, Decision{Tool: call.Function.Name, Arguments: args})
	}
	return decisions, nil
}
