package toolrouter

import (
	"encoding/json"
	"testing"

	"github.com/openai/openai-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAITools(t *testing.T) {
	tools := []ToolSpec{
		{
			Name:        "rate_game",
			Description: "Rate a game.",
			Params: []Param{
				{Name: "game", Type: TypeString},
				{Name: "score", Type: TypeNumber},
			},
			Handler: echoHandler,
		},
	}

	params := OpenAITools(tools)
	require.Len(t, params, 1)

	assert.Equal(t, "rate_game", params[0].Function.Name)
	assert.Equal(t, "Rate a game.", params[0].Function.Description.Value)

	schema := map[string]interface{}(params[0].Function.Parameters)
	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, []string{"game", "score"}, schema["required"])
}

func TestDecisionsFromOpenAI(t *testing.T) {
	payload := `{
		"id": "chatcmpl-01",
		"choices": [{
			"index": 0,
			"message": {
				"role": "assistant",
				"tool_calls": [
					{"id": "call_1", "type": "function", "function": {"name": "positive_comment", "arguments": "{\"game\": \"Zelda\"}"}}
				]
			}
		}]
	}`

	var completion openai.ChatCompletion
	require.NoError(t, json.Unmarshal([]byte(payload), &completion))

	decisions, err := DecisionsFromOpenAI(&completion)
	require.NoError(t, err)
	require.Len(t, decisions, 1)
	assert.Equal(t, "positive_comment", decisions[0].Tool)
	assert.Equal(t, map[string]interface{}{"game": "Zelda"}, decisions[0].Arguments)
}

func TestDecisionsFromOpenAI_NoChoices(t *testing.T) {
	var completion openai.ChatCompletion

	_, err := DecisionsFromOpenAI(&completion)

	var malformed *MalformedDecisionError
	assert.ErrorAs(t, err, &malformed)
}

func TestDecisionsFromOpenAI_NonObjectArguments(t *testing.T) {
	payload := `{
		"id": "chatcmpl-02",
		"choices": [{
			"index": 0,
			"message": {
				"role": "assistant",
				"tool_calls": [
					{"id": "call_1", "type": "function", "function": {"name": "echo", "arguments": "[\"Zelda\"]"}}
				]
			}
		}]
	}`

	var completion openai.ChatCompletion
	require.NoError(t, json.Unmarshal([]byte(payload), &completion))

	_, err := DecisionsFromOpenAI(&completion)

	var shape *InvalidArgumentShapeError
	require.ErrorAs(t, err, &shape)
	assert.Equal(t, "array", shape.Got)
}

func TestDecisionsFromOpenAI_NoToolCalls(t *testing.T) {
	payload := `{
		"id": "chatcmpl-03",
		"choices": [{
			"index": 0,
			"message": {"role": "assistant", "content": "No tool needed."}
		}]
	}`

	var completion openai.ChatCompletion
	require.NoError(t, json.Unmarshal([]byte(payload), &completion))

	decisions, err := DecisionsFromOpenAI(&completion)
	require.NoError(t, err)
	assert.Empty(t, decisions)
}
