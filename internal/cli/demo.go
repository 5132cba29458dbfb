package cli

import (
	"context"
	"fmt"

	"github.com/harun/toolrouter/pkg/toolrouter"
)

// demoRegistry builds the registry the CLI commands operate on: the
// game-comment tools plus a plain echo tool.
func demoRegistry() (*toolrouter.Registry, error) {
	reg := toolrouter.NewRegistry()

	tools := []toolrouter.ToolSpec{
		{
			Name:        "negative_comment",
			Description: "Post a negative comment about a game.",
			Params: []toolrouter.Param{
				{Name: "game", Type: toolrouter.TypeString, Description: "Game title"},
			},
			Handler: func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
				return fmt.Sprintf("%s seems not better than Genshin Impact...", args["game"]), nil
			},
		},
		{
			Name:        "positive_comment",
			Description: "Post a positive comment about a game.",
			Params: []toolrouter.Param{
				{Name: "game", Type: toolrouter.TypeString, Description: "Game title"},
			},
			Handler: func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
				return fmt.Sprintf("%s is the best game in the world !!!", args["game"]), nil
			},
		},
		{
			Name:        "echo",
			Description: "Echo the given text back unchanged.",
			Params: []toolrouter.Param{
				{Name: "text", Type: toolrouter.TypeString, Description: "Text to echo"},
			},
			Handler: func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
				return args["text"], nil
			},
		},
	}

	for _, tool := range tools {
		if err := reg.Register(tool); err != nil {
			return nil, fmt.Errorf("failed to register tool %s: %w", tool.Name, err)
		}
	}
	return reg, nil
}
