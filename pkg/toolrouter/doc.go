// Package toolrouter routes a language model's tool-call decisions to
// registered implementations.
//
// Invariants:
// - Tool names are unique; registering a duplicate fails, never overwrites.
// - Arguments are schema-validated before a handler runs.
// - An unknown tool name is an error, never a silent no-op.
// - Resolution is by exact name only; no fuzzy matching.
//
// Usage:
//
//	reg := toolrouter.NewRegistry()
//	_ = reg.Register(toolrouter.ToolSpec{
//		Name:        "echo",
//		Description: "Echo input back",
//		Params:      []toolrouter.Param{{Name: "text", Type: toolrouter.TypeString, Description: "text to echo"}},
//		Handler: func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
//			return args["text"], nil
//		},
//	})
//
//	decision, err := toolrouter.ParseDecision(rawModelOutput)
//	if err != nil { ... }
//	result, err := toolrouter.NewDispatcher(reg).Dispatch(ctx, decision)
package toolrouter
