package toolrouter

import (
	"fmt"
	"strings"
)

// DuplicateToolError reports an attempt to register a name that is already
// taken. The first registration stays in place.
type DuplicateToolError struct {
	Name string
}

func (e *DuplicateToolError) Error() string {
	return fmt.Sprintf("tool already registered: %s", e.Name)
}

// UnknownToolError reports a lookup or dispatch against a name that was
// never registered. Models hallucinate tool names; callers typically
// re-prompt on this.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("unknown tool: %s", e.Name)
}

// MalformedDecisionError reports raw model output from which no JSON object
// with both a "name" and an "arguments" key could be extracted.
type MalformedDecisionError struct {
	Reason string
}

func (e *MalformedDecisionError) Error() string {
	return fmt.Sprintf("malformed tool decision: %s", e.Reason)
}

// InvalidArgumentShapeError reports a decision whose "arguments" value is
// not an object mapping.
type InvalidArgumentShapeError struct {
	Got string
}

func (e *InvalidArgumentShapeError) Error() string {
	return fmt.Sprintf("tool arguments must be an object, got %s", e.Got)
}

// ArgumentMismatchError reports arguments that do not match the tool's
// declared parameters: missing names, undeclared extras, or schema
// violations on the values.
type ArgumentMismatchError struct {
	Tool       string
	Missing    []string
	Extra      []string
	Violations []string
}

func (e *ArgumentMismatchError) Error() string {
	parts := []string{}
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing: %s", strings.Join(e.Missing, ", ")))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, fmt.Sprintf("extra: %s", strings.Join(e.Extra, ", ")))
	}
	if len(e.Violations) > 0 {
		parts = append(parts, fmt.Sprintf("invalid: %s", strings.Join(e.Violations, "; ")))
	}
	return fmt.Sprintf("arguments do not match tool %s (%s)", e.Tool, strings.Join(parts, "; "))
}

// ToolExecutionError wraps a failure raised by a tool implementation. The
// original cause is preserved and reachable via Unwrap; the router never
// retries on its own.
type ToolExecutionError struct {
	Tool string
	Err  error
}

func (e *ToolExecutionError) Error() string {
	return fmt.Sprintf("tool %s failed: %v", e.Tool, e.Err)
}

func (e *ToolExecutionError) Unwrap() error {
	return e.Err
}
