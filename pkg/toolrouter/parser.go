package toolrouter

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ParseDecision extracts a tool decision from raw model output.
//
// The input is either a bare JSON object with "name" and "arguments" keys,
// or free text with such an object embedded in it. Extraction policy, in
// order: the whole (trimmed) input, the contents of any ``` fenced block,
// then a best-effort scan for the first balanced JSON object carrying both
// keys. The scan is deliberate: models routinely wrap structured output in
// explanatory prose.
//
// Fails with *MalformedDecisionError when no candidate yields an object
// with both keys and a non-empty string name, and with
// *InvalidArgumentShapeError when "arguments" is present but not an object.
func ParseDecision(raw string) (Decision, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Decision{}, &MalformedDecisionError{Reason: "empty input"}
	}

	for _, candidate := range decisionCandidates(trimmed) {
		obj, ok := decodeObject(candidate)
		if !ok {
			continue
		}
		nameRaw, hasName := obj["name"]
		argsRaw, hasArgs := obj["arguments"]
		if !hasName || !hasArgs {
			continue
		}
		// First candidate with both keys wins; its defects are reported,
		// not skipped.
		return buildDecision(nameRaw, argsRaw)
	}

	return Decision{}, &MalformedDecisionError{Reason: `no JSON object with "name" and "arguments" keys found`}
}

// decisionCandidates lists the substrings to try as a decision object.
func decisionCandidates(trimmed string) []string {
	candidates := []string{trimmed}
	candidates = append(candidates, fencedBlocks(trimmed)...)
	candidates = append(candidates, balancedObjects(trimmed)...)
	return candidates
}

// fencedBlocks returns the contents of every ``` fenced block, with an
// optional leading language tag stripped.
func fencedBlocks(s string) []string {
	var blocks []string
	rest := s
	for {
		start := strings.Index(rest, "```")
		if start < 0 {
			break
		}
		rest = rest[start+3:]
		end := strings.Index(rest, "```")
		if end < 0 {
			break
		}
		block := strings.TrimSpace(rest[:end])
		if strings.HasPrefix(block, "json") {
			block = strings.TrimSpace(strings.TrimPrefix(block, "json"))
		}
		blocks = append(blocks, block)
		rest = rest[end+3:]
	}
	return blocks
}

// balancedObjects returns every balanced JSON object found in s, outermost
// first. Each opening brace is tried so a decision nested inside another
// object is still reachable.
func balancedObjects(s string) []string {
	var objects []string
	for i := 0; i < len(s); i++ {
		if s[i] != '{' {
			continue
		}
		dec := json.NewDecoder(strings.NewReader(s[i:]))
		var raw json.RawMessage
		if err := dec.Decode(&raw); err == nil {
			objects = append(objects, string(raw))
		}
	}
	return objects
}

// decodeObject parses s as a single JSON object with raw values.
func decodeObject(s string) (map[string]json.RawMessage, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &obj); err != nil || obj == nil {
		return nil, false
	}
	return obj, true
}

// buildDecision converts the raw name and arguments values into a Decision.
func buildDecision(nameRaw, argsRaw json.RawMessage) (Decision, error) {
	var name string
	if err := json.Unmarshal(nameRaw, &name); err != nil {
		return Decision{}, &MalformedDecisionError{Reason: "name is not a string"}
	}
	if name == "" {
		return Decision{}, &MalformedDecisionError{Reason: "name is empty"}
	}

	if kind := jsonKind(argsRaw); kind != "object" {
		return Decision{}, &InvalidArgumentShapeError{Got: kind}
	}

	var args map[string]interface{}
	if err := json.Unmarshal(argsRaw, &args); err != nil {
		return Decision{}, &InvalidArgumentShapeError{Got: "invalid JSON"}
	}

	return Decision{Tool: name, Arguments: args}, nil
}

// jsonKind names the JSON type of a raw value for error reporting.
func jsonKind(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "empty"
	}
	switch trimmed[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	default:
		return "number"
	}
}
