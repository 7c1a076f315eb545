package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Validator validates a decoded value after JSON extraction. Returns nil
// if valid, or a descriptive error if invalid.
type Validator[T any] func(T) error

// Decode extracts a JSON value of type T from raw model output. Structured
// output mode usually returns clean JSON, but models occasionally wrap it
// in markdown fences or surround it with prose; both are handled. If
// validator is non-nil the decoded value is validated before return.
func Decode[T any](raw string, validator Validator[T]) (T, error) {
	var zero T

	jsonStr := extractBlock(stripCodeFences(raw))
	if jsonStr == "" {
		return zero, fmt.Errorf("%w: no JSON value found in response", ErrInvalidOutput)
	}

	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return zero, fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}

	if validator != nil {
		if err := validator(result); err != nil {
			return zero, fmt.Errorf("%w: validation failed: %v", ErrInvalidOutput, err)
		}
	}

	return result, nil
}

// stripCodeFences removes markdown code fences (```json ... ```).
func stripCodeFences(s string) string {
	if !strings.Contains(s, "```") {
		return s
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// extractBlock finds the first balanced JSON object or array in the text.
func extractBlock(s string) string {
	start := strings.IndexAny(s, "[{")
	if start == -1 {
		return ""
	}
	open := s[start]
	closer := byte('}')
	if open == '[' {
		closer = ']'
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' && inString {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case open:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}

	return ""
}
