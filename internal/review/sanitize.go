package review

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	fenceOpen  = regexp.MustCompile("^```[a-zA-Z0-9]*[ \t]*\r?\n?")
	fenceClose = regexp.MustCompile("\r?\n?```\\s*$")
)

// Sanitize strips Markdown code fences bracketing the model's reply and
// verifies the remainder opens like a JSON object. A payload that does not
// start with '{' is treated as an error message from the model, not JSON.
func Sanitize(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	for {
		t := fenceOpen.ReplaceAllString(s, "")
		t = fenceClose.ReplaceAllString(t, "")
		t = strings.TrimSpace(t)
		if t == s {
			break
		}
		s = t
	}
	if !strings.HasPrefix(s, "{") {
		return "", fmt.Errorf("%w: %s", ErrInvalidModelResponse, truncate(s, 300))
	}
	return s, nil
}

// Parse strictly parses sanitized text into a generic JSON value.
func Parse(clean string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(clean), &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return v, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
