package webhook

import (
	"encoding/json"
	"sort"
	"strings"
)

// preferredKeys are checked in order for the reply text.
var preferredKeys = []string{
	"message", "response", "text", "output", "result", "answer",
	"reply", "chatResponse", "aiResponse", "content", "body",
}

// keyHints mark a field as a likely reply when no preferred key matched.
var keyHints = []string{"response", "message", "text", "content", "answer"}

// ExtractMessage pulls the reply text out of a webhook response body.
// JSON objects are searched for known reply fields, JSON arrays use their
// first element, and anything that is not JSON is taken as plain text.
func ExtractMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var v any
	if err := json.Unmarshal([]byte(trimmed), &v); err != nil {
		return trimmed
	}
	return fromValue(v, trimmed)
}

func fromValue(v any, raw string) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case []any:
		if len(t) == 0 {
			return ""
		}
		first, err := json.Marshal(t[0])
		if err != nil {
			return raw
		}
		return fromValue(t[0], string(first))
	case map[string]any:
		return fromObject(t, raw)
	default:
		return raw
	}
}

func fromObject(obj map[string]any, raw string) string {
	for _, key := range preferredKeys {
		if s := nonEmpty(obj[key]); s != "" {
			return s
		}
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lower := strings.ToLower(k)
		for _, hint := range keyHints {
			if !strings.Contains(lower, hint) {
				continue
			}
			if s := nonEmpty(obj[k]); s != "" {
				return s
			}
		}
	}

	return raw
}

// nonEmpty renders a field as text. Nested values are re-encoded as JSON.
func nonEmpty(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case bool:
		return ""
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
