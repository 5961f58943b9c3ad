package json

import (
	"encoding/json"
	"strings"
)

// Marshal serializes v into a JSON byte slice.
func Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal parses JSON-encoded data into v.
func Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// TrimJsonString strips markdown code fences from model-produced tool
// input, so that both raw JSON and fenced ```json blocks unmarshal.
func TrimJsonString(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}
