package utils

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// GetNestedString extracts a string from a nested map
func GetNestedString(data map[string]interface{}, keys ...string) (string, error) {
	var current interface{} = data

	for i, key := range keys {
		m, ok := current.(map[string]interface{})
		if !ok {
			return "", fmt.Errorf("key %s is not a map", keys[i-1])
		}

		if i == len(keys)-1 {
			// Last key, should be a string
			if str, ok := m[key].(string); ok {
				return str, nil
			}
			return "", fmt.Errorf("key %s is not a string", key)
		}

		current = m[key]
	}

	return "", fmt.Errorf("invalid keys")
}

// GetFirstMapValue returns the value stored under the lexically first key of a map
func GetFirstMapValue(m map[string]interface{}) (interface{}, error) {
	if len(m) == 0 {
		return nil, fmt.Errorf("map is empty")
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return m[keys[0]], nil
}

// ParseJSON parses a JSON document into a map
func ParseJSON(data []byte) (map[string]interface{}, error) {
	var result map[string]interface{}
	err := json.Unmarshal(data, &result)
	if err != nil {
		return nil, fmt.Errorf("error parsing JSON: %w", err)
	}
	return result, nil
}

// ExtractErrorMessage pulls the human readable message out of an API error body.
//
// Network errors look like {"NeutronError": {"message": ...}}, compute errors
// like {"itemNotFound": {"message": ..., "code": 404}} and identity errors like
// {"error": {"message": ...}}. Anything else is returned trimmed, as is.
func ExtractErrorMessage(body []byte) string {
	data, err := ParseJSON(body)
	if err != nil {
		return strings.TrimSpace(string(body))
	}

	if msg, err := GetNestedString(data, "NeutronError", "message"); err == nil {
		return msg
	}
	if msg, err := GetNestedString(data, "message"); err == nil {
		return msg
	}

	// Compute and identity wrap the message in a single, variably named key
	first, err := GetFirstMapValue(data)
	if err == nil {
		if inner, ok := first.(map[string]interface{}); ok {
			if msg, err := GetNestedString(inner, "message"); err == nil {
				return msg
			}
		}
	}

	return strings.TrimSpace(string(body))
}
