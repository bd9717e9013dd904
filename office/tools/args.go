package tools

import (
	"fmt"
	"strconv"
)

// stringArg reads a required string argument.
func stringArg(data map[string]any, key string) (string, bool) {
	val, ok := data[key]
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

// intArg reads a required integer argument, coercing the numeric types JSON
// decoding produces.
func intArg(data map[string]any, key string) (int, bool) {
	val, ok := data[key]
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func missingArg(key string) *ToolResult {
	return errResult(fmt.Sprintf("%s is required", key))
}
