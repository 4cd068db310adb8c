package utils

import (
	"fmt"
	"strconv"
)

// ToString converts arbitrary tool-argument values to string.
// JSON decoding hands arguments over as any; missing keys arrive as nil,
// which converts to the empty string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToInt converts arbitrary tool-argument values to int. JSON numbers arrive
// as float64 and are truncated; unparseable values convert to zero.
func ToInt(val any) int {
	switch v := val.(type) {
	case nil:
		return 0
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case string:
		i, _ := strconv.Atoi(v)
		return i
	default:
		i, _ := strconv.Atoi(fmt.Sprintf("%v", v))
		return i
	}
}
