package parsers

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Normalize rewrites a freshly decoded tree into the canonical shape the
// diff engine expects. Integer values of any width become int64, floats
// become float64, and mapping keys become strings. Without this pass the
// same document would carry different type tags depending on which
// decoder produced it, and the engine would report spurious type changes.
func Normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		result := make(map[string]any, len(t))
		for key, value := range t {
			result[key] = Normalize(value)
		}
		return result
	case map[any]any:
		result := make(map[string]any, len(t))
		for key, value := range t {
			result[fmt.Sprintf("%v", key)] = Normalize(value)
		}
		return result
	case []any:
		result := make([]any, len(t))
		for i, value := range t {
			result[i] = Normalize(value)
		}
		return result
	case json.Number:
		return normalizeNumber(t)
	case int:
		return int64(t)
	case int8:
		return int64(t)
	case int16:
		return int64(t)
	case int32:
		return int64(t)
	case uint:
		return normalizeUint(uint64(t))
	case uint8:
		return int64(t)
	case uint16:
		return int64(t)
	case uint32:
		return int64(t)
	case uint64:
		return normalizeUint(t)
	case float32:
		return float64(t)
	default:
		return v
	}
}

// NormalizeMapping normalizes a top-level mapping in place of its copy
func NormalizeMapping(m map[string]any) map[string]any {
	return Normalize(m).(map[string]any)
}

// normalizeUint converts an unsigned integer to int64, falling back to
// float64 for values above MaxInt64 instead of wrapping negative.
func normalizeUint(u uint64) any {
	if u > math.MaxInt64 {
		return float64(u)
	}
	return int64(u)
}

// normalizeNumber keeps the integer/float distinction JSON source text
// expresses: a literal without a fraction or exponent is an integer.
func normalizeNumber(n json.Number) any {
	if !strings.ContainsAny(n.String(), ".eE") {
		if i, err := n.Int64(); err == nil {
			return i
		}
	}
	f, err := n.Float64()
	if err != nil {
		// Unreachable for numbers the decoder accepted; keep the
		// literal text rather than invent a value.
		return n.String()
	}
	return f
}
