package availability

import (
	"encoding/json"
	"strings"
)

// Keys the rooms_availability response has been observed to use for
// inventory counts or availability flags. Matched case-insensitively at any
// depth. The endpoint is undocumented, so this set is deliberately kept in
// sync with live response shapes rather than tidied up.
var signalKeys = map[string]struct{}{
	"available":    {},
	"availability": {},
	"inventory":    {},
	"inventories":  {},
	"vacancy":      {},
}

// Detect walks a decoded JSON value and reports whether any recognized
// availability key carries a truthy signal anywhere in the tree. It never
// fails: unknown shapes, empty containers and nil simply contribute no
// match. Recursion depth is bounded only by the payload itself, which the
// remote server controls.
func Detect(v any) bool {
	switch node := v.(type) {
	case map[string]any:
		for key, value := range node {
			if _, ok := signalKeys[strings.ToLower(key)]; ok && truthy(value) {
				return true
			}
			if Detect(value) {
				return true
			}
		}
	case []any:
		for _, item := range node {
			if Detect(item) {
				return true
			}
		}
	}
	return false
}

// truthy interprets the value under a matched key. Numbers signal
// availability when positive, strings only when they spell "available".
// Containers and anything else are not decisive on their own.
func truthy(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case float64:
		return val > 0
	case int:
		return val > 0
	case int64:
		return val > 0
	case json.Number:
		f, err := val.Float64()
		return err == nil && f > 0
	case string:
		return strings.EqualFold(val, "available")
	}
	return false
}
