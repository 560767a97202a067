package logstore

import (
	"encoding/json"
	"fmt"
	"math"
)

// ValidateTimestamp checks that a raw timestamp value is an integer
// millisecond count. Historical logs written by a buggy SQL path carried the
// literal string "datetime('now')" (or formatted datetime strings) in ts
// columns; those rows must be rewritten during consolidation, never
// ingested as-is.
func ValidateTimestamp(raw interface{}) (int64, error) {
	switch v := raw.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: timestamp %v is not an integer", ErrInvalidEvent, v)
		}
		return int64(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: timestamp %q is not an integer", ErrInvalidEvent, v.String())
		}
		return n, nil
	case string:
		return 0, fmt.Errorf("%w: timestamp is a string (%q), expected integer milliseconds", ErrInvalidEvent, v)
	case nil:
		return 0, fmt.Errorf("%w: timestamp is missing", ErrInvalidEvent)
	default:
		return 0, fmt.Errorf("%w: timestamp has unsupported type %T", ErrInvalidEvent, raw)
	}
}
