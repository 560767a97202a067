package logstore

import "encoding/json"

// Accessors for the untyped event data payloads. JSON numbers arrive as
// float64 from the decoder but may be native ints when the event was built
// in-process, so the numeric accessors handle both.

func str(d map[string]interface{}, key string) string {
	v, _ := d[key].(string)
	return v
}

func boolean(d map[string]interface{}, key string) bool {
	v, _ := d[key].(bool)
	return v
}

func intVal(d map[string]interface{}, key string) (int, bool) {
	switch v := d[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
	}
	return 0, false
}

func int64Val(d map[string]interface{}, key string) int64 {
	switch v := d[key].(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
	}
	return 0
}

func intOrDefault(d map[string]interface{}, key string, def int) int {
	if v, ok := intVal(d, key); ok {
		return v
	}
	return def
}

func strSlice(d map[string]interface{}, key string) []string {
	switch v := d[key].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func intSlice(d map[string]interface{}, key string) []int {
	switch v := d[key].(type) {
	case []int:
		return v
	case []interface{}:
		out := make([]int, 0, len(v))
		for _, item := range v {
			switch n := item.(type) {
			case int:
				out = append(out, n)
			case int64:
				out = append(out, int(n))
			case float64:
				out = append(out, int(n))
			}
		}
		return out
	}
	return nil
}

func importanceOrNormal(v string) string {
	switch v {
	case "low", "normal", "high", "urgent":
		return v
	}
	return "normal"
}

func typeOrTask(v string) string {
	switch v {
	case "bug", "feature", "task", "epic", "chore":
		return v
	}
	return "task"
}

func relationshipOrBlocks(v string) string {
	if v == "" {
		return "blocks"
	}
	return v
}
