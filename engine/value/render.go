package value

import (
	"fmt"
	"strconv"
	"time"
)

// Runtime carries the execution-time inputs needed to materialize Source
// leaves.
type Runtime struct {
	ExecuteTime     time.Time
	LastExecuteTime time.Time
}

func (rt Runtime) resolve(s Source) string {
	switch s {
	case LastExecuteDate:
		// Zero on the first run: there is no previous execution yet.
		if rt.LastExecuteTime.IsZero() {
			return ""
		}
		return rt.LastExecuteTime.Format(time.RFC3339)
	default:
		return rt.ExecuteTime.Format(time.RFC3339)
	}
}

// Render materializes a value tree into plain Go data suitable for JSON
// encoding, substituting Source leaves from the runtime.
func Render(v Value, rt Runtime) any {
	switch val := v.(type) {
	case Array:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Render(item, rt)
		}
		return out
	case Object:
		out := make(map[string]any, len(val))
		for key, item := range val {
			out[key] = Render(item, rt)
		}
		return out
	case String:
		return string(val)
	case Bool:
		return bool(val)
	case Float:
		return float64(val)
	case Integer:
		return int64(val)
	case Source:
		return rt.resolve(val)
	default:
		return nil
	}
}

// RenderHeader materializes a restricted-mode value into its textual header
// form. Structured, boolean, and null values never reach here through the
// restricted parser and are rejected outright.
func RenderHeader(v Value, rt Runtime) (string, error) {
	switch val := v.(type) {
	case String:
		return string(val), nil
	case Integer:
		return strconv.FormatInt(int64(val), 10), nil
	case Float:
		return strconv.FormatFloat(float64(val), 'f', -1, 64), nil
	case Source:
		return rt.resolve(val), nil
	default:
		return "", fmt.Errorf("value of kind %s cannot be rendered as a header", v.Kind())
	}
}
