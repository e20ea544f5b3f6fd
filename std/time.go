/*
File    : glint/std/time.go
*/

// This file defines date/time builtins: now/now_ms/utc_now/format_time/
// parse_time/timezone. Grounded on the teacher's time.go, rebuilt
// against objects.Value.
package std

import (
	"fmt"
	"time"

	"github.com/akashmaji946/glint/objects"
)

func init() {
	simple("now", nowFn)
	simple("now_ms", nowMsFn)
	simple("utc_now", utcNowFn)
	simple("format_time", formatTimeFn)
	simple("parse_time", parseTimeFn)
	simple("timezone", timezoneFn)
}

func nowFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("now expects 0 arguments")
	}
	return objects.NewNumberInt(time.Now().Unix()), nil
}

func nowMsFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("now_ms expects 0 arguments")
	}
	return objects.NewNumberInt(time.Now().UnixMilli()), nil
}

func utcNowFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("utc_now expects 0 arguments")
	}
	return objects.NewNumberInt(time.Now().UTC().Unix()), nil
}

// formatTimeFn converts a Unix timestamp to a formatted string using
// Go's reference-time layout (Mon Jan 2 15:04:05 MST 2006).
func formatTimeFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("format_time expects 2 arguments (timestamp, layout)")
	}
	ts, ok := args[0].(*objects.Number)
	if !ok {
		return nil, fmt.Errorf("first argument to format_time must be a number (timestamp)")
	}
	layout, ok := args[1].(*objects.String)
	if !ok {
		return nil, fmt.Errorf("second argument to format_time must be a string (layout)")
	}
	t := time.Unix(asIntArg(ts), 0)
	return objects.NewString(t.Format(layout.Value)), nil
}

// parseTimeFn parses using local time, matching now()'s locality.
func parseTimeFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("parse_time expects 2 arguments (value, layout)")
	}
	val, ok := args[0].(*objects.String)
	if !ok {
		return nil, fmt.Errorf("first argument to parse_time must be a string (value)")
	}
	layout, ok := args[1].(*objects.String)
	if !ok {
		return nil, fmt.Errorf("second argument to parse_time must be a string (layout)")
	}
	t, err := time.ParseInLocation(layout.Value, val.Value, time.Local)
	if err != nil {
		return nil, fmt.Errorf("failed to parse time: %w", err)
	}
	return objects.NewNumberInt(t.Unix()), nil
}

func timezoneFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("timezone expects 0 arguments")
	}
	name, _ := time.Now().Zone()
	return objects.NewString(name), nil
}
