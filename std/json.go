/*
File    : glint/std/json.go
*/

// This file defines parse_json/stringify_json, bridging the closed
// Value family to encoding/json. Grounded on the teacher's json.go.
package std

import (
	"encoding/json"
	"fmt"

	"github.com/akashmaji946/glint/objects"
)

func init() {
	simple("parse_json", parseJSONFn)
	simple("stringify_json", stringifyJSONFn)
}

func parseJSONFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("parse_json expects 1 argument (string)")
	}
	s, err := asString(args[0])
	if err != nil {
		return nil, err
	}
	var data interface{}
	if err := json.Unmarshal([]byte(s), &data); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return fromJSON(data), nil
}

func stringifyJSONFn(args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("stringify_json expects 1 argument")
	}
	bytes, err := json.Marshal(toJSON(args[0]))
	if err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return objects.NewString(string(bytes)), nil
}

func toJSON(v objects.Value) interface{} {
	switch val := v.(type) {
	case *objects.List:
		out := make([]interface{}, len(val.Items))
		for i, item := range val.Items {
			out[i] = toJSON(item)
		}
		return out
	case *objects.Dict:
		out := make(map[string]interface{}, len(val.Keys))
		for _, k := range val.Keys {
			out[k] = toJSON(val.Pairs[k])
		}
		return out
	case *objects.Number:
		if val.IsInt {
			return val.IntValue
		}
		return val.FloatValue
	case *objects.Bool:
		return val.Value
	case *objects.String:
		return val.Value
	default:
		if v.Type() == objects.NullKind {
			return nil
		}
		return v.String()
	}
}

func fromJSON(val interface{}) objects.Value {
	switch v := val.(type) {
	case map[string]interface{}:
		d := objects.NewDict()
		for k, raw := range v {
			d.Set(objects.NewString(k), fromJSON(raw))
		}
		return d
	case []interface{}:
		items := make([]objects.Value, len(v))
		for i, raw := range v {
			items[i] = fromJSON(raw)
		}
		return objects.NewList(items)
	case string:
		return objects.NewString(v)
	case bool:
		return objects.NewBool(v)
	case float64:
		if v == float64(int64(v)) {
			return objects.NewNumberInt(int64(v))
		}
		return objects.NewNumberFloat(v)
	default:
		return objects.NullValue
	}
}
