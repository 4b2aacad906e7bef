package value

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrUnsupportedType is returned by FromInterface for Go values with no JSON shape.
var ErrUnsupportedType = errors.New("unsupported type")

// Interface converts v into the generic form produced by encoding/json:
// string, float64, bool, nil, []any and map[string]any. When an object
// repeats a key the first member is kept, matching Get.
func Interface(v Value) any {
	switch current := v.(type) {
	case String:
		return string(current)
	case Number:
		return float64(current)
	case Bool:
		return bool(current)
	case Null:
		return nil
	case Array:
		out := make([]any, len(current))
		for i, elem := range current {
			out[i] = Interface(elem)
		}
		return out
	case Object:
		out := make(map[string]any, len(current))
		for _, member := range current {
			if _, seen := out[member.Key]; seen {
				continue
			}
			out[member.Key] = Interface(member.Value)
		}
		return out
	default:
		return nil
	}
}

// FromInterface builds a Value from generic Go data. Map members are
// ordered by key since Go maps carry no order.
func FromInterface(x any) (Value, error) {
	switch current := x.(type) {
	case nil:
		return Null{}, nil
	case string:
		return String(current), nil
	case bool:
		return Bool(current), nil
	case float64:
		return Number(current), nil
	case float32:
		return Number(current), nil
	case int:
		return Number(current), nil
	case int64:
		return Number(current), nil
	case []any:
		out := make(Array, 0, len(current))
		for _, elem := range current {
			converted, err := FromInterface(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, converted)
		}
		return out, nil
	case map[string]any:
		out := make(Object, 0, len(current))
		for _, key := range slices.Sorted(maps.Keys(current)) {
			converted, err := FromInterface(current[key])
			if err != nil {
				return nil, err
			}
			out = append(out, Member{Key: key, Value: converted})
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, x)
	}
}
