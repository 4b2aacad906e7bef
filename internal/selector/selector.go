// Package selector evaluates RFC 9535 JSONPath expressions against parsed values.
package selector

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"

	"github.com/theory/jsonpath"

	"github.com/jacoelho/jsonq/internal/value"
)

// ErrInvalidPath indicates a JSONPath expression that failed to compile.
var ErrInvalidPath = errors.New("invalid JSONPath")

// Select returns every node matched by expr, in document order.
// Path matching sees only the first member of duplicate keys, but a matched
// object or array is returned as it was parsed, member order and duplicates
// included.
func Select(v value.Value, expr string) ([]value.Value, error) {
	if expr == "" {
		return nil, fmt.Errorf("%w: expression is empty", ErrInvalidPath)
	}

	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrInvalidPath, expr, err)
	}

	doc := &document{origins: make(map[unsafe.Pointer]value.Value)}
	nodes := path.Select(doc.build(v))

	out := make([]value.Value, 0, len(nodes))
	for _, node := range nodes {
		resolved, err := doc.resolve(node)
		if err != nil {
			return nil, fmt.Errorf("convert match: %w", err)
		}
		out = append(out, resolved)
	}

	return out, nil
}

// document is the generic tree handed to jsonpath, together with the parsed
// container each non-empty map and slice was built from.
type document struct {
	origins map[unsafe.Pointer]value.Value
}

func (d *document) build(v value.Value) any {
	switch current := v.(type) {
	case value.Array:
		out := make([]any, len(current))
		for i, element := range current {
			out[i] = d.build(element)
		}
		d.remember(out, current)
		return out
	case value.Object:
		out := make(map[string]any, len(current))
		for _, member := range current {
			if _, seen := out[member.Key]; !seen {
				out[member.Key] = d.build(member.Value)
			}
		}
		d.remember(out, current)
		return out
	default:
		return value.Interface(v)
	}
}

func (d *document) remember(container any, origin value.Value) {
	rv := reflect.ValueOf(container)
	if rv.Len() == 0 {
		return
	}
	d.origins[rv.UnsafePointer()] = origin
}

func (d *document) resolve(node any) (value.Value, error) {
	switch node.(type) {
	case []any, map[string]any:
		rv := reflect.ValueOf(node)
		if rv.Len() > 0 {
			if origin, ok := d.origins[rv.UnsafePointer()]; ok {
				return origin, nil
			}
		}
	}
	return value.FromInterface(node)
}
