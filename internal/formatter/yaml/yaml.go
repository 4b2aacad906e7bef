// Package yaml renders values as YAML documents.
package yaml

import (
	"fmt"
	"io"
	"math"

	goyaml "github.com/goccy/go-yaml"

	"github.com/jacoelho/jsonq/internal/formatter"
	"github.com/jacoelho/jsonq/internal/value"
)

// Formatter writes each value as a YAML document.
type Formatter struct {
	writer io.Writer
}

// NewWithWriter creates a YAML formatter with a custom writer.
func NewWithWriter(writer io.Writer) formatter.Formatter {
	return &Formatter{writer: writer}
}

// Format marshals v. Object member order is kept and repeated keys are
// written as they appear, which a strict YAML reader may reject.
func (f *Formatter) Format(v value.Value) error {
	payload, err := goyaml.Marshal(toYAML(v))
	if err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}

	_, err = f.writer.Write(payload)
	return err
}

func toYAML(v value.Value) any {
	switch current := v.(type) {
	case value.String:
		return string(current)
	case value.Number:
		return yamlNumber(float64(current))
	case value.Bool:
		return bool(current)
	case value.Null:
		return nil
	case value.Array:
		out := make([]any, 0, len(current))
		for _, elem := range current {
			out = append(out, toYAML(elem))
		}
		return out
	case value.Object:
		out := make(goyaml.MapSlice, 0, len(current))
		for _, member := range current {
			out = append(out, goyaml.MapItem{Key: member.Key, Value: toYAML(member.Value)})
		}
		return out
	default:
		return nil
	}
}

// yamlNumber keeps integral numbers free of a trailing ".0".
// Negative zero stays a float so its sign survives.
func yamlNumber(n float64) any {
	if n == 0 && math.Signbit(n) {
		return n
	}
	if n == math.Trunc(n) && n >= math.MinInt64 && n < math.MaxInt64 {
		return int64(n)
	}
	return n
}
