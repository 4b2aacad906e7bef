package yaml

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/jacoelho/jsonq/internal/value"
)

func TestFormatter_Format(t *testing.T) {
	t.Parallel()

	doc := value.Object{
		{Key: "second", Value: value.String("ada")},
		{Key: "first", Value: value.Number(1)},
		{Key: "ratio", Value: value.Number(2.5)},
		{Key: "items", Value: value.Array{value.Bool(true), value.Null{}}},
		{Key: "first", Value: value.Number(2)},
	}

	var buf bytes.Buffer
	if err := NewWithWriter(&buf).Format(doc); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	output := buf.String()

	for _, expected := range []string{"second: ada", "first: 1", "ratio: 2.5", "- true", "- null", "first: 2"} {
		if !strings.Contains(output, expected) {
			t.Errorf("Expected output to contain %q, but got:\n%s", expected, output)
		}
	}

	if strings.Index(output, "second:") > strings.Index(output, "first:") {
		t.Errorf("member order not preserved:\n%s", output)
	}
	if got := strings.Count(output, "first:"); got != 2 {
		t.Errorf("duplicate keys written %d times, want 2:\n%s", got, output)
	}
	if strings.Contains(output, "1.0") {
		t.Errorf("integral number rendered with fraction:\n%s", output)
	}
}

func TestFormatter_Format_Scalar(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := NewWithWriter(&buf).Format(value.Number(42)); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "42" {
		t.Fatalf("Format(42) = %q, want %q", got, "42")
	}
}

func TestFormatter_Format_Numbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{name: "negative integer", input: -7, want: "-7"},
		{name: "zero", input: 0, want: "0"},
		{name: "negative zero", input: math.Copysign(0, -1), want: "-0"},
		{name: "fraction", input: 0.5, want: "0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := NewWithWriter(&buf).Format(value.Number(tt.input)); err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if got := strings.TrimSpace(buf.String()); !strings.HasPrefix(got, tt.want) {
				t.Fatalf("Format(%v) = %q, want prefix %q", tt.input, got, tt.want)
			}
		})
	}
}
