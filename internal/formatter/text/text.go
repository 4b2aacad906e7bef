// Package text renders values as JSON text.
package text

import (
	"io"

	"github.com/jacoelho/jsonq/internal/formatter"
	"github.com/jacoelho/jsonq/internal/value"
)

// Formatter writes compact or indented JSON.
type Formatter struct {
	writer io.Writer
	pretty bool
	indent int
}

// NewCompactWithWriter creates a formatter that writes one value per line.
func NewCompactWithWriter(writer io.Writer) formatter.Formatter {
	return &Formatter{writer: writer}
}

// NewPrettyWithWriter creates an indenting formatter. indent is the nesting
// level the rendering starts at.
func NewPrettyWithWriter(writer io.Writer, indent int) formatter.Formatter {
	return &Formatter{writer: writer, pretty: true, indent: indent}
}

// Format writes v followed by a newline.
func (f *Formatter) Format(v value.Value) error {
	rendered := value.Compact(v)
	if f.pretty {
		rendered = value.Pretty(v, f.indent)
	}

	_, err := io.WriteString(f.writer, rendered+"\n")
	return err
}
