package formatter

import (
	"github.com/jacoelho/jsonq/internal/value"
)

// Names of the supported output formats.
const (
	Compact = "compact"
	Pretty  = "pretty"
	YAML    = "yaml"
)

// Formatter defines the interface for different output formats.
// Implementations are responsible for determining the output device (stdout, file, etc.).
type Formatter interface {
	// Format writes one rendered value followed by a newline.
	Format(v value.Value) error
}
