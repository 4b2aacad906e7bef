package parser

// DefaultMaxDepth bounds object and array nesting.
const DefaultMaxDepth = 10000

type options struct {
	maxDepth int
	strict   bool
}

// Option configures Parse and ParsePrefix.
type Option func(*options)

// WithMaxDepth sets the nesting ceiling. Zero or a negative value removes it.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithStrict makes Parse reject anything but whitespace after the value.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

func newOptions(opts []Option) options {
	o := options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
