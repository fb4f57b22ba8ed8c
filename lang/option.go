package lang

import "github.com/ardnew/ucfg/log"

// DefaultMaxDepth is the default maximum nesting depth of dictionaries.
// Users may modify this before parsing to change the default.
var DefaultMaxDepth = 100

// options holds parse and evaluation settings.
type options struct {
	maxDepth int
	maxSize  int
	logger   log.Logger // zero value discards all records
}

// Option configures parsing or evaluation behavior.
type Option func(*options)

// WithMaxDepth sets the maximum nesting depth of dictionary literals.
// A depth of zero or less disables the limit.
func WithMaxDepth(depth int) Option {
	return func(o *options) {
		o.maxDepth = depth
	}
}

// WithMaxSize sets the maximum accepted source size in bytes.
// A size of zero or less disables the limit.
func WithMaxSize(size int) Option {
	return func(o *options) {
		o.maxSize = size
	}
}

// WithLogger sets the structured logger for trace-level debugging.
// If not provided, the logger is zero-valued and all logging is a no-op.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func makeOptions(opts ...Option) options {
	o := options{maxDepth: DefaultMaxDepth}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
