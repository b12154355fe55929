package validators

import (
	"log/slog"

	"github.com/speakeasy-api/asyncapi/walk"
)

// Option configures a validator.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	registry *Registry
	maxDepth int
}

// WithLogger sets the logger warnings about external references are written to. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRegistry replaces the registry used to look up the expected type of a reference. A nil registry is ignored.
func WithRegistry(registry *Registry) Option {
	return func(c *config) {
		if registry != nil {
			c.registry = registry
		}
	}
}

// WithMaxDepth sets how deep the document may nest before validation fails with ErrDepthExceeded.
// Non-positive values are ignored.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		logger:   slog.New(slog.DiscardHandler),
		maxDepth: walk.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = DefaultRegistry()
	}
	return cfg
}
