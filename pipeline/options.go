package pipeline

import (
	"log/slog"
	"slices"

	"github.com/speakeasy-api/asyncapi/asyncapi"
	"github.com/speakeasy-api/asyncapi/validators"
	"github.com/speakeasy-api/asyncapi/walk"
)

// Option configures a Pipeline.
type Option func(*config)

type config struct {
	logger             *slog.Logger
	converters         []asyncapi.Processor
	validators         []asyncapi.Processor
	registry           *validators.Registry
	maxDepth           int
	skipBaseValidation bool
}

// WithConverters replaces the default hoisting managers. The processors run in the given order.
// Calling it with no processors disables the converter phase.
func WithConverters(processors ...asyncapi.Processor) Option {
	return func(c *config) {
		c.converters = slices.Clone(processors)
		if c.converters == nil {
			c.converters = []asyncapi.Processor{}
		}
	}
}

// WithValidators replaces the default validators. The processors run in the given order.
// Calling it with no processors disables the validator phase.
func WithValidators(processors ...asyncapi.Processor) Option {
	return func(c *config) {
		c.validators = slices.Clone(processors)
		if c.validators == nil {
			c.validators = []asyncapi.Processor{}
		}
	}
}

// WithLogger sets the logger handed to the default processors and used for phase debug output.
// A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRegistry sets the registry used by the default UnifiedReferencesValidator. A nil registry is ignored.
func WithRegistry(registry *validators.Registry) Option {
	return func(c *config) {
		if registry != nil {
			c.registry = registry
		}
	}
}

// WithMaxDepth sets the nesting ceiling of the default UnifiedReferencesValidator. Non-positive values are ignored.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// WithSkipBaseValidation disables structural validation before the converter phase.
// Useful for documents built in code that are known to be well formed.
func WithSkipBaseValidation() Option {
	return func(c *config) {
		c.skipBaseValidation = true
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

	if cfg.converters == nil {
		cfg.converters = DefaultConverters(cfg.logger)
	}
	if cfg.validators == nil {
		cfg.validators = DefaultValidators(
			validators.WithLogger(cfg.logger),
			validators.WithRegistry(cfg.registry),
			validators.WithMaxDepth(cfg.maxDepth),
		)
	}

	return cfg
}
