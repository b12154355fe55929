// Package pipeline normalizes and validates AsyncAPI documents.
//
// A Pipeline runs in two phases over a single document. The converter phase hoists reusable objects into
// components and rewrites their original positions into references. The validator phase then checks the
// result without modifying it. The first failing processor aborts the run.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/speakeasy-api/asyncapi/asyncapi"
	"github.com/speakeasy-api/asyncapi/errors"
	"github.com/speakeasy-api/asyncapi/managers"
	"github.com/speakeasy-api/asyncapi/validators"
)

// ErrStructural is returned when a document fails base structural validation.
const ErrStructural = errors.Error("document failed structural validation")

// Pipeline runs an ordered list of converters followed by an ordered list of validators.
// A Pipeline holds no per-run state and can be reused, but a document must not be shared between concurrent runs.
type Pipeline struct {
	cfg config
}

// New creates a Pipeline. Without options it runs DefaultConverters and DefaultValidators.
func New(opts ...Option) *Pipeline {
	return &Pipeline{cfg: newConfig(opts)}
}

// Run is shorthand for New(opts...).Run(ctx, doc).
func Run(ctx context.Context, doc *asyncapi.Document, opts ...Option) (*asyncapi.Document, error) {
	return New(opts...).Run(ctx, doc)
}

// Load is shorthand for New(opts...).Load(ctx, r).
func Load(ctx context.Context, r io.Reader, opts ...Option) (*asyncapi.Document, error) {
	return New(opts...).Load(ctx, r)
}

// DefaultConverters returns the hoisting managers in the order they have to run: tags first so tag objects
// are hoisted before their owners move, then the root collections, then the objects nested in channels.
func DefaultConverters(logger *slog.Logger) []asyncapi.Processor {
	return []asyncapi.Processor{
		managers.NewTagsManager(managers.WithLogger(logger)),
		managers.NewServersManager(managers.WithLogger(logger)),
		managers.NewChannelsManager(managers.WithLogger(logger)),
		managers.NewOperationsManager(managers.WithLogger(logger)),
		managers.NewChannelMessagesManager(managers.WithLogger(logger)),
		managers.NewChannelParametersManager(managers.WithLogger(logger)),
	}
}

// DefaultValidators returns the unified reference validator followed by the per-kind reference validators.
func DefaultValidators(opts ...validators.Option) []asyncapi.Processor {
	return []asyncapi.Processor{
		validators.NewUnifiedReferencesValidator(opts...),
		validators.NewTagsRefValidator(opts...),
		validators.NewServerBindingsRefValidator(opts...),
		validators.NewChannelBindingsRefValidator(),
		validators.NewChannelsRefValidator(),
		validators.NewCorrelationIDsRefValidator(),
		validators.NewExternalDocsRefValidator(),
		validators.NewMessageBindingsRefValidator(),
		validators.NewMessageTraitsRefValidator(),
		validators.NewMessagesRefValidator(),
		validators.NewOperationBindingsRefValidator(),
		validators.NewOperationTraitsRefValidator(),
		validators.NewOperationsRefValidator(),
		validators.NewParametersRefValidator(),
		validators.NewRepliesRefValidator(),
		validators.NewReplyAddressesRefValidator(),
		validators.NewSchemasRefValidator(),
		validators.NewSecuritySchemesRefValidator(),
		validators.NewServerVariablesRefValidator(),
		validators.NewServersRefValidator(),
	}
}

// Converters returns the converters in run order.
func (p *Pipeline) Converters() []asyncapi.Processor {
	return slices.Clone(p.cfg.converters)
}

// Validators returns the validators in run order.
func (p *Pipeline) Validators() []asyncapi.Processor {
	return slices.Clone(p.cfg.validators)
}

// Load parses a document from r, checks its structure and runs the pipeline on it.
func (p *Pipeline) Load(ctx context.Context, r io.Reader) (*asyncapi.Document, error) {
	var unmarshalOpts []asyncapi.Option[asyncapi.UnmarshalOptions]
	if p.cfg.skipBaseValidation {
		unmarshalOpts = append(unmarshalOpts, asyncapi.WithSkipValidation())
	}

	doc, validationErrs, err := asyncapi.Unmarshal(ctx, r, unmarshalOpts...)
	if err != nil {
		return nil, err
	}
	if len(validationErrs) > 0 {
		return nil, ErrStructural.Wrap(errors.Join(validationErrs...))
	}

	return p.process(ctx, doc)
}

// Run checks the structure of doc, unless disabled with WithSkipBaseValidation, then runs the converters and
// validators on it. The document is modified in place and returned. A nil document is returned unchanged.
func (p *Pipeline) Run(ctx context.Context, doc *asyncapi.Document) (*asyncapi.Document, error) {
	if doc == nil {
		return nil, nil
	}

	if !p.cfg.skipBaseValidation {
		if validationErrs := doc.Validate(ctx); len(validationErrs) > 0 {
			return nil, ErrStructural.Wrap(errors.Join(validationErrs...))
		}
	}

	return p.process(ctx, doc)
}

func (p *Pipeline) process(ctx context.Context, doc *asyncapi.Document) (*asyncapi.Document, error) {
	doc, err := p.runPhase(ctx, "converter", p.cfg.converters, doc)
	if err != nil {
		return nil, err
	}
	return p.runPhase(ctx, "validator", p.cfg.validators, doc)
}

func (p *Pipeline) runPhase(ctx context.Context, phase string, processors []asyncapi.Processor, doc *asyncapi.Document) (*asyncapi.Document, error) {
	for _, processor := range processors {
		name := processorName(processor)
		logger := p.cfg.logger.With(slog.String("phase", phase), slog.String("processor", name))

		logger.DebugContext(ctx, "processor started")
		start := time.Now()

		out, err := processor.Process(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", phase, name, err)
		}
		if out != nil {
			doc = out
		}

		logger.DebugContext(ctx, "processor finished", slog.Duration("elapsed", time.Since(start)))
	}

	return doc, nil
}

type namer interface {
	Name() string
}

func processorName(p asyncapi.Processor) string {
	if n, ok := p.(namer); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", p)
}
