package asyncapi

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/speakeasy-api/asyncapi/json"
	"github.com/speakeasy-api/asyncapi/validation"
	"gopkg.in/yaml.v3"
)

type Option[T any] func(o *T)

type UnmarshalOptions struct {
	skipValidation bool
}

// WithSkipValidation will skip base structural validation of the document during unmarshaling.
// Useful to load a document that will be mutated and validated later.
func WithSkipValidation() Option[UnmarshalOptions] {
	return func(o *UnmarshalOptions) {
		o.skipValidation = true
	}
}

// Unmarshal parses an AsyncAPI document from the provided io.Reader and validates its structure.
// Structural problems are returned as validation errors, the error result is reserved for documents that cannot
// be parsed at all.
func Unmarshal(ctx context.Context, doc io.Reader, opts ...Option[UnmarshalOptions]) (*Document, []error, error) {
	o := UnmarshalOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	data, err := io.ReadAll(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read document: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, nil, fmt.Errorf("failed to parse document: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, nil, fmt.Errorf("failed to parse document: %w", ErrMissingRequired.Wrapf("document is empty"))
	}

	var validationErrs []error
	if !o.skipValidation {
		validationErrs = ValidateNode(ctx, &root)
	}

	var asyncAPI Document
	if err := root.Decode(&asyncAPI); err != nil {
		if len(validationErrs) > 0 {
			return nil, validationErrs, nil
		}
		return nil, nil, fmt.Errorf("failed to decode document: %w", err)
	}

	return &asyncAPI, validationErrs, nil
}

// Marshal writes the document to w as YAML, preserving key order.
func Marshal(_ context.Context, doc *Document, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// MarshalJSON writes the document to w as indented JSON, preserving key order.
func MarshalJSON(ctx context.Context, doc *Document, w io.Writer) error {
	node, err := ToNode(ctx, doc)
	if err != nil {
		return err
	}
	return json.YAMLToJSON(node, 2, w)
}

// ToNode renders the document as a YAML node tree.
func ToNode(_ context.Context, doc *Document) (*yaml.Node, error) {
	var node yaml.Node
	if err := node.Encode(doc); err != nil {
		return nil, err
	}
	return &node, nil
}

// Validate runs base structural validation on the document as it would be serialized.
func (d *Document) Validate(ctx context.Context) []error {
	var buf bytes.Buffer
	if err := Marshal(ctx, d, &buf); err != nil {
		return []error{validation.NewValidationError(validation.NewValueValidationError("document cannot be serialized: %s", err.Error()), "", nil)}
	}

	var root yaml.Node
	if err := yaml.Unmarshal(buf.Bytes(), &root); err != nil {
		return []error{validation.NewValidationError(validation.NewValueValidationError("document cannot be parsed: %s", err.Error()), "", nil)}
	}
	return ValidateNode(ctx, &root)
}
