// Package asyncapi provides the AsyncAPI 3 document model along with parsing, serialization, base structural
// validation and a fluent builder.
//
// Every position that may hold a reference is typed as a two case union, Reference[T] or ReferencedSchema, and every
// record exposes its declared fields through walk.Node so that reference resolution and validation can traverse the
// document without reflection.
package asyncapi

import (
	"context"

	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/speakeasy-api/asyncapi/walk"
	"gopkg.in/yaml.v3"
)

// Version is the version of the AsyncAPI specification produced by this package.
const Version = "3.0.0"

// SupportedMajorVersion is the only major version of the specification this package accepts.
const SupportedMajorVersion = 3

// Document is the root object of an AsyncAPI 3 document.
type Document struct {
	// The version of the AsyncAPI specification the document uses. Required.
	AsyncAPI string `yaml:"asyncapi"`
	// Identifier of the application the document is defining, in URI format.
	ID string `yaml:"id,omitempty"`
	// Metadata about the API. Required.
	Info *Info `yaml:"info"`
	// Connection details of servers.
	Servers *sequencedmap.Map[string, *ReferencedServer] `yaml:"servers,omitempty"`
	// Default content type to use when encoding/decoding a message's payload.
	DefaultContentType string `yaml:"defaultContentType,omitempty"`
	// The channels used by this application.
	Channels *sequencedmap.Map[string, *ReferencedChannel] `yaml:"channels,omitempty"`
	// The operations this application MUST implement.
	Operations *sequencedmap.Map[string, *ReferencedOperation] `yaml:"operations,omitempty"`
	// An element to hold various reusable objects for the specification.
	Components *Components `yaml:"components,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*Document)(nil)

// GetInfo returns the value of the Info field. Returns nil if not set.
func (d *Document) GetInfo() *Info {
	if d == nil {
		return nil
	}
	return d.Info
}

// GetServers returns the value of the Servers field. Returns nil if not set.
func (d *Document) GetServers() *sequencedmap.Map[string, *ReferencedServer] {
	if d == nil {
		return nil
	}
	return d.Servers
}

// GetChannels returns the value of the Channels field. Returns nil if not set.
func (d *Document) GetChannels() *sequencedmap.Map[string, *ReferencedChannel] {
	if d == nil {
		return nil
	}
	return d.Channels
}

// GetOperations returns the value of the Operations field. Returns nil if not set.
func (d *Document) GetOperations() *sequencedmap.Map[string, *ReferencedOperation] {
	if d == nil {
		return nil
	}
	return d.Operations
}

// GetComponents returns the value of the Components field. Returns nil if not set.
func (d *Document) GetComponents() *Components {
	if d == nil {
		return nil
	}
	return d.Components
}

// EnsureComponents returns the components of the document, creating them if absent.
func (d *Document) EnsureComponents() *Components {
	if d.Components == nil {
		d.Components = &Components{}
	}
	return d.Components
}

func (d *Document) Fields() []walk.Field {
	return []walk.Field{
		walk.String("asyncapi", "asyncapi", d.AsyncAPI),
		walk.String("id", "id", d.ID),
		walk.Value("info", "info", d.Info),
		walk.Map("servers", KeyServers, d.Servers),
		walk.String("default_content_type", "defaultContentType", d.DefaultContentType),
		walk.Map("channels", KeyChannels, d.Channels),
		walk.Map("operations", KeyOperations, d.Operations),
		walk.Value("components", KeyComponents, d.Components),
	}
}

func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	type alias Document
	return decodeModel(node, (*alias)(d), &d.Extensions, false)
}

func (d *Document) MarshalYAML() (any, error) {
	type alias Document
	return encodeModel((*alias)(d), d.Extensions)
}

// Processor is a single step of document processing. Converters rewrite the document in place, validators only
// inspect it. Both return the document to allow chaining.
type Processor interface {
	Process(ctx context.Context, doc *Document) (*Document, error)
}

// ProcessorFunc adapts a function to the Processor interface.
type ProcessorFunc func(ctx context.Context, doc *Document) (*Document, error)

func (f ProcessorFunc) Process(ctx context.Context, doc *Document) (*Document, error) {
	return f(ctx, doc)
}
