package asyncapi

import (
	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/walk"
	"gopkg.in/yaml.v3"
)

// Message describes a message received on a given channel and operation.
type Message struct {
	// Schema definition of the application headers. Schema MUST be a map of key-value pairs.
	Headers *ReferencedSchema `yaml:"headers,omitempty"`
	// Definition of the message payload.
	Payload *ReferencedSchema `yaml:"payload,omitempty"`
	// Definition of the correlation ID used for message tracing or matching.
	CorrelationID *ReferencedCorrelationID `yaml:"correlationId,omitempty"`
	// The content type to use when encoding/decoding a message's payload.
	ContentType string `yaml:"contentType,omitempty"`
	// A machine-friendly name for the message.
	Name string `yaml:"name,omitempty"`
	// A human-friendly title for the message.
	Title string `yaml:"title,omitempty"`
	// A short summary of what the message is about.
	Summary string `yaml:"summary,omitempty"`
	// A verbose explanation of the message.
	Description string `yaml:"description,omitempty"`
	// A list of tags for logical grouping and categorization of messages.
	Tags []*ReferencedTag `yaml:"tags,omitempty"`
	// Additional external documentation for this message.
	ExternalDocs *ReferencedExternalDocumentation `yaml:"externalDocs,omitempty"`
	// Protocol specific definitions for the message.
	Bindings *ReferencedMessageBindings `yaml:"bindings,omitempty"`
	// Examples of valid message objects.
	Examples []*MessageExample `yaml:"examples,omitempty"`
	// A list of traits to apply to the message object.
	Traits []*ReferencedMessageTrait `yaml:"traits,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*Message)(nil)

// GetTags returns the value of the Tags field. Returns nil if not set.
func (m *Message) GetTags() []*ReferencedTag {
	if m == nil {
		return nil
	}
	return m.Tags
}

func (m *Message) Fields() []walk.Field {
	return []walk.Field{
		walk.Value("headers", "headers", m.Headers),
		walk.Value("payload", "payload", m.Payload),
		walk.Value("correlation_id", "correlationId", m.CorrelationID),
		walk.String("content_type", "contentType", m.ContentType),
		walk.String("name", "name", m.Name),
		walk.String("title", "title", m.Title),
		walk.String("summary", "summary", m.Summary),
		walk.String("description", "description", m.Description),
		walk.Slice("tags", "tags", m.Tags),
		walk.Value("external_docs", "externalDocs", m.ExternalDocs),
		walk.Value("bindings", "bindings", m.Bindings),
		walk.Slice("examples", "examples", m.Examples),
		walk.Slice("traits", "traits", m.Traits),
	}
}

func (m *Message) UnmarshalYAML(node *yaml.Node) error {
	type alias Message
	return decodeModel(node, (*alias)(m), &m.Extensions, false)
}

func (m *Message) MarshalYAML() (any, error) {
	type alias Message
	return encodeModel((*alias)(m), m.Extensions)
}

// MessageTrait describes a trait that MAY be applied to a Message.
type MessageTrait struct {
	// Schema definition of the application headers.
	Headers *ReferencedSchema `yaml:"headers,omitempty"`
	// Definition of the correlation ID used for message tracing or matching.
	CorrelationID *ReferencedCorrelationID `yaml:"correlationId,omitempty"`
	// The content type to use when encoding/decoding a message's payload.
	ContentType string `yaml:"contentType,omitempty"`
	// A machine-friendly name for the message.
	Name string `yaml:"name,omitempty"`
	// A human-friendly title for the message.
	Title string `yaml:"title,omitempty"`
	// A short summary of what the message is about.
	Summary string `yaml:"summary,omitempty"`
	// A verbose explanation of the message.
	Description string `yaml:"description,omitempty"`
	// A list of tags for logical grouping and categorization of messages.
	Tags []*ReferencedTag `yaml:"tags,omitempty"`
	// Additional external documentation for this message.
	ExternalDocs *ReferencedExternalDocumentation `yaml:"externalDocs,omitempty"`
	// Protocol specific definitions for the message.
	Bindings *ReferencedMessageBindings `yaml:"bindings,omitempty"`
	// Examples of valid message objects.
	Examples []*MessageExample `yaml:"examples,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*MessageTrait)(nil)

// GetTags returns the value of the Tags field. Returns nil if not set.
func (t *MessageTrait) GetTags() []*ReferencedTag {
	if t == nil {
		return nil
	}
	return t.Tags
}

func (t *MessageTrait) Fields() []walk.Field {
	return []walk.Field{
		walk.Value("headers", "headers", t.Headers),
		walk.Value("correlation_id", "correlationId", t.CorrelationID),
		walk.String("content_type", "contentType", t.ContentType),
		walk.String("name", "name", t.Name),
		walk.String("title", "title", t.Title),
		walk.String("summary", "summary", t.Summary),
		walk.String("description", "description", t.Description),
		walk.Slice("tags", "tags", t.Tags),
		walk.Value("external_docs", "externalDocs", t.ExternalDocs),
		walk.Value("bindings", "bindings", t.Bindings),
		walk.Slice("examples", "examples", t.Examples),
	}
}

func (t *MessageTrait) UnmarshalYAML(node *yaml.Node) error {
	type alias MessageTrait
	return decodeModel(node, (*alias)(t), &t.Extensions, false)
}

func (t *MessageTrait) MarshalYAML() (any, error) {
	type alias MessageTrait
	return encodeModel((*alias)(t), t.Extensions)
}

// MessageExample represents an example of a message object.
type MessageExample struct {
	// The value of the example headers.
	Headers *yaml.Node `yaml:"headers,omitempty"`
	// The value of the example payload.
	Payload *yaml.Node `yaml:"payload,omitempty"`
	// A machine-friendly name.
	Name string `yaml:"name,omitempty"`
	// A short summary of what the example is about.
	Summary string `yaml:"summary,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*MessageExample)(nil)

func (e *MessageExample) Fields() []walk.Field {
	return []walk.Field{
		walk.Value("headers", "headers", e.Headers),
		walk.Value("payload", "payload", e.Payload),
		walk.String("name", "name", e.Name),
		walk.String("summary", "summary", e.Summary),
	}
}

func (e *MessageExample) UnmarshalYAML(node *yaml.Node) error {
	type alias MessageExample
	return decodeModel(node, (*alias)(e), &e.Extensions, false)
}

func (e *MessageExample) MarshalYAML() (any, error) {
	type alias MessageExample
	return encodeModel((*alias)(e), e.Extensions)
}

// CorrelationID specifies an identifier at design time that can be used for message tracing and correlation.
type CorrelationID struct {
	// An optional description of the identifier.
	Description string `yaml:"description,omitempty"`
	// A runtime expression that specifies the location of the correlation ID. Required.
	Location string `yaml:"location"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*CorrelationID)(nil)

func (c *CorrelationID) Fields() []walk.Field {
	return []walk.Field{
		walk.String("description", "description", c.Description),
		walk.String("location", "location", c.Location),
	}
}

func (c *CorrelationID) UnmarshalYAML(node *yaml.Node) error {
	type alias CorrelationID
	return decodeModel(node, (*alias)(c), &c.Extensions, false)
}

func (c *CorrelationID) MarshalYAML() (any, error) {
	type alias CorrelationID
	return encodeModel((*alias)(c), c.Extensions)
}
