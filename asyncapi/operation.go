package asyncapi

import (
	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/walk"
	"gopkg.in/yaml.v3"
)

// Action is the kind of an operation.
type Action string

const (
	// ActionSend means the application sends messages to the channel.
	ActionSend Action = "send"
	// ActionReceive means the application receives messages from the channel.
	ActionReceive Action = "receive"
)

// IsValid reports whether a is one of the known actions.
func (a Action) IsValid() bool {
	return a == ActionSend || a == ActionReceive
}

// Operation describes a specific operation.
type Operation struct {
	// Whether the application sends or receives messages. Required.
	Action Action `yaml:"action"`
	// A reference to the channel this operation is performed on. Required.
	Channel *ReferencedChannel `yaml:"channel"`
	// A human-friendly title for the operation.
	Title string `yaml:"title,omitempty"`
	// A short summary of what the operation is about.
	Summary string `yaml:"summary,omitempty"`
	// A verbose explanation of the operation.
	Description string `yaml:"description,omitempty"`
	// Which security schemes are associated with this operation.
	Security []*ReferencedSecurityScheme `yaml:"security,omitempty"`
	// A list of tags for logical grouping and categorization of operations.
	Tags []*ReferencedTag `yaml:"tags,omitempty"`
	// Additional external documentation for this operation.
	ExternalDocs *ReferencedExternalDocumentation `yaml:"externalDocs,omitempty"`
	// Protocol specific definitions for the operation.
	Bindings *ReferencedOperationBindings `yaml:"bindings,omitempty"`
	// A list of traits to apply to the operation object.
	Traits []*ReferencedOperationTrait `yaml:"traits,omitempty"`
	// References to the messages processed by this operation.
	Messages []*ReferencedMessage `yaml:"messages,omitempty"`
	// The definition of the reply in a request-reply operation.
	Reply *ReferencedOperationReply `yaml:"reply,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*Operation)(nil)

// GetTags returns the value of the Tags field. Returns nil if not set.
func (o *Operation) GetTags() []*ReferencedTag {
	if o == nil {
		return nil
	}
	return o.Tags
}

// GetTraits returns the value of the Traits field. Returns nil if not set.
func (o *Operation) GetTraits() []*ReferencedOperationTrait {
	if o == nil {
		return nil
	}
	return o.Traits
}

// GetMessages returns the value of the Messages field. Returns nil if not set.
func (o *Operation) GetMessages() []*ReferencedMessage {
	if o == nil {
		return nil
	}
	return o.Messages
}

func (o *Operation) Fields() []walk.Field {
	return []walk.Field{
		walk.String("action", "action", string(o.Action)),
		walk.Value("channel", "channel", o.Channel),
		walk.String("title", "title", o.Title),
		walk.String("summary", "summary", o.Summary),
		walk.String("description", "description", o.Description),
		walk.Slice("security", "security", o.Security),
		walk.Slice("tags", "tags", o.Tags),
		walk.Value("external_docs", "externalDocs", o.ExternalDocs),
		walk.Value("bindings", "bindings", o.Bindings),
		walk.Slice("traits", "traits", o.Traits),
		walk.Slice("messages", "messages", o.Messages),
		walk.Value("reply", "reply", o.Reply),
	}
}

func (o *Operation) UnmarshalYAML(node *yaml.Node) error {
	type alias Operation
	return decodeModel(node, (*alias)(o), &o.Extensions, false)
}

func (o *Operation) MarshalYAML() (any, error) {
	type alias Operation
	return encodeModel((*alias)(o), o.Extensions)
}

// OperationTrait describes a trait that MAY be applied to an Operation.
type OperationTrait struct {
	// A human-friendly title for the operation.
	Title string `yaml:"title,omitempty"`
	// A short summary of what the operation is about.
	Summary string `yaml:"summary,omitempty"`
	// A verbose explanation of the operation.
	Description string `yaml:"description,omitempty"`
	// Which security schemes are associated with this operation.
	Security []*ReferencedSecurityScheme `yaml:"security,omitempty"`
	// A list of tags for logical grouping and categorization of operations.
	Tags []*ReferencedTag `yaml:"tags,omitempty"`
	// Additional external documentation for this operation.
	ExternalDocs *ReferencedExternalDocumentation `yaml:"externalDocs,omitempty"`
	// Protocol specific definitions for the operation.
	Bindings *ReferencedOperationBindings `yaml:"bindings,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*OperationTrait)(nil)

// GetTags returns the value of the Tags field. Returns nil if not set.
func (t *OperationTrait) GetTags() []*ReferencedTag {
	if t == nil {
		return nil
	}
	return t.Tags
}

func (t *OperationTrait) Fields() []walk.Field {
	return []walk.Field{
		walk.String("title", "title", t.Title),
		walk.String("summary", "summary", t.Summary),
		walk.String("description", "description", t.Description),
		walk.Slice("security", "security", t.Security),
		walk.Slice("tags", "tags", t.Tags),
		walk.Value("external_docs", "externalDocs", t.ExternalDocs),
		walk.Value("bindings", "bindings", t.Bindings),
	}
}

func (t *OperationTrait) UnmarshalYAML(node *yaml.Node) error {
	type alias OperationTrait
	return decodeModel(node, (*alias)(t), &t.Extensions, false)
}

func (t *OperationTrait) MarshalYAML() (any, error) {
	type alias OperationTrait
	return encodeModel((*alias)(t), t.Extensions)
}

// OperationReply describes the reply part of a request-reply operation.
type OperationReply struct {
	// Where the reply is sent, resolved at runtime.
	Address *ReferencedOperationReplyAddress `yaml:"address,omitempty"`
	// The channel used for the reply.
	Channel *ReferencedChannel `yaml:"channel,omitempty"`
	// The messages that may be sent as a reply.
	Messages []*ReferencedMessage `yaml:"messages,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*OperationReply)(nil)

func (r *OperationReply) Fields() []walk.Field {
	return []walk.Field{
		walk.Value("address", "address", r.Address),
		walk.Value("channel", "channel", r.Channel),
		walk.Slice("messages", "messages", r.Messages),
	}
}

func (r *OperationReply) UnmarshalYAML(node *yaml.Node) error {
	type alias OperationReply
	return decodeModel(node, (*alias)(r), &r.Extensions, false)
}

func (r *OperationReply) MarshalYAML() (any, error) {
	type alias OperationReply
	return encodeModel((*alias)(r), r.Extensions)
}

// OperationReplyAddress describes where a reply is sent using a runtime expression.
type OperationReplyAddress struct {
	// An optional description of the address.
	Description string `yaml:"description,omitempty"`
	// A runtime expression that specifies the location of the reply address. Required.
	Location string `yaml:"location"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*OperationReplyAddress)(nil)

func (a *OperationReplyAddress) Fields() []walk.Field {
	return []walk.Field{
		walk.String("description", "description", a.Description),
		walk.String("location", "location", a.Location),
	}
}

func (a *OperationReplyAddress) UnmarshalYAML(node *yaml.Node) error {
	type alias OperationReplyAddress
	return decodeModel(node, (*alias)(a), &a.Extensions, false)
}

func (a *OperationReplyAddress) MarshalYAML() (any, error) {
	type alias OperationReplyAddress
	return encodeModel((*alias)(a), a.Extensions)
}
