package asyncapi

import (
	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/speakeasy-api/asyncapi/walk"
	"gopkg.in/yaml.v3"
)

// Components holds a set of reusable objects for different aspects of the document.
// Objects defined here have no effect unless they are referenced from outside the components.
type Components struct {
	Schemas           *sequencedmap.Map[string, *ReferencedSchema]                `yaml:"schemas,omitempty"`
	Servers           *sequencedmap.Map[string, *ReferencedServer]                `yaml:"servers,omitempty"`
	Channels          *sequencedmap.Map[string, *ReferencedChannel]               `yaml:"channels,omitempty"`
	Operations        *sequencedmap.Map[string, *ReferencedOperation]             `yaml:"operations,omitempty"`
	Messages          *sequencedmap.Map[string, *ReferencedMessage]               `yaml:"messages,omitempty"`
	SecuritySchemes   *sequencedmap.Map[string, *ReferencedSecurityScheme]        `yaml:"securitySchemes,omitempty"`
	ServerVariables   *sequencedmap.Map[string, *ReferencedServerVariable]        `yaml:"serverVariables,omitempty"`
	Parameters        *sequencedmap.Map[string, *ReferencedParameter]             `yaml:"parameters,omitempty"`
	CorrelationIDs    *sequencedmap.Map[string, *ReferencedCorrelationID]         `yaml:"correlationIds,omitempty"`
	Replies           *sequencedmap.Map[string, *ReferencedOperationReply]        `yaml:"replies,omitempty"`
	ReplyAddresses    *sequencedmap.Map[string, *ReferencedOperationReplyAddress] `yaml:"replyAddresses,omitempty"`
	ExternalDocs      *sequencedmap.Map[string, *ReferencedExternalDocumentation] `yaml:"externalDocs,omitempty"`
	Tags              *sequencedmap.Map[string, *ReferencedTag]                   `yaml:"tags,omitempty"`
	OperationTraits   *sequencedmap.Map[string, *ReferencedOperationTrait]        `yaml:"operationTraits,omitempty"`
	MessageTraits     *sequencedmap.Map[string, *ReferencedMessageTrait]          `yaml:"messageTraits,omitempty"`
	ServerBindings    *sequencedmap.Map[string, *ReferencedServerBindings]        `yaml:"serverBindings,omitempty"`
	ChannelBindings   *sequencedmap.Map[string, *ReferencedChannelBindings]       `yaml:"channelBindings,omitempty"`
	OperationBindings *sequencedmap.Map[string, *ReferencedOperationBindings]     `yaml:"operationBindings,omitempty"`
	MessageBindings   *sequencedmap.Map[string, *ReferencedMessageBindings]       `yaml:"messageBindings,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*Components)(nil)

// GetServers returns the value of the Servers field. Returns nil if not set.
func (c *Components) GetServers() *sequencedmap.Map[string, *ReferencedServer] {
	if c == nil {
		return nil
	}
	return c.Servers
}

// GetChannels returns the value of the Channels field. Returns nil if not set.
func (c *Components) GetChannels() *sequencedmap.Map[string, *ReferencedChannel] {
	if c == nil {
		return nil
	}
	return c.Channels
}

// GetOperations returns the value of the Operations field. Returns nil if not set.
func (c *Components) GetOperations() *sequencedmap.Map[string, *ReferencedOperation] {
	if c == nil {
		return nil
	}
	return c.Operations
}

// GetMessages returns the value of the Messages field. Returns nil if not set.
func (c *Components) GetMessages() *sequencedmap.Map[string, *ReferencedMessage] {
	if c == nil {
		return nil
	}
	return c.Messages
}

// GetTags returns the value of the Tags field. Returns nil if not set.
func (c *Components) GetTags() *sequencedmap.Map[string, *ReferencedTag] {
	if c == nil {
		return nil
	}
	return c.Tags
}

// GetOperationTraits returns the value of the OperationTraits field. Returns nil if not set.
func (c *Components) GetOperationTraits() *sequencedmap.Map[string, *ReferencedOperationTrait] {
	if c == nil {
		return nil
	}
	return c.OperationTraits
}

// GetMessageTraits returns the value of the MessageTraits field. Returns nil if not set.
func (c *Components) GetMessageTraits() *sequencedmap.Map[string, *ReferencedMessageTrait] {
	if c == nil {
		return nil
	}
	return c.MessageTraits
}

// GetServerBindings returns the value of the ServerBindings field. Returns nil if not set.
func (c *Components) GetServerBindings() *sequencedmap.Map[string, *ReferencedServerBindings] {
	if c == nil {
		return nil
	}
	return c.ServerBindings
}

func (c *Components) Fields() []walk.Field {
	return []walk.Field{
		walk.Map("schemas", KeySchemas, c.Schemas),
		walk.Map("servers", KeyServers, c.Servers),
		walk.Map("channels", KeyChannels, c.Channels),
		walk.Map("operations", KeyOperations, c.Operations),
		walk.Map("messages", KeyMessages, c.Messages),
		walk.Map("security_schemes", KeySecuritySchemes, c.SecuritySchemes),
		walk.Map("server_variables", KeyServerVariables, c.ServerVariables),
		walk.Map("parameters", KeyParameters, c.Parameters),
		walk.Map("correlation_ids", KeyCorrelationIDs, c.CorrelationIDs),
		walk.Map("replies", KeyReplies, c.Replies),
		walk.Map("reply_addresses", KeyReplyAddresses, c.ReplyAddresses),
		walk.Map("external_docs", KeyExternalDocs, c.ExternalDocs),
		walk.Map("tags", KeyTags, c.Tags),
		walk.Map("operation_traits", KeyOperationTraits, c.OperationTraits),
		walk.Map("message_traits", KeyMessageTraits, c.MessageTraits),
		walk.Map("server_bindings", KeyServerBindings, c.ServerBindings),
		walk.Map("channel_bindings", KeyChannelBindings, c.ChannelBindings),
		walk.Map("operation_bindings", KeyOperationBindings, c.OperationBindings),
		walk.Map("message_bindings", KeyMessageBindings, c.MessageBindings),
	}
}

func (c *Components) UnmarshalYAML(node *yaml.Node) error {
	type alias Components
	return decodeModel(node, (*alias)(c), &c.Extensions, false)
}

func (c *Components) MarshalYAML() (any, error) {
	type alias Components
	return encodeModel((*alias)(c), c.Extensions)
}
