package asyncapi

import (
	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/pointer"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/speakeasy-api/asyncapi/walk"
	"gopkg.in/yaml.v3"
)

// Channel describes a shared communication channel.
type Channel struct {
	// The address of the channel, typically the topic name, routing key, event type or path.
	// A nil address means the address is unknown or dynamic.
	Address *string `yaml:"address,omitempty"`
	// A map of the messages that will be sent to this channel by any application at any time.
	Messages *sequencedmap.Map[string, *ReferencedMessage] `yaml:"messages,omitempty"`
	// A human-friendly title for the channel.
	Title string `yaml:"title,omitempty"`
	// A short summary of the channel.
	Summary string `yaml:"summary,omitempty"`
	// An optional description of this channel.
	Description string `yaml:"description,omitempty"`
	// References to the servers this channel is available on.
	Servers []*ReferencedServer `yaml:"servers,omitempty"`
	// A map of the parameters included in the channel address.
	Parameters *sequencedmap.Map[string, *ReferencedParameter] `yaml:"parameters,omitempty"`
	// A list of tags for logical grouping of channels.
	Tags []*ReferencedTag `yaml:"tags,omitempty"`
	// Additional external documentation for this channel.
	ExternalDocs *ReferencedExternalDocumentation `yaml:"externalDocs,omitempty"`
	// Protocol specific definitions for the channel.
	Bindings *ReferencedChannelBindings `yaml:"bindings,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*Channel)(nil)

// GetAddress returns the value of the Address field. Returns an empty string for an unknown address.
func (c *Channel) GetAddress() string {
	if c == nil {
		return ""
	}
	return pointer.ValueOrZero(c.Address)
}

// GetMessages returns the value of the Messages field. Returns nil if not set.
func (c *Channel) GetMessages() *sequencedmap.Map[string, *ReferencedMessage] {
	if c == nil {
		return nil
	}
	return c.Messages
}

// GetParameters returns the value of the Parameters field. Returns nil if not set.
func (c *Channel) GetParameters() *sequencedmap.Map[string, *ReferencedParameter] {
	if c == nil {
		return nil
	}
	return c.Parameters
}

// GetTags returns the value of the Tags field. Returns nil if not set.
func (c *Channel) GetTags() []*ReferencedTag {
	if c == nil {
		return nil
	}
	return c.Tags
}

func (c *Channel) Fields() []walk.Field {
	return []walk.Field{
		walk.Value("address", "address", c.Address),
		walk.Map("messages", "messages", c.Messages),
		walk.String("title", "title", c.Title),
		walk.String("summary", "summary", c.Summary),
		walk.String("description", "description", c.Description),
		walk.Slice("servers", "servers", c.Servers),
		walk.Map("parameters", "parameters", c.Parameters),
		walk.Slice("tags", "tags", c.Tags),
		walk.Value("external_docs", "externalDocs", c.ExternalDocs),
		walk.Value("bindings", "bindings", c.Bindings),
	}
}

func (c *Channel) UnmarshalYAML(node *yaml.Node) error {
	type alias Channel
	return decodeModel(node, (*alias)(c), &c.Extensions, false)
}

func (c *Channel) MarshalYAML() (any, error) {
	type alias Channel
	return encodeModel((*alias)(c), c.Extensions)
}

// Parameter describes a parameter included in a channel address.
type Parameter struct {
	// An enumeration of string values to be used if the substitution options are from a limited set.
	Enum []string `yaml:"enum,omitempty"`
	// The default value to use for substitution.
	Default string `yaml:"default,omitempty"`
	// An optional description for the parameter.
	Description string `yaml:"description,omitempty"`
	// An array of examples of the parameter value.
	Examples []string `yaml:"examples,omitempty"`
	// A runtime expression that specifies the location of the parameter value.
	Location string `yaml:"location,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*Parameter)(nil)

func (p *Parameter) Fields() []walk.Field {
	return []walk.Field{
		walk.Slice("enum", "enum", p.Enum),
		walk.String("default", "default", p.Default),
		walk.String("description", "description", p.Description),
		walk.Slice("examples", "examples", p.Examples),
		walk.String("location", "location", p.Location),
	}
}

func (p *Parameter) UnmarshalYAML(node *yaml.Node) error {
	type alias Parameter
	return decodeModel(node, (*alias)(p), &p.Extensions, false)
}

func (p *Parameter) MarshalYAML() (any, error) {
	type alias Parameter
	return encodeModel((*alias)(p), p.Extensions)
}
