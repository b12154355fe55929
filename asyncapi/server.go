package asyncapi

import (
	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/speakeasy-api/asyncapi/walk"
	"gopkg.in/yaml.v3"
)

// Server describes a message broker, a server or any other kind of computer program capable of sending and/or
// receiving data.
type Server struct {
	// The server host name. It MAY include the port. Required.
	Host string `yaml:"host"`
	// The protocol this server supports for connection. Required.
	Protocol string `yaml:"protocol"`
	// The version of the protocol used for connection.
	ProtocolVersion string `yaml:"protocolVersion,omitempty"`
	// The path to a resource in the host.
	Pathname string `yaml:"pathname,omitempty"`
	// An optional string describing the server.
	Description string `yaml:"description,omitempty"`
	// A human-friendly title for the server.
	Title string `yaml:"title,omitempty"`
	// A short summary of the server.
	Summary string `yaml:"summary,omitempty"`
	// A map between a variable name and its value, used for substitution in host and pathname.
	Variables *sequencedmap.Map[string, *ReferencedServerVariable] `yaml:"variables,omitempty"`
	// A declaration of which security schemes can be used with this server.
	Security []*ReferencedSecurityScheme `yaml:"security,omitempty"`
	// A list of tags for logical grouping and categorization of servers.
	Tags []*ReferencedTag `yaml:"tags,omitempty"`
	// Additional external documentation for this server.
	ExternalDocs *ReferencedExternalDocumentation `yaml:"externalDocs,omitempty"`
	// Protocol specific definitions for the server.
	Bindings *ReferencedServerBindings `yaml:"bindings,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*Server)(nil)

// GetTags returns the value of the Tags field. Returns nil if not set.
func (s *Server) GetTags() []*ReferencedTag {
	if s == nil {
		return nil
	}
	return s.Tags
}

// GetBindings returns the value of the Bindings field. Returns nil if not set.
func (s *Server) GetBindings() *ReferencedServerBindings {
	if s == nil {
		return nil
	}
	return s.Bindings
}

func (s *Server) Fields() []walk.Field {
	return []walk.Field{
		walk.String("host", "host", s.Host),
		walk.String("protocol", "protocol", s.Protocol),
		walk.String("protocol_version", "protocolVersion", s.ProtocolVersion),
		walk.String("pathname", "pathname", s.Pathname),
		walk.String("description", "description", s.Description),
		walk.String("title", "title", s.Title),
		walk.String("summary", "summary", s.Summary),
		walk.Map("variables", "variables", s.Variables),
		walk.Slice("security", "security", s.Security),
		walk.Slice("tags", "tags", s.Tags),
		walk.Value("external_docs", "externalDocs", s.ExternalDocs),
		walk.Value("bindings", "bindings", s.Bindings),
	}
}

func (s *Server) UnmarshalYAML(node *yaml.Node) error {
	type alias Server
	return decodeModel(node, (*alias)(s), &s.Extensions, false)
}

func (s *Server) MarshalYAML() (any, error) {
	type alias Server
	return encodeModel((*alias)(s), s.Extensions)
}

// ServerVariable represents a variable for server URL template substitution.
type ServerVariable struct {
	// An enumeration of string values to be used if the substitution options are from a limited set.
	Enum []string `yaml:"enum,omitempty"`
	// The default value to use for substitution.
	Default string `yaml:"default,omitempty"`
	// An optional description for the server variable.
	Description string `yaml:"description,omitempty"`
	// An array of examples of the server variable.
	Examples []string `yaml:"examples,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*ServerVariable)(nil)

func (v *ServerVariable) Fields() []walk.Field {
	return []walk.Field{
		walk.Slice("enum", "enum", v.Enum),
		walk.String("default", "default", v.Default),
		walk.String("description", "description", v.Description),
		walk.Slice("examples", "examples", v.Examples),
	}
}

func (v *ServerVariable) UnmarshalYAML(node *yaml.Node) error {
	type alias ServerVariable
	return decodeModel(node, (*alias)(v), &v.Extensions, false)
}

func (v *ServerVariable) MarshalYAML() (any, error) {
	type alias ServerVariable
	return encodeModel((*alias)(v), v.Extensions)
}
