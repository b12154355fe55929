package asyncapi

import (
	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/walk"
	"gopkg.in/yaml.v3"
)

// Tag allows adding metadata to a single tag.
type Tag struct {
	// The name of the tag.
	Name string `yaml:"name"`
	// A short description for the tag. May contain CommonMark syntax.
	Description string `yaml:"description,omitempty"`
	// Additional external documentation for this tag.
	ExternalDocs *ReferencedExternalDocumentation `yaml:"externalDocs,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*Tag)(nil)

// GetName returns the value of the Name field. Returns empty string if not set.
func (t *Tag) GetName() string {
	if t == nil {
		return ""
	}
	return t.Name
}

func (t *Tag) Fields() []walk.Field {
	return []walk.Field{
		walk.String("name", "name", t.Name),
		walk.String("description", "description", t.Description),
		walk.Value("external_docs", "externalDocs", t.ExternalDocs),
	}
}

func (t *Tag) UnmarshalYAML(node *yaml.Node) error {
	type alias Tag
	return decodeModel(node, (*alias)(t), &t.Extensions, false)
}

func (t *Tag) MarshalYAML() (any, error) {
	type alias Tag
	return encodeModel((*alias)(t), t.Extensions)
}

// ExternalDocumentation references an external resource for extended documentation.
type ExternalDocumentation struct {
	// A short description of the target documentation.
	Description string `yaml:"description,omitempty"`
	// The URL for the target documentation.
	URL string `yaml:"url"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*ExternalDocumentation)(nil)

func (e *ExternalDocumentation) Fields() []walk.Field {
	return []walk.Field{
		walk.String("description", "description", e.Description),
		walk.String("url", "url", e.URL),
	}
}

func (e *ExternalDocumentation) UnmarshalYAML(node *yaml.Node) error {
	type alias ExternalDocumentation
	return decodeModel(node, (*alias)(e), &e.Extensions, false)
}

func (e *ExternalDocumentation) MarshalYAML() (any, error) {
	type alias ExternalDocumentation
	return encodeModel((*alias)(e), e.Extensions)
}
