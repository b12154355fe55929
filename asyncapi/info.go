package asyncapi

import (
	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/walk"
	"gopkg.in/yaml.v3"
)

// Info provides metadata about the application described by the document.
type Info struct {
	// The title of the application.
	Title string `yaml:"title"`
	// The version of the application API, not to be confused with the specification version.
	Version string `yaml:"version"`
	// A short description of the application. May contain CommonMark syntax.
	Description string `yaml:"description,omitempty"`
	// A URL to the Terms of Service for the API.
	TermsOfService string `yaml:"termsOfService,omitempty"`
	// The contact information for the exposed API.
	Contact *Contact `yaml:"contact,omitempty"`
	// The license information for the exposed API.
	License *License `yaml:"license,omitempty"`
	// A list of tags for application API documentation control.
	Tags []*ReferencedTag `yaml:"tags,omitempty"`
	// Additional external documentation of the exposed API.
	ExternalDocs *ReferencedExternalDocumentation `yaml:"externalDocs,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*Info)(nil)

// GetTitle returns the value of the Title field. Returns empty string if not set.
func (i *Info) GetTitle() string {
	if i == nil {
		return ""
	}
	return i.Title
}

// GetVersion returns the value of the Version field. Returns empty string if not set.
func (i *Info) GetVersion() string {
	if i == nil {
		return ""
	}
	return i.Version
}

// GetTags returns the value of the Tags field. Returns nil if not set.
func (i *Info) GetTags() []*ReferencedTag {
	if i == nil {
		return nil
	}
	return i.Tags
}

func (i *Info) Fields() []walk.Field {
	return []walk.Field{
		walk.String("title", "title", i.Title),
		walk.String("version", "version", i.Version),
		walk.String("description", "description", i.Description),
		walk.String("terms_of_service", "termsOfService", i.TermsOfService),
		walk.Value("contact", "contact", i.Contact),
		walk.Value("license", "license", i.License),
		walk.Slice("tags", "tags", i.Tags),
		walk.Value("external_docs", "externalDocs", i.ExternalDocs),
	}
}

func (i *Info) UnmarshalYAML(node *yaml.Node) error {
	type alias Info
	return decodeModel(node, (*alias)(i), &i.Extensions, false)
}

func (i *Info) MarshalYAML() (any, error) {
	type alias Info
	return encodeModel((*alias)(i), i.Extensions)
}

// Contact information for the exposed API.
type Contact struct {
	Name  string `yaml:"name,omitempty"`
	URL   string `yaml:"url,omitempty"`
	Email string `yaml:"email,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*Contact)(nil)

func (c *Contact) Fields() []walk.Field {
	return []walk.Field{
		walk.String("name", "name", c.Name),
		walk.String("url", "url", c.URL),
		walk.String("email", "email", c.Email),
	}
}

func (c *Contact) UnmarshalYAML(node *yaml.Node) error {
	type alias Contact
	return decodeModel(node, (*alias)(c), &c.Extensions, false)
}

func (c *Contact) MarshalYAML() (any, error) {
	type alias Contact
	return encodeModel((*alias)(c), c.Extensions)
}

// License information for the exposed API.
type License struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*License)(nil)

func (l *License) Fields() []walk.Field {
	return []walk.Field{
		walk.String("name", "name", l.Name),
		walk.String("url", "url", l.URL),
	}
}

func (l *License) UnmarshalYAML(node *yaml.Node) error {
	type alias License
	return decodeModel(node, (*alias)(l), &l.Extensions, false)
}

func (l *License) MarshalYAML() (any, error) {
	type alias License
	return encodeModel((*alias)(l), l.Extensions)
}
