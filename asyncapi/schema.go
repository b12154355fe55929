package asyncapi

import (
	"fmt"

	"github.com/speakeasy-api/asyncapi/extensions"
	"github.com/speakeasy-api/asyncapi/references"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"github.com/speakeasy-api/asyncapi/walk"
	"gopkg.in/yaml.v3"
)

// SchemaFormatKey is the key that distinguishes a multi format schema from a plain schema.
const SchemaFormatKey = "schemaFormat"

// TypeSet is the JSON Schema type keyword, which is either a single type or a list of types.
type TypeSet []string

// UnmarshalYAML accepts both the scalar and the sequence form.
func (t *TypeSet) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.ScalarNode:
		*t = TypeSet{node.Value}
		return nil
	case yaml.SequenceNode:
		var types []string
		if err := node.Decode(&types); err != nil {
			return err
		}
		*t = types
		return nil
	default:
		return fmt.Errorf("line %d: type must be a string or a list of strings", node.Line)
	}
}

// MarshalYAML emits the scalar form for a single type.
func (t TypeSet) MarshalYAML() (any, error) {
	if len(t) == 1 {
		return t[0], nil
	}
	return []string(t), nil
}

// Schema is an AsyncAPI schema object, a superset of JSON Schema draft 07.
// Keywords without a typed field are kept in Extensions.
type Schema struct {
	// Ref is the JSON Schema $ref keyword. It is schema internal and not treated as a document reference.
	Ref         string     `yaml:"$ref,omitempty"`
	Title       string     `yaml:"title,omitempty"`
	Description string     `yaml:"description,omitempty"`
	Type        TypeSet    `yaml:"type,omitempty"`
	Format      string     `yaml:"format,omitempty"`
	Enum        []any      `yaml:"enum,omitempty"`
	Const       *yaml.Node `yaml:"const,omitempty"`
	Default     *yaml.Node `yaml:"default,omitempty"`
	Examples    []any      `yaml:"examples,omitempty"`

	Properties           *sequencedmap.Map[string, *Schema] `yaml:"properties,omitempty"`
	PatternProperties    *sequencedmap.Map[string, *Schema] `yaml:"patternProperties,omitempty"`
	AdditionalProperties *yaml.Node                         `yaml:"additionalProperties,omitempty"`
	Required             []string                           `yaml:"required,omitempty"`
	Items                *Schema                            `yaml:"items,omitempty"`
	AllOf                []*Schema                          `yaml:"allOf,omitempty"`
	AnyOf                []*Schema                          `yaml:"anyOf,omitempty"`
	OneOf                []*Schema                          `yaml:"oneOf,omitempty"`
	Not                  *Schema                            `yaml:"not,omitempty"`

	Minimum          *float64 `yaml:"minimum,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty"`
	ExclusiveMinimum *float64 `yaml:"exclusiveMinimum,omitempty"`
	ExclusiveMaximum *float64 `yaml:"exclusiveMaximum,omitempty"`
	MinLength        *int     `yaml:"minLength,omitempty"`
	MaxLength        *int     `yaml:"maxLength,omitempty"`
	Pattern          string   `yaml:"pattern,omitempty"`
	MinItems         *int     `yaml:"minItems,omitempty"`
	MaxItems         *int     `yaml:"maxItems,omitempty"`
	UniqueItems      *bool    `yaml:"uniqueItems,omitempty"`

	Discriminator string                           `yaml:"discriminator,omitempty"`
	ExternalDocs  *ReferencedExternalDocumentation `yaml:"externalDocs,omitempty"`
	Deprecated    *bool                            `yaml:"deprecated,omitempty"`
	ReadOnly      *bool                            `yaml:"readOnly,omitempty"`
	WriteOnly     *bool                            `yaml:"writeOnly,omitempty"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*Schema)(nil)

// Fields returns the keywords that can contain nested schemas or references.
func (s *Schema) Fields() []walk.Field {
	return []walk.Field{
		walk.String("ref", "$ref", s.Ref),
		walk.String("title", "title", s.Title),
		walk.String("type", "type", s.Type.String()),
		walk.Map("properties", "properties", s.Properties),
		walk.Map("pattern_properties", "patternProperties", s.PatternProperties),
		walk.Value("additional_properties", "additionalProperties", s.AdditionalProperties),
		walk.Value("items", "items", s.Items),
		walk.Slice("all_of", "allOf", s.AllOf),
		walk.Slice("any_of", "anyOf", s.AnyOf),
		walk.Slice("one_of", "oneOf", s.OneOf),
		walk.Value("not", "not", s.Not),
		walk.Value("external_docs", "externalDocs", s.ExternalDocs),
	}
}

// String renders the type keyword, joining multiple types with a pipe.
func (t TypeSet) String() string {
	switch len(t) {
	case 0:
		return ""
	case 1:
		return t[0]
	default:
		out := t[0]
		for _, s := range t[1:] {
			out += "|" + s
		}
		return out
	}
}

func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	type alias Schema
	return decodeModel(node, (*alias)(s), &s.Extensions, true)
}

func (s *Schema) MarshalYAML() (any, error) {
	type alias Schema
	return encodeModel((*alias)(s), s.Extensions)
}

// MultiFormatSchema pairs a schema with the format it is written in, for example Avro or Protobuf.
type MultiFormatSchema struct {
	// SchemaFormat is a media type identifying the format of Schema. Required.
	SchemaFormat string `yaml:"schemaFormat"`
	// Schema is the schema definition in its own format.
	Schema *yaml.Node `yaml:"schema"`

	Extensions *extensions.Extensions `yaml:"-"`
}

var _ walk.Node = (*MultiFormatSchema)(nil)

func (m *MultiFormatSchema) Fields() []walk.Field {
	return []walk.Field{
		walk.String("schema_format", "schemaFormat", m.SchemaFormat),
		walk.Value("schema", "schema", m.Schema),
	}
}

func (m *MultiFormatSchema) UnmarshalYAML(node *yaml.Node) error {
	type alias MultiFormatSchema
	return decodeModel(node, (*alias)(m), &m.Extensions, false)
}

func (m *MultiFormatSchema) MarshalYAML() (any, error) {
	type alias MultiFormatSchema
	return encodeModel((*alias)(m), m.Extensions)
}

// ReferencedSchema is a schema position: exactly one of a reference, a schema or a multi format schema.
type ReferencedSchema struct {
	Reference         *references.Reference
	Schema            *Schema
	MultiFormatSchema *MultiFormatSchema
}

var (
	_ walk.Union            = (*ReferencedSchema)(nil)
	_ references.Referencer = (*ReferencedSchema)(nil)
)

// NewReferencedSchemaFromRef creates a schema position holding a pointer.
func NewReferencedSchemaFromRef(ref references.Reference) *ReferencedSchema {
	return &ReferencedSchema{Reference: &ref}
}

// NewReferencedSchemaFromSchema creates a schema position holding an inline schema.
func NewReferencedSchemaFromSchema(schema *Schema) *ReferencedSchema {
	return &ReferencedSchema{Schema: schema}
}

// NewReferencedSchemaFromMultiFormat creates a schema position holding an inline multi format schema.
func NewReferencedSchemaFromMultiFormat(schema *MultiFormatSchema) *ReferencedSchema {
	return &ReferencedSchema{MultiFormatSchema: schema}
}

func (r *ReferencedSchema) IsReference() bool {
	return r != nil && r.Reference != nil
}

func (r *ReferencedSchema) GetReference() references.Reference {
	if !r.IsReference() {
		return ""
	}
	return *r.Reference
}

// GetSchema returns the inline schema, nil for references and multi format schemas.
func (r *ReferencedSchema) GetSchema() *Schema {
	if r == nil || r.IsReference() {
		return nil
	}
	return r.Schema
}

// GetMultiFormatSchema returns the inline multi format schema, nil otherwise.
func (r *ReferencedSchema) GetMultiFormatSchema() *MultiFormatSchema {
	if r == nil || r.IsReference() {
		return nil
	}
	return r.MultiFormatSchema
}

func (r *ReferencedSchema) GetObjectAny() any {
	if s := r.GetSchema(); s != nil {
		return s
	}
	if m := r.GetMultiFormatSchema(); m != nil {
		return m
	}
	return nil
}

func (r *ReferencedSchema) UnmarshalYAML(node *yaml.Node) error {
	ref, isRef, err := decodeRef(node)
	if err != nil {
		return err
	}
	*r = ReferencedSchema{}

	switch {
	case isRef:
		r.Reference = &ref
		return nil
	case hasKey(node, SchemaFormatKey):
		r.MultiFormatSchema = &MultiFormatSchema{}
		return node.Decode(r.MultiFormatSchema)
	default:
		r.Schema = &Schema{}
		return node.Decode(r.Schema)
	}
}

func (r *ReferencedSchema) MarshalYAML() (any, error) {
	switch {
	case r.IsReference():
		return refNode(*r.Reference), nil
	case r.GetMultiFormatSchema() != nil:
		return r.MultiFormatSchema, nil
	case r.GetSchema() != nil:
		return r.Schema, nil
	default:
		return nil, nil
	}
}

// ScalarOrSchema is a binding value that is either a literal scalar or a schema describing it.
type ScalarOrSchema[T int | string] struct {
	Value  *T
	Schema *ReferencedSchema
}

type (
	// IntOrSchema is an integer or a schema position.
	IntOrSchema = ScalarOrSchema[int]
	// StringOrSchema is a string or a schema position.
	StringOrSchema = ScalarOrSchema[string]
)

var _ walk.Union = (*IntOrSchema)(nil)

// IsReference is always false; a referenced schema is reported by the nested schema position.
func (s *ScalarOrSchema[T]) IsReference() bool {
	return false
}

func (s *ScalarOrSchema[T]) GetObjectAny() any {
	switch {
	case s == nil:
		return nil
	case s.Schema != nil:
		return s.Schema
	case s.Value != nil:
		return *s.Value
	default:
		return nil
	}
}

func (s *ScalarOrSchema[T]) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)
	*s = ScalarOrSchema[T]{}

	if node.Kind == yaml.ScalarNode {
		var v T
		if err := node.Decode(&v); err != nil {
			return err
		}
		s.Value = &v
		return nil
	}

	s.Schema = &ReferencedSchema{}
	return node.Decode(s.Schema)
}

func (s *ScalarOrSchema[T]) MarshalYAML() (any, error) {
	switch {
	case s.Schema != nil:
		return s.Schema, nil
	case s.Value != nil:
		return *s.Value, nil
	default:
		return nil, nil
	}
}

func hasKey(node *yaml.Node, key string) bool {
	_, ok := mappingValue(node, key)
	return ok
}
