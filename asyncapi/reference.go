package asyncapi

import (
	"fmt"

	"github.com/speakeasy-api/asyncapi/references"
	"github.com/speakeasy-api/asyncapi/walk"
	"gopkg.in/yaml.v3"
)

// RefKey is the key a reference object is serialized under.
const RefKey = "$ref"

type (
	// ReferencedServer represents a server that can either be referenced from elsewhere or declared inline.
	ReferencedServer = Reference[Server]
	// ReferencedServerVariable represents a server variable that can either be referenced from elsewhere or declared inline.
	ReferencedServerVariable = Reference[ServerVariable]
	// ReferencedChannel represents a channel that can either be referenced from elsewhere or declared inline.
	ReferencedChannel = Reference[Channel]
	// ReferencedParameter represents a parameter that can either be referenced from elsewhere or declared inline.
	ReferencedParameter = Reference[Parameter]
	// ReferencedOperation represents an operation that can either be referenced from elsewhere or declared inline.
	ReferencedOperation = Reference[Operation]
	// ReferencedOperationTrait represents an operation trait that can either be referenced from elsewhere or declared inline.
	ReferencedOperationTrait = Reference[OperationTrait]
	// ReferencedOperationReply represents an operation reply that can either be referenced from elsewhere or declared inline.
	ReferencedOperationReply = Reference[OperationReply]
	// ReferencedOperationReplyAddress represents a reply address that can either be referenced from elsewhere or declared inline.
	ReferencedOperationReplyAddress = Reference[OperationReplyAddress]
	// ReferencedMessage represents a message that can either be referenced from elsewhere or declared inline.
	ReferencedMessage = Reference[Message]
	// ReferencedMessageTrait represents a message trait that can either be referenced from elsewhere or declared inline.
	ReferencedMessageTrait = Reference[MessageTrait]
	// ReferencedCorrelationID represents a correlation id that can either be referenced from elsewhere or declared inline.
	ReferencedCorrelationID = Reference[CorrelationID]
	// ReferencedSecurityScheme represents a security scheme that can either be referenced from elsewhere or declared inline.
	ReferencedSecurityScheme = Reference[SecurityScheme]
	// ReferencedTag represents a tag that can either be referenced from elsewhere or declared inline.
	ReferencedTag = Reference[Tag]
	// ReferencedExternalDocumentation represents external docs that can either be referenced from elsewhere or declared inline.
	ReferencedExternalDocumentation = Reference[ExternalDocumentation]
	// ReferencedServerBindings represents server bindings that can either be referenced from elsewhere or declared inline.
	ReferencedServerBindings = Reference[ServerBindings]
	// ReferencedChannelBindings represents channel bindings that can either be referenced from elsewhere or declared inline.
	ReferencedChannelBindings = Reference[ChannelBindings]
	// ReferencedOperationBindings represents operation bindings that can either be referenced from elsewhere or declared inline.
	ReferencedOperationBindings = Reference[OperationBindings]
	// ReferencedMessageBindings represents message bindings that can either be referenced from elsewhere or declared inline.
	ReferencedMessageBindings = Reference[MessageBindings]
)

// Reference is a two case union holding either a pointer to an object stored elsewhere or the object itself.
// Exactly one of Reference and Object is set.
type Reference[T any] struct {
	// Reference is the pointer to the referenced object.
	Reference *references.Reference
	// If this was an inline object instead of a reference this will contain that object.
	Object *T
}

var (
	_ walk.Union            = (*Reference[Tag])(nil)
	_ references.Referencer = (*Reference[Tag])(nil)
)

// NewReferenceFromRef creates a reference union holding a pointer.
func NewReferenceFromRef[T any](ref references.Reference) *Reference[T] {
	return &Reference[T]{Reference: &ref}
}

// NewReferenceFromObject creates a reference union holding an inline object.
func NewReferenceFromObject[T any](obj *T) *Reference[T] {
	return &Reference[T]{Object: obj}
}

// IsReference returns true if the union holds a pointer rather than an inline object.
func (r *Reference[T]) IsReference() bool {
	if r == nil {
		return false
	}
	return r.Reference != nil
}

// GetReference returns the pointer of the union. Returns an empty reference if it holds an object.
func (r *Reference[T]) GetReference() references.Reference {
	if r == nil || r.Reference == nil {
		return ""
	}
	return *r.Reference
}

// GetObject returns the inline object. Returns nil if the union holds a reference.
func (r *Reference[T]) GetObject() *T {
	if r == nil || r.IsReference() {
		return nil
	}
	return r.Object
}

// GetObjectAny returns the inline object as an any, nil when there is none.
func (r *Reference[T]) GetObjectAny() any {
	obj := r.GetObject()
	if obj == nil {
		return nil
	}
	return obj
}

// UnmarshalYAML decodes a mapping carrying $ref into the reference case and anything else into the object case.
func (r *Reference[T]) UnmarshalYAML(node *yaml.Node) error {
	ref, isRef, err := decodeRef(node)
	if err != nil {
		return err
	}
	if isRef {
		r.Reference = &ref
		r.Object = nil
		return nil
	}

	obj := new(T)
	if err := node.Decode(obj); err != nil {
		return err
	}
	r.Reference = nil
	r.Object = obj

	return nil
}

// MarshalYAML encodes the reference as a {$ref: pointer} mapping or the object as itself.
func (r *Reference[T]) MarshalYAML() (any, error) {
	if r.IsReference() {
		return refNode(*r.Reference), nil
	}
	if r == nil || r.Object == nil {
		return nil, nil
	}
	return r.Object, nil
}

func decodeRef(node *yaml.Node) (references.Reference, bool, error) {
	value, ok := mappingValue(node, RefKey)
	if !ok {
		return "", false, nil
	}
	if value == nil || value.Kind != yaml.ScalarNode {
		return "", false, fmt.Errorf("line %d: %s must be a string", node.Line, RefKey)
	}
	return references.Reference(value.Value), true, nil
}

func refNode(ref references.Reference) *yaml.Node {
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: RefKey},
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: ref.String()},
		},
	}
}
