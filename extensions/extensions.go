// Package extensions holds the raw key/value pairs of a document object that are not part of its declared fields,
// such as x- specification extensions or bindings for protocols without a typed model.
package extensions

import (
	"fmt"
	"strings"

	"github.com/speakeasy-api/asyncapi/hashing"
	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"gopkg.in/yaml.v3"
)

// Prefix is the key prefix of specification extensions.
const Prefix = "x-"

// Extension represents a single extension to an object, in its raw form.
type Extension = *yaml.Node

// Element represents a key/value pair of a set of extensions.
type Element struct {
	*sequencedmap.Element[string, Extension]
}

// NewElem will create a new element for the extensions set.
func NewElem(key string, value *yaml.Node) *Element {
	return &Element{
		sequencedmap.NewElem(key, value),
	}
}

// Extensions represents a set of extensions to an object.
type Extensions struct {
	*sequencedmap.Map[string, Extension]
}

// New will create a new extensions set.
func New(elements ...*Element) *Extensions {
	ee := make([]*sequencedmap.Element[string, Extension], len(elements))
	for i, element := range elements {
		ee[i] = sequencedmap.NewElem(element.Key, element.Value)
	}

	return &Extensions{
		Map: sequencedmap.New(ee...),
	}
}

// Init will initialize the extensions set.
func (e *Extensions) Init() {
	e.Map = sequencedmap.New[string, Extension]()
}

// Len returns the number of extensions, zero for a nil set.
func (e *Extensions) Len() int {
	if e == nil || e.Map == nil {
		return 0
	}
	return e.Map.Len()
}

// IsExtension reports whether key is a specification extension key.
func IsExtension(key string) bool {
	return strings.HasPrefix(key, Prefix)
}

// FromMapping collects the pairs of a mapping node whose key satisfies keep.
// Returns nil when nothing was collected.
func FromMapping(node *yaml.Node, keep func(key string) bool) *Extensions {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}

	var e *Extensions
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if !keep(key) {
			continue
		}
		if e == nil {
			e = New()
		}
		e.Set(key, node.Content[i+1])
	}

	return e
}

// AppendTo appends every extension to a mapping node.
func (e *Extensions) AppendTo(node *yaml.Node) {
	if e.Len() == 0 || node == nil || node.Kind != yaml.MappingNode {
		return
	}

	for key, value := range e.All() {
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, value)
	}
}

// GetExtensionValue decodes the extension stored under key into a T. Returns nil if the extension is absent.
func GetExtensionValue[T any](e *Extensions, key string) (*T, error) {
	if e.Len() == 0 {
		return nil, nil
	}

	node, ok := e.Get(key)
	if !ok || node == nil {
		return nil, nil
	}

	var v T
	if err := node.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to decode extension %s: %w", key, err)
	}
	return &v, nil
}

// IsEqual compares two extension sets by content, ignoring positional information.
// A nil set and an empty set are equal.
func (e *Extensions) IsEqual(other *Extensions) bool {
	if e.Len() == 0 || other.Len() == 0 {
		return e.Len() == other.Len()
	}
	return hashing.Equal(e.Map, other.Map)
}
