package asyncapi

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/speakeasy-api/asyncapi/extensions"
	"gopkg.in/yaml.v3"
)

var knownKeysCache sync.Map

// decodeModel decodes a mapping node into target and collects extra keys into ext.
// Extra keys are x- extensions, or every undeclared key when keepUnknown is set.
func decodeModel[T any](node *yaml.Node, target *T, ext **extensions.Extensions, keepUnknown bool) error {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping, got %s", node.Line, node.ShortTag())
	}

	if err := node.Decode(target); err != nil {
		return err
	}

	keep := extensions.IsExtension
	if keepUnknown {
		known := knownKeys(reflect.TypeFor[T]())
		keep = func(key string) bool {
			_, ok := known[key]
			return !ok
		}
	}
	*ext = extensions.FromMapping(node, keep)

	return nil
}

// encodeModel encodes v as a mapping node followed by its extensions.
func encodeModel(v any, ext *extensions.Extensions) (any, error) {
	node := &yaml.Node{}
	if err := node.Encode(v); err != nil {
		return nil, err
	}
	ext.AppendTo(node)
	return node, nil
}

func knownKeys(t reflect.Type) map[string]struct{} {
	if cached, ok := knownKeysCache.Load(t); ok {
		return cached.(map[string]struct{})
	}

	keys := make(map[string]struct{}, t.NumField())
	for i := range t.NumField() {
		tag := t.Field(i).Tag.Get("yaml")
		name, _, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			continue
		}
		keys[name] = struct{}{}
	}

	knownKeysCache.Store(t, keys)
	return keys
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

// mappingValue returns the value node stored under key in a mapping node.
func mappingValue(node *yaml.Node, key string) (*yaml.Node, bool) {
	node = resolveAlias(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil, false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return resolveAlias(node.Content[i+1]), true
		}
	}
	return nil, false
}
