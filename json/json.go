// Package json converts YAML documents to JSON without reordering mapping keys.
package json

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/speakeasy-api/asyncapi/sequencedmap"
	"gopkg.in/yaml.v3"
)

const mergeKey = "<<"

// YAMLToJSON writes node to w as JSON. An indentation of zero produces compact output.
func YAMLToJSON(node *yaml.Node, indentation int, w io.Writer) error {
	v, err := ToJSONCompatible(node)
	if err != nil {
		return err
	}

	e := json.NewEncoder(w)
	e.SetIndent("", strings.Repeat(" ", indentation))
	e.SetEscapeHTML(false)

	return e.Encode(v)
}

// ToJSONCompatible converts node to plain Go values that encode to JSON in document order.
// Mappings become *sequencedmap.Map[string, any], merge keys are expanded and aliases are followed.
func ToJSONCompatible(node *yaml.Node) (any, error) {
	if node == nil {
		return nil, nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return ToJSONCompatible(node.Content[0])
	case yaml.AliasNode:
		return ToJSONCompatible(node.Alias)
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := ToJSONCompatible(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		out := sequencedmap.New[string, any]()
		if err := fillMapping(out, node); err != nil {
			return nil, err
		}
		return out, nil
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported yaml node kind %d", node.Line, node.Kind)
	}
}

func fillMapping(out *sequencedmap.Map[string, any], node *yaml.Node) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		if keyNode.Kind == yaml.ScalarNode && keyNode.Value == mergeKey {
			if err := merge(out, valueNode); err != nil {
				return err
			}
			continue
		}

		key, err := mappingKey(keyNode)
		if err != nil {
			return err
		}

		v, err := ToJSONCompatible(valueNode)
		if err != nil {
			return err
		}
		out.Set(key, v)
	}
	return nil
}

// merge expands a merge key value, which is a mapping or a list of mappings.
func merge(out *sequencedmap.Map[string, any], node *yaml.Node) error {
	for node.Kind == yaml.AliasNode {
		node = node.Alias
	}

	switch node.Kind {
	case yaml.MappingNode:
		return fillMapping(out, node)
	case yaml.SequenceNode:
		for _, item := range node.Content {
			if err := merge(out, item); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("line %d: merge key value must be a mapping", node.Line)
	}
}

func mappingKey(node *yaml.Node) (string, error) {
	k, err := ToJSONCompatible(node)
	if err != nil {
		return "", err
	}

	switch kv := k.(type) {
	case string:
		return kv, nil
	case nil:
		return "null", nil
	case int, int64, uint64, float64, bool:
		return fmt.Sprintf("%v", kv), nil
	default:
		data, err := json.Marshal(kv)
		if err != nil {
			return "", fmt.Errorf("line %d: unsupported mapping key: %w", node.Line, err)
		}
		return string(data), nil
	}
}
