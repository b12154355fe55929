package validation

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/speakeasy-api/asyncapi/errors"
	"gopkg.in/yaml.v3"
)

// SortValidationErrors sorts validation errors by line and column, lowest first.
// Errors that are not validation errors keep their relative order after all validation errors.
func SortValidationErrors(errs []error) {
	slices.SortStableFunc(errs, func(a, b error) int {
		var aErr, bErr *Error
		aOK := errors.As(a, &aErr)
		bOK := errors.As(b, &bErr)

		switch {
		case aOK && bOK:
			return cmp.Or(
				cmp.Compare(aErr.Line, bErr.Line),
				cmp.Compare(aErr.Column, bErr.Column),
				strings.Compare(aErr.UnderlyingError.Error(), bErr.UnderlyingError.Error()),
			)
		case aOK:
			return -1
		case bOK:
			return 1
		default:
			return 0
		}
	})
}

// NodeAt follows location through mapping keys and sequence indexes starting at root and returns the
// deepest node reached. When the location cannot be followed completely the last reachable node is returned.
func NodeAt(root *yaml.Node, location []string) *yaml.Node {
	node := root
	if node != nil && node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	for _, segment := range location {
		next := child(node, segment)
		if next == nil {
			return node
		}
		node = next
	}
	return node
}

func child(node *yaml.Node, segment string) *yaml.Node {
	for node != nil && node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node == nil {
		return nil
	}

	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == segment {
				return node.Content[i+1]
			}
		}
	case yaml.SequenceNode:
		for i, item := range node.Content {
			if strconv.Itoa(i) == segment {
				return item
			}
		}
	}
	return nil
}
