package spec

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/speakeasy-api/asyncapi/cmd/asyncapi/commands/cmdutil"
	"github.com/speakeasy-api/jsonpath/pkg/jsonpath"
	"github.com/speakeasy-api/jsonpath/pkg/jsonpath/config"
	"github.com/spf13/cobra"
	"github.com/vmware-labs/yaml-jsonpath/pkg/yamlpath"
	"gopkg.in/yaml.v3"
)

var queryCmd = &cobra.Command{
	Use:   "query <file> <jsonpath>",
	Short: "Select parts of an AsyncAPI document with a JSONPath expression",
	Long: `Evaluate a JSONPath expression against an AsyncAPI document and print the matches as a YAML list.

The document is queried as written, before normalization. Expressions follow RFC 9535;
use --legacy for the older yamlpath dialect.

Examples:
  asyncapi spec query asyncapi.yaml '$.channels[*].address'
  asyncapi spec query asyncapi.yaml '$.components.messages[?@.name == "userData"]'`,
	Args: cobra.ExactArgs(2),
	Run:  runQuery,
}

var queryLegacy bool

func init() {
	queryCmd.Flags().BoolVar(&queryLegacy, "legacy", false, "use the legacy yamlpath implementation instead of RFC 9535")
}

// selector queries a parsed YAML document.
type selector interface {
	Query(root *yaml.Node) ([]*yaml.Node, error)
}

type rfcSelector struct {
	path *jsonpath.JSONPath
}

func (s rfcSelector) Query(root *yaml.Node) ([]*yaml.Node, error) {
	return s.path.Query(root), nil
}

type legacySelector struct {
	path *yamlpath.Path
}

func (s legacySelector) Query(root *yaml.Node) ([]*yaml.Node, error) {
	return s.path.Find(root)
}

func newSelector(expr string, legacy bool) (selector, error) {
	if legacy {
		path, err := yamlpath.NewPath(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid yamlpath %s: %w", expr, err)
		}
		return legacySelector{path: path}, nil
	}

	path, err := jsonpath.NewPath(expr, config.WithPropertyNameExtension())
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath %s: %w", expr, err)
	}
	return rfcSelector{path: path}, nil
}

func runQuery(cmd *cobra.Command, args []string) {
	if err := query(cmd.Context(), args[0], args[1], queryLegacy, os.Stdin, os.Stdout); err != nil {
		cmdutil.Die(err)
	}
}

func query(_ context.Context, file, expr string, legacy bool, stdin io.Reader, out io.Writer) error {
	sel, err := newSelector(expr, legacy)
	if err != nil {
		return err
	}

	r, name, err := cmdutil.OpenInput(file, stdin)
	if err != nil {
		return err
	}
	defer r.Close()

	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}

	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}

	matches, err := sel.Query(doc)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", name, err)
	}

	list := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: matches}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(list); err != nil {
		return err
	}
	return enc.Close()
}
