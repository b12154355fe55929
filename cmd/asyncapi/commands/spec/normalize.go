package spec

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/speakeasy-api/asyncapi/asyncapi"
	"github.com/speakeasy-api/asyncapi/cmd/asyncapi/commands/cmdutil"
	"github.com/speakeasy-api/asyncapi/pipeline"
	"github.com/spf13/cobra"
)

const (
	formatYAML       = "yaml"
	formatJSON       = "json"
	formatMergePatch = "merge-patch"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [input] [output]",
	Short: "Move reusable objects into components and rewrite them as references",
	Long: `Normalize an AsyncAPI 3 document.

Tags, servers, channels, operations and the messages and parameters of every channel are moved
into the matching components collection and replaced by references. The result is validated
before it is written.

Output formats:
- yaml:        the normalized document (default)
- json:        the normalized document as JSON
- merge-patch: an RFC 7386 JSON merge patch turning the input into the normalized document

With --diff a line diff between the input and the normalized document is printed instead.

Stdin is supported: pass "-" as the input, or pipe a document without arguments.
The document is written to stdout unless an output file is given.`,
	Args: cmdutil.StdinOrFileArgs(1, 2),
	Run:  runNormalize,
}

var (
	normalizeFormat string
	normalizeDiff   bool
)

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeFormat, "format", "f", formatYAML, "output format: yaml, json or merge-patch")
	normalizeCmd.Flags().BoolVar(&normalizeDiff, "diff", false, "print a line diff between the input and the normalized document")
}

type normalizeOptions struct {
	Input  string
	Output string
	Format string
	Diff   bool
	Logger *slog.Logger

	Stdin  io.Reader
	Stdout io.Writer
}

func runNormalize(cmd *cobra.Command, args []string) {
	opts := normalizeOptions{
		Input:  cmdutil.InputFileFromArgs(args),
		Output: cmdutil.ArgAt(args, 1, ""),
		Format: normalizeFormat,
		Diff:   normalizeDiff,
		Logger: cmdutil.Logger(cmd, os.Stderr),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}

	if err := normalize(cmd.Context(), opts); err != nil {
		cmdutil.Die(err)
	}
}

func normalize(ctx context.Context, opts normalizeOptions) error {
	r, name, err := cmdutil.OpenInput(opts.Input, opts.Stdin)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(r)
	r.Close()
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	doc, err := pipeline.Load(ctx, bytes.NewReader(data), pipeline.WithLogger(opts.Logger))
	if err != nil {
		return fmt.Errorf("failed to normalize %s: %w", name, err)
	}

	var out []byte
	switch {
	case opts.Diff:
		out, err = renderDiff(ctx, name, data, doc)
	case opts.Format == formatYAML:
		out, err = render(ctx, doc, asyncapi.Marshal)
	case opts.Format == formatJSON:
		out, err = render(ctx, doc, asyncapi.MarshalJSON)
	case opts.Format == formatMergePatch:
		out, err = renderMergePatch(ctx, data, doc)
	default:
		return fmt.Errorf("unsupported format %q, expected one of %s, %s or %s", opts.Format, formatYAML, formatJSON, formatMergePatch)
	}
	if err != nil {
		return err
	}

	if opts.Output == "" {
		_, err := opts.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(opts.Output, out, 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

func render(ctx context.Context, doc *asyncapi.Document, marshal func(context.Context, *asyncapi.Document, io.Writer) error) ([]byte, error) {
	var buf bytes.Buffer
	if err := marshal(ctx, doc, &buf); err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return buf.Bytes(), nil
}

// original decodes the input again without normalizing it, so both sides of a comparison are rendered the same way.
func original(ctx context.Context, data []byte) (*asyncapi.Document, error) {
	doc, _, err := asyncapi.Unmarshal(ctx, bytes.NewReader(data), asyncapi.WithSkipValidation())
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func renderMergePatch(ctx context.Context, data []byte, doc *asyncapi.Document) ([]byte, error) {
	before, err := original(ctx, data)
	if err != nil {
		return nil, err
	}

	from, err := render(ctx, before, asyncapi.MarshalJSON)
	if err != nil {
		return nil, err
	}
	to, err := render(ctx, doc, asyncapi.MarshalJSON)
	if err != nil {
		return nil, err
	}

	patch, err := jsonpatch.CreateMergePatch(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to create merge patch: %w", err)
	}
	return append(patch, '\n'), nil
}

func renderDiff(ctx context.Context, name string, data []byte, doc *asyncapi.Document) ([]byte, error) {
	before, err := original(ctx, data)
	if err != nil {
		return nil, err
	}

	from, err := render(ctx, before, asyncapi.Marshal)
	if err != nil {
		return nil, err
	}
	to, err := render(ctx, doc, asyncapi.Marshal)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s (normalized)\n", name, name)
	sb.WriteString(lineDiff(string(from), string(to)))
	return []byte(sb.String()), nil
}

// lineDiff renders a whole-file line diff, prefixing removed lines with "-", added lines with "+" and unchanged
// lines with a space.
func lineDiff(from, to string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		}
		for line := range strings.SplitAfterSeq(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}
