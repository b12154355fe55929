package spec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/speakeasy-api/asyncapi/asyncapi"
	"github.com/speakeasy-api/asyncapi/cmd/asyncapi/commands/cmdutil"
	"github.com/speakeasy-api/asyncapi/references"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <file> <pointer>",
	Short: "Resolve a local reference pointer in an AsyncAPI document",
	Long: `Follow a local reference pointer such as '#/components/messages/userData' through the document,
including chains of references, and print where it ends, the type found there and its content.

The document is resolved as written, before normalization.`,
	Args: cobra.ExactArgs(2),
	Run:  runResolve,
}

func runResolve(cmd *cobra.Command, args []string) {
	if err := resolve(cmd.Context(), args[0], references.Reference(args[1]), os.Stdin, os.Stdout, cmdutil.Logger(cmd, os.Stderr)); err != nil {
		cmdutil.Die(err)
	}
}

func resolve(ctx context.Context, file string, ref references.Reference, stdin io.Reader, out io.Writer, logger *slog.Logger) error {
	if err := ref.Validate(); err != nil {
		return err
	}
	if ref.IsExternal() {
		return fmt.Errorf("%s points outside the document and cannot be resolved locally", ref)
	}

	r, name, err := cmdutil.OpenInput(file, stdin)
	if err != nil {
		return err
	}
	defer r.Close()

	doc, validationErrs, err := asyncapi.Unmarshal(ctx, r)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", name, err)
	}
	for _, validationErr := range validationErrs {
		logger.WarnContext(ctx, "document is not structurally valid", slog.String("error", validationErr.Error()))
	}
	if doc == nil {
		return errors.Join(validationErrs...)
	}

	result, err := references.Resolve(ctx, ref, references.ResolveOptions{RootDocument: doc, Logger: logger})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "path: %s\ntype: %s\n---\n", result.Path, result.TypeName())

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(result.Object); err != nil {
		return fmt.Errorf("failed to render %s: %w", result.Path, err)
	}
	return enc.Close()
}
