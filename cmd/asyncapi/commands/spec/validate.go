package spec

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/speakeasy-api/asyncapi/cmd/asyncapi/commands/cmdutil"
	"github.com/speakeasy-api/asyncapi/pipeline"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate AsyncAPI 3 documents",
	Long: `Validate one or more AsyncAPI 3 documents.

Each document is checked for:
- Structural validity according to the AsyncAPI 3 schema
- A supported asyncapi version
- Name conflicts while moving reusable objects into components
- References that do not resolve, or resolve to the wrong kind of object

Documents are validated concurrently. Pass "-" to read a document from stdin.`,
	Args: cobra.MinimumNArgs(1),
	Run:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	start := time.Now()
	logger := cmdutil.Logger(cmd, os.Stderr)

	failed := validateFiles(cmd.Context(), os.Stdout, os.Stdin, args, logger)
	fmt.Fprintf(os.Stderr, "Validation took %s\n", time.Since(start).Round(time.Millisecond))

	if failed > 0 {
		cmdutil.Die(fmt.Errorf("%d of %d documents failed validation", failed, len(args)))
	}
}

// validateFiles validates every file concurrently, reports the results in argument order and returns the number
// of failed documents.
func validateFiles(ctx context.Context, out io.Writer, stdin io.Reader, files []string, logger *slog.Logger) int {
	results := make([]error, len(files))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, file := range files {
		g.Go(func() error {
			results[i] = validateFile(ctx, file, stdin, logger)
			return nil
		})
	}
	_ = g.Wait()

	valid := color.New(color.FgGreen).SprintFunc()
	invalid := color.New(color.FgRed).SprintFunc()

	failed := 0
	for i, err := range results {
		name := displayName(files[i])
		if err == nil {
			fmt.Fprintf(out, "✅ %s %s\n", name, valid("is valid"))
			continue
		}
		failed++
		fmt.Fprintf(out, "❌ %s %s\n%s\n", name, invalid("is invalid"), indent(err.Error(), "   "))
	}

	return failed
}

func validateFile(ctx context.Context, file string, stdin io.Reader, logger *slog.Logger) error {
	r, name, err := cmdutil.OpenInput(file, stdin)
	if err != nil {
		return err
	}
	defer r.Close()

	_, err = pipeline.Load(ctx, r, pipeline.WithLogger(logger.With(slog.String("file", name))))
	return err
}

func displayName(file string) string {
	if cmdutil.IsStdin(file) {
		return "stdin"
	}
	return file
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
