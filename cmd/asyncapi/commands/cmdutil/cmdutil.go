// Package cmdutil provides shared CLI utilities for the asyncapi command groups.
package cmdutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// StdinIndicator is the conventional Unix indicator to read from stdin.
const StdinIndicator = "-"

// VerboseFlag is the persistent flag enabling debug logging.
const VerboseFlag = "verbose"

// IsStdin returns true if the given path indicates stdin should be used.
func IsStdin(path string) bool {
	return path == StdinIndicator
}

// StdinIsPiped returns true when stdin is not a terminal, meaning data is piped in or redirected from a file.
func StdinIsPiped() bool {
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// InputFileFromArgs returns the first positional arg, or "-" if stdin should be used.
func InputFileFromArgs(args []string) string {
	return ArgAt(args, 0, StdinIndicator)
}

// ArgAt returns args[i], or fallback when there are not enough args.
func ArgAt(args []string, i int, fallback string) string {
	if i < len(args) {
		return args[i]
	}
	return fallback
}

// StdinOrFileArgs returns a cobra arg validator that accepts minArgs..maxArgs when a file is given,
// but also allows zero args when stdin is piped. A negative maxArgs means no upper bound.
func StdinOrFileArgs(minArgs, maxArgs int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			if StdinIsPiped() {
				return nil
			}
			return fmt.Errorf("requires at least %d arg(s), or pipe data to stdin", minArgs)
		}
		if len(args) < minArgs {
			return fmt.Errorf("requires at least %d arg(s), only received %d", minArgs, len(args))
		}
		if maxArgs >= 0 && len(args) > maxArgs {
			return fmt.Errorf("accepts at most %d arg(s), received %d", maxArgs, len(args))
		}
		return nil
	}
}

// OpenInput opens path for reading, or wraps stdin when path is "-". The returned name is suitable for messages.
func OpenInput(path string, stdin io.Reader) (io.ReadCloser, string, error) {
	if IsStdin(path) {
		return io.NopCloser(stdin), "stdin", nil
	}

	clean := filepath.Clean(path)
	f, err := os.Open(clean)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open input file: %w", err)
	}
	return f, clean, nil
}

// Logger returns a text logger on w at debug level when --verbose is set, and a discarding logger otherwise.
func Logger(cmd *cobra.Command, w io.Writer) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool(VerboseFlag)
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Die prints an error to stderr and exits with code 1.
func Die(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
