package cmdutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsStdin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{name: "dash is stdin", path: "-", expected: true},
		{name: "empty is not stdin", path: "", expected: false},
		{name: "file path is not stdin", path: "asyncapi.yaml", expected: false},
		{name: "double dash is not stdin", path: "--", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, IsStdin(tt.path))
		})
	}
}

func TestArgAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		index    int
		expected string
	}{
		{name: "no args returns fallback", args: nil, index: 0, expected: "fallback"},
		{name: "first arg", args: []string{"in.yaml", "out.yaml"}, index: 0, expected: "in.yaml"},
		{name: "second arg", args: []string{"in.yaml", "out.yaml"}, index: 1, expected: "out.yaml"},
		{name: "past the end", args: []string{"in.yaml"}, index: 1, expected: "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ArgAt(tt.args, tt.index, "fallback"))
		})
	}
}

func TestInputFileFromArgs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, StdinIndicator, InputFileFromArgs(nil))
	assert.Equal(t, "asyncapi.yaml", InputFileFromArgs([]string{"asyncapi.yaml", "out.yaml"}))
}

func TestStdinOrFileArgs_Error(t *testing.T) {
	t.Parallel()

	validate := StdinOrFileArgs(1, 2)

	err := validate(&cobra.Command{}, []string{"a", "b", "c"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at most 2")

	require.NoError(t, validate(&cobra.Command{}, []string{"a"}))

	unbounded := StdinOrFileArgs(1, -1)
	require.NoError(t, unbounded(&cobra.Command{}, []string{"a", "b", "c"}))

	pair := StdinOrFileArgs(2, 2)
	err = pair(&cobra.Command{}, []string{"a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2")
}

func TestOpenInput_Success(t *testing.T) {
	t.Parallel()

	r, name, err := OpenInput("-", strings.NewReader("asyncapi: 3.0.0"))
	require.NoError(t, err)
	assert.Equal(t, "stdin", name)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "asyncapi: 3.0.0", string(data))
	require.NoError(t, r.Close())

	path := filepath.Join(t.TempDir(), "asyncapi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("info: {}"), 0o600))

	r, name, err = OpenInput(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, name)
	require.NoError(t, r.Close())
}

func TestOpenInput_Missing_Error(t *testing.T) {
	t.Parallel()

	_, _, err := OpenInput(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open input file")
}

func TestLogger(t *testing.T) {
	t.Parallel()

	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{}
		cmd.Flags().Bool(VerboseFlag, false, "")
		return cmd
	}

	var quiet bytes.Buffer
	Logger(newCmd(), &quiet).Debug("hidden")
	assert.Empty(t, quiet.String())

	cmd := newCmd()
	require.NoError(t, cmd.Flags().Set(VerboseFlag, "true"))

	var loud bytes.Buffer
	Logger(cmd, &loud).Debug("shown")
	assert.Contains(t, loud.String(), "level=DEBUG")
	assert.Contains(t, loud.String(), "shown")
}
