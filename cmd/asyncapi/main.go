package main

import (
	"runtime/debug"
	"strings"

	"github.com/speakeasy-api/asyncapi/cmd/asyncapi/commands/cmdutil"
	specCmd "github.com/speakeasy-api/asyncapi/cmd/asyncapi/commands/spec"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// getVersionInfo returns version information, preferring ldflags values over build info.
func getVersionInfo() (string, string, string) {
	if version != "dev" || commit != "none" || date != "unknown" {
		return version, commit, date
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return version, commit, date
	}

	moduleVersion := version
	if buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
		moduleVersion = buildInfo.Main.Version
	}

	vcsCommit := commit
	vcsTime := date
	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			vcsCommit = setting.Value[:min(7, len(setting.Value))]
		case "vcs.time":
			vcsTime = setting.Value
		}
	}

	return moduleVersion, vcsCommit, vcsTime
}

var rootCmd = &cobra.Command{
	Use:   "asyncapi",
	Short: "Toolkit for normalizing and validating AsyncAPI 3 documents",
	Long: `A toolkit for working with AsyncAPI 3 documents.

It can:
- Validate documents, including every reference they contain
- Normalize documents by moving reusable objects into components
- Query documents with JSONPath
- Resolve local reference pointers`,
	Version: version,
}

var specCmds = &cobra.Command{
	Use:   "spec",
	Short: "Work with AsyncAPI documents",
	Long: `Commands for working with AsyncAPI 3 documents.

AsyncAPI documents describe message driven APIs: the servers, channels, operations and
messages an application exchanges.`,
}

func init() {
	currentVersion, currentCommit, currentDate := getVersionInfo()
	rootCmd.Version = currentVersion

	var versionTemplate strings.Builder
	versionTemplate.WriteString(`{{printf "%s" .Version}}`)
	if currentCommit != "none" && currentCommit != "" {
		versionTemplate.WriteString("\nBuild: " + currentCommit)
	}
	if currentDate != "unknown" && currentDate != "" {
		versionTemplate.WriteString("\nBuilt: " + currentDate)
	}
	rootCmd.SetVersionTemplate(versionTemplate.String())

	specCmd.Apply(specCmds)
	rootCmd.AddCommand(specCmds)

	rootCmd.PersistentFlags().BoolP(cmdutil.VerboseFlag, "v", false, "verbose output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cmdutil.Die(err)
	}
}
