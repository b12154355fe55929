// Package spec holds the commands working on AsyncAPI documents.
package spec

import "github.com/spf13/cobra"

// Apply adds the document commands to the given command group.
func Apply(rootCmd *cobra.Command) {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(resolveCmd)
}
