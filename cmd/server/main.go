// Package main implements the entry point for the IntelliDoc AI service,
// which generates developer documentation for source files and selects the
// files of a project worth documenting, using Google's Gemini models.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// main is the entry point for the intellidoc-ai-service binary.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Running the binary without a
// subcommand starts the HTTP server.
func newRootCmd() *cobra.Command {
	serveCmd := newServeCmd()

	rootCmd := &cobra.Command{
		Use:   "intellidoc-ai-service",
		Short: "Generate code documentation with Gemini",
		Long: `IntelliDoc AI service exposes documentation generation over HTTP.
It documents single prompts or batches of files in one model call, picks the
most important files of a project, and keeps model calls under the provider's
rate limits by rotating API keys and spacing requests.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          serveCmd.RunE,
	}
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newModelsCmd())
	rootCmd.AddCommand(newPingCmd())
	return rootCmd
}
