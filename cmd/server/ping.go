package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// pingPrompt is a short request used to check that a key and the model work.
const pingPrompt = "Tell me a short, fun fact about software development."

var (
	colorSuccess = color.New(color.FgGreen, color.Bold)
	colorFailure = color.New(color.FgRed, color.Bold)
)

// newPingCmd builds the command that sends one prompt through the full
// dispatch core: rate limiter, key rotation and retries.
func newPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Send a test prompt to the configured model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApplication()
			if err != nil {
				return err
			}
			return runPing(cmd.Context(), app, cmd.OutOrStdout())
		},
	}
}

func runPing(ctx context.Context, app *application, out io.Writer) error {
	fmt.Fprintf(out, "Model: %s, API keys: %d\n", app.config.LLM.ModelName, app.keys.Len())

	reply, err := app.generate(ctx, pingPrompt)
	if err != nil {
		colorFailure.Fprint(out, "FAILED")
		fmt.Fprintf(out, ": %v\n", err)
		return fmt.Errorf("ping failed: %w", err)
	}

	colorSuccess.Fprintln(out, "SUCCESS")
	fmt.Fprintln(out, reply)
	return nil
}
