package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/intellidoc/intellidoc-ai-service/internal/config"
	"github.com/intellidoc/intellidoc-ai-service/internal/platform/gemini"
	"github.com/intellidoc/intellidoc-ai-service/internal/redact"
)

// modelLister lists the models an API key can use. *gemini.ModelFactory implements it.
type modelLister interface {
	ListModels(ctx context.Context, apiKey string) ([]gemini.ModelInfo, error)
}

var errNoAPIKey = errors.New("no API key configured, set " + config.PrimaryKeyEnv)

// newModelsCmd builds the command listing models that support content generation.
func newModelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the Gemini models available for documentation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, factory, err := bootstrap()
			if err != nil {
				return err
			}
			return runModels(cmd.Context(), factory, cfg.LLM.APIKeys, cmd.OutOrStdout())
		},
	}
}

// runModels lists the models visible to the first configured key.
func runModels(ctx context.Context, lister modelLister, keys []string, out io.Writer) error {
	if len(keys) == 0 {
		return errNoAPIKey
	}

	fmt.Fprintf(out, "Models available to key %s:\n", redact.Key(keys[0]))

	models, err := lister.ListModels(ctx, keys[0])
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}
	if len(models) == 0 {
		color.New(color.FgYellow).Fprintln(out, "no models support generateContent")
		return nil
	}

	name := color.New(color.FgCyan)
	for _, m := range models {
		name.Fprint(out, m.Name)
		if m.DisplayName != "" {
			fmt.Fprintf(out, "  %s", m.DisplayName)
		}
		fmt.Fprintln(out)
	}
	return nil
}
