package gemini

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"google.golang.org/genai"
)

// generateContentAction is the supported action required for documentation.
const generateContentAction = "generateContent"

// ModelInfo describes a model available to an API key.
type ModelInfo struct {
	Name        string
	DisplayName string
}

// ListModels returns the models that support content generation.
func (f *ModelFactory) ListModels(ctx context.Context, apiKey string) ([]ModelInfo, error) {
	if apiKey == "" {
		return nil, ErrEmptyAPIKey
	}

	client, err := f.newClient(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	page, err := client.Models.List(ctx, &genai.ListModelsConfig{})
	if err != nil {
		return nil, classifyError(err)
	}

	var models []*genai.Model
	for {
		models = append(models, page.Items...)
		page, err = page.Next(ctx)
		if errors.Is(err, genai.ErrPageDone) {
			break
		}
		if err != nil {
			return nil, classifyError(err)
		}
	}

	return filterGenerative(models), nil
}

// filterGenerative keeps the models supporting generateContent, sorted by name.
func filterGenerative(models []*genai.Model) []ModelInfo {
	infos := make([]ModelInfo, 0, len(models))
	for _, m := range models {
		if m == nil || !slices.Contains(m.SupportedActions, generateContentAction) {
			continue
		}
		infos = append(infos, ModelInfo{Name: m.Name, DisplayName: m.DisplayName})
	}
	slices.SortFunc(infos, func(a, b ModelInfo) int {
		return strings.Compare(a.Name, b.Name)
	})
	return infos
}
