package domain

import (
	"fmt"
	"strings"
)

// SourceFile is one file submitted for batch documentation.
type SourceFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Validate checks that the file can be embedded in a batch prompt.
func (f SourceFile) Validate() error {
	if strings.TrimSpace(f.Path) == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyPath)
	}
	return nil
}

// FileDocumentation is the documentation produced for a single file.
// Path is taken from the model reply and may not match any requested path.
type FileDocumentation struct {
	Path          string `json:"path"`
	Documentation string `json:"documentation"`
}

// Paths returns the paths of files in their original order.
func Paths(files []SourceFile) []string {
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	return paths
}
