package generation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"
)

// Bounds for the number of files the architect may select.
const (
	MinSelectedFiles     = 8
	MaxSelectedFiles     = 15
	DefaultSelectedFiles = MaxSelectedFiles
)

// SelectionMIMEType is requested from the model for file selection.
const SelectionMIMEType = "application/json"

var selectionTemplate = template.Must(template.New("architect").Parse(`
You are a Senior Software Architect specializing in code analysis and documentation planning.
Identify the MOST IMPORTANT source files that capture the core business logic and architecture
of this project, so that documenting them gives a developer a complete understanding of how the
software works.

SELECTION PRIORITY (in order):
1. Entry points and application core: main files, bootstrap, dependency wiring.
2. Business logic (HIGHEST PRIORITY): services, workers, processors, handlers, core algorithms,
   business rule engines, domain models with behaviour.
3. Application layer: controllers and routes that orchestrate multi-step logic, use cases,
   WebSocket handlers, GraphQL resolvers.
4. Infrastructure with logic: custom middleware (auth, rate limiting, caching), repositories with
   custom queries, external API clients, event publishers and subscribers.

STRICT EXCLUSIONS (DO NOT SELECT):
- Tests: *test*, *spec*, __tests__/, tests/, spec/
- Configuration: *.json, *.yaml, *.yml, *.xml, *.properties, *.env, *.ini, *.toml
- Build and deploy: Dockerfile, Makefile, *.sh, *.bat, *.ps1, pom.xml, package.json, requirements.txt
- Static assets: *.css, *.scss, *.html, images, fonts
- Documentation: README*, LICENSE*, CHANGELOG*, *.md, docs/
- Generated code: target/, build/, dist/, node_modules/, .venv/, __pycache__/
- Plain DTOs, constants-only files, trivial utilities, framework boilerplate, UI components
  without significant state management.

ANALYSIS STRATEGY:
Identify the project structure (MVC, layered, clean architecture, microservices, monorepo). For a
monorepo select core files from EACH service. Start from the entry points and trace the core
business flow. Prefer files with several functions over single-purpose utilities.

OUTPUT REQUIREMENTS:
- Return ONLY a raw JSON array of file paths
- Maximum {{.MaxFiles}} files
- Full relative paths from the project root
- No Markdown code blocks, no explanations

FILE STRUCTURE TO ANALYZE:
{{.FileStructure}}

EXPECTED JSON FORMAT:
["src/main/java/com/app/service/CoreService.java", "src/worker/processing_worker.py", "cmd/server/main.go"]
`))

type selectionData struct {
	FileStructure string
	MaxFiles      int
}

// ClampSelectedFiles forces n into [MinSelectedFiles, MaxSelectedFiles].
func ClampSelectedFiles(n int) int {
	switch {
	case n <= 0:
		return DefaultSelectedFiles
	case n < MinSelectedFiles:
		return MinSelectedFiles
	case n > MaxSelectedFiles:
		return MaxSelectedFiles
	}
	return n
}

// BuildSelectionPrompt renders the architect prompt for fileStructure.
func BuildSelectionPrompt(fileStructure string, maxFiles int) (string, error) {
	var buf bytes.Buffer
	data := selectionData{FileStructure: fileStructure, MaxFiles: maxFiles}
	if err := selectionTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute selection template: %w", err)
	}
	return buf.String(), nil
}

// ParseSelection extracts the selected paths from the model reply.
//
// A ```json fence is tolerated, as is an object wrapping the list, in which
// case the first value of the object (in document order) is used. Entries
// that are not non-empty strings are dropped and the list is cut to maxFiles.
func ParseSelection(raw string, maxFiles int) ([]string, error) {
	values, err := decodeSelection(stripJSONFence(raw))
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			paths = append(paths, s)
		}
	}

	if maxFiles > 0 && len(paths) > maxFiles {
		paths = paths[:maxFiles]
	}
	return paths, nil
}

func stripJSONFence(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, codeFence) {
		return text
	}
	text = strings.TrimPrefix(text, codeFence)
	if len(text) >= 4 && strings.EqualFold(text[:4], "json") {
		text = text[4:]
	}
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, codeFence)
	return strings.TrimSpace(text)
}

func decodeSelection(text string) ([]any, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	switch tok {
	case json.Delim('['):
		var list []any
		if err := json.Unmarshal([]byte(text), &list); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		return list, nil

	case json.Delim('{'):
		if !dec.More() {
			return nil, fmt.Errorf("%w: empty JSON object", ErrInvalidResponse)
		}
		if _, err := dec.Token(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		var first json.RawMessage
		if err := dec.Decode(&first); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
		var list []any
		if err := json.Unmarshal(first, &list); err != nil {
			return nil, fmt.Errorf("%w: first object value is not a list: %v", ErrInvalidResponse, err)
		}
		return list, nil
	}

	return nil, fmt.Errorf("%w: expected a JSON array, got %v", ErrInvalidResponse, tok)
}
