package generation

import (
	"fmt"
	"strings"

	"github.com/intellidoc/intellidoc-ai-service/internal/domain"
)

// Delimiters of the batch reply protocol.
const (
	FileMarker      = "===FILE:"
	EndFileMarker   = "===END_FILE==="
	headerDelimiter = "==="
)

const batchInstructions = `
OUTPUT FORMAT (MANDATORY):
For EVERY file above, write its documentation in Markdown and wrap it exactly like this:

===FILE: <path exactly as given above>===
<markdown documentation for that file>
===END_FILE===

Repeat the block once per file. Do NOT wrap the reply in code fences and do NOT add any
text outside the blocks.
`

// BuildBatchPrompt combines the project context and every file into a single
// prompt. Files appear in input order, each introduced by a "FILE i:" marker
// and fenced so that its content cannot be confused with the instructions.
func BuildBatchPrompt(files []domain.SourceFile, projectContext string) string {
	var b strings.Builder

	b.WriteString("You are a senior software engineer writing developer documentation for a codebase.\n")
	b.WriteString("Document each of the following source files: its purpose, its main components, ")
	b.WriteString("how it fits into the project, and any notable logic.\n\n")

	b.WriteString("PROJECT CONTEXT (file tree):\n")
	b.WriteString(projectContext)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "FILES TO DOCUMENT (%d):\n\n", len(files))
	for i, f := range files {
		fence := fenceFor(f.Content)
		fmt.Fprintf(&b, "FILE %d: %s\n%s\n%s\n%s\n\n", i+1, f.Path, fence, f.Content, fence)
	}

	b.WriteString(batchInstructions)
	return b.String()
}

// fenceFor returns a backtick fence longer than any backtick run in content.
func fenceFor(content string) string {
	longest, run := 0, 0
	for _, r := range content {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	if longest < len(codeFence) {
		return codeFence
	}
	return strings.Repeat("`", longest+1)
}

// ParseBatchResponse splits a batch reply into per-file documentation using
// the FileMarker / EndFileMarker protocol. Entries come out in reply order and
// their number need not match the request, since the model may drop,
// duplicate or rename files.
//
// When the reply carries no FileMarker at all, the whole text is attributed
// to the first requested file. With several files requested this loses the
// association for the others; the second return value reports that case.
func ParseBatchResponse(raw string, files []domain.SourceFile) ([]domain.FileDocumentation, bool) {
	if !strings.Contains(raw, FileMarker) {
		if len(files) == 0 {
			return []domain.FileDocumentation{}, false
		}
		entry := domain.FileDocumentation{Path: files[0].Path, Documentation: raw}
		return []domain.FileDocumentation{entry}, len(files) > 1
	}

	segments := strings.Split(raw, FileMarker)
	results := make([]domain.FileDocumentation, 0, len(segments)-1)

	// segments[0] is whatever preceded the first marker.
	for _, segment := range segments[1:] {
		if strings.TrimSpace(segment) == "" {
			continue
		}

		header, body, ok := strings.Cut(segment, headerDelimiter)
		if !ok {
			continue
		}
		path := strings.TrimSpace(header)
		if path == "" {
			continue
		}

		body = strings.ReplaceAll(body, EndFileMarker, "")
		results = append(results, domain.FileDocumentation{
			Path:          path,
			Documentation: strings.TrimSpace(body),
		})
	}

	return results, false
}
