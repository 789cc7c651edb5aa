package generation

import "strings"

const codeFence = "```"

// CleanDocumentation removes a code fence wrapping the whole reply, as models
// often answer with ```markdown ... ``` despite being asked not to. Only the
// outermost fence is removed; backticks and HTML inside the body are kept.
func CleanDocumentation(raw string) string {
	text := raw
	if strings.HasPrefix(text, codeFence) {
		lines := strings.Split(strings.TrimRight(text, " \t\r\n"), "\n")
		// The opening line may carry a language tag (```markdown, ```md).
		lines = lines[1:]
		if n := len(lines); n > 0 && strings.TrimSpace(lines[n-1]) == codeFence {
			lines = lines[:n-1]
		}
		text = strings.Join(lines, "\n")
	}
	return strings.TrimSpace(text)
}
