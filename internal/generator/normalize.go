package generator

import "strings"

// StripCodeFences removes a surrounding markdown code fence such as
// ```json ... ``` from model output.
func StripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	lines := strings.Split(text, "\n")
	end := len(lines)
	for i := len(lines) - 1; i > 0; i-- {
		if strings.TrimSpace(lines[i]) == "```" {
			end = i
			break
		}
	}
	if end <= 1 {
		return strings.TrimSpace(strings.Trim(text, "`"))
	}
	return strings.TrimSpace(strings.Join(lines[1:end], "\n"))
}
