package suggest

import (
	"fmt"
	"strings"

	"github.com/handleui/refract/diag"
	"github.com/handleui/refract/output"
)

const (
	// maxSourceBytes caps the source excerpt included in a prompt.
	maxSourceBytes = 8 * 1024

	// excerptContextBytes is how much source to keep on each side of the
	// error offset when the full source exceeds maxSourceBytes.
	excerptContextBytes = 2 * 1024
)

// systemPrompt frames the one-shot suggestion request.
const systemPrompt = `You are helping fix a component compile error. ` +
	`Respond with a short, concrete fix suggestion: what to change and why, ` +
	`in at most a few sentences. Do not restate the error.`

// BuildPrompt assembles the deterministic user prompt for a diagnostic:
// the extended headline (with frame), then a bounded excerpt of the
// original source centered on the error offset.
func BuildPrompt(d diag.Diagnostic, source string) string {
	var b strings.Builder

	b.WriteString("Compile error:\n")
	b.WriteString(escapePromptString(output.FormatExtended(d)))

	if excerpt := sourceExcerpt(d.Pos, source); excerpt != "" {
		fmt.Fprintf(&b, "\n\nComponent source (%s):\n", excerptLabel(d.Pos, source))
		b.WriteString("```\n")
		b.WriteString(escapePromptString(excerpt))
		b.WriteString("\n```")
	}

	return b.String()
}

// sourceExcerpt returns the source text to include: the whole file when it
// fits, otherwise a window around the error offset, and the head of the
// file when no offset is known.
func sourceExcerpt(pos int, source string) string {
	if source == "" {
		return ""
	}
	if len(source) <= maxSourceBytes {
		return source
	}

	if pos < 0 || pos > len(source) {
		return source[:maxSourceBytes]
	}

	start := pos - excerptContextBytes
	if start < 0 {
		start = 0
	}
	end := pos + excerptContextBytes
	if end > len(source) {
		end = len(source)
	}
	return source[start:end]
}

func excerptLabel(pos int, source string) string {
	if len(source) <= maxSourceBytes {
		return "full"
	}
	if pos < 0 || pos > len(source) {
		return "truncated"
	}
	return "excerpt around the error"
}

// escapePromptString keeps diagnostic text from breaking out of the prompt's
// code fencing and collapses runaway blank lines.
func escapePromptString(s string) string {
	s = strings.ReplaceAll(s, "```", "'''")
	s = strings.ReplaceAll(s, "\r", "")
	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n\n")
	}
	return s
}
