package suggest

import (
	"strings"
	"testing"

	"github.com/handleui/refract/diag"
)

func TestBuildPrompt_IncludesHeadlineAndSource(t *testing.T) {
	d := diag.Diagnostic{
		Message:  "Unexpected token",
		Filename: "src/App.cmp",
		Frame:    "1: foo\n ^",
		Start:    &diag.Position{Line: 1, Column: 1},
		Pos:      4,
	}
	source := `<script>let x: number = 1</script>`

	prompt := BuildPrompt(d, source)

	if !strings.Contains(prompt, "src/App.cmp:1:1 Unexpected token") {
		t.Errorf("prompt missing headline: %q", prompt)
	}
	if !strings.Contains(prompt, source) {
		t.Errorf("prompt missing source excerpt: %q", prompt)
	}
	if !strings.Contains(prompt, "```") {
		t.Errorf("prompt missing code fence: %q", prompt)
	}
}

func TestBuildPrompt_NoSource(t *testing.T) {
	d := diag.New("CompileError", "boom")

	prompt := BuildPrompt(d, "")

	if strings.Contains(prompt, "Component source") {
		t.Errorf("prompt = %q, want no source section without source", prompt)
	}
}

func TestBuildPrompt_EscapesFences(t *testing.T) {
	d := diag.New("CompileError", "bad fence ``` here")

	prompt := BuildPrompt(d, "")

	if strings.Contains(strings.TrimPrefix(prompt, "Compile error:\n"), "```") {
		t.Errorf("prompt = %q, want fences escaped out of diagnostic text", prompt)
	}
}

func TestSourceExcerpt_SmallSourceKeptWhole(t *testing.T) {
	source := "<script>x</script>"
	if got := sourceExcerpt(5, source); got != source {
		t.Errorf("sourceExcerpt() = %q, want full source", got)
	}
}

func TestSourceExcerpt_LargeSourceWindowed(t *testing.T) {
	source := strings.Repeat("a", 20*1024)
	pos := 10 * 1024

	got := sourceExcerpt(pos, source)

	if len(got) != 2*excerptContextBytes {
		t.Errorf("len = %d, want %d", len(got), 2*excerptContextBytes)
	}
}

func TestSourceExcerpt_LargeSourceUnknownPos(t *testing.T) {
	source := strings.Repeat("a", 20*1024)

	got := sourceExcerpt(diag.NoPos, source)

	if len(got) != maxSourceBytes {
		t.Errorf("len = %d, want head of %d bytes", len(got), maxSourceBytes)
	}
}

func TestSourceExcerpt_WindowClampedAtEdges(t *testing.T) {
	source := strings.Repeat("a", 20*1024)

	if got := sourceExcerpt(0, source); len(got) != excerptContextBytes {
		t.Errorf("len at start = %d, want %d", len(got), excerptContextBytes)
	}
	if got := sourceExcerpt(len(source), source); len(got) != excerptContextBytes {
		t.Errorf("len at end = %d, want %d", len(got), excerptContextBytes)
	}
}
