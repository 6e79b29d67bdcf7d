package diag

import (
	"strings"
	"testing"
)

func TestFormatFrame_Basic(t *testing.T) {
	frame := "1: foo\n2: bar;\n ^\n3: baz"
	want := " 1 | foo\n 2 | bar;\n    ^\n 3 | baz"

	got := FormatFrame(frame)
	if got != want {
		t.Errorf("FormatFrame() = %q, want %q", got, want)
	}
}

func TestFormatFrame_Empty(t *testing.T) {
	if got := FormatFrame(""); got != "" {
		t.Errorf("FormatFrame(\"\") = %q, want \"\"", got)
	}
}

func TestFormatFrame_NoCaretIsPureRewrite(t *testing.T) {
	// Without caret lines the transform is exactly "N: text" -> " N | text"
	// per line.
	frame := "10: const a = 1;\n11: a()\n12: export default a"
	want := " 10 | const a = 1;\n 11 | a()\n 12 | export default a"

	got := FormatFrame(frame)
	if got != want {
		t.Errorf("FormatFrame() = %q, want %q", got, want)
	}
}

func TestFormatFrame_OnlyFirstColonReplaced(t *testing.T) {
	frame := "1: const a = {b: 1}"
	want := " 1 | const a = {b: 1}"

	got := FormatFrame(frame)
	if got != want {
		t.Errorf("FormatFrame() = %q, want %q", got, want)
	}
}

func TestFormatFrame_CaretIndentPreserved(t *testing.T) {
	// The caret keeps its own leading whitespace; only the three-space
	// gutter shift is added.
	frame := "1: abcdef\n      ^"
	want := " 1 | abcdef\n         ^"

	got := FormatFrame(frame)
	if got != want {
		t.Errorf("FormatFrame() = %q, want %q", got, want)
	}
}

func TestFormatFrame_MultiDigitWidthNotNormalized(t *testing.T) {
	// Line-number width follows the source frame as-is; 9 and 10 do not
	// get aligned.
	frame := "9: a\n10: b"
	want := " 9 | a\n 10 | b"

	got := FormatFrame(frame)
	if got != want {
		t.Errorf("FormatFrame() = %q, want %q", got, want)
	}
}

func TestLineFromFrame_Found(t *testing.T) {
	frame := "1: foo\n2: bar;\n3: baz"

	if got := LineFromFrame(2, frame); got != "bar;" {
		t.Errorf("LineFromFrame(2) = %q, want %q", got, "bar;")
	}
}

func TestLineFromFrame_NotFound(t *testing.T) {
	frame := "1: foo\n2: bar;\n3: baz"

	if got := LineFromFrame(5, frame); got != "" {
		t.Errorf("LineFromFrame(5) = %q, want \"\"", got)
	}
}

func TestLineFromFrame_EmptyFrame(t *testing.T) {
	if got := LineFromFrame(1, ""); got != "" {
		t.Errorf("LineFromFrame(1, \"\") = %q, want \"\"", got)
	}
}

func TestLineFromFrame_IndentedFrameLines(t *testing.T) {
	frame := "  1: foo\n  2: bar;"

	if got := LineFromFrame(2, frame); got != "bar;" {
		t.Errorf("LineFromFrame(2) = %q, want %q", got, "bar;")
	}
}

func TestLineFromFrame_NoPrefixCollision(t *testing.T) {
	// Line 2 must not match line 12.
	frame := "12: twelve\n2: two"

	if got := LineFromFrame(2, frame); got != "two" {
		t.Errorf("LineFromFrame(2) = %q, want %q", got, "two")
	}
}

func TestLineFromFrame_TextContainingColonSpace(t *testing.T) {
	frame := "1: const a = { b: 1 }"

	if got := LineFromFrame(1, frame); got != "const a = { b: 1 }" {
		t.Errorf("LineFromFrame(1) = %q, want %q", got, "const a = { b: 1 }")
	}
}

func TestNew_SetsNoPos(t *testing.T) {
	d := New("CompileError", "boom")
	if d.Pos != NoPos {
		t.Errorf("New().Pos = %d, want %d", d.Pos, NoPos)
	}
	if d.Name != "CompileError" || d.Message != "boom" {
		t.Errorf("New() = %+v, want name/message set", d)
	}
}

func TestFormatFrame_CaretLineNeedsLeadingWhitespace(t *testing.T) {
	// A line starting with ^ at column zero is not a caret-marker line and
	// goes through the colon rewrite path (no colon, so only the prefix).
	frame := "^: not a caret"
	got := FormatFrame(frame)
	if !strings.HasPrefix(got, " ^") {
		t.Errorf("FormatFrame() = %q, want one-space prefix path", got)
	}
}
