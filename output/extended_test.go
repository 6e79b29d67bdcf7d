package output

import (
	"testing"

	"github.com/handleui/refract/diag"
)

func TestFormatExtended_Full(t *testing.T) {
	d := diag.Diagnostic{
		Message:  "Unexpected token",
		Filename: "src/App.cmp",
		Frame:    "1: foo\n2: bar;\n ^",
		Start:    &diag.Position{Line: 2, Column: 4},
		Pos:      diag.NoPos,
	}

	want := "src/App.cmp:2:4 Unexpected token\n 1 | foo\n 2 | bar;\n    ^"
	if got := FormatExtended(d); got != want {
		t.Errorf("FormatExtended() = %q, want %q", got, want)
	}
}

func TestFormatExtended_NoPosition(t *testing.T) {
	d := diag.Diagnostic{
		Message:  "Unexpected token",
		Filename: "src/App.cmp",
		Pos:      diag.NoPos,
	}

	want := "src/App.cmp Unexpected token"
	if got := FormatExtended(d); got != want {
		t.Errorf("FormatExtended() = %q, want %q", got, want)
	}
}

func TestFormatExtended_MessageOnly(t *testing.T) {
	d := diag.New("CompileError", "boom")

	if got := FormatExtended(d); got != "boom" {
		t.Errorf("FormatExtended() = %q, want %q", got, "boom")
	}
}
