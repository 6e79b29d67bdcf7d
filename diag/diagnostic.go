// Package diag defines the compiler diagnostic value types shared by the
// translation, enhancement, and rendering layers, plus the string helpers
// that operate on a diagnostic's source frame.
package diag

// Diagnostic codes emitted by the component compiler that this module
// dispatches on. Any other code passes through untouched.
const (
	// CodeParseError marks a failure to parse a component file.
	CodeParseError = "parse-error"

	// CodeCSSSyntaxError marks a syntax failure inside a style block.
	CodeCSSSyntaxError = "css-syntax-error"
)

// NoPos marks an unknown byte offset. Any negative Pos is treated as unknown.
const NoPos = -1

// Position is a 1-based line/column pair.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Diagnostic is a compiler-produced warning or error record.
// String fields use "" for "absent"; Start is nil when the compiler could not
// determine a position; Pos is a byte offset into the original (unprocessed)
// source, or NoPos when unknown.
//
// A Diagnostic is a plain value. Nothing in this module mutates one: the
// enhancer returns an augmented copy and both translators are pure
// projections.
type Diagnostic struct {
	// Message is the human-readable description.
	Message string `json:"message"`

	// Name is the diagnostic class identifier (e.g. "CompileError").
	Name string `json:"name"`

	// Code is the machine-readable category, e.g. CodeParseError.
	Code string `json:"code,omitempty"`

	// Filename identifies the originating component file.
	Filename string `json:"filename,omitempty"`

	// Frame is a multi-line excerpt of source around the error, one
	// "<lineNo>: <text>" entry per line, optionally followed by a
	// caret-marker line matching ^\s+\^.
	Frame string `json:"frame,omitempty"`

	// Start is the 1-based error position, nil when unknown.
	Start *Position `json:"start,omitempty"`

	// Pos is the byte offset of the error in the original source,
	// NoPos when unknown. Only the enhancer reads it.
	Pos int `json:"pos,omitempty"`

	// Stack is the native stack trace text, "" when absent.
	Stack string `json:"stack,omitempty"`
}

// New returns a Diagnostic with Pos initialized to NoPos.
// Literal construction is fine too; the zero value of Pos is offset 0,
// which is a real position, so callers building diagnostics without an
// offset should start from New.
func New(name, message string) Diagnostic {
	return Diagnostic{Name: name, Message: message, Pos: NoPos}
}
