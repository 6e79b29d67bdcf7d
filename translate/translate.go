// Package translate projects a compiler diagnostic into the two structured
// error shapes its downstream consumers expect: the bundler build pipeline
// (BundleError) and the CLI/editor message channel (BuildMessage). Both
// projections are pure; the input diagnostic is never modified.
//
// Field names and nesting in both shapes are a compatibility surface:
// consumers pattern-match on them and they must not change.
package translate

import (
	"github.com/handleui/refract/config"
	"github.com/handleui/refract/diag"
)

// ErrorLocation is the positional payload of a BundleError.
type ErrorLocation struct {
	Line   int    `json:"line"`
	Column int    `json:"column"`
	File   string `json:"file,omitempty"`
}

// BundleError is the build-pipeline error shape.
// Stack is always present as a field but is "" unless the stack policy
// admits it; Loc is omitted entirely when the diagnostic has no position.
type BundleError struct {
	Name    string         `json:"name"`
	ID      string         `json:"id,omitempty"`
	Message string         `json:"message"`
	Frame   string         `json:"frame"`
	Code    string         `json:"code,omitempty"`
	Stack   string         `json:"stack"`
	Loc     *ErrorLocation `json:"loc,omitempty"`
}

// MessageLocation is the positional payload of a BuildMessage.
type MessageLocation struct {
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	File     string `json:"file,omitempty"`
	LineText string `json:"lineText,omitempty"`
}

// BuildMessage is the CLI/editor diagnostic shape.
type BuildMessage struct {
	Text     string           `json:"text"`
	Location *MessageLocation `json:"location,omitempty"`
	Detail   string           `json:"detail,omitempty"`
}

// ToBundleError builds the build-pipeline shape from a diagnostic.
// The frame is rewritten into the pipe-delimited convention; the stack is
// carried verbatim when includeStack admits it and is "" otherwise.
func ToBundleError(d diag.Diagnostic, opts config.Options) *BundleError {
	e := &BundleError{
		Name:    d.Name,
		ID:      d.Filename,
		Message: d.Message,
		Frame:   diag.FormatFrame(d.Frame),
		Code:    d.Code,
	}
	if includeStack(d, opts) {
		e.Stack = d.Stack
	}
	if d.Start != nil {
		e.Loc = &ErrorLocation{
			Line:   d.Start.Line,
			Column: d.Start.Column,
			File:   d.Filename,
		}
	}
	return e
}

// ToBuildMessage builds the CLI/editor shape from a diagnostic.
// Detail carries the stack under the same policy as BundleError's Stack,
// applied independently; LineText is recovered from the frame.
func ToBuildMessage(d diag.Diagnostic, opts config.Options) *BuildMessage {
	m := &BuildMessage{
		Text: d.Message,
	}
	if d.Start != nil {
		m.Location = &MessageLocation{
			Line:     d.Start.Line,
			Column:   d.Start.Column,
			File:     d.Filename,
			LineText: diag.LineFromFrame(d.Start.Line, d.Frame),
		}
	}
	if includeStack(d, opts) {
		m.Detail = d.Stack
	}
	return m
}

// includeStack is the stack-trace inclusion policy shared by both shapes.
// Stacks are verbose: when a frame already locates the error interactively
// they are redundant, so they appear only when the caller asked for
// build/debug verbosity or no frame exists and the stack is the only
// positional clue.
func includeStack(d diag.Diagnostic, opts config.Options) bool {
	return opts.Build || opts.Debug || d.Frame == ""
}
