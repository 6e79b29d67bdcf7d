// Package output renders a diagnostic as plain text for callers that
// surface it outside either structured consumer shape (terminal logs,
// crash reports).
package output

import (
	"fmt"
	"strings"

	"github.com/handleui/refract/diag"
)

// FormatExtended renders the conventional extended log body for a
// diagnostic: a "file:line:column message" headline followed by the
// reformatted frame when one exists. Position segments are dropped when
// unknown, so the degenerate case is just the message.
func FormatExtended(d diag.Diagnostic) string {
	var b strings.Builder

	if d.Filename != "" {
		b.WriteString(d.Filename)
		if d.Start != nil {
			fmt.Fprintf(&b, ":%d:%d", d.Start.Line, d.Start.Column)
		}
		b.WriteString(" ")
	}
	b.WriteString(d.Message)

	if frame := diag.FormatFrame(d.Frame); frame != "" {
		b.WriteString("\n")
		b.WriteString(frame)
	}
	return b.String()
}
