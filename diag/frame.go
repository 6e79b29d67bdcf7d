package diag

import (
	"regexp"
	"strconv"
	"strings"
)

// caretLinePattern matches a frame line that only carries the caret marker
// (leading whitespace, then ^). Such lines have no line-number prefix and
// must keep their content while the surrounding lines gain a wider gutter.
var caretLinePattern = regexp.MustCompile(`^\s+\^`)

// FormatFrame rewrites a compiler frame from the colon-delimited
// "<lineNo>: <text>" convention into the pipe-delimited convention used by
// the bundler's overlay:
//
//	1: foo          ->   1 | foo
//	2: bar;         ->   2 | bar;
//	   ^            ->      ^
//
// Caret-marker lines get a three-space prefix so the caret stays under the
// same column after the gutter widens; every other line gets a one-space
// prefix and its first colon replaced by " |". Nothing else is altered:
// multi-digit line numbers keep their source width, trailing whitespace is
// preserved, and an empty frame yields "".
func FormatFrame(frame string) string {
	if frame == "" {
		return ""
	}

	lines := strings.Split(frame, "\n")
	for i, line := range lines {
		if caretLinePattern.MatchString(line) {
			lines[i] = "   " + line
		} else {
			lines[i] = " " + strings.Replace(line, ":", " |", 1)
		}
	}
	return strings.Join(lines, "\n")
}

// LineFromFrame returns the raw text of the 1-based line lineNo as recorded
// in the frame, without its "<lineNo>: " prefix. It returns "" when the
// frame is empty or does not contain that line; it never fails.
func LineFromFrame(lineNo int, frame string) string {
	if frame == "" {
		return ""
	}

	prefix := strconv.Itoa(lineNo) + ": "
	for _, line := range strings.Split(frame, "\n") {
		if !strings.HasPrefix(strings.TrimLeft(line, " \t"), prefix) {
			continue
		}
		if idx := strings.Index(line, ": "); idx >= 0 {
			return line[idx+2:]
		}
	}
	return ""
}
