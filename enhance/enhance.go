// Package enhance applies heuristic static analysis over the raw component
// source to append actionable hints to a compiler diagnostic whose root
// cause is likely a missing language-extension configuration: a script
// block written in the typed superset but compiled as plain script, or a
// style block missing its preprocessor declaration.
package enhance

import (
	"strings"

	"github.com/handleui/refract/diag"
)

// StyleShimName is the descriptor name of the pipeline's own scoped-style
// shim. The shim declares a style hook so it runs in the preprocess chain,
// but it only rewrites scoping attributes; it does not count as a user
// style preprocessor when deciding whether one is missing.
const StyleShimName = "scoped-style-shim"

// docsURL is the documentation pointer appended to missing-preprocessor hints.
const docsURL = "https://github.com/handleui/refract/blob/main/docs/preprocessors.md"

// Preprocessor describes an external transform hook registered with the
// pipeline: which block categories it handles and the name it registered
// under.
type Preprocessor struct {
	Name   string `json:"name" yaml:"name"`
	Script bool   `json:"script,omitempty" yaml:"script,omitempty"`
	Style  bool   `json:"style,omitempty" yaml:"style,omitempty"`
}

// Enhance returns a copy of d with configuration hints appended to its
// message. The input diagnostic is never modified. source is the original,
// unprocessed component source; preprocessors are the descriptors the
// pipeline resolved (the variadic signature is the normalization boundary
// for callers holding either one descriptor or a sequence).
//
// Dispatch is by d.Code: parse errors trigger a script-region scan filtered
// by containment of d.Pos, style syntax errors trigger an unconditional
// style-region scan (the asymmetry is deliberate; the two codes carry
// different positional precision). Any other code returns d unchanged.
//
// Enhance is not idempotent: calling it twice appends the hint block twice.
// Callers own the augmented copy and must not re-enhance it.
func Enhance(d diag.Diagnostic, source string, preprocessors ...Preprocessor) diag.Diagnostic {
	var hints []string

	switch d.Code {
	case diag.CodeParseError:
		hints = scriptHints(d.Pos, source, preprocessors)
	case diag.CodeCSSSyntaxError:
		hints = styleHints(source, preprocessors)
	default:
		return d
	}

	if len(hints) == 0 {
		return d
	}
	d.Message += "\n\n- " + strings.Join(hints, "\n- ")
	return d
}

// scriptHints scans for script regions whose span contains pos (inclusive
// bounds) and collects hints for each. A negative pos is contained by no
// region. Duplicate hints from multiple regions are kept.
func scriptHints(pos int, source string, preprocessors []Preprocessor) []string {
	if pos < 0 {
		return nil
	}

	var hints []string
	for _, m := range scriptRegionPattern.FindAllStringSubmatchIndex(source, -1) {
		if pos < m[0] || pos > m[1] {
			continue
		}

		attrs := submatch(source, m, 1)
		if attrs == "" {
			attrs = submatch(source, m, 3)
		}

		hasTS := langTSPattern.MatchString(attrs)
		if !hasTS {
			hints = append(hints, `Did you forget to add lang="ts" to your script tag?`)
		}
		if !hasScriptPreprocessor(preprocessors) {
			kind := "script"
			if hasTS {
				kind = "TypeScript"
			}
			hints = append(hints, missingPreprocessorHint(kind))
		}
	}
	return hints
}

// styleHints scans every style region in the source; style syntax errors do
// not carry an offset precise enough for containment filtering.
func styleHints(source string, preprocessors []Preprocessor) []string {
	var hints []string
	for _, m := range styleRegionPattern.FindAllStringSubmatch(source, -1) {
		attrs := regionAttrs(m)

		if !langAttributePattern.MatchString(attrs) {
			hints = append(hints, "Did you forget to add a lang attribute to your style tag?")
		}
		if !hasStylePreprocessor(preprocessors) {
			kind := "style"
			if v := langValuePattern.FindStringSubmatch(attrs); v != nil {
				kind = v[1]
			}
			hints = append(hints, missingPreprocessorHint(kind))
		}
	}
	return hints
}

func missingPreprocessorHint(kind string) string {
	return "Did you forget to add a " + kind + " preprocessor? See " + docsURL + " for more information."
}

func hasScriptPreprocessor(preprocessors []Preprocessor) bool {
	for _, p := range preprocessors {
		if p.Script {
			return true
		}
	}
	return false
}

// hasStylePreprocessor reports whether any descriptor is a real user style
// preprocessor; the pipeline's scoped-style shim is excluded by name.
func hasStylePreprocessor(preprocessors []Preprocessor) bool {
	for _, p := range preprocessors {
		if p.Style && p.Name != StyleShimName {
			return true
		}
	}
	return false
}

// submatch returns the text of a capture group from an index-form match,
// or "" when the group did not participate.
func submatch(s string, m []int, group int) string {
	if m[2*group] < 0 {
		return ""
	}
	return s[m[2*group]:m[2*group+1]]
}
