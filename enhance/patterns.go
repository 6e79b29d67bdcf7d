package enhance

import (
	"regexp"
)

// Tag-boundary patterns for locating script and style regions in the raw
// (unprocessed) component source. These are heuristics, not a parser:
// bodies are matched non-greedily, nested or malformed markup gets no
// special handling, and every matching region contributes hints
// independently.

var (
	// scriptRegionPattern matches a <script> region.
	// Alternation covers the open/close form and the self-closing form:
	//   <script lang="ts">...</script>
	//   <script src="./x.js" />
	//
	// Groups:
	//   1: attribute substring of the open/close form (leading whitespace kept)
	//   2: body of the open/close form
	//   3: attribute substring of the self-closing form
	//
	// (?s) lets the body match span newlines; [^>]* keeps attribute matching
	// from running past the tag boundary.
	scriptRegionPattern = regexp.MustCompile(`(?s)<script(\s[^>]*)?>(.*?)</script>|<script(\s[^>]*)?/>`)

	// styleRegionPattern matches a <style> region, same shape as
	// scriptRegionPattern.
	styleRegionPattern = regexp.MustCompile(`(?s)<style(\s[^>]*)?>(.*?)</style>|<style(\s[^>]*)?/>`)

	// langTSPattern matches a lang attribute selecting the typed superset,
	// with either quote style or none: lang="ts", lang='ts', lang=ts.
	langTSPattern = regexp.MustCompile(`lang\s*=\s*["']?ts["']?`)

	// langAttributePattern matches any lang attribute.
	langAttributePattern = regexp.MustCompile(`lang\s*=`)

	// langValuePattern captures the value of a lang attribute, used to name
	// the missing style preprocessor (e.g. lang="scss" -> "scss").
	langValuePattern = regexp.MustCompile(`lang\s*=\s*["']?([A-Za-z0-9_-]+)["']?`)
)

// regionAttrs returns the attribute substring of a region matched by one of
// the tag patterns, accounting for the alternation's two attribute groups.
func regionAttrs(match []string) string {
	if match[1] != "" {
		return match[1]
	}
	return match[3]
}
