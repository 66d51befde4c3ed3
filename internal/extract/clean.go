package extract

import (
	"regexp"
	"strings"
)

var (
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
	// Line comments run to a literal "\n" escape or the end of the candidate.
	// Real newlines are gone by the time this applies: whitespace collapsing
	// happens first. The terminator is dropped with the comment; a stray
	// escape outside a string would not parse anyway.
	lineCommentRe  = regexp.MustCompile(`//.*?(\\n|$)`)
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

// CleanJSONCandidate slices the JSON-looking region out of a raw model reply
// and normalizes the malformations models commonly produce. Returns false when
// no candidate object can be located at all.
//
// The quote replacement is deliberately blunt: every single quote becomes a
// double quote, which corrupts genuine apostrophes inside string values. The
// whitespace collapse is likewise lossy for unescaped newlines embedded in
// strings. Both behaviors are retained for compatibility with the prompts,
// which instruct the model to escape special characters itself.
func CleanJSONCandidate(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return "", false
	}
	candidate := raw[start : end+1]

	// Markdown fence markers anywhere in the slice.
	candidate = strings.ReplaceAll(candidate, "```json", "")
	candidate = strings.ReplaceAll(candidate, "```", "")

	// Collapse all whitespace runs, newlines included, to single spaces.
	candidate = strings.Join(strings.Fields(candidate), " ")

	// Normalize quoting.
	candidate = strings.ReplaceAll(candidate, "'", `"`)

	// Trailing commas before a closing brace or bracket.
	candidate = trailingCommaRe.ReplaceAllString(candidate, " $1")

	// Comments.
	candidate = lineCommentRe.ReplaceAllString(candidate, "")
	candidate = blockCommentRe.ReplaceAllString(candidate, "")

	// ASCII control characters; non-ASCII text (CJK in particular) stays.
	candidate = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, candidate)

	return candidate, true
}
