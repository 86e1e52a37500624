package extract

import (
	"regexp"
	"strings"
)

// maxDescriptionLen caps description text; excess is cut, never rejected.
const maxDescriptionLen = 5000

var parentheticalRe = regexp.MustCompile(`\s*\([^)]*\)\s*`)

// cleanText trims, collapses whitespace runs (newlines included) to single
// spaces, and strips parenthetical asides. Empty input yields "", never panics.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	s = parentheticalRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// truncate caps s at n characters, counting runes so multibyte text is not
// cut mid-character.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
