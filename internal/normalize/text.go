package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// CollapseWhitespace collapses internal whitespace runs to a single space
// and trims both ends.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// TitleCase collapses whitespace and title-cases each word. Applied to
// human-facing categorical fields (item, category, merchant, city). Lossy
// for intentional casing like acronyms - accepted tradeoff.
func TitleCase(s string) string {
	s = CollapseWhitespace(strings.ToLower(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))
	upperNext := true
	for _, r := range s {
		if upperNext && unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
			continue
		}
		if r == ' ' || r == '-' || r == '/' {
			upperNext = true
		}
		b.WriteRune(r)
	}
	return b.String()
}
