// Package classify maps raw card availability text to a canonical
// acquisition category. Classification is a pure function: the same
// text and rarity flag always produce the same label, and no input
// ever produces an error.
package classify

import (
	"regexp"
	"strings"
)

// \s alone is ASCII-only in Go; the scraped text is full of the
// full-width space U+3000, which \p{Zs} covers.
var whitespaceRE = regexp.MustCompile(`[\s\p{Zs}]+`)

// substitutions collapses known synonymous phrasings in the source
// vocabulary. Applied in order; an earlier replacement may create the
// match for a later one, so the order is part of the contract.
var substitutions = []struct {
	from string
	to   string
}{
	{"プラチナオーディションガシャ", "プラチナガシャ"},
	{"ライブ", "live"},
}

// Normalize canonicalizes availability text for rule matching:
// lowercase, whitespace runs collapsed to a single space, leading and
// trailing whitespace trimmed, then the synonym substitutions applied.
// Blank input returns "". Normalize is idempotent.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
	for _, s := range substitutions {
		text = strings.ReplaceAll(text, s.from, s.to)
	}
	return text
}
