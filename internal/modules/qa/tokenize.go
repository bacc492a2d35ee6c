package qa

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minTokenRunes = 3
	maxTokens     = 6
)

// Tokenize lower-cases s, splits it on runs of anything that is not a
// letter or a number and keeps up to six distinct tokens of at least three
// runes, in order of first appearance.
func Tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, maxTokens)
	for _, f := range fields {
		if utf8.RuneCountInString(f) < minTokenRunes {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
		if len(out) == maxTokens {
			break
		}
	}
	return out
}
