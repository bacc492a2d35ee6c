package store

import "strings"

// likeEscaper escapes LIKE wildcards with '!', which every supported
// dialect accepts as an ESCAPE character without string-literal quirks.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// ContainsPattern returns a lower-cased LIKE pattern matching s anywhere.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

// AnyContains builds "(LOWER(c1) LIKE ? ESCAPE '!' OR ...)" matching any of
// terms against any of columns, case-insensitively. Returns "" when there is
// nothing to match.
func AnyContains(columns, terms []string) (string, []any) {
	if len(columns) == 0 || len(terms) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(columns)*len(terms))
	args := make([]any, 0, len(columns)*len(terms))
	for _, t := range terms {
		p := ContainsPattern(t)
		for _, c := range columns {
			parts = append(parts, "LOWER("+c+") LIKE ? ESCAPE '!'")
			args = append(args, p)
		}
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}
