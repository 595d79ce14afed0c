package checklist

import (
	"regexp"
	"strconv"
	"strings"
)

// repetitionSuffix matches a trailing " xN" repetition marker, e.g. "*Punchlist* x3".
var repetitionSuffix = regexp.MustCompile(` x(\d+)$`)

// ParseEntry splits a pattern entry into its clean pattern and required count.
// An entry without a repetition suffix requires exactly one match. A malformed
// suffix (anything other than " x" followed by digits) is kept as literal
// pattern text with a count of one. An explicit "x0" marks the entry as not
// required at all.
func ParseEntry(entry string) (pattern string, required int) {
	m := repetitionSuffix.FindStringSubmatch(entry)
	if m == nil {
		return entry, 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return entry, 1
	}
	return strings.TrimSuffix(entry, m[0]), n
}

// Match reports whether filename satisfies the wildcard pattern. Only '*'
// carries wildcard semantics (zero or more of any character); every other
// regex metacharacter is treated as a literal. Matching is case-insensitive
// and anchored at both ends, so a pattern without '*' requires an exact
// case-insensitive filename match.
func Match(filename, pattern string) bool {
	clean, _ := ParseEntry(pattern)
	return compilePattern(clean).MatchString(filename)
}

func compilePattern(clean string) *regexp.Regexp {
	escaped := regexp.QuoteMeta(clean)
	// QuoteMeta escaped the '*' too; restore it as the wildcard.
	expr := "(?i)^" + strings.ReplaceAll(escaped, `\*`, `.*`) + "$"
	return regexp.MustCompile(expr)
}
