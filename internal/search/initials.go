package search

import "strings"

// Initials returns the acronym of a display name: the upper-cased first
// character of each whitespace-separated word, concatenated in order.
// Empty and whitespace-only names yield an empty string.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

// MatchesInitials reports whether term is a case-insensitive prefix of
// the initials of name. Single-word names produce one-letter initials,
// so they never match the 2+ letter terms the classifier produces.
func MatchesInitials(term, name string) bool {
	if term == "" {
		return false
	}
	return strings.HasPrefix(Initials(name), strings.ToUpper(term))
}
