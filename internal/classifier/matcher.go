package classifier

import "strings"

// FindMatches returns the terms that occur as a literal substring of text.
// text must already be lower-cased; terms are lower-cased here. The result
// keeps the order of terms, not the order of occurrence in text.
func FindMatches(text string, terms []string) []string {
	matches := make([]string, 0, len(terms))
	for _, term := range terms {
		if strings.Contains(text, strings.ToLower(term)) {
			matches = append(matches, term)
		}
	}
	return matches
}

// containsAny reports the first of phrases found in text, if any.
func containsAny(text string, phrases []string) (string, bool) {
	for _, p := range phrases {
		if strings.Contains(text, strings.ToLower(p)) {
			return p, true
		}
	}
	return "", false
}
