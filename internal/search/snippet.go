package search

import (
	"unicode"
)

const (
	// snippetContext is the number of runes kept on each side of a match.
	snippetContext = 50
	// fallbackLength is the snippet length when the query is not found.
	fallbackLength = 100
	ellipsis       = "..."
)

// Snippet returns a window of text around the first case-insensitive
// occurrence of query. Positions are counted in runes and each rune is
// folded individually, so offsets in the folded text match the original.
// When query is not found the first 100 runes are returned followed by an
// ellipsis. Empty text yields "".
func Snippet(text, query string) string {
	if text == "" {
		return ""
	}

	runes := []rune(text)
	pos := indexFold(runes, []rune(query))
	if pos < 0 {
		return string(runes[:min(fallbackLength, len(runes))]) + ellipsis
	}

	qlen := len([]rune(query))
	start := max(0, pos-snippetContext)
	end := min(len(runes), pos+qlen+snippetContext)

	snippet := string(runes[start:end])
	if start > 0 {
		snippet = ellipsis + snippet
	}
	if end < len(runes) {
		snippet = snippet + ellipsis
	}
	return snippet
}

func indexFold(text, query []rune) int {
	if len(query) == 0 || len(query) > len(text) {
		return -1
	}

	for i := 0; i <= len(text)-len(query); i++ {
		match := true
		for j, q := range query {
			if unicode.ToLower(text[i+j]) != unicode.ToLower(q) {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
