package ingestion

import (
	"fmt"
	"unicode/utf8"
)

// Split divides text into consecutive chunks of at most n runes.
// Concatenating the result reproduces text exactly. Multi-byte sequences are
// never split; an invalid byte counts as one rune.
func Split(text string, n int) ([]string, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %w: %d", ErrInvalidArgument, ErrInvalidChunkSize, n)
	}
	if text == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(text) <= n {
		return []string{text}, nil
	}

	chunks := make([]string, 0, utf8.RuneCountInString(text)/n+1)
	start, count := 0, 0
	for i := range text {
		if count == n {
			chunks = append(chunks, text[start:i])
			start, count = i, 0
		}
		count++
	}
	chunks = append(chunks, text[start:])

	return chunks, nil
}
