package chunker

import (
	"strings"
	"unicode/utf8"
)

// Split breaks text into word-aligned chunks of at most maxLength characters.
// The running length counts every accumulated word plus one separating space,
// so length+len(word) is exactly the joined length after appending word.
// A word longer than maxLength is never split and is returned on its own.
func Split(text string, maxLength int) []string {
	if maxLength < 1 {
		maxLength = 1
	}

	var (
		chunks  []string
		current []string
		length  int
	)

	for _, word := range strings.Fields(text) {
		wordLen := utf8.RuneCountInString(word)
		if length+wordLen > maxLength && len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))
			current = current[:0]
			length = 0
		}
		current = append(current, word)
		length += wordLen + 1
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}

	return chunks
}
