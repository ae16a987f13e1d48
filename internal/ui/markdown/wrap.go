package markdown

import (
	"strings"
	"unicode/utf8"
)

// wrap word-wraps text to a width. Words longer than the width stay on
// their own line rather than being broken; styled (ANSI) runs are kept
// intact because wrapping happens on whole words.
func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	var builder strings.Builder
	lineLen := 0
	for _, line := range strings.Split(text, "\n") {
		if builder.Len() > 0 {
			builder.WriteString("\n")
			lineLen = 0
		}
		for _, word := range strings.Fields(line) {
			wordLen := utf8.RuneCountInString(word)
			if lineLen > 0 && lineLen+1+wordLen > width {
				builder.WriteString("\n")
				lineLen = 0
			} else if lineLen > 0 {
				builder.WriteString(" ")
				lineLen++
			}
			builder.WriteString(word)
			lineLen += wordLen
		}
	}
	return builder.String()
}
