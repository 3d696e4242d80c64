package text

import (
	"strings"
	"unicode"
)

// Measurer reports the rendered width of a string in the current font
type Measurer interface {
	Width(s string) float64
}

// MeasureFunc adapts a function to Measurer
type MeasureFunc func(s string) float64

// Width implements Measurer
func (f MeasureFunc) Width(s string) float64 {
	return f(s)
}

// SplitTextToLines breaks text into lines no wider than maxWidth using a
// greedy first-fit over whitespace separated words. A word that is wider
// than maxWidth on its own is split at rune boundaries. Empty input yields
// a single empty line so callers always advance by at least one line.
func SplitTextToLines(text string, m Measurer, maxWidth float64) []string {
	words := splitIntoWords(text)
	if len(words) == 0 {
		return []string{""}
	}
	if maxWidth <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	var currentLine string

	for _, word := range words {
		if m.Width(word) > maxWidth {
			if currentLine != "" {
				lines = append(lines, currentLine)
			}
			chunks := splitWord(word, m, maxWidth)
			lines = append(lines, chunks[:len(chunks)-1]...)
			currentLine = chunks[len(chunks)-1]
			continue
		}

		if currentLine == "" {
			currentLine = word
			continue
		}
		candidate := currentLine + " " + word
		if m.Width(candidate) <= maxWidth {
			currentLine = candidate
		} else {
			lines = append(lines, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}

// splitWord cuts an over-long word into pieces that fit maxWidth. Each
// piece holds at least one rune.
func splitWord(word string, m Measurer, maxWidth float64) []string {
	var chunks []string
	var cur []rune
	for _, r := range word {
		next := append(cur, r)
		if len(cur) > 0 && m.Width(string(next)) > maxWidth {
			chunks = append(chunks, string(cur))
			cur = []rune{r}
			continue
		}
		cur = next
	}
	if len(cur) > 0 {
		chunks = append(chunks, string(cur))
	}
	return chunks
}

// splitIntoWords splits text into words
func splitIntoWords(text string) []string {
	var words []string
	var currentWord strings.Builder

	for _, r := range text {
		if unicode.IsSpace(r) {
			if currentWord.Len() > 0 {
				words = append(words, currentWord.String())
				currentWord.Reset()
			}
		} else {
			currentWord.WriteRune(r)
		}
	}

	if currentWord.Len() > 0 {
		words = append(words, currentWord.String())
	}

	return words
}
