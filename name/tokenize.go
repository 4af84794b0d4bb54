package name

import (
	"fmt"
	"strings"
)

// tokenize groups consecutive input runes that share a label into tokens.
// Whitespace runs are dropped, and so are tokens that trimming empties.
func tokenize(full []rune, canvas []Label, trim bool, trimChars string) ([]string, []Label, error) {
	if len(full) != len(canvas) {
		return nil, nil, fmt.Errorf("%w: canvas has %d slots for %d characters", ErrValidation, len(canvas), len(full))
	}

	tokens := []string{}
	labels := []Label{}
	start := 0
	for i := 1; i <= len(full); i++ {
		if i < len(full) && canvas[i] == canvas[start] {
			continue
		}
		if label := canvas[start]; label != Whitespace {
			tok := string(full[start:i])
			if trim {
				tok = strings.Trim(tok, trimChars)
			}
			if tok != "" {
				tokens = append(tokens, tok)
				labels = append(labels, label)
			}
		}
		start = i
	}
	return tokens, labels, nil
}
