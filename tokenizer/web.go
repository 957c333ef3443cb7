package tokenizer

import (
	"html"

	"github.com/xamgore/segtok"
)

// WebTokens splits a sentence like WordTokens, but keeps URIs and e-mail
// addresses as single tokens and un-escapes HTML entities everywhere else.
func WebTokens(sentence string) []string {
	var tokens []string
	for _, part := range segtok.PartitionAll(uriOrMail, sentence) {
		if part.Match {
			tokens = append(tokens, part.Text)
		} else if part.Text != "" {
			tokens = append(tokens, WordTokens(html.UnescapeString(part.Text))...)
		}
	}
	return tokens
}
