package tokenizer

import (
	"unicode/utf8"

	"github.com/xamgore/segtok"
)

// SplitPossessiveMarkers splits possessive s markers off the tokens of a
// list: "Fred's" becomes "Fred" "'s" and "Charles'" becomes "Charles" "'".
// Other tokens pass through unchanged, which makes the pass idempotent.
func SplitPossessiveMarkers(tokens []string) []string {
	res := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !isPossessive.Match(token) {
			res = append(res, token)
			continue
		}
		last, lastSize := utf8.DecodeLastRuneInString(token)
		prev, prevSize := utf8.DecodeLastRuneInString(token[:len(token)-lastSize])
		var cut int
		switch {
		case isS(last) && segtok.IsApostrophe(prev):
			cut = len(token) - lastSize - prevSize // Fred|'s
		case isS(prev) && segtok.IsApostrophe(last):
			cut = len(token) - lastSize // Charles|'
		default:
			res = append(res, token)
			continue
		}
		res = append(res, token[:cut], token[cut:])
	}
	return res
}

func isS(r rune) bool {
	return r == 's' || r == 'S'
}
