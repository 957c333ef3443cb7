package tokenizer

import (
	"unicode/utf8"

	"github.com/xamgore/segtok"
)

// SplitContractions splits recognized English contraction suffixes off the
// tokens of a list: "We'll" becomes "We" "'ll". The "n't" negations travel
// as one suffix, so "don't" becomes "do" "n't". Other tokens pass through
// unchanged, which makes the pass idempotent.
func SplitContractions(tokens []string) []string {
	res := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if len(token) <= 1 || !isContraction.Match(token) {
			res = append(res, token)
			continue
		}
		cut, size := lastApostrophe(token)
		if cut > 0 && token[cut-1] == 'n' && token[cut+size:] == "t" {
			cut-- // do|n't, not don|'t
		}
		if cut <= 0 {
			// a bare suffix, as produced by an earlier pass
			res = append(res, token)
			continue
		}
		res = append(res, token[:cut], token[cut:])
	}
	return res
}

// lastApostrophe returns the byte offset and length of the last
// apostrophe-like rune in token, or (-1, 0) if there is none.
func lastApostrophe(token string) (pos, size int) {
	pos = -1
	for i, r := range token {
		if segtok.IsApostrophe(r) {
			pos, size = i, utf8.RuneLen(r)
		}
	}
	return pos, size
}
