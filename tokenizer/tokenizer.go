/*
Package tokenizer splits sentences into word-level tokens.

Content

The word tokenizer keeps linguistically meaningful units intact that naive
splitters cut apart: abbreviation marks and inner dots ("i.e.",
"www.example.com"), hyphenated compounds, apostrophes and possessives,
commas inside numbers ("123,456.99"), colons inside times and verses
("12:30"), DNA strand notation ("5′-ATGCAAAT-3′"), physical units with
their dimension ("m⁻¹") and chemical formulas ("H₁₂Si₅O₂"). Dangling
punctuation and the sentence terminal are spliced off as separate tokens.

The web tokenizer wraps the word tokenizer and additionally keeps URIs and
e-mail addresses as single tokens, un-escaping HTML entities everywhere
else. The symbol and space tokenizers are simpler splitters for clients
that do not need the full rule set.

SplitContractions and SplitPossessiveMarkers are post-passes over a token
list that detach apostrophe-led English suffixes ("We'll" to "We" "'ll",
"Fred's" to "Fred" "'s").

Typical Usage

Tokenizers take one sentence at a time, usually from package segmenter:

  for _, sentence := range segmenter.SplitMulti(text, segmenter.Config{}) {
      tokens := tokenizer.SplitContractions(tokenizer.WebTokens(sentence))
      ...
  }

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/xamgore/segtok"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// WordTokens splits a sentence into word-level tokens. Tokens are maximal
// alphanumeric runs with permitted inner punctuation, the leftover symbol
// runs between them, and the spliced-off sentence terminal and dangling
// punctuation marks. Hyphenated words broken across a linebreak are mended
// first, keeping the hyphen: "Hel- \n lo" tokenizes as "Hel-lo".
func WordTokens(sentence string) []string {
	pruned := hyphenatedLinebreak.Replace(sentence, "$1$2")
	var tokens []string
	var isWordBit []bool
	for _, span := range SpaceTokens(pruned) {
		for _, part := range segtok.PartitionAll(wordBits, span) {
			if part.Text == "" {
				continue
			}
			tokens = append(tokens, part.Text)
			isWordBit = append(isWordBit, part.Match)
		}
	}
	tracer().Debugf("%d raw tokens before splicing", len(tokens))
	tokens = spliceSentenceTerminal(tokens, isWordBit)
	return spliceDanglingPunctuation(tokens)
}

// spliceSentenceTerminal splits the sentence terminal off the borders of
// the token carrying it. Only the last three tokens are candidates, and
// only the nearest to the end of the sentence is split; single marks and
// ellipses stay as they are.
func spliceSentenceTerminal(tokens []string, isWordBit []bool) []string {
	window := 3
	for i := len(tokens) - 1; i >= 0 && i >= len(tokens)-window; i-- {
		word := tokens[i]
		first, firstSize := utf8.DecodeRuneInString(word)
		last, lastSize := utf8.DecodeLastRuneInString(word)
		// a clean word bit stops the scan: there is no terminal to
		// splice, and digging further would mangle inner dots (E. coli)
		candidate := isWordBit[i] && !strings.ContainsFunc(word, segtok.IsNonQuoteApostrophe) ||
			segtok.IsSentenceTerminal(last) ||
			segtok.IsSentenceTerminal(first)
		if !candidate {
			continue
		}
		if utf8.RuneCountInString(word) == 1 || word == "..." {
			break
		}
		if segtok.IsSentenceTerminal(last) {
			// stuff. -> stuff .
			tokens = splitToken(tokens, i, len(word)-lastSize)
		} else if segtok.IsSentenceTerminal(first) {
			// .stuff -> . stuff
			tokens = splitToken(tokens, i, firstSize)
		}
		break
	}
	return tokens
}

// spliceDanglingPunctuation splits the maximal trailing run of commas and
// (semi-)colons off every token, each mark becoming a token of its own.
func spliceDanglingPunctuation(tokens []string) []string {
	res := make([]string, 0, len(tokens))
	for _, word := range tokens {
		cut := len(word)
		for cut > 0 && (word[cut-1] == ',' || word[cut-1] == ';' || word[cut-1] == ':') {
			cut--
		}
		if cut == len(word) || utf8.RuneCountInString(word) <= 1 {
			res = append(res, word)
			continue
		}
		if cut > 0 {
			res = append(res, word[:cut])
		}
		for ; cut < len(word); cut++ {
			res = append(res, word[cut:cut+1])
		}
	}
	return res
}

// splitToken replaces tokens[i] by its two halves around byte offset cut,
// rebuilding the list.
func splitToken(tokens []string, i, cut int) []string {
	res := make([]string, 0, len(tokens)+1)
	res = append(res, tokens[:i]...)
	res = append(res, tokens[i][:cut], tokens[i][cut:])
	return append(res, tokens[i+1:]...)
}

// SymbolTokens splits a sentence into maximal alphanumeric runs and the
// symbol runs between them, discarding whitespace. It is a simpler
// alternative to WordTokens that attaches no punctuation to words at all.
func SymbolTokens(sentence string) []string {
	var tokens []string
	for _, span := range SpaceTokens(sentence) {
		for _, part := range segtok.PartitionAll(symbolic, span) {
			if part.Text != "" {
				tokens = append(tokens, part.Text)
			}
		}
	}
	return tokens
}

// SpaceTokens splits a sentence on runs of Unicode whitespace. The
// whitespace is not part of the result.
func SpaceTokens(sentence string) []string {
	return strings.FieldsFunc(sentence, unicode.IsSpace)
}
