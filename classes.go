package segtok

// This file has been generated -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2018, Norbert Pillmayer (norbert@pillmayer.com)

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Rune inventories, as character class innards for patterns.
const (
	// SentenceTerminals lists the runes that may end a sentence.
	SentenceTerminals = ".!?‼‽⁇⁈⁉。﹒﹗！．？｡"

	// Hyphens lists the runes that may link compound words, with the
	// ASCII hyphen-minus in the class-safe last position.
	Hyphens = "­֊־༌᐀᠆‐‑‒⸗゠-"

	// Apostrophes lists apostrophe-like marks, including the ASCII
	// single quote.
	Apostrophes = "'´ʹʼ’′"

	// NonQuoteApostrophes lists apostrophe-like marks that never double
	// as quotation marks.
	NonQuoteApostrophes = "´ʹʼ’′"
)

// Range tables for the rune inventories.
// Will be initialized with SetupClasses().
// Clients can check with unicode.Is(..., rune)
var sentenceTerminals, hyphens, apostrophes, nonQuoteApostrophes *unicode.RangeTable

func setupClasses() {

	// Range for class SentenceTerminals
	sentenceTerminals = rangetable.New('.', '!', '?', '‼', '‽', '⁇',
		'⁈', '⁉', '。', '﹒', '﹗', '！',
		'．', '？', '｡')

	// Range for class Hyphens
	hyphens = rangetable.New('­', '֊', '־', '༌', '᐀', '᠆',
		'‐', '‑', '‒', '⸗', '゠', '-')

	// Range for class Apostrophes
	apostrophes = rangetable.New('\'', '´', 'ʹ', 'ʼ', '’', '′')

	// Range for class NonQuoteApostrophes
	nonQuoteApostrophes = rangetable.New('´', 'ʹ', 'ʼ', '’', '′')
}
