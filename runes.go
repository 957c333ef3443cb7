package segtok

import (
	"sync"
	"unicode"
)

//go:generate go run ./internal/generator

// Character class fragments for building patterns. The bracketed fragments
// are complete classes; the inventories in the generated classes.go are
// class innards meant to be wrapped in brackets by the caller.
const (
	// Letter matches cased letters and modifiers (Ll, Lm, Lt, Lu). Scripts
	// without case, category Lo, are not part of word tokens.
	Letter = `[\p{Ll}\p{Lm}\p{Lt}\p{Lu}]`

	// Number matches decimal digits and number letters (Nd, Nl).
	Number = `[\p{Nd}\p{Nl}]`

	// AlphaNum matches any rune of Letter or Number.
	AlphaNum = `[\p{Ll}\p{Lm}\p{Lt}\p{Lu}\p{Nd}\p{Nl}]`

	// Space matches space separators and the tab.
	Space = `[\p{Zs}\t]`

	// Linebreak matches a single linebreak sequence of any platform,
	// including the Unicode line separator.
	Linebreak = `(?:\r\n|\n|\r| )`

	// Power matches superscript 1, 2 and 3, optionally signed with a
	// superscript minus.
	Power = `⁻?[¹²³]`

	// Subdigit matches a single subscript digit.
	Subdigit = `[₀-₉]`
)

var setupOnce sync.Once

// SetupClasses initializes the range tables for the rune inventories
// (sentence terminals, hyphens, apostrophes). The predicates below call it
// transparently; eager calls merely front-load the setup cost.
// (Concurrency-safe).
func SetupClasses() {
	setupOnce.Do(setupClasses)
}

// IsSentenceTerminal reports whether r may end a sentence: the full stop,
// exclamation and question marks, and their typographic and CJK variants.
func IsSentenceTerminal(r rune) bool {
	SetupClasses()
	return unicode.Is(sentenceTerminals, r)
}

// IsHyphen reports whether r is a hyphen that may link the parts of a
// compound word.
func IsHyphen(r rune) bool {
	SetupClasses()
	return unicode.Is(hyphens, r)
}

// IsApostrophe reports whether r is an apostrophe-like mark, including the
// ASCII single quote.
func IsApostrophe(r rune) bool {
	SetupClasses()
	return unicode.Is(apostrophes, r)
}

// IsNonQuoteApostrophe reports whether r is an apostrophe-like mark other
// than the ASCII single quote. These never double as quotation marks and
// may safely stay attached to words.
func IsNonQuoteApostrophe(r rune) bool {
	SetupClasses()
	return unicode.Is(nonQuoteApostrophes, r)
}
