package tokenizer

import (
	"fmt"

	"github.com/xamgore/segtok"
)

// Bracketed classes over the rune inventories of the root package.
var (
	hyphen             = `[` + segtok.Hyphens + `]`
	apostrophe         = `[` + segtok.Apostrophes + `]`
	nonQuoteApostrophe = `[` + segtok.NonQuoteApostrophes + `]`
)

// hyphenatedLinebreak matches a word broken across a linebreak: an
// alphanumeric with a trailing hyphen, a single linebreak with optional
// surrounding spaces, and an alphanumeric on the next line. Group 1 keeps
// the hyphen, so replacing with $1$2 mends the word.
var hyphenatedLinebreak = segtok.NewPattern(fmt.Sprintf(
	`(%[1]s%[2]s)%[3]s*?%[4]s%[3]s*?(%[1]s)`,
	segtok.AlphaNum, hyphen, segtok.Space, segtok.Linebreak))

// wordBits is the token grammar: one maximal run of the pieces a word may
// be built from. Everything between two wordBits matches is a symbol run.
// The alternation order is part of the tokenization contract.
var wordBits = segtok.NewPattern(fmt.Sprintf(`(?:
	    %[1]s                  # a word rune, extended by
	    (?:
	        \. (?! \.\. )              # a dot, unless an ellipsis follows,
	    |   [,'] (?= %[1]s )           # a bridging comma or ASCII quote,
	    |   %[2]s? %[3]s (?= %[1]s )   # or a bridging hyphen, primed or not
	    )                              # as in DNA strands: 5′-ATGCAAAT-3′
	|   %[4]s : (?= %[4]s )    # a colon bridging digits: times, verses
	|   %[2]s (?! %[2]s )      # a non-repeated apostrophe mark
	|   s ' \z                 # the ASCII possessive at the token end
	|   \b [yzafpnµmcdhkMGTPEZY]?      # a physical unit, with an optional
	    %[5]s{1,3} %[6]s \z            # SI prefix and a dimension
	|   \b (?: [A-Z][a-z]? | [\)\]] )+ # a chemical formula bit with atom
	    %[7]s+ (?: [²³]? [⁺⁻] )?       # counts and an ionization state
	|   %[1]s                  # or a bare word rune
	)+`,
	segtok.AlphaNum, nonQuoteApostrophe, hyphen, segtok.Number,
	segtok.Letter, segtok.Power, segtok.Subdigit), segtok.FreeSpacing)

// symbolic matches maximal alphanumeric runs, for SymbolTokens.
var symbolic = segtok.NewPattern(segtok.AlphaNum + `+`)

// isContraction matches a whole token ending in a recognized English
// contraction suffix led by an apostrophe, as in "We'll" or "don't".
var isContraction = segtok.NewPattern(fmt.Sprintf(
	`^%[1]s+(?:%[2]s%[1]s+)*%[3]s(?:d|ll|m|re|s|t|ve)\z`,
	segtok.AlphaNum, hyphen, apostrophe))

// isPossessive matches a whole token ending in a possessive marker: an
// apostrophe and an s, in either order.
var isPossessive = segtok.NewPattern(fmt.Sprintf(
	`^%[1]s+(?:%[2]s%[1]s+)*(?:%[3]s[sS]|[sS]%[3]s)\z`,
	segtok.AlphaNum, hyphen, apostrophe))

// uriOrMail matches RFC3986-like URIs and simplified e-mail addresses,
// anchored at visual word borders: whitespace, quotes, brackets, or the
// edges of the sentence.
var uriOrMail = segtok.NewPattern(`
	(?<= ^ | [\s<"'(\[{] )        # at a visual left border

	(?:                           # RFC3986-like URIs:
	    [A-Za-z]+                 # required scheme
	    ://                       # required hier-part
	    (?: [^@\s]+ @ )?          # optional userinfo
	    (?: [\w-]+ \. )+ \w+      # required host
	    (?: : \d+ )?              # optional port
	    (?: / [^?\#\s'">)\]}]* )? # optional path
	    (?: \? [^\#\s'">)\]}]+ )? # optional query
	    (?: \# [^\s'">)\]}]+ )?   # optional fragment

	|                             # simplified e-mail addresses:
	    [\w.\#$%&'*+/=!?^`+"`"+`{|}~-]+  # local part
	    @                         # at the klammeraffe
	    (?: [\w-]+ \. )+          # (sub-)domain(s)
	    \w+                       # and a TLD

	)(?= [\s>"')\]}] | \z )       # at a visual right border`,
	segtok.FreeSpacing)

// SetupPatterns compiles all patterns of this package. Patterns compile on
// first use anyway; an eager call merely front-loads the cost.
// (Concurrency-safe).
func SetupPatterns() {
	for _, p := range []*segtok.Pattern{
		hyphenatedLinebreak, wordBits, symbolic,
		isContraction, isPossessive, uriOrMail,
	} {
		p.Regexp()
	}
}
