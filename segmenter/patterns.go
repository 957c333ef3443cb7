package segmenter

import (
	"fmt"

	"github.com/xamgore/segtok"
)

// boundaryPattern matches candidate sentence boundaries: a sentence
// terminal mark with optional right quote and closing brackets, trailed by
// whitespace, or a run of at least n consecutive newline characters.
func boundaryPattern(n int) *segtok.Pattern {
	return segtok.NewPattern(fmt.Sprintf(`(?:
	    [%s]       # a sentence terminal,
	    ['’"”]?    # an optional right quote,
	    [\]\)]*    # optional closing brackets, and
	    \s+        # the whitespace separating it from the next sentence
	|
	    \n{%d,}    # or consecutive newlines
	)`, segtok.SentenceTerminals, n), segtok.FreeSpacing)
}

// Candidate boundaries for SplitSingle and SplitMulti.
var doNotCrossLines = boundaryPattern(1)
var mayCrossOneLine = boundaryPattern(2)

// beforeLower matches span endings which make a following lower-case word
// plausible inside one sentence: a terminal inside quotes or brackets
// ("Hello!" she said.), or a dotted one-letter or species-style
// abbreviation (S. lividans).
var beforeLower = segtok.NewPattern(fmt.Sprintf(`(?:
	    [%s]
	    (?: "[)\]]*    # a terminal inside a quotation, or
	    |   [)\]]+     # inside brackets,
	    )
	|   \b(?:spp|\p{L}\p{Ll}?)\.  # or a dotted short abbreviation,
	)\s+\z                        # at the very end of the span`,
	segtok.SentenceTerminals), segtok.FreeSpacing)

// lowerWord matches a lower-case (possibly hyphenated) word at the start
// of a span.
var lowerWord = segtok.NewPattern(`^\p{Ll}+[` + segtok.Hyphens + `]?\p{Ll}*\b`)

// loneWord matches a span that consists of a single lower-case word,
// possibly with digits or hyphens, such as the species part of a
// binominal name.
var loneWord = segtok.NewPattern(`^\p{Ll}+[\p{Ll}\p{Nd}` + segtok.Hyphens + `]*\z`)

// endsInDateDigits and month detect European-style date splits:
// "am 13. Jän. 2006" should keep the day digits and the month together.
var endsInDateDigits = segtok.NewPattern(`\b[0123]?[0-9]\z`)
var month = segtok.NewPattern(
	`^(?:J[äa]n|Ene|Feb|M[äa]r|A[pb]r|May|Jun|Jul|Aug|Sep|O[ck]t|Nov|D[ei][cz]|0?[1-9]|1[012])`)

// middleInitialEnd and upperWordStart detect middle name initials:
// "Lester B. Pearson" should not split after "B.".
var middleInitialEnd = segtok.NewPattern(`\b\p{Lu}\p{Ll}+\W+\p{Lu}\z`)
var upperWordStart = segtok.NewPattern(`^\p{Lu}\p{Ll}+\b`)

// upperCaseEnd and upperCaseStart detect reference list chains inside
// brackets, as in "(Olmsted, M. C. 1989. Proc. Natl. Acad. Sci. USA)".
var upperCaseEnd = segtok.NewPattern(`\b[\p{Lu}\p{Lt}]\p{L}*\.\s+\z`)
var upperCaseStart = segtok.NewPattern(`^(?:(?:\(\d{4}\)\s)?[\p{Lu}\p{Lt}]\p{L}*|\d+)[\.,:]\s+`)

// SetupPatterns compiles all patterns of this package. Patterns compile on
// first use anyway; an eager call merely front-loads the cost.
// (Concurrency-safe).
func SetupPatterns() {
	for _, p := range []*segtok.Pattern{
		doNotCrossLines, mayCrossOneLine, beforeLower, lowerWord, loneWord,
		endsInDateDigits, month, middleInitialEnd, upperWordStart,
		upperCaseEnd, upperCaseStart, abbreviations, continuations,
	} {
		p.Regexp()
	}
}
