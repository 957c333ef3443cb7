package segmenter

import (
	"fmt"

	"github.com/xamgore/segtok"
)

// abbreviations matches span endings that should never end a sentence:
// well-known abbreviated words, single-character and digit-only spans, and
// capital initials in contexts that suggest a person's name or an author
// list. The word inventory lives in data/abbreviations.txt.
var abbreviations = segtok.NewPattern(fmt.Sprintf(`(?:
	    \b(?:%s)   # a known abbreviation,
	|   ^\S        # a single-character span,
	|   ^\d+       # a digit-only span,
	|   (?:        # or capital initials (A.-A, A.A, or A), prefixed with
	        \b(?: [Bb]y                    # a title suggesting a name,
	        |     [Cc](?:aptain|ommander)
	        |     [Dd]o[ck]tor
	        |     [Gg]eneral
	        |     [Mm](?:ag)?is(?:ter|s)
	        |     [Pp]rofessor
	        |     [Ss]eñor(?:it)?a?
	        )\s
	    |   (?:                            # an author list separator,
	                                       # unless the list item before it
	                                       # is itself a capital initial:
	            (?<! \b\p{Lu}\p{Lm} | \b\p{Lu} ) , (?:\s and)?
	        |   (?<! \b[\p{Lu},]\p{Lm} | \b[\p{Lu},] ) \s and
	        )\s
	    |   [\[(]                          # or an opening bracket;
	    )
	    (?: [\p{Lu}\p{Lt}]\p{Lm}? \. [%s]? )?  # the optional "A." part
	    [\p{Lu}\p{Lt}]\p{Lm}?                  # and the "A" itself
	)\z`, abbrevList, segtok.Hyphens), segtok.FreeSpacing)
