package segmenter

import "github.com/xamgore/segtok"

// continuations matches spans that start with a lower-case word which, in
// that form, almost never starts a sentence. The inventory was extracted
// from sentence starts in the PMC Open Access corpus and lives in
// data/continuations.txt.
var continuations = segtok.NewPattern(`^(?:` + continuationList + `)\b`)
