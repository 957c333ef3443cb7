package segmenter

// This file has been generated -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2018, Norbert Pillmayer (norbert@pillmayer.com)

// abbrevList is the alternation of known abbreviation forms, assembled
// from data/abbreviations.txt.
const abbrevList = `[Aa]pprox|Capt|[Cc]f|Col|Dr|[Ff]\.?e|[Ff]igs?|Gen|` +
	`[Ee]\.?g|[Ii]\.?e|[Ii]\.?v|Mag|[Mm]ed|Mr|Mrs|Mt|[Nn]at|No|[Nn]r|` +
	`[Pp]\.e|[Pp]hil|[Pp]rof|[Rr]er|[Ss]ci|Sgt|Sr|Sra|Srta|St|[Uu]niv|` +
	`[Vv]ol|[Vv]s|[Zz]\.B|Jän|Jan|Ene|Feb|Mär|Mar|Apr|Abr|May|Jun|Jul|` +
	`Aug|Sep|Sept|Oct|Okt|Nov|Dic|Dez|Dec|E\.U|U\.K|U\.S`

// continuationList is the alternation of lower-case words that usually
// continue, rather than start, a sentence, assembled from
// data/continuations.txt.
const continuationList = `and|are|between|by|from|has|into|is|of|or|` +
	`than|that|through|via|was|were|whether|with`
