/*
Package segtok provides rule-based sentence segmentation and word
tokenization for Indo-European languages.

Content

segtok splits plain text into sentences, and sentences into tokens, using
a set of hand-crafted regular expression rules instead of a trained model.
The segmenter is tuned for general and scientific prose and knows about
abbreviations, initials, European-style dates, enumerations and bracketed
insertions. The tokenizer is careful about hyphens, apostrophes, inner
dots, URLs, e-mail addresses, physical units and chemical formulas.

The root package provides the machinery shared by the rule packages:
Pattern, a lazily compiled regular expression which is concurrency-safe
after first use, and Partitioner, a scanner over the alternating
match/non-match spans of a text. It also carries the rune classes
(sentence terminals, hyphens, apostrophes) together with predicates
to test single code-points against them.

Sentence splitting lives in package segmenter, tokenization in package
tokenizer.

Typical Usage

Clients usually combine the two packages:

  for _, sentence := range segmenter.SplitMulti(text, segmenter.Config{}) {
      tokens := tokenizer.SplitContractions(tokenizer.WebTokens(sentence))
      ...
  }

Attention

Rune class range tables are initialized on first use. Clients may call

  SetupClasses()

beforehand to front-load the setup cost, but are not required to.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package segtok
