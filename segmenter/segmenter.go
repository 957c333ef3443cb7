/*
Package segmenter splits plain text into sentences.

Content

The segmenter finds sentence boundaries with hand-crafted rules instead of
a trained model. Candidate boundaries are sentence terminal marks trailed
by whitespace, and runs of newlines. Candidates are then vetted against
rules for abbreviations, name initials, European-style dates, enumerations
and bracketed insertions, and span joining continues until the remaining
boundaries are credible sentence ends.

The rules target Indo-European languages and are tuned for general and
scientific prose. Text is expected to use Unix linebreaks; convert with
segtok.ToUnixLinebreaks first if it may not.

Typical Usage

Clients call one of the three split functions, usually with the zero
config:

  for _, sentence := range segmenter.SplitSingle(text, segmenter.Config{}) {
      ...
  }

SplitSingle treats every newline as a sentence boundary, SplitMulti lets
sentences cross single newlines, and SplitNewline splits on newlines only.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package segmenter

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

// DefaultShortSentenceLength is the default for Config.ShortSentenceLength.
const DefaultShortSentenceLength = 55

// Config tunes the sentence joining rules. The zero value selects the
// defaults.
type Config struct {
	// JoinOnLowercase joins any candidate boundary that is followed by a
	// lower-case word, not only those where the preceding span ends in a
	// known abbreviation-like way.
	JoinOnLowercase bool

	// ShortSentenceLength is the span length, in runes, below which a
	// span bordering an unclosed bracket is assumed to not be a sentence
	// of its own. Raise it to join across larger bracketed insertions,
	// lower it to split more aggressively. Zero selects
	// DefaultShortSentenceLength.
	ShortSentenceLength int
}

func (cfg Config) shortLength() int {
	if cfg.ShortSentenceLength == 0 {
		return DefaultShortSentenceLength
	}
	return cfg.ShortSentenceLength
}

// SplitSingle splits text into sentences, treating every newline character
// as a sentence boundary. Hyphenated words at linebreaks stay intact.
func SplitSingle(text string, cfg Config) []string {
	var res []string
	for _, sentence := range sentences(segtok.PartitionAll(doNotCrossLines, text), cfg) {
		// joining rules may have glued spans across a newline
		res = append(res, strings.Split(sentence, "\n")...)
	}
	return res
}

// SplitMulti splits text into sentences which may contain non-consecutive
// newline characters. Consecutive newlines, i.e. paragraph breaks, always
// end a sentence.
func SplitMulti(text string, cfg Config) []string {
	return sentences(segtok.PartitionAll(mayCrossOneLine, text), cfg)
}

// SplitNewline splits text at newline characters and trims the lines,
// dropping lines without content. Use it for one-sentence-per-line input.
func SplitNewline(text string) []string {
	var res []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			res = append(res, line)
		}
	}
	return res
}

// sentences folds the spans of a candidate boundary partition into
// sentences, joining neighbouring spans wherever the rules vote against
// the boundary between them.
func sentences(parts []segtok.Partition, cfg Config) []string {
	spans := joinAbbreviations(parts)
	tracer().Debugf("folding %d candidate sentence spans", len(spans))
	short := cfg.shortLength()
	res := make([]string, 0, len(spans))
	var last string
	var open bool
	for _, current := range spans {
		if !open {
			last, open = current, true
			continue
		}
		join := (cfg.JoinOnLowercase || beforeLower.Match(last)) && lowerWord.Match(current) ||
			min(utf8.RuneCountInString(current), utf8.RuneCountInString(last)) < short &&
				(bracketJoin(last, current, '(', ')') || bracketJoin(last, current, '[', ']')) ||
			continuations.Match(current)
		if join {
			last += current
		} else {
			res = append(res, strings.TrimSpace(last))
			last = current
		}
	}
	if open {
		res = append(res, strings.TrimSpace(last))
	}
	return res
}

// joinAbbreviations assembles candidate boundary partitions into spans,
// gluing boundary markers that do not really end a sentence back onto
// their surroundings. Each returned span ends with its kept marker, except
// possibly the last.
func joinAbbreviations(parts []segtok.Partition) []string {
	res := make([]string, 0, len(parts)/2+1)
	var span strings.Builder
	for i, part := range parts {
		if !part.Match {
			span.WriteString(part.Text)
			continue
		}
		// spans alternate, a marker always follows a fragment
		prev := parts[i-1].Text
		var next string
		if i+1 < len(parts) {
			next = parts[i+1].Text
		}
		suppress := endsWithWhitespace(prev) ||
			strings.HasPrefix(part.Text, ".") && abbreviations.Match(prev) ||
			loneWord.Match(next) ||
			endsInDateDigits.Match(prev) && month.Match(next) ||
			middleInitialEnd.Match(prev) && upperWordStart.Match(next)
		span.WriteString(part.Text)
		if suppress {
			continue
		}
		res = append(res, span.String())
		span.Reset()
	}
	if span.Len() > 0 {
		res = append(res, span.String())
	}
	return res
}

// bracketJoin reports whether last ends inside an unclosed bracket pair
// and current looks like the continuation of the bracketed material: it
// closes the bracket, or last hangs in an "et al." citation, or both
// spans follow the upper-case reference list pattern.
func bracketJoin(last, current string, opener, closer byte) bool {
	return isOpen(last, opener, closer) &&
		(hasUnmatchedCloser(current, opener, closer) ||
			strings.HasSuffix(last, " et al. ") ||
			upperCaseEnd.Match(last) && upperCaseStart.Match(current))
}

// isOpen reports whether span leaves a bracket unclosed: counting from the
// first opener on, more openers than closers occur. Closers before the
// first opener do not count.
func isOpen(span string, opener, closer byte) bool {
	net, seen := 0, false
	for i := 0; i < len(span); i++ {
		switch span[i] {
		case opener:
			net++
			seen = true
		case closer:
			if seen {
				net--
			}
		}
	}
	return net > 0
}

// hasUnmatchedCloser reports whether span closes a bracket it never
// opened: counting back from the last closer, more closers than openers
// occur. Openers after the last closer do not count.
func hasUnmatchedCloser(span string, opener, closer byte) bool {
	net, seen := 0, false
	for i := len(span) - 1; i >= 0; i-- {
		switch span[i] {
		case closer:
			net++
			seen = true
		case opener:
			if seen {
				net--
			}
		}
	}
	return net > 0
}

func endsWithWhitespace(s string) bool {
	r, size := utf8.DecodeLastRuneInString(s)
	return size > 0 && unicode.IsSpace(r)
}
