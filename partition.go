package segtok

import (
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// Partition is one span of a partitioning pass: either a pattern match or
// the gap between two neighbouring matches. Text is a sub-slice of the
// partitioned string, never a copy.
type Partition struct {
	Text  string
	Match bool
}

// Partitioner is a scanner over the spans of a text, as cut apart by a
// pattern. Spans alternate strictly between non-matches and matches,
// starting and ending with a non-match; the non-matches may be empty.
// Concatenating the spans of a full pass reproduces the input text.
//
// An empty input text yields no spans at all.
type Partitioner struct {
	text     string
	re       *regexp2.Regexp
	next     *regexp2.Match
	cur      Partition
	gapStart int // byte offset of the pending gap
	mStart   int // byte offset of the queued match, valid while inMatch
	byteOff  int // byte cursor for rune index conversion
	runeOff  int // rune index corresponding to byteOff
	inMatch  bool
	done     bool
}

// NewPartitioner starts a partitioning pass of pattern over text.
func NewPartitioner(pattern *Pattern, text string) *Partitioner {
	p := &Partitioner{text: text, re: pattern.Regexp()}
	if len(text) == 0 {
		p.done = true
		return p
	}
	m, err := p.re.FindStringMatch(text)
	if err != nil {
		panic("segtok: partitioning failed: " + err.Error())
	}
	p.next = m
	return p
}

// Next advances the scanner to the following span, returning false when the
// pass is complete. A pass is not restartable; create a new Partitioner
// instead.
func (p *Partitioner) Next() bool {
	if p.done {
		return false
	}
	if p.inMatch {
		end := p.byteAt(p.next.Index + p.next.Length)
		p.cur = Partition{Text: p.text[p.mStart:end], Match: true}
		p.gapStart = end
		m, err := p.re.FindNextMatch(p.next)
		if err != nil {
			panic("segtok: partitioning failed: " + err.Error())
		}
		p.next = m
		p.inMatch = false
		return true
	}
	if p.next != nil {
		p.mStart = p.byteAt(p.next.Index)
		p.cur = Partition{Text: p.text[p.gapStart:p.mStart]}
		p.inMatch = true
		return true
	}
	// the trailing gap, possibly empty
	p.cur = Partition{Text: p.text[p.gapStart:]}
	p.done = true
	return true
}

// Text returns the text of the span Next has advanced to.
func (p *Partitioner) Text() string {
	return p.cur.Text
}

// IsMatch reports whether the current span is a pattern match.
func (p *Partitioner) IsMatch() bool {
	return p.cur.Match
}

// byteAt converts a rune index, as reported by regexp2, into a byte offset.
// Requested indices never decrease within a pass, so the cursor only moves
// forward.
func (p *Partitioner) byteAt(runeIdx int) int {
	for p.runeOff < runeIdx && p.byteOff < len(p.text) {
		_, size := utf8.DecodeRuneInString(p.text[p.byteOff:])
		p.byteOff += size
		p.runeOff++
	}
	return p.byteOff
}

// PartitionAll runs a complete pass of pattern over text and collects the
// spans.
func PartitionAll(pattern *Pattern, text string) []Partition {
	p := NewPartitioner(pattern, text)
	var parts []Partition
	for p.Next() {
		parts = append(parts, p.cur)
	}
	return parts
}
