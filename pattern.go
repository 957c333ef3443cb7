package segtok

import (
	"sync"

	"github.com/dlclark/regexp2"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// FreeSpacing compiles a pattern in free-spacing mode: unescaped whitespace
// outside character classes is insignificant and '#' starts a line comment.
const FreeSpacing = regexp2.IgnorePatternWhitespace

// Pattern is a lazily compiled regular expression. Patterns are meant to be
// package-level singletons: they compile exactly once, on first use, and are
// safe for concurrent matching afterwards. A malformed expression is a
// programming error and panics on first use.
type Pattern struct {
	expr string
	opts regexp2.RegexOptions
	once sync.Once
	re   *regexp2.Regexp
}

// NewPattern wraps expr for deferred compilation. The expression syntax is
// that of regexp2, which supports the lookaround assertions the segmentation
// rules are built from.
func NewPattern(expr string, opts ...regexp2.RegexOptions) *Pattern {
	p := &Pattern{expr: expr}
	for _, o := range opts {
		p.opts |= o
	}
	return p
}

// Regexp returns the compiled expression, compiling it on the first call.
func (p *Pattern) Regexp() *regexp2.Regexp {
	p.once.Do(func() {
		p.re = regexp2.MustCompile(p.expr, p.opts)
		tracer().Debugf("compiled pattern /%.32s.../", p.expr)
	})
	return p.re
}

// Match reports whether the pattern matches anywhere in text. Patterns carry
// their own anchors where anchoring is intended.
func (p *Pattern) Match(text string) bool {
	ok, err := p.Regexp().MatchString(text)
	if err != nil {
		// regexp2 reports errors for match timeouts only, and segtok
		// patterns have none set
		panic("segtok: pattern match failed: " + err.Error())
	}
	return ok
}

// Replace substitutes every match in text with the replacement template.
// $1, $2, ... expand to the text of the numbered capture groups.
func (p *Pattern) Replace(text, replacement string) string {
	out, err := p.Regexp().Replace(text, replacement, -1, -1)
	if err != nil {
		panic("segtok: pattern replace failed: " + err.Error())
	}
	return out
}
