package segtok

// NonUnixLinebreaks matches any linebreak sequence except the plain Unix
// newline: Windows "\r\n", old Mac "\r", and the Unicode line separator.
// The \r\n alternative must come first so the pair is consumed as one.
var NonUnixLinebreaks = NewPattern(`\r\n|\r| `)

// ToUnixLinebreaks replaces all non-Unix linebreak sequences in text with
// newline characters. The segmenter only breaks on '\n'; feed text with
// foreign linebreak conventions through this first.
func ToUnixLinebreaks(text string) string {
	return NonUnixLinebreaks.Replace(text, "\n")
}
