package segtok

import "testing"

func TestToUnixLinebreaks(t *testing.T) {
	cases := []struct{ input, expected string }{
		{"This\r\none.", "This\none."},
		{"This\rone.", "This\none."},
		{"This one.", "This\none."},
		{"This\none.", "This\none."},
		{"a\r\rb", "a\n\nb"},
	}
	for _, c := range cases {
		if have := ToUnixLinebreaks(c.input); have != c.expected {
			t.Errorf("expected %q, have %q", c.expected, have)
		}
	}
}

func TestNonUnixLinebreaks(t *testing.T) {
	for _, s := range []string{"\r", "\r\n", " "} {
		if !NonUnixLinebreaks.Match(s) {
			t.Errorf("expected %q to match", s)
		}
	}
	for _, s := range []string{"\n", " ", "\t", ""} {
		if NonUnixLinebreaks.Match(s) {
			t.Errorf("expected %q to not match", s)
		}
	}
}
