/*
Package golden runs tokenizer functions against JSON golden files.

A golden file holds an array of cases, each an input sentence paired with
the token sequence the tokenizer is expected to produce:

    [
      { "input": "This is a test.", "tokens": ["This", "is", "a", "test", "."] },
      ...
    ]

Running the owning test with -update rewrites the file with the current
output instead of comparing, for vetting diffs after a rule change.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package golden

import (
	"flag"
	"os"
	"slices"
	"testing"

	json "github.com/goccy/go-json"
)

var update = flag.Bool("update", false, "rewrite golden files with the current output")

// Case pairs an input sentence with its expected token sequence.
type Case struct {
	Input  string   `json:"input"`
	Tokens []string `json:"tokens"`
}

// Run checks tokenize against every case in the golden file at path, or
// rewrites the file from the current output when -update is set.
func Run(t *testing.T, path string, tokenize func(string) []string) {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var cases []Case
	if err := json.Unmarshal(raw, &cases); err != nil {
		t.Fatalf("%s: %v", path, err)
	}
	if *update {
		for i := range cases {
			cases[i].Tokens = tokenize(cases[i].Input)
		}
		out, err := json.MarshalIndent(cases, "", "  ")
		if err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil {
			t.Fatal(err)
		}
		t.Logf("%s rewritten with %d cases", path, len(cases))
		return
	}
	for _, c := range cases {
		if have := tokenize(c.Input); !slices.Equal(have, c.Tokens) {
			t.Errorf("%q:\nexpected %q\nhave     %q", c.Input, c.Tokens, have)
		}
	}
}
