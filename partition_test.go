package segtok

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/gtrace"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var digits = NewPattern(`\d+`)

func ExamplePartitioner() {
	p := NewPartitioner(digits, "ab12cd345")
	for p.Next() {
		fmt.Printf("'%s' match=%v\n", p.Text(), p.IsMatch())
	}
	// Output: 'ab' match=false
	// '12' match=true
	// 'cd' match=false
	// '345' match=true
	// '' match=false
}

func TestPartitionAlternation(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	parts := PartitionAll(digits, "ab12cd345")
	expected := []Partition{
		{"ab", false}, {"12", true}, {"cd", false}, {"345", true}, {"", false},
	}
	if len(parts) != len(expected) {
		t.Fatalf("expected %d spans, have %d: %v", len(expected), len(parts), parts)
	}
	for i, part := range parts {
		if part != expected[i] {
			t.Errorf("span %d: expected %v, have %v", i, expected[i], part)
		}
	}
}

func TestPartitionLeadingMatch(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	parts := PartitionAll(digits, "12ab")
	expected := []Partition{{"", false}, {"12", true}, {"ab", false}}
	if len(parts) != len(expected) {
		t.Fatalf("expected %d spans, have %d: %v", len(expected), len(parts), parts)
	}
	for i, part := range parts {
		if part != expected[i] {
			t.Errorf("span %d: expected %v, have %v", i, expected[i], part)
		}
	}
}

func TestPartitionNoMatch(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	parts := PartitionAll(digits, "hello")
	if len(parts) != 1 || parts[0].Match || parts[0].Text != "hello" {
		t.Errorf("expected the whole text as a single non-match, have %v", parts)
	}
}

func TestPartitionEmptyInput(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := NewPartitioner(digits, "")
	if p.Next() {
		t.Errorf("expected no spans for empty input, have '%s'", p.Text())
	}
}

func TestPartitionRuneOffsets(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// regexp2 reports rune indices; multi-byte runes exercise the cursor
	parts := PartitionAll(digits, "αβ12γδ345…")
	expected := []Partition{
		{"αβ", false}, {"12", true}, {"γδ", false}, {"345", true}, {"…", false},
	}
	if len(parts) != len(expected) {
		t.Fatalf("expected %d spans, have %d: %v", len(expected), len(parts), parts)
	}
	for i, part := range parts {
		if part != expected[i] {
			t.Errorf("span %d: expected %v, have %v", i, expected[i], part)
		}
	}
}

func TestPartitionReconstruct(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	inputs := []string{"", "no digits", "12", "a1b22c333d", "αβ12γ"}
	for _, input := range inputs {
		reassembled := ""
		for _, part := range PartitionAll(digits, input) {
			reassembled += part.Text
		}
		if reassembled != input {
			t.Errorf("spans of '%s' reassemble to '%s'", input, reassembled)
		}
	}
}
