package segmenter

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func ExampleSplitSingle() {
	text := "This is a test. And a second sentence by Dr. Watson."
	for _, sentence := range SplitSingle(text, Config{}) {
		fmt.Printf("<%s>\n", sentence)
	}
	// Output: <This is a test.>
	// <And a second sentence by Dr. Watson.>
}

func expectSentences(t *testing.T, have, expected []string) {
	t.Helper()
	if len(have) != len(expected) {
		t.Fatalf("expected %d sentences, have %d: %q", len(expected), len(have), have)
	}
	for i := range expected {
		if have[i] != expected[i] {
			t.Errorf("sentence %d: expected %q, have %q", i, expected[i], have[i])
		}
	}
}

// testSplitSingle joins the sentences with spaces and expects SplitSingle
// to recover them.
func testSplitSingle(t *testing.T, sentences []string) {
	t.Helper()
	text := strings.Join(sentences, " ")
	expectSentences(t, SplitSingle(text, Config{}), sentences)
}

func TestSimpleSplit(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	testSplitSingle(t, []string{"This is a test."})
}

func TestNameInitials(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	testSplitSingle(t, []string{
		"Written by A. McArthur, K. Elvin, and D. Eden.",
		"This is Mr. A. Starr over there.",
		"B. Boyden is over there.",
	})
}

func TestAlphaListItems(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	testSplitSingle(t, []string{
		"This is figure A, B, and C.",
		"This is table A and B.",
		"That is item A, B.",
	})
}

func TestAuthorList(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	testSplitSingle(t, []string{
		"R. S. Kauffman, R. Ahmed, and B. N. Fields show stuff in their paper.",
	})
}

func TestLongBracketAbbreviation(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	testSplitSingle(t, []string{
		"This is expected, on the basis of (Olmsted, M. C., C. F. Anderson, " +
			"and M. T. Record, Jr. 1989. Proc. Natl. Acad. Sci. USA. 100:100), " +
			"to decrease sharply.",
	})
}

func TestContinuationWords(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	testSplitSingle(t, []string{
		"colonic colonization inhibits development of inflammatory lesions.",
		"to investigate whether an inf. of the pancreas was the case...",
		"though we hate to use capital lett. that usually separate sentences.",
	})
}

func TestInnerNames(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	testSplitSingle(t, []string{
		"Bla bla [Sim et al. (1981) Biochem. J. 193, 129-141].",
		"The adjusted (ml. min-1. 1.73 m-2) rate.",
	})
}

func TestSpeciesNames(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	testSplitSingle(t, []string{
		"Their presence was detected by transformation into S. lividans.",
		"Three subjects diagnosed as having something.",
	})
}

func TestToughSpeciesNames(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	testSplitSingle(t, []string{
		"The level of the genus Allomonas gen. nov. with so far the only species A. enterica known.",
	})
}

func TestEuropeanDates(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	testSplitSingle(t, []string{
		"Der Unfall am 24. Dezember 2016.",
		"Am 13. Jän. 2006 war es regnerisch.",
		"Am 13. 1. 2006 war es regnerisch.",
	})
}

func TestMiddleNameInitials(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	testSplitSingle(t, []string{
		"The administrative basis for Lester B. Pearson's foreign policy was developed later.",
		"This model was introduced by Dr. Edgar F. Codd after initial criticisms.",
	})
}

func TestNestedParentheses(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	testSplitSingle(t, []string{
		"Nested ((Parenthesis. (With words right (inside))) (More stuff. Uff, this is it!))",
		"In the Big City.",
	})
}

func TestParenthesesWithSentences(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	testSplitSingle(t, []string{
		"The segmenter segments on single lines or to consecutive lines.",
		"(If you want to extract sentences that cross newlines, remove those line-breaks.",
		"Segtok assumes your content has some minimal semantical meaning.)",
		"It gracefully handles this and similar issues.",
	})
}

func TestUnclosedBrackets(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	testSplitSingle(t, []string{
		"The medial preoptic area (MPOA), and 2) did not decrease Fos-lir.",
		"However, olfactory desensitizations did decrease Fos-lir.",
	})
}

func TestMultiline(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	text := "This is a\nmultiline sentence. And this is Mr.\nAbbrevation."
	expected := []string{"This is a\nmultiline sentence.", "And this is Mr.\nAbbrevation."}
	expectSentences(t, SplitMulti(text, Config{}), expected)
}

func TestLinebreakSplits(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	text := "This is a\nmultiline sentence."
	expectSentences(t, SplitSingle(text, Config{}), strings.Split(text, "\n"))
}

func TestTitleAuthorLines(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// "by" is a continuation word, so the spans first join and the
	// newline then splits them apart again
	text := "Folding Beijing\nby Hao Jingfang"
	expectSentences(t, SplitSingle(text, Config{}), strings.Split(text, "\n"))
}

func TestJoinOnLowercase(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	text := "This sentence. continues here."
	expectSentences(t, SplitSingle(text, Config{}),
		[]string{"This sentence.", "continues here."})
	expectSentences(t, SplitSingle(text, Config{JoinOnLowercase: true}),
		[]string{"This sentence. continues here."})
}

func TestShortSentenceLength(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	lines := []string{
		"The segmenter segments on single lines or to consecutive lines.",
		"(If you want to extract sentences that cross newlines, remove those line-breaks.",
		"Segtok assumes your content has some minimal semantical meaning.)",
		"It gracefully handles this and similar issues.",
	}
	text := strings.Join(lines, " ")
	// a large threshold lets the bracketed insertion join across the
	// terminal inside it
	expected := []string{
		lines[0],
		lines[1] + " " + lines[2],
		lines[3],
	}
	expectSentences(t, SplitSingle(text, Config{ShortSentenceLength: 500}), expected)
}

func TestSplitNewline(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	text := "One sentence per line.\n\n  Surrounding blanks are trimmed. \nNo splitting inside. Promised.\n"
	expected := []string{
		"One sentence per line.",
		"Surrounding blanks are trimmed.",
		"No splitting inside. Promised.",
	}
	expectSentences(t, SplitNewline(text), expected)
}
