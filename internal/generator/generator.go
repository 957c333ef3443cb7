/*
Package generator (re-)generates the rune class tables and word list
alternations of the segtok module.

The rune inventories (sentence terminals, hyphens, apostrophes) are kept
in this file; the word lists live in "data/abbreviations.txt" and
"data/continuations.txt". Entries in the word list files are regular
expression fragments separated by whitespace; '#' starts a line comment.

Usage

The generator has just one option, a "verbose" flag. It is designed to be
called from the module root:

   go generate ./...

This rewrites "classes.go" and "segmenter/wordlists.go".

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/emirpasic/gods/lists/arraylist"
)

var logger = log.New(os.Stderr, "segtok generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

// The rune inventories emitted as character classes.
var classes = []struct {
	Name  string
	Doc   []string
	Runes []rune
}{
	{"SentenceTerminals",
		[]string{"lists the runes that may end a sentence."},
		[]rune(".!?‼‽⁇⁈⁉。﹒﹗！．？｡")},
	{"Hyphens",
		[]string{"lists the runes that may link compound words, with the",
			"ASCII hyphen-minus in the class-safe last position."},
		[]rune("­֊־༌᐀᠆‐‑‒⸗゠-")},
	{"Apostrophes",
		[]string{"lists apostrophe-like marks, including the ASCII",
			"single quote."},
		[]rune("'´ʹʼ’′")},
	{"NonQuoteApostrophes",
		[]string{"lists apostrophe-like marks that never double",
			"as quotation marks."},
		[]rune("´ʹʼ’′")},
}

// The word lists emitted as alternation constants.
var wordlists = []struct {
	Name string
	Doc  []string
	File string
}{
	{"abbrevList",
		[]string{"abbrevList is the alternation of known abbreviation forms, assembled",
			"from data/abbreviations.txt."},
		"data/abbreviations.txt"},
	{"continuationList",
		[]string{"continuationList is the alternation of lower-case words that usually",
			"continue, rather than start, a sentence, assembled from",
			"data/continuations.txt."},
		"data/continuations.txt"},
}

// loadWordList reads the whitespace-separated entries of a word list file,
// dropping '#' line comments.
func loadWordList(path string) (*arraylist.List, error) {
	if verbose {
		logger.Printf("reading %s", path)
	}
	defer timeTrack(time.Now(), "loading "+path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	entries := arraylist.New()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if pos := strings.IndexByte(line, '#'); pos >= 0 {
			line = line[:pos]
		}
		for _, entry := range strings.Fields(line) {
			entries.Add(entry)
		}
	}
	return entries, scanner.Err()
}

// --- Templates --------------------------------------------------------

var classesHeader = `package segtok

// This file has been generated -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2018, Norbert Pillmayer (norbert@pillmayer.com)

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)
`

var templateClassConsts = `
// Rune inventories, as character class innards for patterns.
const (
{{- range $i, $c := .}}{{if $i}}
{{end}}	// {{$c.Name}} {{range $j, $d := $c.Doc}}{{if $j}}
	// {{end}}{{$d}}{{end}}
	{{$c.Name}} = {{quote $c.Runes}}
{{- end}}
)
`

var templateRangeTables = `
// Range tables for the rune inventories.
// Will be initialized with SetupClasses().
// Clients can check with unicode.Is(..., rune)
var {{range $i, $c := .}}{{if $i}}, {{end}}{{lower $c.Name}}{{end}} *unicode.RangeTable

func setupClasses() {
{{range $i, $c := .}}
	// Range for class {{$c.Name}}
	{{lower $c.Name}} = rangetable.New({{runes $c.Runes}})
{{end -}}
}
`

var wordlistsHeader = `package segmenter

// This file has been generated -- you probably should NOT EDIT IT !
//
// BSD License, Copyright (c) 2018, Norbert Pillmayer (norbert@pillmayer.com)
`

var templateWordList = `
// {{range $j, $d := .Doc}}{{if $j}}
// {{end}}{{$d}}{{end}}
const {{.Name}} = {{alternation .Entries}}
`

var templateFuncs = template.FuncMap{
	"lower": func(name string) string {
		return strings.ToLower(name[:1]) + name[1:]
	},
	"quote": func(runes []rune) string {
		return fmt.Sprintf("%q", string(runes))
	},
	// runes renders an argument list of rune literals, 6 per line
	"runes": func(runes []rune) string {
		var b strings.Builder
		for i, r := range runes {
			if i > 0 {
				b.WriteString(", ")
				if i%6 == 0 {
					b.WriteString("\n\t\t")
				}
			}
			fmt.Fprintf(&b, "%q", r)
		}
		return b.String()
	},
	// alternation joins the entries with '|' into backquoted string
	// literals of moderate line length
	"alternation": func(entries *arraylist.List) string {
		var b strings.Builder
		b.WriteByte('`')
		col := 0
		it := entries.Iterator()
		for it.Next() {
			entry := it.Value().(string)
			if it.Index() > 0 {
				entry = "|" + entry
			}
			if col+len(entry) > 64 {
				b.WriteString("` +\n\t`")
				col = 0
			}
			b.WriteString(entry)
			col += len(entry)
		}
		b.WriteByte('`')
		return b.String()
	},
}

// --- Generation -------------------------------------------------------

func generateClasses(path string) error {
	if verbose {
		logger.Printf("writing %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteString(classesHeader); err != nil {
		return err
	}
	for _, text := range []string{templateClassConsts, templateRangeTables} {
		t := template.Must(template.New(path).Funcs(templateFuncs).Parse(text))
		if err := t.Execute(f, classes); err != nil {
			return err
		}
	}
	return nil
}

func generateWordLists(path string) error {
	if verbose {
		logger.Printf("writing %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteString(wordlistsHeader); err != nil {
		return err
	}
	t := template.Must(template.New(path).Funcs(templateFuncs).Parse(templateWordList))
	for _, list := range wordlists {
		entries, err := loadWordList(list.File)
		if err != nil {
			return err
		}
		data := struct {
			Name    string
			Doc     []string
			Entries *arraylist.List
		}{list.Name, list.Doc, entries}
		if err := t.Execute(f, data); err != nil {
			return err
		}
	}
	return nil
}

func timeTrack(start time.Time, name string) {
	if verbose {
		logger.Printf("%s took %s", name, time.Since(start))
	}
}

func main() {
	flag.BoolVar(&verbose, "v", false, "verbose output")
	flag.Parse()
	if err := generateClasses("classes.go"); err != nil {
		logger.Fatal(err)
	}
	if err := generateWordLists("segmenter/wordlists.go"); err != nil {
		logger.Fatal(err)
	}
	logger.Print("done")
}
