/*
segtok is a batch sentence splitter and word tokenizer.

It reads plain text files, splits them into sentences and optionally into
tokens, and prints the results to stdout in input order.

Usage

   segtok [options] [file ...]

Without file arguments, or with the argument "-", stdin is read. Files
ending in ".gz" are decompressed transparently.

The options are:

   -multi         let sentences cross single linebreaks; only blank lines
                  (two or more consecutive linebreaks) separate sentences
   -lowercase     join candidate sentences starting with a lower-case word
   -short n       length bound for the bracketed-fragment joining rule
   -tokens        print tokens, space-separated, one sentence per line
   -json          print one JSON record per sentence
   -web           keep URIs and e-mail addresses as single tokens
   -contractions  split contraction suffixes ("We'll" into "We 'll")
   -possessives   split possessive markers ("Fred's" into "Fred 's")
   -workers n     number of files processed concurrently

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	json "github.com/goccy/go-json"
	pool "github.com/jolestar/go-commons-pool"
	"github.com/klauspost/compress/gzip"
	"github.com/xamgore/segtok"
	"github.com/xamgore/segtok/segmenter"
	"github.com/xamgore/segtok/tokenizer"
	"golang.org/x/sync/errgroup"
)

var logger = log.New(os.Stderr, "segtok: ", 0)

type options struct {
	multi        bool
	lowercase    bool
	short        int
	tokens       bool
	json         bool
	web          bool
	contractions bool
	possessives  bool
	workers      int
}

func (opts options) config() segmenter.Config {
	return segmenter.Config{
		JoinOnLowercase:     opts.lowercase,
		ShortSentenceLength: opts.short,
	}
}

// record is one output line in -json mode.
type record struct {
	Sentence string   `json:"sentence"`
	Tokens   []string `json:"tokens,omitempty"`
}

// Per-file output buffers are short-lived; pool them across files.
type scratchPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScratchPool *scratchPool

func init() {
	globalScratchPool = &scratchPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &strings.Builder{}, nil
		})
	globalScratchPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScratchPool.opool = pool.NewObjectPool(globalScratchPool.ctx, factory, config)
}

func borrowScratch() *strings.Builder {
	o, _ := globalScratchPool.opool.BorrowObject(globalScratchPool.ctx)
	return o.(*strings.Builder)
}

func releaseScratch(b *strings.Builder) {
	b.Reset()
	_ = globalScratchPool.opool.ReturnObject(globalScratchPool.ctx, b)
}

func main() {
	opts := options{}
	flag.BoolVar(&opts.multi, "multi", false, "let sentences cross single linebreaks")
	flag.BoolVar(&opts.lowercase, "lowercase", false, "join sentences starting with a lower-case word")
	flag.IntVar(&opts.short, "short", segmenter.DefaultShortSentenceLength,
		"length bound for the bracketed-fragment joining rule")
	flag.BoolVar(&opts.tokens, "tokens", false, "print tokens instead of sentences")
	flag.BoolVar(&opts.json, "json", false, "print one JSON record per sentence")
	flag.BoolVar(&opts.web, "web", false, "keep URIs and e-mail addresses as single tokens")
	flag.BoolVar(&opts.contractions, "contractions", false, "split contraction suffixes")
	flag.BoolVar(&opts.possessives, "possessives", false, "split possessive markers")
	flag.IntVar(&opts.workers, "workers", runtime.GOMAXPROCS(0), "number of files processed concurrently")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}

	// front-load pattern compilation before the workers race for it
	segtok.SetupClasses()
	segmenter.SetupPatterns()
	tokenizer.SetupPatterns()

	outputs := make([]string, len(files))
	g := new(errgroup.Group)
	g.SetLimit(opts.workers)
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			text, err := readInput(name)
			if err != nil {
				return err
			}
			out := borrowScratch()
			defer releaseScratch(out)
			if err := process(text, opts, out); err != nil {
				return err
			}
			outputs[i] = out.String()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Fatal(err)
	}
	for _, out := range outputs {
		os.Stdout.WriteString(out)
	}
}

// readInput reads a file, stdin for "-", decompressing ".gz" files.
func readInput(name string) (string, error) {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
		if strings.HasSuffix(name, ".gz") {
			zr, err := gzip.NewReader(f)
			if err != nil {
				return "", err
			}
			defer zr.Close()
			r = zr
		}
	}
	raw, err := io.ReadAll(r)
	return string(raw), err
}

// process segments text and writes one line per sentence to out.
func process(text string, opts options, out *strings.Builder) error {
	text = segtok.ToUnixLinebreaks(text)
	var sentences []string
	if opts.multi {
		sentences = segmenter.SplitMulti(text, opts.config())
	} else {
		sentences = segmenter.SplitSingle(text, opts.config())
	}
	for _, sentence := range sentences {
		if sentence == "" {
			continue
		}
		switch {
		case opts.json:
			rec := record{Sentence: sentence}
			if opts.tokens {
				rec.Tokens = tokenize(sentence, opts)
			}
			line, err := json.Marshal(rec)
			if err != nil {
				return err
			}
			out.Write(line)
		case opts.tokens:
			out.WriteString(strings.Join(tokenize(sentence, opts), " "))
		default:
			out.WriteString(sentence)
		}
		out.WriteByte('\n')
	}
	return nil
}

// tokenize runs the configured tokenization pipeline over one sentence.
func tokenize(sentence string, opts options) []string {
	var tokens []string
	if opts.web {
		tokens = tokenizer.WebTokens(sentence)
	} else {
		tokens = tokenizer.WordTokens(sentence)
	}
	if opts.contractions {
		tokens = tokenizer.SplitContractions(tokens)
	}
	if opts.possessives {
		tokens = tokenizer.SplitPossessiveMarkers(tokens)
	}
	return tokens
}
