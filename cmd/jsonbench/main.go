// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// jsonbench times parsing and serialization of JSON documents and generates
// random record files to time them against.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/golang/jsonvalue/internal/filemap"
	"github.com/golang/jsonvalue/internal/jsongen"
	"github.com/golang/jsonvalue/internal/log"
	"github.com/golang/jsonvalue/json"
)

type config struct {
	generate int
	output   string
	seed     int64
	indent   string
	check    bool
	jobs     int
	maxDepth int
}

func main() {
	var cfg config
	flag.IntVar(&cfg.generate, "generate", 0, "Write this many random records instead of timing inputs")
	flag.StringVar(&cfg.output, "o", "", "Output file for -generate (default stdout)")
	flag.Int64Var(&cfg.seed, "seed", 0, "Random seed for -generate (default current time)")
	flag.StringVar(&cfg.indent, "indent", "", "Indentation used when timing serialization")
	flag.BoolVar(&cfg.check, "check", false, "Verify that each document survives a serialize and parse round trip")
	flag.IntVar(&cfg.jobs, "j", 1, "Number of inputs timed concurrently")
	flag.IntVar(&cfg.maxDepth, "max_depth", json.DefaultMaxDepth, "Maximum nesting depth accepted by the parser")
	logLevel := flag.String("log_level", "info", "Log level: debug, info, warn, error")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]... [INPUTS]...\n\n%s\n", filepath.Base(os.Args[0]), strings.Join([]string{
			"Time parsing and serialization of JSON files.",
			"",
			"Each input file is memory mapped and parsed as a single document.",
			"If no inputs are specified, a stream of whitespace-separated documents",
			"is read from stdin and each one is timed.",
			"",
			"With -generate N, an array of N random records is written instead.",
			"",
			"Options:",
		}, "\n"))
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := log.SetLevel(*logLevel); err != nil {
		log.Fatalf("%v", err)
	}
	if err := run(context.Background(), cfg, flag.Args(), os.Stdin, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, cfg config, inputs []string, stdin io.Reader, stdout io.Writer) error {
	if cfg.generate > 0 {
		return generate(cfg, stdout)
	}
	t := timer{
		in:    json.UnmarshalOptions{MaxDepth: cfg.maxDepth},
		out:   json.MarshalOptions{Indent: cfg.indent},
		check: cfg.check,
	}
	if len(inputs) == 0 {
		return t.stream(stdin, stdout)
	}

	jobs := cfg.jobs
	if jobs < 1 {
		log.Warnf("-j %d is not positive, timing inputs one at a time", jobs)
		jobs = 1
	}
	results := make([]result, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, name := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := t.file(name)
			if err != nil {
				return errors.Wrap(err, name)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	var total result
	for _, r := range results {
		fmt.Fprintln(stdout, r)
		total.size += r.size
		total.parse += r.parse
		total.write += r.write
	}
	log.Infof("timed %d files, %d bytes: parse %v, write %v", len(results), total.size, total.parse, total.write)
	return nil
}

func generate(cfg config, stdout io.Writer) error {
	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debugf("generating %d records with seed %d", cfg.generate, seed)

	w := stdout
	if cfg.output != "" {
		f, err := os.Create(cfg.output)
		if err != nil {
			return errors.Wrap(err, "create output")
		}
		defer f.Close()
		w = f
	}
	if err := jsongen.WriteRecords(w, rand.New(rand.NewSource(seed)), cfg.generate); err != nil {
		return errors.Wrap(err, "write records")
	}
	if f, ok := w.(*os.File); ok && cfg.output != "" {
		return errors.Wrap(f.Close(), "close output")
	}
	return nil
}

// result holds the timings for one document.
type result struct {
	name  string
	size  int64
	parse time.Duration
	write time.Duration
}

func (r result) String() string {
	return fmt.Sprintf("%s: %d bytes, parse %v, write %v", r.name, r.size, r.parse, r.write)
}

// timer measures documents with fixed parse and serialize options.
type timer struct {
	in    json.UnmarshalOptions
	out   json.MarshalOptions
	check bool
}

func (t timer) file(name string) (result, error) {
	f, err := filemap.Open(name)
	if err != nil {
		return result{}, err
	}
	defer f.Close()
	log.Debugf("%s: opened %d bytes (mapped: %v)", name, f.Len(), f.Mapped())

	start := time.Now()
	v, err := t.in.Unmarshal(f.Bytes())
	if err != nil {
		return result{}, err
	}
	r := result{name: name, size: int64(f.Len()), parse: time.Since(start)}
	if r.write, err = t.write(v); err != nil {
		return result{}, err
	}
	return r, nil
}

func (t timer) stream(stdin io.Reader, stdout io.Writer) error {
	d := t.in.NewDecoder(stdin)
	for i := 0; ; i++ {
		off := d.InputOffset()
		start := time.Now()
		v, err := d.Decode()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, "document %d", i)
		}
		r := result{name: fmt.Sprintf("<stdin>[%d]", i), size: d.InputOffset() - off, parse: time.Since(start)}
		if r.write, err = t.write(v); err != nil {
			return errors.Wrapf(err, "document %d", i)
		}
		fmt.Fprintln(stdout, r)
	}
}

// write serializes v to io.Discard and reports how long it took.
func (t timer) write(v json.Value) (time.Duration, error) {
	start := time.Now()
	if err := t.out.Write(io.Discard, v); err != nil {
		return 0, err
	}
	elapsed := time.Since(start)
	if t.check {
		b, err := t.out.Marshal(v)
		if err != nil {
			return 0, err
		}
		back, err := t.in.Unmarshal(b)
		if err != nil {
			return 0, errors.Wrap(err, "reparse")
		}
		if !json.Equal(back, v) {
			return 0, errors.New("round trip changed the document")
		}
	}
	return elapsed, nil
}
