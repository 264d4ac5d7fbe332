/*
Command bidilevels resolves bidi classes and embedding levels for lines of text.

Every line is treated as a paragraph without explicit embeddings: all characters
are put on the paragraph level, and a single isolating run sequence spans the
whole line. Explicit formatting characters keep their classes, isolates are not
interpreted. This is sufficient to inspect rules W1–W7, N1–N2 and I1–I2 on
plain text.

Levels are raised by I1 and I2 according to the original classes, not the
resolved ones. A blank resolved to R between two R words stays on level 0
of an LTR paragraph.

Usage

	bidilevels [-dir ltr|rtl|auto|locale] [-upper-rtl] [-trace D|I|E] [text ...]

Without text arguments lines are read from stdin.

	-dir        paragraph direction. auto takes the first strong character
	            (default), locale uses the script of the user's locale
	-upper-rtl  treat uppercase letters as class R, a common testing convention
	-trace      trace level for the resolver

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
	"io"
	"log"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/uaxbidi/bidi"
	xbidi "golang.org/x/text/unicode/bidi"
)

var logger = log.New(os.Stderr, "bidilevels: ", 0)

func main() {
	dir := flag.String("dir", "auto", "Paragraph direction: ltr, rtl, auto or locale")
	upperRTL := flag.Bool("upper-rtl", false, "Treat uppercase letters as R")
	tlevel := flag.String("trace", "E", "Trace level")
	flag.Parse()
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(traceLevel(*tlevel))
	opts := options{upperRTL: *upperRTL}
	var err error
	if opts.direction, err = parseDirection(*dir); err != nil {
		logger.Println(err)
		flag.Usage()
		os.Exit(2)
	}
	if opts.direction == dirLocale {
		opts.direction = directionFromLocale()
	}
	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			resolveLine(os.Stdout, arg, opts)
		}
		return
	}
	if err := resolveLines(os.Stdin, os.Stdout, opts); err != nil {
		logger.Println(err)
		os.Exit(1)
	}
}

func resolveLines(r io.Reader, w io.Writer, opts options) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		resolveLine(w, sc.Text(), opts)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

func resolveLine(w io.Writer, line string, opts options) {
	para := plainParagraph(line, opts)
	max := para.Resolve()
	fmt.Fprintf(w, "text     : %s\n", line)
	fmt.Fprintf(w, "classes  : %s\n", classColumns(para.Original))
	fmt.Fprintf(w, "resolved : %s\n", classColumns(para.Processing))
	fmt.Fprintf(w, "levels   : %s\n", levelColumns(para.Levels))
	fmt.Fprintf(w, "max level: %d\n", max)
}

func classColumns(classes []xbidi.Class) string {
	cols := make([]string, len(classes))
	for i, c := range classes {
		cols[i] = bidi.ClassString(c)
	}
	return columns(cols)
}

func levelColumns(levels []bidi.Level) string {
	cols := make([]string, len(levels))
	for i, l := range levels {
		cols[i] = l.String()
	}
	return columns(cols)
}

// columns pads every entry to a width of 3, which fits all class names.
func columns(cols []string) string {
	var b strings.Builder
	for i, c := range cols {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%-3s", c)
	}
	return strings.TrimRight(b.String(), " ")
}

func traceLevel(l string) tracing.TraceLevel {
	switch l {
	case "D":
		return tracing.LevelDebug
	case "I":
		return tracing.LevelInfo
	case "E":
		return tracing.LevelError
	}
	return tracing.LevelError
}
