package bidi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// --- Bidi_Classes ----------------------------------------------------------

// We use the Bidi_Class values of package unicode/bidi of x/text unchanged.
// The explicit phase of UAX#9 does not delete characters removed by rule X9,
// it leaves them in the arrays and the resolver will step over them.

// ILLEGAL is an in-band value denoting an illegal class.
const ILLEGAL bidi.Class = 999

// ErrUnknownClass is returned when parsing a class abbreviation fails.
var ErrUnknownClass = errors.New("unknown bidi class")

const claszname = "LRENESETANCSBSWSONBNNSMALControlNumLRORLOLRERLEPDFLRIRLIFSIPDI"

var claszindex = [...]uint8{0, 1, 2, 4, 6, 8, 10, 12, 13, 14, 16, 18, 20, 23, 25, 32, 35, 38, 41, 44, 47, 50, 53, 56, 59, 62}

// ClassString returns a bidi class as a string, using the abbreviations of UAX#9.
func ClassString(c bidi.Class) string {
	if c == ILLEGAL {
		return "bidi_class(none)"
	}
	if c > bidi.PDI {
		return "bidi_class(" + strconv.FormatInt(int64(c), 10) + ")"
	}
	return claszname[claszindex[c]:claszindex[c+1]]
}

// ParseClass returns the class for a UAX#9 abbreviation, e.g. "NSM".
// Parsing is case-insensitive.
func ParseClass(s string) (bidi.Class, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "CONTROL" || s == "NUM" { // pseudo classes of x/text
		return ILLEGAL, fmt.Errorf("%w: %q", ErrUnknownClass, s)
	}
	for c := bidi.L; c <= bidi.PDI; c++ {
		if ClassString(c) == s {
			return c, nil
		}
	}
	return ILLEGAL, fmt.Errorf("%w: %q", ErrUnknownClass, s)
}

// ParseClasses parses a whitespace separated list of class abbreviations.
func ParseClasses(s string) ([]bidi.Class, error) {
	fields := strings.Fields(s)
	classes := make([]bidi.Class, 0, len(fields))
	for _, f := range fields {
		c, err := ParseClass(f)
		if err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, nil
}

// IsRemovedByX9 is true for classes which rule X9 removes from further
// processing: explicit embeddings, overrides, PDF and BN.
//
// The characters stay in the paragraph arrays; rules W1–N2 skip them for
// both reading context and writing.
func IsRemovedByX9(c bidi.Class) bool {
	switch c {
	case bidi.RLE, bidi.LRE, bidi.RLO, bidi.LRO, bidi.PDF, bidi.BN:
		return true
	}
	return false
}

// IsNI is true for neutral and isolate formatting characters (NI).
//
// http://www.unicode.org/reports/tr9/#NI
func IsNI(c bidi.Class) bool {
	switch c {
	case bidi.B, bidi.S, bidi.WS, bidi.ON, bidi.FSI, bidi.LRI, bidi.RLI, bidi.PDI:
		return true
	}
	return false
}

// IsStrong is true for L, R and AL.
func IsStrong(c bidi.Class) bool {
	return c == bidi.L || c == bidi.R || c == bidi.AL
}

func isIsolateControl(c bidi.Class) bool {
	return c == bidi.LRI || c == bidi.RLI || c == bidi.FSI || c == bidi.PDI
}

// ClassOf returns the Bidi_Class of a rune as listed in the UCD.
func ClassOf(r rune) bidi.Class {
	props, _ := bidi.LookupRune(r)
	return props.Class()
}

// ClassesOf returns the Bidi_Class for each rune of a string.
func ClassesOf(text string) []bidi.Class {
	classes := make([]bidi.Class, 0, len(text))
	for _, r := range text {
		classes = append(classes, ClassOf(r))
	}
	return classes
}

// classesString is a tracing helper.
func classesString(classes []bidi.Class) string {
	var b strings.Builder
	for i, c := range classes {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(ClassString(c))
	}
	return b.String()
}
