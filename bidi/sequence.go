package bidi

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// --- Level runs and isolating run sequences --------------------------------

// LevelRun is a contiguous range of text positions within a paragraph, with
// From included and To not included.
//
// http://www.unicode.org/reports/tr9/#BD7
type LevelRun struct {
	From, To int
}

// Len returns the number of text positions of a level run.
func (r LevelRun) Len() int {
	if r.To < r.From {
		return 0
	}
	return r.To - r.From
}

func (r LevelRun) String() string {
	return fmt.Sprintf("[%d…%d)", r.From, r.To)
}

// IsolatingRunSequence is a sequence of level runs, connected by matching
// isolate initiators and PDIs. It is the unit of work for rules W1–N2.
//
// SOS and EOS are the strong classes at the start and the end of the
// sequence. They are computed by the explicit phase and will be either L or R.
//
// http://www.unicode.org/reports/tr9/#BD13
type IsolatingRunSequence struct {
	Runs []LevelRun
	SOS  bidi.Class
	EOS  bidi.Class
}

// NewSequence creates an isolating run sequence from a start-of-sequence class,
// an end-of-sequence class and level runs.
func NewSequence(sos, eos bidi.Class, runs ...LevelRun) *IsolatingRunSequence {
	return &IsolatingRunSequence{Runs: runs, SOS: sos, EOS: eos}
}

// Len returns the number of text positions covered by the sequence.
func (seq *IsolatingRunSequence) Len() int {
	n := 0
	for _, r := range seq.Runs {
		n += r.Len()
	}
	return n
}

// Indices returns the text positions of a sequence in logical order.
func (seq *IsolatingRunSequence) Indices() []int {
	inx := make([]int, 0, seq.Len())
	c := seq.cursor()
	for i, ok := c.next(); ok; i, ok = c.next() {
		inx = append(inx, i)
	}
	return inx
}

func (seq *IsolatingRunSequence) String() string {
	var b strings.Builder
	b.WriteString(ClassString(seq.SOS))
	b.WriteString(" ⟨")
	for i, r := range seq.Runs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.String())
	}
	b.WriteString("⟩ ")
	b.WriteString(ClassString(seq.EOS))
	return b.String()
}

func (seq *IsolatingRunSequence) cursor() indexCursor {
	return indexCursor{runs: seq.Runs}
}

// indexCursor iterates over the flattened text positions of an isolating run
// sequence. It is a small value type; copying it yields an independent cursor,
// which is what rules W4 and N1 use to look ahead.
type indexCursor struct {
	runs []LevelRun
	run  int // current run
	off  int // offset within current run
}

func (c *indexCursor) next() (int, bool) {
	for c.run < len(c.runs) {
		r := c.runs[c.run]
		if c.off < r.Len() {
			i := r.From + c.off
			c.off++
			return i, true
		}
		c.run++
		c.off = 0
	}
	return -1, false
}
