package bidi

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
	"golang.org/x/text/unicode/bidi"
)

// --- Paragraph -------------------------------------------------------------

// ErrInvalidParagraph is returned by Paragraph.Check for input which violates
// the contract of the explicit phase.
var ErrInvalidParagraph = errors.New("invalid bidi paragraph")

// Paragraph holds the per-character arrays of a paragraph of text, as produced
// by the explicit phase of UAX#9, together with the isolating run sequences of
// the paragraph.
//
// Original is never written. Processing starts as a copy of Original and holds
// the resolved classes after Resolve. Levels are raised in place.
type Paragraph struct {
	Original   []bidi.Class
	Processing []bidi.Class
	Levels     []Level
	Sequences  []IsolatingRunSequence
}

// NewParagraph creates a paragraph, copying the original classes to a new
// processing array. levels are used, not copied.
func NewParagraph(original []bidi.Class, levels []Level, seqs []IsolatingRunSequence) *Paragraph {
	processing := make([]bidi.Class, len(original))
	copy(processing, original)
	return &Paragraph{
		Original:   original,
		Processing: processing,
		Levels:     levels,
		Sequences:  seqs,
	}
}

// Resolve resolves weak and neutral types for every isolating run sequence of
// the paragraph, then the implicit levels. Returns the maximum embedding level.
func (p *Paragraph) Resolve() Level {
	max := ResolveSequences(p.Original, p.Processing, p.Levels, p.Sequences)
	T().Infof("bidi paragraph of length %d resolved, max level = %d", len(p.Original), max)
	return max
}

// ResolveSequences runs W1–W7 and N0–N2 for each sequence in seqs, in order,
// and then I1–I2 for the whole paragraph. It returns the maximum embedding level.
//
// Sequences of a paragraph cover disjoint sets of positions, the order in which
// they are resolved does not change the result.
func ResolveSequences(original, processing []bidi.Class, levels []Level,
	seqs []IsolatingRunSequence) Level {
	for k := range seqs {
		seq := &seqs[k]
		ResolveWeak(seq, processing)
		ResolveNeutral(seq, levels, processing)
	}
	T().Debugf("resolved classes = %s", classesString(processing))
	return ResolveLevels(original, levels)
}

// Check validates a paragraph against the contract of the explicit phase:
// arrays of equal length, sequences with sos and eos being L or R, runs within
// bounds, and no position belonging to more than one sequence.
//
// Resolve does not call Check; it is meant for clients constructing paragraphs
// by other means than a conforming explicit phase.
func (p *Paragraph) Check() error {
	n := len(p.Original)
	if len(p.Processing) != n || len(p.Levels) != n {
		return fmt.Errorf("%w: %d classes, %d processing classes, %d levels",
			ErrInvalidParagraph, n, len(p.Processing), len(p.Levels))
	}
	for i, l := range p.Levels {
		if l > MaxDepth {
			return fmt.Errorf("%w: level %d at position %d", ErrInvalidParagraph, l, i)
		}
	}
	seen := hashset.New()
	for k, seq := range p.Sequences {
		if !isBoundaryClass(seq.SOS) || !isBoundaryClass(seq.EOS) {
			return fmt.Errorf("%w: sequence #%d has sos=%s, eos=%s",
				ErrInvalidParagraph, k, ClassString(seq.SOS), ClassString(seq.EOS))
		}
		for _, r := range seq.Runs {
			if r.From < 0 || r.To > n || r.From > r.To {
				return fmt.Errorf("%w: sequence #%d has run %v out of bounds",
					ErrInvalidParagraph, k, r)
			}
			for i := r.From; i < r.To; i++ {
				if seen.Contains(i) {
					return fmt.Errorf("%w: position %d is part of more than one run",
						ErrInvalidParagraph, i)
				}
				seen.Add(i)
			}
		}
	}
	return nil
}

func isBoundaryClass(c bidi.Class) bool {
	return c == bidi.L || c == bidi.R
}
