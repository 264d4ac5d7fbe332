package bidi

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/text/unicode/bidi"
)

// classes which may appear after the explicit phase
var vocabulary = []bidi.Class{
	bidi.L, bidi.R, bidi.AL, bidi.EN, bidi.ES, bidi.ET, bidi.AN, bidi.CS, bidi.NSM,
	bidi.B, bidi.S, bidi.WS, bidi.ON, bidi.BN, bidi.LRI, bidi.RLI, bidi.FSI, bidi.PDI,
	bidi.LRE, bidi.RLE, bidi.LRO, bidi.RLO, bidi.PDF,
}

type randomSequence struct {
	original []bidi.Class
	levels   []Level
	seq      *IsolatingRunSequence
}

// makeRandomSequence creates a paragraph of a single level, covered by a
// sequence made up of one or more runs.
func makeRandomSequence(rnd *rand.Rand) randomSequence {
	n := rnd.Intn(24)
	original := make([]bidi.Class, n)
	for i := range original {
		original[i] = vocabulary[rnd.Intn(len(vocabulary))]
	}
	level := Level(rnd.Intn(4))
	levels := make([]Level, n)
	for i := range levels {
		levels[i] = level
	}
	var runs []LevelRun
	for from := 0; from < n; {
		to := from + 1 + rnd.Intn(n-from)
		runs = append(runs, LevelRun{from, to})
		from = to
	}
	return randomSequence{
		original: original,
		levels:   levels,
		seq:      NewSequence(level.BidiClass(), level.BidiClass(), runs...),
	}
}

func TestWeakInvariants(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	rnd := rand.New(rand.NewSource(9))
	for k := 0; k < 500; k++ {
		rs := makeRandomSequence(rnd)
		classes := append([]bidi.Class(nil), rs.original...)
		ResolveWeak(rs.seq, classes)
		for i, c := range classes {
			if IsRemovedByX9(rs.original[i]) {
				if c != rs.original[i] {
					t.Fatalf("%s: X9-removed class at %d changed to %s",
						classesString(rs.original), i, ClassString(c))
				}
				continue
			}
			switch c {
			case bidi.AL, bidi.NSM, bidi.ES, bidi.CS, bidi.ET:
				t.Fatalf("%s: class %s at %d survived weak resolution: %s",
					classesString(rs.original), ClassString(c), i, classesString(classes))
			}
		}
		again := append([]bidi.Class(nil), classes...)
		ResolveWeak(rs.seq, again)
		if classesString(again) != classesString(classes) {
			t.Fatalf("%s: weak resolution not idempotent: %s ≠ %s",
				classesString(rs.original), classesString(classes), classesString(again))
		}
	}
}

func TestNeutralInvariants(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	rnd := rand.New(rand.NewSource(17))
	for k := 0; k < 500; k++ {
		rs := makeRandomSequence(rnd)
		classes := append([]bidi.Class(nil), rs.original...)
		ResolveWeak(rs.seq, classes)
		ResolveNeutral(rs.seq, rs.levels, classes)
		for i, c := range classes {
			if IsRemovedByX9(rs.original[i]) {
				if c != rs.original[i] {
					t.Fatalf("%s: X9-removed class at %d changed to %s",
						classesString(rs.original), i, ClassString(c))
				}
				continue
			}
			if IsNI(c) {
				t.Fatalf("%s: NI at %d survived neutral resolution: %s",
					classesString(rs.original), i, classesString(classes))
			}
		}
		again := append([]bidi.Class(nil), classes...)
		ResolveNeutral(rs.seq, rs.levels, again)
		if classesString(again) != classesString(classes) {
			t.Fatalf("%s: neutral resolution not idempotent: %s ≠ %s",
				classesString(rs.original), classesString(classes), classesString(again))
		}
	}
}

func TestImplicitInvariants(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	rnd := rand.New(rand.NewSource(23))
	for k := 0; k < 500; k++ {
		rs := makeRandomSequence(rnd)
		before := append([]Level(nil), rs.levels...)
		max := ResolveLevels(rs.original, rs.levels)
		for i, l := range rs.levels {
			if l < before[i] {
				t.Fatalf("level at %d has been lowered from %d to %d", i, before[i], l)
			}
			if l > max {
				t.Fatalf("level at %d is %d, greater than max level %d", i, l, max)
			}
		}
		// A second application only raises numbers on even levels again.
		after := append([]Level(nil), rs.levels...)
		ResolveLevels(rs.original, rs.levels)
		for i, l := range rs.levels {
			isNumber := rs.original[i] == bidi.EN || rs.original[i] == bidi.AN
			if !isNumber && l != after[i] {
				t.Fatalf("second application raised level of %s at %d",
					ClassString(rs.original[i]), i)
			}
		}
	}
}

func TestSequencesDoNotInterfere(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	rnd := rand.New(rand.NewSource(31))
	for k := 0; k < 200; k++ {
		a, b := makeRandomSequence(rnd), makeRandomSequence(rnd)
		n := len(a.original)
		original := append(append([]bidi.Class(nil), a.original...), b.original...)
		levels := append(append([]Level(nil), a.levels...), b.levels...)
		shifted := *b.seq
		shifted.Runs = nil
		for _, r := range b.seq.Runs {
			shifted.Runs = append(shifted.Runs, LevelRun{r.From + n, r.To + n})
		}
		forward := NewParagraph(original, append([]Level(nil), levels...),
			[]IsolatingRunSequence{*a.seq, shifted})
		backward := NewParagraph(original, append([]Level(nil), levels...),
			[]IsolatingRunSequence{shifted, *a.seq})
		if err := forward.Check(); err != nil {
			t.Fatal(err)
		}
		m1, m2 := forward.Resolve(), backward.Resolve()
		if m1 != m2 || classesString(forward.Processing) != classesString(backward.Processing) ||
			levelsString(forward.Levels) != levelsString(backward.Levels) {
			t.Fatalf("%s: result depends on order of sequences", classesString(original))
		}
	}
}
