package main

import (
	"fmt"
	"strings"
	"unicode"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/uaxbidi/bidi"
	"golang.org/x/text/language"
	xbidi "golang.org/x/text/unicode/bidi"
)

type direction int

const (
	dirAuto direction = iota
	dirLTR
	dirRTL
	dirLocale
)

type options struct {
	direction direction
	upperRTL  bool
}

func parseDirection(s string) (direction, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return dirAuto, nil
	case "ltr":
		return dirLTR, nil
	case "rtl":
		return dirRTL, nil
	case "locale":
		return dirLocale, nil
	}
	return dirAuto, fmt.Errorf("unknown paragraph direction %q", s)
}

// --- Locale -----------------------------------------------------------

// Scripts written from right to left. Scripts not listed are assumed to be LTR.
var rtlScripts = map[string]bool{
	"Adlm": true, "Arab": true, "Hebr": true, "Mand": true, "Nkoo": true,
	"Rohg": true, "Samr": true, "Syrc": true, "Thaa": true, "Yezi": true,
}

func directionFromLocale() direction {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		gtrace.CoreTracer.Errorf("%v", err)
		userLocale = "en-US"
		gtrace.CoreTracer.Infof("using default locale %v", userLocale)
	}
	return directionOfLocale(userLocale)
}

func directionOfLocale(locale string) direction {
	script, _ := language.Make(locale).Script()
	gtrace.CoreTracer.Infof("locale %v has script %v", locale, script)
	if rtlScripts[script.String()] {
		return dirRTL
	}
	return dirLTR
}

// --- Paragraph setup --------------------------------------------------

func classesOf(line string, upperRTL bool) []xbidi.Class {
	classes := make([]xbidi.Class, 0, len(line))
	for _, r := range line {
		if upperRTL && unicode.IsUpper(r) {
			classes = append(classes, xbidi.R)
			continue
		}
		classes = append(classes, bidi.ClassOf(r))
	}
	return classes
}

// firstStrong finds the first character of class L, R or AL, skipping
// characters between an isolate initiator and its matching PDI.
func firstStrong(classes []xbidi.Class) (xbidi.Class, bool) {
	isolates := 0
	for _, c := range classes {
		switch c {
		case xbidi.LRI, xbidi.RLI, xbidi.FSI:
			isolates++
		case xbidi.PDI:
			if isolates > 0 {
				isolates--
			}
		case xbidi.B:
			return xbidi.L, false
		case xbidi.L, xbidi.R, xbidi.AL:
			if isolates == 0 {
				return c, true
			}
		}
	}
	return xbidi.L, false
}

func baseLevel(classes []xbidi.Class, dir direction) bidi.Level {
	switch dir {
	case dirLTR:
		return bidi.LTR()
	case dirRTL:
		return bidi.RTL()
	}
	if c, ok := firstStrong(classes); ok && c != xbidi.L {
		return bidi.RTL()
	}
	return bidi.LTR()
}

// plainParagraph sets up a paragraph with a single isolating run sequence
// on the base level. Explicit embeddings are not evaluated.
func plainParagraph(line string, opts options) *bidi.Paragraph {
	original := classesOf(line, opts.upperRTL)
	base := baseLevel(original, opts.direction)
	levels := make([]bidi.Level, len(original))
	for i := range levels {
		levels[i] = base
	}
	var seqs []bidi.IsolatingRunSequence
	if len(original) > 0 {
		seq := bidi.NewSequence(base.BidiClass(), base.BidiClass(), bidi.LevelRun{From: 0, To: len(original)})
		seqs = append(seqs, *seq)
	}
	gtrace.CoreTracer.Debugf("paragraph of length %d on level %d", len(original), base)
	return bidi.NewParagraph(original, levels, seqs)
}
