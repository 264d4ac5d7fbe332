package bidi

import (
	"golang.org/x/text/unicode/bidi"
)

// Headers and header numbers of the following comment sections correspond to UAX#9.

// ---------------------------------------------------------------------------
// 3.3.4 Resolving Weak Types
//
// http://www.unicode.org/reports/tr9/#Resolving_Weak_Types

// ResolveWeak applies rules W1–W7 to an isolating run sequence. classes holds
// the processing classes of the whole paragraph and is changed in place.
// Positions not part of seq are left untouched.
func ResolveWeak(seq *IsolatingRunSequence, classes []bidi.Class) {
	T().Debugf("resolving weak types for %v", seq)
	resolveWeakTypes(seq, classes)
	resolveEuropeanNumbers(seq, classes)
}

// resolveWeakTypes applies W1–W6 in a single pass.
//
// Doing it in one pass will produce incorrect results where a "later" rule
// changes the class which an "earlier" rule has already seen as the previous
// class. Results of this pass must stay stable, so do not split it up into
// separate passes without bumping the major version.
func resolveWeakTypes(seq *IsolatingRunSequence, classes []bidi.Class) {
	s := borrowScratch()
	defer s.release()
	prevClass := seq.SOS
	lastStrongIsAL := false
	cur := seq.cursor()
	for i, ok := cur.next(); ok; i, ok = cur.next() {
		clz := classes[i]
		switch clz {
		case bidi.NSM:
			// W1. Examine each nonspacing mark (NSM) in the isolating run sequence, and
			//     change the type of the NSM to Other Neutral if the previous character
			//     is an isolate initiator or PDI, and to the type of the previous
			//     character otherwise.
			if isIsolateControl(prevClass) {
				classes[i] = bidi.ON
			} else {
				classes[i] = prevClass
			}
			if classes[i] == bidi.ET { // joins the pending run of ETs
				s.etRun = append(s.etRun, i)
			}
		case bidi.EN:
			if lastStrongIsAL {
				// W2. Search backward from each instance of a European number until
				//     the first strong type (R, L, AL, or sos) is found. If an AL is
				//     found, change the type of the European number to Arabic number.
				classes[i] = bidi.AN
			} else {
				// W5. A sequence of European terminators adjacent to European numbers
				//     changes to all European numbers.
				for _, j := range s.etRun {
					classes[j] = bidi.EN
				}
				s.etRun = s.etRun[:0]
			}
		case bidi.AL:
			// W3. Change all ALs to R.
			classes[i] = bidi.R
		case bidi.ES, bidi.CS:
			// W4. A single European separator between two European numbers changes
			//     to a European number. A single common separator between two numbers
			//     of the same type changes to that type.
			la := cur // look ahead on a copy of the cursor
			nextClass := seq.EOS
			for j, ok := la.next(); ok; j, ok = la.next() {
				if !IsRemovedByX9(classes[j]) {
					nextClass = classes[j]
					break
				}
			}
			classes[i] = separatorClass(prevClass, clz, nextClass)
		case bidi.ET:
			if prevClass == bidi.EN { // W5
				classes[i] = bidi.EN
			} else { // may be followed by an EN
				s.etRun = append(s.etRun, i)
			}
		default:
			if IsRemovedByX9(clz) {
				continue
			}
		}
		prevClass = classes[i]
		switch {
		case clz == bidi.AL:
			lastStrongIsAL = true
		case prevClass == bidi.L || prevClass == bidi.R:
			lastStrongIsAL = false
		}
		if prevClass != bidi.ET {
			// W6. Otherwise, separators and terminators change to Other Neutral.
			for _, j := range s.etRun {
				classes[j] = bidi.ON
			}
			s.etRun = s.etRun[:0]
		}
	}
	// W6 for ETs pending at the end of the sequence. An ET must not survive
	// the weak rules, keep this flush.
	for _, j := range s.etRun {
		classes[j] = bidi.ON
	}
}

// separatorClass is the table for W4, with W6 as the fallback.
//
//    EN ES EN → EN EN EN
//    EN CS EN → EN EN EN
//    AN CS AN → AN AN AN
func separatorClass(prev, sep, next bidi.Class) bidi.Class {
	switch {
	case prev == bidi.EN && next == bidi.EN:
		return bidi.EN
	case prev == bidi.AN && sep == bidi.CS && next == bidi.AN:
		return bidi.AN
	}
	return bidi.ON
}

// resolveEuropeanNumbers applies W7.
//
// W7. Search backward from each instance of a European number until the first
//     strong type (R, L, or sos) is found. If an L is found, then change the
//     type of the European number to L.
func resolveEuropeanNumbers(seq *IsolatingRunSequence, classes []bidi.Class) {
	lastStrongIsL := seq.SOS == bidi.L
	for _, run := range seq.Runs {
		for i := run.From; i < run.To; i++ {
			switch classes[i] {
			case bidi.EN:
				if lastStrongIsL {
					classes[i] = bidi.L
				}
			case bidi.L:
				lastStrongIsL = true
			case bidi.R, bidi.AL:
				lastStrongIsL = false
			}
		}
	}
}
