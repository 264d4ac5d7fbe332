package bidi

import (
	"golang.org/x/text/unicode/bidi"
)

// ---------------------------------------------------------------------------
// 3.3.5 Resolving Neutral and Isolate Formatting Types
//
// http://www.unicode.org/reports/tr9/#Resolving_Neutral_Types

// ResolveNeutral applies rules N0–N2 to an isolating run sequence. classes holds
// the processing classes of the whole paragraph and is changed in place, levels
// holds the embedding levels of the paragraph and is read only.
func ResolveNeutral(seq *IsolatingRunSequence, levels []Level, classes []bidi.Class) {
	T().Debugf("resolving neutral types for %v", seq)
	s := borrowScratch()
	defer s.release()
	prevClass := seq.SOS
	cur := seq.cursor()
	for i, ok := cur.next(); ok; i, ok = cur.next() {
		if IsRemovedByX9(classes[i]) {
			continue // transparent, does not serve as context
		}
		resolveBracketPairs(seq, i, classes)
		if IsNI(classes[i]) {
			// Consume a run of consecutive NIs. Characters removed by X9 neither
			// extend nor break the run. The character ending the run is consumed
			// as well and will serve as prevClass for what follows.
			s.niRun = append(s.niRun, i)
			var nextClass bidi.Class
			for {
				j, ok := cur.next()
				if !ok {
					nextClass = seq.EOS
					break
				}
				i = j
				if IsRemovedByX9(classes[i]) {
					continue
				}
				nextClass = classes[i]
				if !IsNI(nextClass) {
					break
				}
				s.niRun = append(s.niRun, i)
			}
			// N1–N2
			newClass := neutralClass(prevClass, nextClass, levels[i])
			for _, j := range s.niRun {
				classes[j] = newClass
			}
			s.niRun = s.niRun[:0]
		}
		prevClass = classes[i]
	}
}

// N0. Process bracket pairs in an isolating run sequence sequentially in the
//     logical order of the opening brackets.
//
// Not implemented: bracket pairs (BD16) are not identified, brackets are
// resolved like any other neutral by N1 and N2. An implementation will need the
// paired-bracket properties of the original characters and must re-type both
// brackets of a pair before the NI run containing them is collected.
func resolveBracketPairs(seq *IsolatingRunSequence, at int, classes []bidi.Class) {
}

// neutralClass is the table for N1, with N2 as the fallback.
//
// N1. A sequence of NIs takes the direction of the surrounding strong text if
//     the text on both sides has the same direction. European and Arabic numbers
//     act as if they were R in terms of their influence on NIs. The start-of-sequence
//     (sos) and end-of-sequence (eos) types are used at isolating run sequence
//     boundaries.
//
//    L  NI L  → L
//    R  NI R  → R
//    R  NI AN → R,  R  NI EN → R
//    AN NI R  → R,  AN NI AN → R,  AN NI EN → R
//    EN NI R  → R,  EN NI AN → R,  EN NI EN → R
//
// N2. Any remaining NIs take the embedding direction.
//
// The embedding direction is taken from the level of the character which ends the
// run of NIs.
func neutralClass(prev, next bidi.Class, emb Level) bidi.Class {
	if prev == bidi.L && next == bidi.L {
		return bidi.L
	}
	if actsAsR(prev) && actsAsR(next) {
		return bidi.R
	}
	return emb.BidiClass()
}

func actsAsR(c bidi.Class) bool {
	return c == bidi.R || c == bidi.AN || c == bidi.EN
}
