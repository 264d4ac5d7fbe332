package bidi

import (
	"fmt"

	"golang.org/x/text/unicode/bidi"
)

// ---------------------------------------------------------------------------
// 3.3.6 Resolving Implicit Levels
//
// http://www.unicode.org/reports/tr9/#Resolving_Implicit_Levels
//
// Table 5. Resolving Implicit Levels
//
// Type  | Embedding Level
// ------+-----------------
//       |   Even    Odd
// L     |   EL      EL+1
// R     |   EL+1    EL
// AN    |   EL+2    EL+1
// EN    |   EL+2    EL+1

// ResolveLevels applies rules I1 and I2 to the levels of a paragraph and
// returns the maximum embedding level found.
//
// The rules are applied to the original classes of the paragraph, not to the
// classes resolved by W1–N2.
//
// original and levels must have the same length, otherwise ResolveLevels will
// panic. It will panic as well if a level would exceed MaxDepth, which may only
// happen for levels which have not been produced by a correct explicit phase.
func ResolveLevels(original []bidi.Class, levels []Level) Level {
	if len(original) != len(levels) {
		T().Errorf("bidi: %d classes for %d levels", len(original), len(levels))
		panic(fmt.Sprintf("bidi: number of classes (%d) differs from number of levels (%d)",
			len(original), len(levels)))
	}
	max := LTR()
	for i := range levels {
		var n uint8
		if levels[i].IsLTR() {
			// I1. For all characters with an even (left-to-right) embedding level,
			//     those of type R go up one level and those of type AN or EN go up
			//     two levels.
			switch original[i] {
			case bidi.R:
				n = 1
			case bidi.AN, bidi.EN:
				n = 2
			}
		} else {
			// I2. For all characters with an odd (right-to-left) embedding level,
			//     those of type L, EN or AN go up one level.
			switch original[i] {
			case bidi.L, bidi.EN, bidi.AN:
				n = 1
			}
		}
		if n > 0 {
			if err := levels[i].Raise(n); err != nil {
				T().Errorf("bidi: cannot raise level at position %d: %v", i, err)
				panic(fmt.Sprintf("bidi: level number error at position %d: %v", i, err))
			}
		}
		max = maxLevel(max, levels[i])
	}
	return max
}
