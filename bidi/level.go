package bidi

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/text/unicode/bidi"
)

// MaxDepth is the maximum embedding level as defined by UAX#9 (BD2).
const MaxDepth = 125

// Level is an embedding level of a character. Even levels denote
// left-to-right, odd levels right-to-left direction.
//
// http://www.unicode.org/reports/tr9/#BD2
type Level uint8

// Errors for operations on levels.
var (
	ErrLevelOutOfRange = errors.New("embedding level out of range")
	ErrLevelOverflow   = errors.New("embedding level overflow")
	ErrLevelUnderflow  = errors.New("embedding level underflow")
)

// NewLevel creates a level, checking its range.
func NewLevel(n int) (Level, error) {
	if n < 0 || n > MaxDepth {
		return 0, fmt.Errorf("%w: %d", ErrLevelOutOfRange, n)
	}
	return Level(n), nil
}

// LevelsFrom creates a slice of levels.
func LevelsFrom(ns ...int) ([]Level, error) {
	levels := make([]Level, len(ns))
	for i, n := range ns {
		l, err := NewLevel(n)
		if err != nil {
			return nil, fmt.Errorf("level #%d: %w", i, err)
		}
		levels[i] = l
	}
	return levels, nil
}

// LTR is the paragraph level for left-to-right text.
func LTR() Level { return 0 }

// RTL is the paragraph level for right-to-left text.
func RTL() Level { return 1 }

// Number returns the level as an integer.
func (l Level) Number() int {
	return int(l)
}

// IsLTR is true for even levels.
func (l Level) IsLTR() bool {
	return l%2 == 0
}

// IsRTL is true for odd levels.
func (l Level) IsRTL() bool {
	return l%2 == 1
}

// BidiClass returns the strong class of the embedding direction: L for even
// levels, R for odd ones.
func (l Level) BidiClass() bidi.Class {
	if l.IsRTL() {
		return bidi.R
	}
	return bidi.L
}

// Raise raises a level by n. If the result would be greater than MaxDepth,
// the level is left unchanged and ErrLevelOverflow is returned.
func (l *Level) Raise(n uint8) error {
	if int(*l)+int(n) > MaxDepth {
		return fmt.Errorf("%w: %d+%d", ErrLevelOverflow, *l, n)
	}
	*l += Level(n)
	return nil
}

// Lower lowers a level by n. If the result would be negative,
// the level is left unchanged and ErrLevelUnderflow is returned.
func (l *Level) Lower(n uint8) error {
	if int(*l) < int(n) {
		return fmt.Errorf("%w: %d-%d", ErrLevelUnderflow, *l, n)
	}
	*l -= Level(n)
	return nil
}

func (l Level) String() string {
	return strconv.Itoa(int(l))
}

func maxLevel(a, b Level) Level {
	if a > b {
		return a
	}
	return b
}
