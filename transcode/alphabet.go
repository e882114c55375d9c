// Package transcode implements Component A: the pure mapping between byte
// sequences and sequences of visually-identical Unicode space characters in
// positional base-b notation (spec.md §4.1).
package transcode

import (
	"math"

	"github.com/arloliu/innamark/errs"
)

// Alphabet is an ordered sequence of distinct runes used as base-b digits.
// Index 0 is digit value 0, index 1 is digit value 1, and so on.
type Alphabet []rune

// DefaultAlphabet is the four Unicode space code points used when no
// alphabet is configured explicitly: U+2008 (PUNCTUATION SPACE), U+2009
// (THIN SPACE), U+202F (NARROW NO-BREAK SPACE), and U+205F (MEDIUM
// MATHEMATICAL SPACE). None of them render visibly differently from U+0020
// in common fonts.
var DefaultAlphabet = Alphabet{' ', ' ', ' ', ' '}

// Base returns the alphabet's size, i.e. the positional base.
func (a Alphabet) Base() int { return len(a) }

// Validate reports an error if the alphabet has fewer than 2 distinct
// characters. Duplicate characters are tolerated at the type level but
// make Index ambiguous, so callers that build an Alphabet by hand should
// avoid them.
func (a Alphabet) Validate() error {
	distinct := make(map[rune]bool, len(a))
	for _, r := range a {
		distinct[r] = true
	}
	if len(distinct) < 2 {
		return errs.ErrEmptyAlphabet
	}
	return nil
}

// Index returns the digit value of r in the alphabet, or -1 if r is not a
// member.
func (a Alphabet) Index(r rune) int {
	for i, c := range a {
		if c == r {
			return i
		}
	}
	return -1
}

// Contains reports whether r is a member of the alphabet.
func (a Alphabet) Contains(r rune) bool {
	return a.Index(r) >= 0
}

// DigitsPerByte returns ceil(8 / log2(base)), the number of alphabet
// characters needed to represent one input byte. The default alphabet
// (base 4) yields 4 digits per byte.
func DigitsPerByte(base int) int {
	return int(math.Ceil(8 / math.Log2(float64(base))))
}
