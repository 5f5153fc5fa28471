package core

import (
	"math/bits"
	"strconv"
)

// Fraction is a non-negative rational number Numerator/Denominator.
//
// Fractions are never reduced and never divided: comparisons cross-multiply
// into a 128-bit product, so equal ratios in different representations
// compare equal and no rounding can occur. Denominators are expected to be
// positive; a zero denominator makes the value compare like 0/0 and is only
// meaningful as an unreachable placeholder.
type Fraction struct {
	Numerator   Count
	Denominator Count
}

// Frac builds the fraction num/den.
func Frac(num, den Count) Fraction {
	return Fraction{Numerator: num, Denominator: den}
}

// Cmp returns -1, 0 or +1 as f is less than, equal to or greater than o.
//
// Complexity: O(1), two full 64×64→128 bit multiplications.
func (f Fraction) Cmp(o Fraction) int {
	lhsHi, lhsLo := bits.Mul64(uint64(f.Numerator), uint64(o.Denominator))
	rhsHi, rhsLo := bits.Mul64(uint64(o.Numerator), uint64(f.Denominator))

	switch {
	case lhsHi < rhsHi:
		return -1
	case lhsHi > rhsHi:
		return 1
	case lhsLo < rhsLo:
		return -1
	case lhsLo > rhsLo:
		return 1
	default:
		return 0
	}
}

// Less reports f < o.
func (f Fraction) Less(o Fraction) bool { return f.Cmp(o) < 0 }

// Equal reports f == o as ratios (2/4 equals 1/2).
func (f Fraction) Equal(o Fraction) bool { return f.Cmp(o) == 0 }

// AtLeast reports f >= o.
func (f Fraction) AtLeast(o Fraction) bool { return f.Cmp(o) >= 0 }

// String prints "n" when the denominator is 1 and "n/d" otherwise.
func (f Fraction) String() string {
	if f.Denominator == 1 {
		return strconv.FormatUint(uint64(f.Numerator), 10)
	}
	return strconv.FormatUint(uint64(f.Numerator), 10) + "/" + strconv.FormatUint(uint64(f.Denominator), 10)
}
