package core

// QualityKind tags the representation held by a Quality.
type QualityKind uint8

const (
	// RationalQuality marks a Quality holding an exact Fraction
	// (highest-averages quotients such as v/(s+1)).
	RationalQuality QualityKind = iota

	// IntegerQuality marks a Quality holding a plain Count
	// (surplus scores such as v·N − s·V).
	IntegerQuality
)

// Quality is the score a criterion assigns to one party for the next seat.
// Higher is better. Values of either kind compare with each other; an
// integer n orders exactly like the fraction n/1.
type Quality struct {
	kind  QualityKind
	ratio Fraction
	n     Count
}

// Ratio returns a rational Quality num/den.
func Ratio(num, den Count) Quality {
	return Quality{kind: RationalQuality, ratio: Frac(num, den)}
}

// Integer returns an integer Quality.
func Integer(n Count) Quality {
	return Quality{kind: IntegerQuality, n: n}
}

// Kind returns the representation tag.
func (q Quality) Kind() QualityKind { return q.kind }

// Fraction returns q as a fraction; integers become n/1.
func (q Quality) Fraction() Fraction {
	if q.kind == IntegerQuality {
		return Frac(q.n, 1)
	}
	return q.ratio
}

// Cmp orders two qualities (-1, 0, +1).
func (q Quality) Cmp(o Quality) int {
	if q.kind == IntegerQuality && o.kind == IntegerQuality {
		switch {
		case q.n < o.n:
			return -1
		case q.n > o.n:
			return 1
		default:
			return 0
		}
	}
	return q.Fraction().Cmp(o.Fraction())
}

// String prints the underlying number.
func (q Quality) String() string { return q.Fraction().String() }
