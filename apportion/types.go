package apportion

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strings"

	"github.com/katalvlaran/apportion/core"
)

// Sentinel errors returned by the formula library.
var (
	// ErrLengthMismatch indicates votes and seats do not describe the same parties.
	ErrLengthMismatch = errors.New("apportion: votes and seats must have equal length")

	// ErrUnknownMethod indicates an unsupported Method value or name.
	ErrUnknownMethod = errors.New("apportion: unknown method")

	// ErrTooLarge indicates vote and seat totals whose products do not fit
	// in 64 bits, see MaxProduct.
	ErrTooLarge = errors.New("apportion: votes and seats too large for exact arithmetic")
)

// MaxProduct bounds the input of every formula: 4·V·N, with V the total
// number of votes and N the number of seats (including seats already
// awarded), must not exceed it. Scores and thresholds are computed in
// 64-bit integers below this bound.
const MaxProduct core.Count = math.MaxUint64

// LargeBodySeats is the legal boundary between the surplus rule and the
// averages rule: bodies with at least this many seats use averages.
const LargeBodySeats core.Count = 19

// Criterion scores one party for the next seat. ok=false means the party is
// not eligible. A criterion only sees parties that still have candidates.
type Criterion func(v core.Votes, s core.Seats) (q core.Quality, ok bool)

// Method names an apportionment formula.
type Method int

const (
	// MethodAuto selects MethodAverage or MethodSurplus by body size.
	MethodAuto Method = iota
	// MethodAverage is the highest-averages (D'Hondt) rule.
	MethodAverage
	// MethodSurplus is the largest-surplus rule for small bodies.
	MethodSurplus
	// MethodNational is D'Hondt with a one-whole-seat threshold.
	MethodNational
	// MethodBongaerts is the 1925–1933 national rule.
	MethodBongaerts
	// Method1918 is the archaic rule with a ½ quota threshold.
	Method1918
	// Method1922 is the archaic rule with a ¾ quota threshold.
	Method1922
)

var methodNames = [...]string{
	MethodAuto:      "auto",
	MethodAverage:   "average",
	MethodSurplus:   "surplus",
	MethodNational:  "national",
	MethodBongaerts: "bongaerts",
	Method1918:      "1918",
	Method1922:      "1922",
}

// String returns the canonical method name.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// ParseMethod resolves a method name (case-insensitive). Besides the
// canonical names it accepts "dhondt" and "averages" for MethodAverage,
// "hamilton" and "surpluses" for MethodSurplus and "" for MethodAuto.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return MethodAuto, nil
	case "average", "averages", "dhondt":
		return MethodAverage, nil
	case "surplus", "surpluses", "hamilton":
		return MethodSurplus, nil
	case "national":
		return MethodNational, nil
	case "bongaerts":
		return MethodBongaerts, nil
	case "1918":
		return Method1918, nil
	case "1922":
		return Method1922, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// mustShape is checkShape for the primitives, which report contract
// violations by panicking.
func mustShape(votes []core.Votes, seats []core.Seats) {
	if err := checkShape(votes, seats); err != nil {
		panic(err)
	}
}

// checkRange rejects inputs whose totals would wrap: the vote sum itself
// and 4·V·max(N,1), the largest product any formula forms.
func checkRange(total core.Count, votes []core.Votes, seats []core.Seats) error {
	var v, carry uint64
	for _, x := range votes {
		v, carry = bits.Add64(v, uint64(x), 0)
		if carry != 0 {
			return fmt.Errorf("%w: vote total exceeds 64 bits", ErrTooLarge)
		}
	}
	n, carry := bits.Add64(uint64(total), uint64(core.TotalSeats(seats)), 0)
	if carry != 0 {
		return fmt.Errorf("%w: %d seats", ErrTooLarge, total)
	}
	hi, lo := bits.Mul64(v, max(n, 1))
	if hi != 0 || lo > uint64(MaxProduct)/4 || n > uint64(MaxProduct)/4 {
		return fmt.Errorf("%w: %d votes, %d seats", ErrTooLarge, v, n)
	}
	return nil
}

// checkShape rejects mismatched parallel slices.
func checkShape(votes []core.Votes, seats []core.Seats) error {
	if len(votes) != len(seats) {
		return fmt.Errorf("%w: %d votes, %d seats", ErrLengthMismatch, len(votes), len(seats))
	}
	return nil
}
