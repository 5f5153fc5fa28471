package apportion

import (
	"fmt"

	"github.com/katalvlaran/apportion/core"
)

// Apportion runs the formula named by m.
func (e *Engine) Apportion(m Method, total core.Count, votes []core.Votes, seats []core.Seats) error {
	switch m {
	case MethodAuto:
		return e.Allocate(total, votes, seats)
	case MethodAverage:
		return e.AllocatePerAverage(total, votes, seats)
	case MethodSurplus:
		return e.AllocatePerSurplus(total, votes, seats)
	case MethodNational:
		return e.AllocateNational(total, votes, seats)
	case MethodBongaerts:
		return e.AllocateBongaerts(total, votes, seats)
	case Method1918:
		return e.Allocate1918(total, votes, seats)
	case Method1922:
		return e.Allocate1922(total, votes, seats)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownMethod, m)
	}
}

// The functions below run a single formula on a fresh Engine built from
// opts. Use New when several elections share one ballot stream.

// Allocate picks averages or surplus by body size. See Engine.Allocate.
func Allocate(total core.Count, votes []core.Votes, seats []core.Seats, opts ...Option) error {
	return New(opts...).Allocate(total, votes, seats)
}

// AllocatePerAverage runs D'Hondt. See Engine.AllocatePerAverage.
func AllocatePerAverage(total core.Count, votes []core.Votes, seats []core.Seats, opts ...Option) error {
	return New(opts...).AllocatePerAverage(total, votes, seats)
}

// AllocatePerSurplus runs the largest-surplus rule. See Engine.AllocatePerSurplus.
func AllocatePerSurplus(total core.Count, votes []core.Votes, seats []core.Seats, opts ...Option) error {
	return New(opts...).AllocatePerSurplus(total, votes, seats)
}

// AllocateNational runs D'Hondt with a whole-quota threshold. See Engine.AllocateNational.
func AllocateNational(total core.Count, votes []core.Votes, seats []core.Seats, opts ...Option) error {
	return New(opts...).AllocateNational(total, votes, seats)
}

// AllocateBongaerts runs the 1925–1933 rule. See Engine.AllocateBongaerts.
func AllocateBongaerts(total core.Count, votes []core.Votes, seats []core.Seats, opts ...Option) error {
	return New(opts...).AllocateBongaerts(total, votes, seats)
}

// Allocate1918 runs the 1918 rule. See Engine.Allocate1918.
func Allocate1918(total core.Count, votes []core.Votes, seats []core.Seats, opts ...Option) error {
	return New(opts...).Allocate1918(total, votes, seats)
}

// Allocate1922 runs the 1922 rule. See Engine.Allocate1922.
func Allocate1922(total core.Count, votes []core.Votes, seats []core.Seats, opts ...Option) error {
	return New(opts...).Allocate1922(total, votes, seats)
}

// Apportion runs the formula named by m. See Engine.Apportion.
func Apportion(m Method, total core.Count, votes []core.Votes, seats []core.Seats, opts ...Option) error {
	return New(opts...).Apportion(m, total, votes, seats)
}
