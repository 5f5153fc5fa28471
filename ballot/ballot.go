package ballot

import "errors"

// ErrBadDraw indicates a Ballot returned a selection that is not a set of
// min(n, limit) distinct indices in [0, n). It is a panic value.
var ErrBadDraw = errors.New("ballot: draw is not a valid selection")

// Ballot selects which of n equally ranked candidates receive one of limit
// available seats.
//
// Draw must return min(n, limit) distinct indices in [0, n); order is
// irrelevant. Callers must not retain the returned slice across draws.
type Ballot interface {
	Draw(n, limit int) []int
}

// Func adapts an ordinary function to the Ballot interface.
type Func func(n, limit int) []int

// Draw calls f(n, limit).
func (f Func) Draw(n, limit int) []int { return f(n, limit) }

// First is the deterministic ballot: the lowest indices always win.
type First struct{}

// Draw returns 0..min(n,limit)-1.
func (First) Draw(n, limit int) []int {
	return identity(size(n, limit))
}

// Last is the mirror of First: the highest indices always win.
type Last struct{}

// Draw returns the last min(n,limit) indices.
func (Last) Draw(n, limit int) []int {
	k := size(n, limit)
	out := make([]int, k)
	for i := range out {
		out[i] = n - k + i
	}
	return out
}

// Select returns the items chosen by b, at most limit of them.
func Select[T any](b Ballot, items []T, limit int) []T {
	picked := b.Draw(len(items), limit)
	out := make([]T, 0, len(picked))
	for _, i := range picked {
		out = append(out, items[i])
	}
	return out
}

// Validate checks that picked is a well-formed draw for (n, limit).
//
// Complexity: O(len(picked)) time and space.
func Validate(picked []int, n, limit int) error {
	if len(picked) != size(n, limit) {
		return ErrBadDraw
	}
	seen := make(map[int]struct{}, len(picked))
	for _, i := range picked {
		if i < 0 || i >= n {
			return ErrBadDraw
		}
		if _, dup := seen[i]; dup {
			return ErrBadDraw
		}
		seen[i] = struct{}{}
	}
	return nil
}

// size is the number of candidates a draw must select.
func size(n, limit int) int {
	if limit < 0 {
		return 0
	}
	return min(n, limit)
}

func identity(k int) []int {
	out := make([]int, k)
	for i := range out {
		out[i] = i
	}
	return out
}
