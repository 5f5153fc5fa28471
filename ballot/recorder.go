package ballot

// Recorder wraps a Ballot and keeps a log of every draw it forwards.
// Contested draws (more candidates than seats) are the ones whose outcome
// depended on chance.
type Recorder struct {
	inner Ballot

	// Draws is the number of draws forwarded.
	Draws int
	// Contested is the number of draws with n > limit.
	Contested int
	// History holds the (n, limit, picked) triple of each contested draw.
	History []Draw
}

// Draw is one recorded contested draw.
type Draw struct {
	N      int
	Limit  int
	Picked []int
}

// NewRecorder wraps inner. A nil inner uses First.
func NewRecorder(inner Ballot) *Recorder {
	if inner == nil {
		inner = First{}
	}
	return &Recorder{inner: inner}
}

// Draw forwards to the wrapped ballot and records the outcome.
func (r *Recorder) Draw(n, limit int) []int {
	picked := r.inner.Draw(n, limit)
	r.Draws++
	if n > limit {
		r.Contested++
		r.History = append(r.History, Draw{N: n, Limit: limit, Picked: append([]int(nil), picked...)})
	}
	return picked
}

// Reset clears all counters and history.
func (r *Recorder) Reset() {
	r.Draws, r.Contested, r.History = 0, 0, nil
}
