package apportion_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apportion/apportion"
	"github.com/katalvlaran/apportion/ballot"
	"github.com/katalvlaran/apportion/core"
)

// formula is the shape shared by every package-level allocator.
type formula func(total core.Count, votes []core.Votes, seats []core.Seats, opts ...apportion.Option) error

// allocate runs f on unbounded lists with the deterministic ballot and
// returns the awarded counts.
func allocate(t *testing.T, f formula, total core.Count, votes []core.Count, opts ...apportion.Option) []core.Count {
	t.Helper()
	seats := core.UnlimitedSeats(len(votes))
	opts = append([]apportion.Option{apportion.WithBallot(ballot.First{})}, opts...)
	require.NoError(t, f(total, core.VotesOf(votes...), seats, opts...))
	return core.Counts(seats)
}

// counts is shorthand for a []core.Count literal.
func counts(c ...core.Count) []core.Count { return c }

// recordingMetrics keeps every event for inspection.
type recordingMetrics struct {
	mu          sync.Mutex
	steps       int
	ballots     int
	corrections []bool
	runs        []string
	unfilled    uint64
}

func (m *recordingMetrics) RecordStep(int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.steps++
}

func (m *recordingMetrics) RecordBallot(int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ballots++
}

func (m *recordingMetrics) RecordCorrection(applied bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.corrections = append(m.corrections, applied)
}

func (m *recordingMetrics) RecordRun(method string, _, unfilled uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, method)
	m.unfilled += unfilled
}
