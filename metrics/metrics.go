// Package metrics records what the apportionment engine did: how many
// single steps ran, how often a ballot decided a tie, how many majority
// corrections were applied and how many seats stayed unfilled.
//
// Collectors must be safe for concurrent use: one collector may be shared by
// engines running independent elections in parallel.
package metrics

// Collector receives engine events.
type Collector interface {
	// RecordStep records one single allocation step that awarded seats.
	RecordStep(awarded int)

	// RecordBallot records a contested draw: candidates tied for seats.
	RecordBallot(candidates, seats int)

	// RecordCorrection records an absolute-majority correction attempt.
	// applied is false when no other party gained a seat in the final step.
	RecordCorrection(applied bool)

	// RecordRun records a completed formula run.
	RecordRun(method string, awarded, unfilled uint64)
}

// NopMetrics discards every event.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements Collector.
var _ Collector = (*NopMetrics)(nil)

// NewNop creates a no-op collector.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordStep discards the step.
func (n *NopMetrics) RecordStep(_ /* awarded */ int) {}

// RecordBallot discards the ballot.
func (n *NopMetrics) RecordBallot(_ /* candidates */, _ /* seats */ int) {}

// RecordCorrection discards the correction.
func (n *NopMetrics) RecordCorrection(_ /* applied */ bool) {}

// RecordRun discards the run.
func (n *NopMetrics) RecordRun(_ /* method */ string, _ /* awarded */, _ /* unfilled */ uint64) {}
