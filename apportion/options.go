package apportion

import (
	"github.com/katalvlaran/apportion/ballot"
	"github.com/katalvlaran/apportion/logging"
	"github.com/katalvlaran/apportion/metrics"
)

// Options configures an Engine.
//
//	Ballot     – tie-break strategy; nil ⇒ ballot.NewSeeded(Seed).
//	Seed       – seed for the default ballot (0 ⇒ the ballot package default).
//	Logger     – receives phase changes, contested ballots and corrections.
//	Metrics    – receives step/ballot/correction/run events.
//	WholeSeats – run the ⌊v·N/V⌋ pre-pass before the iterative loop.
type Options struct {
	Ballot     ballot.Ballot
	Seed       int64
	Logger     logging.Logger
	Metrics    metrics.Collector
	WholeSeats bool
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns Options with a no-op logger and collector, no
// pre-pass and the default-seeded random ballot.
func DefaultOptions() Options {
	return Options{
		Logger:  logging.NewNop(),
		Metrics: metrics.NewNop(),
	}
}

// WithBallot sets the tie-break strategy.
func WithBallot(b ballot.Ballot) Option {
	return func(o *Options) { o.Ballot = b }
}

// WithSeed seeds the default random ballot. Ignored when WithBallot is set.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics sets the metrics collector. A nil collector keeps the no-op default.
func WithMetrics(c metrics.Collector) Option {
	return func(o *Options) {
		if c != nil {
			o.Metrics = c
		}
	}
}

// WithWholeSeats enables the whole-seat pre-pass: every party first
// receives ⌊v·N/V⌋ seats (capped by its limit) without iterating.
func WithWholeSeats() Option {
	return func(o *Options) { o.WholeSeats = true }
}
