package kiesraad

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/katalvlaran/apportion/apportion"
	"github.com/katalvlaran/apportion/ballot"
	"github.com/katalvlaran/apportion/core"
	"github.com/katalvlaran/apportion/logging"
)

// Mismatch is a locality whose recomputed outcome differs from the
// official one.
type Mismatch struct {
	Locality string
	Parties  []string
	Got      []core.Count
	Want     []core.Count
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: got %v, want %v", m.Locality, m.Got, m.Want)
}

// Report summarises the validation of one file.
type Report struct {
	File       string
	Method     apportion.Method
	Checked    int
	Mismatches []Mismatch
}

// OK reports whether every locality matched.
func (r Report) OK() bool { return len(r.Mismatches) == 0 }

// Validator reruns official results through an Engine.
type Validator struct {
	engine  []apportion.Option
	log     logging.Logger
	shuffle *ballot.Random
}

// Option configures a Validator.
type Option func(*Validator)

// WithEngineOptions passes options to the Engine built for each file.
func WithEngineOptions(opts ...apportion.Option) Option {
	return func(v *Validator) { v.engine = append(v.engine, opts...) }
}

// WithLogger sets the logger used by the Validator and its engines.
func WithLogger(l logging.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.log = l
		}
	}
}

// WithShuffle permutes the parties of every locality before recomputing
// it. An order-independent formula must still reproduce the result.
func WithShuffle(seed int64) Option {
	return func(v *Validator) { v.shuffle = ballot.NewSeeded(seed) }
}

// NewValidator creates a Validator.
func NewValidator(opts ...Option) *Validator {
	v := &Validator{log: logging.NewNop()}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// ValidateFile checks the file at path.
func (v *Validator) ValidateFile(path string) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, fmt.Errorf("kiesraad: %w", err)
	}
	defer f.Close()

	return v.Validate(filepath.Base(path), f)
}

// Validate checks the localities read from r. name selects the formula,
// see MethodForFile.
func (v *Validator) Validate(name string, r io.Reader) (Report, error) {
	localities, err := Parse(r)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", name, err)
	}

	report := Report{File: name, Method: MethodForFile(name)}
	engine := apportion.New(append([]apportion.Option{apportion.WithLogger(v.log)}, v.engine...)...)

	for _, loc := range localities {
		if v.shuffle != nil {
			loc = v.permute(loc)
		}
		v.log.Debug("checking locality", "file", name, "locality", loc.ID, "method", report.Method.String())

		seats := append([]core.Seats(nil), loc.Limits...)
		if err := engine.Apportion(report.Method, loc.TotalSeats(), loc.Votes, seats); err != nil {
			return report, fmt.Errorf("%s:%s: %w", name, loc.ID, err)
		}
		report.Checked++

		got := core.Counts(seats)
		if !slices.Equal(got, loc.Official) {
			m := Mismatch{Locality: loc.ID, Parties: loc.Parties, Got: got, Want: loc.Official}
			v.log.Warn("result differs from official outcome", "file", name, "locality", loc.ID, "got", got, "want", loc.Official)
			report.Mismatches = append(report.Mismatches, m)
		}
	}

	v.log.Info("file checked", "file", name, "localities", report.Checked, "mismatches", len(report.Mismatches))
	return report, nil
}

// permute reorders every column of loc by one random permutation.
func (v *Validator) permute(loc Locality) Locality {
	perm := v.shuffle.Perm(len(loc.Votes))
	out := Locality{
		ID:       loc.ID,
		Key:      loc.Key,
		Parties:  make([]string, len(perm)),
		Votes:    make([]core.Votes, len(perm)),
		Official: make([]core.Count, len(perm)),
		Limits:   make([]core.Seats, len(perm)),
	}
	for to, from := range perm {
		out.Parties[to] = loc.Parties[from]
		out.Votes[to] = loc.Votes[from]
		out.Official[to] = loc.Official[from]
		out.Limits[to] = loc.Limits[from]
	}
	return out
}
