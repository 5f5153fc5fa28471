package apportion_test

import (
	"testing"

	"github.com/katalvlaran/apportion/apportion"
	"github.com/katalvlaran/apportion/ballot"
	"github.com/katalvlaran/apportion/core"
)

// benchmarkNational runs the national formula for 150 seats on the 2023
// result, resetting the seat slice every iteration.
func benchmarkNational(b *testing.B, opts ...apportion.Option) {
	votes := core.VotesOf(tk2023...)
	seats := make([]core.Seats, len(votes))
	e := apportion.New(append([]apportion.Option{apportion.WithBallot(ballot.First{})}, opts...)...)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		for j := range seats {
			seats[j] = core.Unlimited()
		}
		if err := e.AllocateNational(150, votes, seats); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAllocateNational_TK2023 measures a seat-by-seat run over 150 seats.
func BenchmarkAllocateNational_TK2023(b *testing.B) {
	benchmarkNational(b)
}

// BenchmarkAllocateNational_TK2023WholeSeats measures the same run with the
// whole-seat pre-pass handing out most seats up front.
func BenchmarkAllocateNational_TK2023WholeSeats(b *testing.B) {
	benchmarkNational(b, apportion.WithWholeSeats())
}
