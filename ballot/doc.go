// Package ballot implements the tie-break strategies of the apportionment
// engine.
//
// A ballot is drawn whenever more parties are tied for the best score than
// there are seats left, and when the absolute-majority correction has to
// pick which recent winner gives a seat back. It is the only source of
// non-determinism in the engine, so it is injected rather than global:
//
//	– Random   draws uniformly without replacement from a *rand.Rand
//	– First    always picks the lowest indices (deterministic tests)
//	– Func     adapts a plain function
//	– Recorder wraps another Ballot and counts draws
//
// Determinism:
//
//	NewSeeded(seed) yields identical draws for identical seeds; seed 0 maps
//	to a fixed default. SeedFor derives a seed from the election input itself,
//	so reruns of the same election reproduce the same ballot.
//
// Concurrency:
//
//	Random wraps math/rand.Rand, which is NOT goroutine-safe. Use one Ballot
//	per run or per goroutine.
package ballot
