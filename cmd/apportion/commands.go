package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/apportion/apportion"
	"github.com/katalvlaran/apportion/ballot"
	"github.com/katalvlaran/apportion/config"
	"github.com/katalvlaran/apportion/core"
	"github.com/katalvlaran/apportion/kiesraad"
)

// demo runs two elections whose quota sits just below and just above a
// whole number of votes.
func (e *env) demo() int {
	for _, votes := range [][]core.Votes{
		core.VotesOf(65535, 10),
		core.VotesOf(65536, 10),
	} {
		const total core.Count = 65432
		fmt.Fprintf(e.stdout, "running an election for %d seats, parties: %v, using largest surpluses\n", total, votes)

		seats := core.UnlimitedSeats(len(votes))
		opts := append(e.engineOptions(), apportion.WithSeed(ballot.SeedFor(total, votes)))
		if err := apportion.AllocatePerSurplus(total, votes, seats, opts...); err != nil {
			fmt.Fprintln(e.stderr, err)
			return 1
		}
		e.printSeats(seats)
		fmt.Fprintln(e.stdout, "======")
	}
	return 0
}

func (e *env) allocate(args []string) int {
	fs := flag.NewFlagSet("allocate", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	national := fs.Bool("national", false, "use a voting threshold of one whole seat, as in national elections")
	methodName := fs.String("method", "auto", "formula: auto, average, surplus, national, bongaerts, 1918, 1922")
	seed := fs.Int64("seed", 0, "ballot seed (0 derives one from the input)")
	wholeSeats := fs.Bool("whole-seats", false, "hand out whole quotas before iterating")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(e.stderr, "usage: apportion allocate [-national | -method M] [-seed N] [-whole-seats] SEATS VOTES")
		return 2
	}

	total, err := strconv.ParseUint(fs.Arg(0), 10, 64)
	if err != nil {
		fmt.Fprintf(e.stderr, "invalid seat count %q: %v\n", fs.Arg(0), err)
		return 2
	}
	votes, err := parseVotes(fs.Arg(1))
	if err != nil {
		fmt.Fprintln(e.stderr, err)
		return 2
	}
	method, err := apportion.ParseMethod(*methodName)
	if err != nil {
		fmt.Fprintln(e.stderr, err)
		return 2
	}
	if *national {
		explicit := false
		fs.Visit(func(f *flag.Flag) { explicit = explicit || f.Name == "method" })
		if explicit && method != apportion.MethodNational {
			fmt.Fprintln(e.stderr, "-national conflicts with -method", method)
			return 2
		}
		method = apportion.MethodNational
	}

	fmt.Fprintf(e.stdout, "running an election for %d seats, parties: %v, using %s\n", total, votes, describe(method, core.Count(total)))

	if *seed == 0 {
		*seed = ballot.SeedFor(core.Count(total), votes)
	}
	opts := append(e.engineOptions(), apportion.WithSeed(*seed))
	if *wholeSeats {
		opts = append(opts, apportion.WithWholeSeats())
	}
	seats := core.UnlimitedSeats(len(votes))
	if err := apportion.Apportion(method, core.Count(total), votes, seats, opts...); err != nil {
		fmt.Fprintln(e.stderr, err)
		return 1
	}
	e.printSeats(seats)
	return 0
}

func (e *env) validate(args []string) int {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	shuffle := fs.Int64("shuffle", 0, "permute parties with this seed before recomputing (0 keeps the file order)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	files := fs.Args()
	fmt.Fprintf(e.stdout, "Validating %d files...\n", len(files))

	opts := []kiesraad.Option{
		kiesraad.WithLogger(e.log),
		kiesraad.WithEngineOptions(apportion.WithMetrics(e.metrics)),
	}
	if *shuffle != 0 {
		opts = append(opts, kiesraad.WithShuffle(*shuffle))
	}
	v := kiesraad.NewValidator(opts...)

	code := 0
	for _, path := range files {
		report, err := v.ValidateFile(path)
		if err != nil {
			fmt.Fprintln(e.stderr, err)
			code = 1
			continue
		}
		fmt.Fprintf(e.stdout, "checked %s: %d localities, method %s, %d mismatches\n",
			path, report.Checked, report.Method, len(report.Mismatches))
		for _, m := range report.Mismatches {
			fmt.Fprintf(e.stdout, "  %s\n", m)
		}
		if !report.OK() {
			code = 1
		}
	}
	return code
}

func (e *env) runConfig(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	path := fs.String("config", "", "YAML election file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *path == "" {
		fmt.Fprintln(e.stderr, "usage: apportion run -config FILE")
		return 2
	}

	cfg, err := config.Load(*path)
	if err != nil {
		fmt.Fprintln(e.stderr, err)
		return 1
	}
	for _, el := range cfg.Elections {
		method := el.MethodValue()
		fmt.Fprintf(e.stdout, "%s: %d seats, using %s\n", el.Name, el.Seats, describe(method, el.TotalSeats()))

		seats := el.InitialSeats()
		opts := append(e.engineOptions(), el.EngineOptions()...)
		if err := apportion.Apportion(method, el.TotalSeats(), el.Votes(), seats, opts...); err != nil {
			fmt.Fprintf(e.stderr, "%s: %v\n", el.Name, err)
			return 1
		}
		for i, name := range el.PartyNames() {
			fmt.Fprintf(e.stdout, "  %-20s %10d votes  %s seats\n", name, el.Parties[i].Votes, seats[i])
		}
	}
	return 0
}

// printSeats prints "result = a, b, c".
func (e *env) printSeats(seats []core.Seats) {
	parts := make([]string, len(seats))
	for i, s := range seats {
		parts[i] = s.String()
	}
	fmt.Fprintf(e.stdout, "result = %s\n", strings.Join(parts, ", "))
}

// parseVotes reads a comma separated list of vote counts.
func parseVotes(s string) ([]core.Votes, error) {
	fields := strings.Split(s, ",")
	out := make([]core.Votes, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid vote count %q: %w", f, err)
		}
		out = append(out, core.Votes(n))
	}
	return out, nil
}

// describe names the rule in the words of the law.
func describe(m apportion.Method, total core.Count) string {
	switch m {
	case apportion.MethodAuto:
		if total >= apportion.LargeBodySeats {
			return "largest averages"
		}
		return "largest surpluses"
	case apportion.MethodAverage:
		return "largest averages"
	case apportion.MethodSurplus:
		return "largest surpluses"
	case apportion.MethodNational:
		return "largest averages (with voting threshold of one whole seat)"
	case apportion.MethodBongaerts:
		return "the 1925-1933 surplus rule"
	default:
		return "the " + m.String() + " surplus rule"
	}
}
