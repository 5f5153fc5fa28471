package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/apportion/apportion"
	"github.com/katalvlaran/apportion/logging"
	"github.com/katalvlaran/apportion/metrics"
)

var version = "dev"

const usage = `apportion - Dutch seat apportionment

Usage:
  apportion [options] <command> [arguments]

Commands:
  demo                              Run the two demo elections
  allocate [-national | -method M] [-seed N] [-whole-seats] SEATS VOTES
                                    Apportion SEATS among parties; VOTES is comma separated.
                                    -national is short for -method national
  validate [-shuffle SEED] FILE...  Recompute official CSV results and report differences
  run -config FILE                  Run every election in a YAML file
  version                           Print the version

Options:
  -log-level str     Log level: debug, info, warn, error (default "warn")
  -metrics-file str  Write Prometheus metrics in text format to this file on exit

Examples:
  apportion allocate 19 40,30,20,10
  apportion allocate -national 150 2450878,1643073,1589519
  apportion -log-level debug validate uitslag_TK20231122_Nederland.csv
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// env is what every command needs.
type env struct {
	stdout  io.Writer
	stderr  io.Writer
	log     logging.Logger
	metrics metrics.Collector
}

// engineOptions returns the logger and collector as engine options.
func (e *env) engineOptions() []apportion.Option {
	return []apportion.Option{apportion.WithLogger(e.log), apportion.WithMetrics(e.metrics)}
}

// run parses the global flags, dispatches the command and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("apportion", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	logLevel := fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	metricsFile := fs.String("metrics-file", "", "write Prometheus metrics to this file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	e := &env{
		stdout:  stdout,
		stderr:  stderr,
		log:     logging.NewText(stderr, logging.ParseLevel(*logLevel)),
		metrics: metrics.NewNop(),
	}
	var reg *prometheus.Registry
	if *metricsFile != "" {
		reg = prometheus.NewRegistry()
		e.metrics = metrics.NewPrometheus(reg, "")
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	var code int
	switch cmd {
	case "demo":
		code = e.demo()
	case "allocate":
		code = e.allocate(rest)
	case "validate":
		code = e.validate(rest)
	case "run":
		code = e.runConfig(rest)
	case "version":
		fmt.Fprintf(stdout, "apportion %s\n", version)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", cmd)
		fs.Usage()
		return 2
	}

	if reg != nil {
		if err := metrics.WriteTextfile(*metricsFile, reg); err != nil {
			e.log.Error("writing metrics failed", "path", *metricsFile, "err", err)
			if code == 0 {
				code = 1
			}
		}
	}
	return code
}
