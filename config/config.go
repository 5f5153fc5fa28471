// Package config loads election definitions from YAML files.
//
// A file lists one or more elections, each with its seat count, formula and
// parties. Values missing from an election are taken from the defaults
// block:
//
//	defaults:
//	  method: auto
//	  seed: 0
//	  whole_seats: false
//	elections:
//	  - name: Gemeenteraad 2022
//	    seats: 19
//	    parties:
//	      - {name: A, votes: 40}
//	      - {name: B, votes: 30, limit: 5}
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/apportion/apportion"
	"github.com/katalvlaran/apportion/ballot"
	"github.com/katalvlaran/apportion/core"
)

var (
	// ErrNoElections indicates a file without any election.
	ErrNoElections = errors.New("config: no elections defined")

	// ErrInvalidElection indicates an election that cannot be run.
	ErrInvalidElection = errors.New("config: invalid election")
)

// Config is the root configuration structure.
type Config struct {
	Defaults  Defaults         `yaml:"defaults"`
	Elections []ElectionConfig `yaml:"elections"`
}

// Defaults apply to every election that leaves the field unset.
type Defaults struct {
	Method     string `yaml:"method"`      // "auto", "average", "surplus", ...
	Seed       int64  `yaml:"seed"`        // 0 derives the seed from the election
	WholeSeats bool   `yaml:"whole_seats"` // run the ⌊v·N/V⌋ pre-pass
}

// ElectionConfig describes one election.
type ElectionConfig struct {
	Name       string        `yaml:"name"`
	Seats      uint64        `yaml:"seats"`
	Method     string        `yaml:"method"`
	Seed       int64         `yaml:"seed"`
	WholeSeats *bool         `yaml:"whole_seats"`
	Parties    []PartyConfig `yaml:"parties"`
}

// PartyConfig is one list on the ballot paper. A nil Limit means the list
// has enough candidates for any outcome.
type PartyConfig struct {
	Name  string  `yaml:"name"`
	Votes uint64  `yaml:"votes"`
	Limit *uint64 `yaml:"limit"`
}

// Load reads, defaults and validates the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML document, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Defaults.Method == "" {
		cfg.Defaults.Method = apportion.MethodAuto.String()
	}
	for i := range cfg.Elections {
		e := &cfg.Elections[i]
		if e.Name == "" {
			e.Name = fmt.Sprintf("election-%d", i+1)
		}
		if e.Method == "" {
			e.Method = cfg.Defaults.Method
		}
		if e.Seed == 0 {
			e.Seed = cfg.Defaults.Seed
		}
		if e.WholeSeats == nil {
			ws := cfg.Defaults.WholeSeats
			e.WholeSeats = &ws
		}
	}
}

func validate(cfg *Config) error {
	if len(cfg.Elections) == 0 {
		return ErrNoElections
	}
	if _, err := apportion.ParseMethod(cfg.Defaults.Method); err != nil {
		return fmt.Errorf("config: defaults: %w", err)
	}
	for _, e := range cfg.Elections {
		if len(e.Parties) == 0 {
			return fmt.Errorf("%w: %s: no parties", ErrInvalidElection, e.Name)
		}
		if _, err := apportion.ParseMethod(e.Method); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidElection, e.Name, err)
		}
		seen := make(map[string]struct{}, len(e.Parties))
		for _, p := range e.Parties {
			if p.Name == "" {
				continue
			}
			if _, dup := seen[p.Name]; dup {
				return fmt.Errorf("%w: %s: duplicate party %q", ErrInvalidElection, e.Name, p.Name)
			}
			seen[p.Name] = struct{}{}
		}
	}
	return nil
}

// MethodValue returns the parsed formula. Valid after Parse.
func (e ElectionConfig) MethodValue() apportion.Method {
	m, _ := apportion.ParseMethod(e.Method)
	return m
}

// TotalSeats returns the number of seats to distribute.
func (e ElectionConfig) TotalSeats() core.Count {
	return core.Count(e.Seats)
}

// Votes returns the vote counts in party order.
func (e ElectionConfig) Votes() []core.Votes {
	out := make([]core.Votes, len(e.Parties))
	for i, p := range e.Parties {
		out[i] = core.Votes(p.Votes)
	}
	return out
}

// InitialSeats returns empty allocations honouring each party's limit.
func (e ElectionConfig) InitialSeats() []core.Seats {
	out := make([]core.Seats, len(e.Parties))
	for i, p := range e.Parties {
		if p.Limit != nil {
			out[i] = core.Limited(core.Count(*p.Limit))
		} else {
			out[i] = core.Unlimited()
		}
	}
	return out
}

// PartyNames returns the party names, falling back to "#n" for unnamed lists.
func (e ElectionConfig) PartyNames() []string {
	out := make([]string, len(e.Parties))
	for i, p := range e.Parties {
		out[i] = p.Name
		if out[i] == "" {
			out[i] = fmt.Sprintf("#%d", i+1)
		}
	}
	return out
}

// EngineOptions translates the election settings into engine options.
// A zero seed is replaced by one derived from the election data, so a file
// always produces the same result.
func (e ElectionConfig) EngineOptions() []apportion.Option {
	seed := e.Seed
	if seed == 0 {
		seed = ballot.SeedFor(e.TotalSeats(), e.Votes())
	}
	opts := []apportion.Option{apportion.WithSeed(seed)}
	if e.WholeSeats != nil && *e.WholeSeats {
		opts = append(opts, apportion.WithWholeSeats())
	}
	return opts
}
