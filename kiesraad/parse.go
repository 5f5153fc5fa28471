// Package kiesraad checks the formula library against official election
// results published by the Dutch Electoral Council as CSV files.
//
// Each file holds one row per party per locality, semicolon separated, with
// a header row. The columns used are:
//
//	0  locality identifier
//	1  grouping key (consecutive rows with the same key form one locality)
//	2  party name, or one of the aggregate rows (turnout, blank votes, ...)
//	4  votes
//	5  seats officially awarded
//	6  number of candidates on the list
//
// A Validator reruns every locality with the formula that applied to it and
// reports each locality where the outcome differs from the official one.
package kiesraad

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/apportion/apportion"
	"github.com/katalvlaran/apportion/core"
)

// ErrShortRecord indicates a row with fewer columns than the format requires.
var ErrShortRecord = errors.New("kiesraad: record has too few columns")

const (
	colID = iota
	colKey
	colParty
	_
	colVotes
	colSeats
	colLimit

	minColumns
)

// aggregateRows are per-locality totals, not parties.
var aggregateRows = map[string]struct{}{
	"AantalBlancoStemmen":    {},
	"AantalGeldigeStemmen":   {},
	"AantalOngeldigeStemmen": {},
	"Kiesgerechtigden":       {},
	"Opkomst":                {},
}

// Locality is the result of one election in one locality.
type Locality struct {
	ID       string
	Key      string
	Parties  []string
	Votes    []core.Votes
	Official []core.Count
	Limits   []core.Seats
}

// TotalSeats is the number of seats officially distributed.
func (l Locality) TotalSeats() core.Count {
	var total core.Count
	for _, s := range l.Official {
		total += s
	}
	return total
}

// Parse reads all localities from r. Unparseable vote and seat counts are
// read as 0 and an unparseable candidate count as an unlimited list.
func Parse(r io.Reader) ([]Locality, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("kiesraad: header: %w", err)
	}

	var (
		out  []Locality
		line = 1
	)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("kiesraad: line %d: %w", line, err)
		}
		if len(rec) < minColumns {
			return nil, fmt.Errorf("%w: line %d has %d", ErrShortRecord, line, len(rec))
		}

		if len(out) == 0 || out[len(out)-1].Key != rec[colKey] {
			out = append(out, Locality{ID: rec[colID], Key: rec[colKey]})
		}
		if _, skip := aggregateRows[rec[colParty]]; skip {
			continue
		}
		loc := &out[len(out)-1]
		loc.Parties = append(loc.Parties, rec[colParty])
		loc.Votes = append(loc.Votes, core.Votes(parseCount(rec[colVotes])))
		loc.Official = append(loc.Official, parseCount(rec[colSeats]))
		if limit, err := strconv.ParseUint(strings.TrimSpace(rec[colLimit]), 10, 64); err == nil {
			loc.Limits = append(loc.Limits, core.Limited(core.Count(limit)))
		} else {
			loc.Limits = append(loc.Limits, core.Unlimited())
		}
	}
}

func parseCount(s string) core.Count {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return core.Count(n)
}

// MethodForFile picks the formula from an official file name. National and
// European results (uitslag_TK…, uitslag_EP…) carry the election year at
// offset 10; every other file is a municipal or provincial result.
func MethodForFile(name string) apportion.Method {
	if !strings.HasPrefix(name, "uitslag_TK") && !strings.HasPrefix(name, "uitslag_EP") {
		return apportion.MethodAuto
	}
	if len(name) < 14 {
		return apportion.MethodNational
	}
	switch name[10:14] {
	case "1918":
		return apportion.Method1918
	case "1922":
		return apportion.Method1922
	case "1925", "1929", "1933":
		return apportion.MethodBongaerts
	default:
		return apportion.MethodNational
	}
}
