// Package validate implements the two validators of the pairwise pipeline:
// CheckProblem, which checks an options/constraints table pair (and,
// optionally, a suite) for structural validity before a solve, and
// CheckSuite, which checks a finished suite against the same problem.
// Both are adapted from checker.cpp's CHECKER class, which performed the
// same checks via ad-hoc int codes; Status replaces those codes with a
// named type.
package validate

import (
	"github.com/mheinekamp/pairwise/pkg/diagnostic"
	"github.com/mheinekamp/pairwise/pkg/model"
	"github.com/mheinekamp/pairwise/pkg/problem"
)

// Status reports the outcome of a validation pass. The numeric values
// mirror the original checker's return codes so that the three CLI
// programs can map them onto distinct process exit codes without a second
// translation table.
type Status int

const (
	// StatusOK indicates no problem was found.
	StatusOK Status = 0
	// StatusIO indicates a file could not be read or written.
	StatusIO Status = 10
	// StatusOptions indicates the options table is structurally invalid.
	StatusOptions Status = 20
	// StatusConstraints indicates the constraints table is structurally
	// invalid, or refers to a category or value absent from the options
	// table.
	StatusConstraints Status = 30
	// StatusSuite indicates a suite row is malformed, refers to an unknown
	// category or value, repeats a category, or matches a forbidden
	// constraint combination.
	StatusSuite Status = 40
	// StatusDegenerateWarning indicates every other check passed, but at
	// least one category in the options table has fewer than two values
	// and so contributes nothing to pairwise coverage. It is latched: it is
	// only returned if no later check in the same pass fails.
	StatusDegenerateWarning Status = 100
)

// String renders a Status as the label used in diagnostic messages.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusIO:
		return "io error"
	case StatusOptions:
		return "invalid options"
	case StatusConstraints:
		return "invalid constraints"
	case StatusSuite:
		return "invalid suite"
	case StatusDegenerateWarning:
		return "degenerate category warning"
	default:
		return "unknown status"
	}
}

// CheckProblem validates an options table and a constraints table together,
// and optionally a suite against both. It runs, in order:
//
//  1. Minimum-useful check on options rows (warning only, latched).
//  2. Minimum-valid check on options rows (error).
//  3. Constraints category and value checks (error).
//  4. If suite is non-nil, the same suite checks CheckSuite performs.
//
// A non-OK result from any step short-circuits the remaining steps. The
// warning from step 1 is only returned if every later step succeeds.
//
// The parity check (a Constraint or Row with an odd number of fields) is
// not a step here: cons and suite arrive already parsed into
// model.Constraint/model.Row, which cannot represent an unpaired trailing
// field, so parity is enforced earlier, by tableio.RowsToConstraints and
// tableio.RowsToSuite on the raw rows (ErrOddRow), before a malformed row
// can ever reach this function.
func CheckProblem(opts model.Options, cons model.Constraints, suite *model.Suite, sink diagnostic.Sink) Status {
	warning := checkOptionsMinimum(opts, sink)
	if st := checkOptionsValid(opts, sink); st != StatusOK {
		return st
	}
	if st := checkConstraintsValid(opts, cons, sink); st != StatusOK {
		return st
	}
	if suite != nil {
		if st := checkSuiteArity(opts, *suite, sink); st != StatusOK {
			return st
		}
		if st := checkSuiteKnownAndUnique(opts, *suite, sink); st != StatusOK {
			return st
		}
		if st := checkSuiteConstraintFree(cons, *suite, sink); st != StatusOK {
			return st
		}
	}
	return warning
}

// CheckSuite validates suite against the options and constraints already
// held by p: every row must pair each of p's categories exactly once with
// one of its known values, every row's categories must be unique, and no
// row may satisfy a forbidden combination from p's constraints table. As
// with CheckProblem, the parity check runs earlier, at parse time, since
// suite is already a model.Suite by the time it reaches here.
func CheckSuite(p *problem.Store, suite model.Suite, sink diagnostic.Sink) Status {
	opts := p.Options()
	cons := p.Constraints()

	if st := checkSuiteArity(opts, suite, sink); st != StatusOK {
		return st
	}
	if st := checkSuiteKnownAndUnique(opts, suite, sink); st != StatusOK {
		return st
	}
	if st := checkSuiteConstraintFree(cons, suite, sink); st != StatusOK {
		return st
	}
	return StatusOK
}

// checkOptionsMinimum warns when a category has fewer than two values: it
// cannot contribute a pair and so is degenerate for pairwise purposes.
// This never fails the pass outright; it only sets the latched warning.
func checkOptionsMinimum(opts model.Options, sink diagnostic.Sink) Status {
	warning := StatusOK
	for i, c := range opts {
		if c.Degenerate() {
			sink.Printf("warning in row %d of options: category %q should have at least two values", i+1, c.Name)
			warning = StatusDegenerateWarning
		}
	}
	return warning
}

// checkOptionsValid rejects a category with zero values outright: such a
// row cannot be referenced by any constraint or suite row at all.
func checkOptionsValid(opts model.Options, sink diagnostic.Sink) Status {
	for i, c := range opts {
		if len(c.Values) == 0 {
			sink.Printf("error in row %d of options: category %q must have at least one value", i+1, c.Name)
			return StatusOptions
		}
	}
	return StatusOK
}

// checkConstraintsValid rejects a constraints table row that names a
// category absent from opts, or a value absent from that category.
func checkConstraintsValid(opts model.Options, cons model.Constraints, sink diagnostic.Sink) Status {
	for i, c := range cons {
		for j, b := range c {
			cat, ok := opts.Find(b.Category)
			if !ok {
				sink.Printf("error in row %d of constraints: unknown category %q at position %d", i+1, b.Category, 2*j+1)
				return StatusConstraints
			}
			if !cat.HasValue(b.Value) {
				sink.Printf("error in row %d of constraints: unknown value %q for category %q at position %d", i+1, b.Value, b.Category, 2*j+2)
				return StatusConstraints
			}
		}
	}
	return StatusOK
}

// checkSuiteArity rejects a suite row whose category count does not equal
// the number of categories in opts.
func checkSuiteArity(opts model.Options, suite model.Suite, sink diagnostic.Sink) Status {
	for i, row := range suite {
		if len(row) != len(opts) {
			sink.Printf("error in row %d of suite: row has %d categories, options defines %d", i+1, len(row), len(opts))
			return StatusSuite
		}
	}
	return StatusOK
}

// checkSuiteKnownAndUnique rejects a suite row that names an unknown
// category or value, or repeats a category.
func checkSuiteKnownAndUnique(opts model.Options, suite model.Suite, sink diagnostic.Sink) Status {
	for i, row := range suite {
		seen := make(map[string]bool, len(row))
		for j, b := range row {
			cat, ok := opts.Find(b.Category)
			if !ok {
				sink.Printf("error in row %d of suite: unknown category %q at position %d", i+1, b.Category, 2*j+1)
				return StatusSuite
			}
			if !cat.HasValue(b.Value) {
				sink.Printf("error in row %d of suite: unknown value %q for category %q at position %d", i+1, b.Value, b.Category, 2*j+2)
				return StatusSuite
			}
			if seen[b.Category] {
				sink.Printf("error in row %d of suite: category %q repeated at position %d", i+1, b.Category, 2*j+1)
				return StatusSuite
			}
			seen[b.Category] = true
		}
	}
	return StatusOK
}

// checkSuiteConstraintFree rejects a suite row that, as a set of bindings,
// is a superset of any forbidden combination in cons.
func checkSuiteConstraintFree(cons model.Constraints, suite model.Suite, sink diagnostic.Sink) Status {
	for i, row := range suite {
		if model.AnyConstraintViolated(cons, row) {
			sink.Printf("error in row %d of suite: row matches a forbidden combination from constraints", i+1)
			return StatusSuite
		}
	}
	return StatusOK
}
