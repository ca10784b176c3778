// Package problem holds the immutable input to a pairwise test-case run:
// the options table, the constraints table, and the names of the files
// they are read from and written to. It performs no validation; that is
// the job of pkg/validate.
package problem

import "github.com/mheinekamp/pairwise/pkg/model"

// Store holds the options and constraints tables parsed from (or supplied
// to) a pairwise run, plus the file names the CLI programs read the tables
// from and write them to; the Store itself only stores those names. A
// Store is constructed once and is read-only thereafter except
// for the wholesale Set* mutators used by parsers and test harnesses.
type Store struct {
	options     model.Options
	constraints model.Constraints

	optionsFileIn      string
	constraintsFileIn  string
	optionsFileOut     string
	constraintsFileOut string
}

// New creates a Store with the given file identifiers. The Store never
// opens these files itself; an empty Store is also valid.
func New(optionsFileIn, constraintsFileIn, optionsFileOut, constraintsFileOut string) *Store {
	return &Store{
		optionsFileIn:      optionsFileIn,
		constraintsFileIn:  constraintsFileIn,
		optionsFileOut:     optionsFileOut,
		constraintsFileOut: constraintsFileOut,
	}
}

// Options returns the problem's options table.
func (s *Store) Options() model.Options { return s.options }

// Constraints returns the problem's constraints table.
func (s *Store) Constraints() model.Constraints { return s.constraints }

// SetOptions overwrites the options table wholesale. No validation is
// performed; callers must run pkg/validate separately.
func (s *Store) SetOptions(opts model.Options) { s.options = opts }

// SetConstraints overwrites the constraints table wholesale. No validation
// is performed; callers must run pkg/validate separately.
func (s *Store) SetConstraints(cons model.Constraints) { s.constraints = cons }

// OptionsFileIn returns the options input file name.
func (s *Store) OptionsFileIn() string { return s.optionsFileIn }

// ConstraintsFileIn returns the constraints input file name.
func (s *Store) ConstraintsFileIn() string { return s.constraintsFileIn }

// OptionsFileOut returns the options output file name.
func (s *Store) OptionsFileOut() string { return s.optionsFileOut }

// ConstraintsFileOut returns the constraints output file name.
func (s *Store) ConstraintsFileOut() string { return s.constraintsFileOut }
