// Package tableio implements the external parse/print contract:
// comma-separated, line-terminated tables with double-quote quoting
// (embedded quotes escaped by doubling). It is a thin adapter over the
// standard library's encoding/csv — no third-party CSV library appears anywhere in
// the retrieval pack (dungo and the rest reach for YAML/JSON/SVG, never a
// CSV package), so this is the one table the ambient stack has no
// ecosystem library to wire.
package tableio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mheinekamp/pairwise/pkg/model"
)

// ErrOddRow is returned by RowsToConstraints/RowsToSuite when a row has an
// odd number of fields: every binding needs both a category and a value, so
// a trailing unpaired field means the row is malformed rather than merely
// short. This is the "parity" check run ahead of arity/category/value
// checks by the validators, since a truncated row could otherwise pass
// arity by coincidence.
var ErrOddRow = errors.New("row has an odd number of fields; every category needs a paired value")

// ParseTable reads a CSV-style table from r. Rows may have varying field
// counts (FieldsPerRecord is disabled) since options, constraints, and suite
// rows are not fixed-width. Any byte sequence not containing a comma or
// newline is a valid unquoted token.
func ParseTable(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing table: %w", err)
	}
	return rows, nil
}

// ParseTableFile opens path and parses it as a table. A missing or
// unreadable file is reported as an IO failure.
func ParseTableFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := ParseTable(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return rows, nil
}

// PrintTable writes rows as a CSV-style table to w. Any value containing a
// comma is quoted; encoding/csv.Writer already applies this
// quoting rule (and additionally quotes values containing a quote or
// newline, a strict superset that still round-trips correctly).
func PrintTable(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("printing table: %w", err)
	}
	return nil
}

// PrintTableFile writes rows to path as a table, creating or truncating it.
func PrintTableFile(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := PrintTable(f, rows); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// RowsToOptions interprets a raw table as an options table: each row is
// [categoryName, value, value, ...]. Rows shorter than 1 entry are passed
// through unchanged (structural validation is pkg/validate's job).
func RowsToOptions(rows [][]string) model.Options {
	opts := make(model.Options, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			opts = append(opts, model.Category{})
			continue
		}
		opts = append(opts, model.Category{Name: row[0], Values: append([]string(nil), row[1:]...)})
	}
	return opts
}

// OptionsToRows flattens an options table back into raw rows for printing.
func OptionsToRows(opts model.Options) [][]string {
	rows := make([][]string, 0, len(opts))
	for _, c := range opts {
		row := append([]string{c.Name}, c.Values...)
		rows = append(rows, row)
	}
	return rows
}

// RowsToConstraints interprets a raw table as a constraints table: each row
// alternates category, value, category, value, ... An odd-length row is a
// parity failure (ErrOddRow, with the 1-based row number), not a row to
// truncate.
func RowsToConstraints(rows [][]string) (model.Constraints, error) {
	cons := make(model.Constraints, 0, len(rows))
	for i, row := range rows {
		c, err := rowToConstraint(row)
		if err != nil {
			return nil, fmt.Errorf("constraints row %d: %w", i+1, err)
		}
		cons = append(cons, c)
	}
	return cons, nil
}

func rowToConstraint(row []string) (model.Constraint, error) {
	if len(row)%2 != 0 {
		return nil, ErrOddRow
	}
	c := make(model.Constraint, 0, len(row)/2)
	for i := 0; i+1 < len(row); i += 2 {
		c = append(c, model.Binding{Category: row[i], Value: row[i+1]})
	}
	return c, nil
}

// ConstraintsToRows flattens a constraints table back into raw rows.
func ConstraintsToRows(cons model.Constraints) [][]string {
	rows := make([][]string, 0, len(cons))
	for _, c := range cons {
		row := make([]string, 0, 2*len(c))
		for _, b := range c {
			row = append(row, b.Category, b.Value)
		}
		rows = append(rows, row)
	}
	return rows
}

// RowsToSuite interprets a raw table as a suite: each row alternates
// category, value, category, value, ... exactly like a constraint row. An
// odd-length row is a parity failure (ErrOddRow), not a row to truncate.
func RowsToSuite(rows [][]string) (model.Suite, error) {
	suite := make(model.Suite, 0, len(rows))
	for i, row := range rows {
		c, err := rowToConstraint(row)
		if err != nil {
			return nil, fmt.Errorf("suite row %d: %w", i+1, err)
		}
		suite = append(suite, model.Row(c))
	}
	return suite, nil
}

// SuiteToRows flattens a suite back into raw rows for printing.
func SuiteToRows(suite model.Suite) [][]string {
	rows := make([][]string, 0, len(suite))
	for _, r := range suite {
		row := make([]string, 0, 2*len(r))
		for _, b := range r {
			row = append(row, b.Category, b.Value)
		}
		rows = append(rows, row)
	}
	return rows
}
