// Command parse-print reads an options table and a constraints table and
// re-writes them unchanged, exercising pkg/tableio and pkg/problem without
// any validation or solving. It is the round-trip sanity check the other
// two programs build on.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mheinekamp/pairwise/pkg/diagnostic"
	"github.com/mheinekamp/pairwise/pkg/problem"
	"github.com/mheinekamp/pairwise/pkg/tableio"
)

var verbose = flag.Bool("v", false, "enable verbose diagnostics to stderr")

func main() {
	flag.Parse()
	args := flag.Args()

	if len(args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: parse-print <options-in> <constraints-in> <options-out> <constraints-out>")
		os.Exit(10)
	}

	sink := diagnostic.Sink(diagnostic.Discard)
	if *verbose {
		sink = diagnostic.NewWriter(os.Stderr)
	}

	p := problem.New(args[0], args[1], args[2], args[3])

	if err := run(p, sink); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(10)
	}

	fmt.Println("\033[1;32mCOMPLETE\033[0m")
}

func run(p *problem.Store, sink diagnostic.Sink) error {
	optRows, err := tableio.ParseTableFile(p.OptionsFileIn())
	if err != nil {
		return fmt.Errorf("parsing options: %w", err)
	}
	consRows, err := tableio.ParseTableFile(p.ConstraintsFileIn())
	if err != nil {
		return fmt.Errorf("parsing constraints: %w", err)
	}

	cons, err := tableio.RowsToConstraints(consRows)
	if err != nil {
		return fmt.Errorf("parsing constraints: %w", err)
	}
	p.SetOptions(tableio.RowsToOptions(optRows))
	p.SetConstraints(cons)
	sink.Printf("parsed %d options rows, %d constraints rows", len(optRows), len(consRows))

	if err := tableio.PrintTableFile(p.OptionsFileOut(), tableio.OptionsToRows(p.Options())); err != nil {
		return fmt.Errorf("printing options: %w", err)
	}
	if err := tableio.PrintTableFile(p.ConstraintsFileOut(), tableio.ConstraintsToRows(p.Constraints())); err != nil {
		return fmt.Errorf("printing constraints: %w", err)
	}

	return nil
}
