// Command checker reads an options table, a constraints table, and a
// candidate suite, and verifies the suite against the problem. Once all
// three files are read, it prints a colored VERIFIED or UNVERIFIED marker
// on its final line; a usage error or an unreadable file prints no marker
// and exits 10.
//
// Exit codes translate the internal validate.Status values into a distinct
// scheme from the solver's: 0 VERIFIED (including a degenerate-only
// warning); 10 options invalid; 20 constraints invalid; 30 suite invalid.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mheinekamp/pairwise/pkg/diagnostic"
	"github.com/mheinekamp/pairwise/pkg/problem"
	"github.com/mheinekamp/pairwise/pkg/tableio"
	"github.com/mheinekamp/pairwise/pkg/validate"
)

var verbose = flag.Bool("v", false, "enable verbose diagnostics to stderr")

func main() {
	flag.Parse()
	args := flag.Args()

	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: checker <options-in> <constraints-in> <suite-in>")
		os.Exit(10)
	}

	sink := diagnostic.Sink(diagnostic.Discard)
	if *verbose {
		sink = diagnostic.NewWriter(os.Stderr)
	}

	p := problem.New(args[0], args[1], "", "")

	status, err := run(p, args[2], sink)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(10)
	}

	os.Exit(report(status))
}

func run(p *problem.Store, suiteIn string, sink diagnostic.Sink) (validate.Status, error) {
	optRows, err := tableio.ParseTableFile(p.OptionsFileIn())
	if err != nil {
		return 0, fmt.Errorf("parsing options: %w", err)
	}
	consRows, err := tableio.ParseTableFile(p.ConstraintsFileIn())
	if err != nil {
		return 0, fmt.Errorf("parsing constraints: %w", err)
	}
	suiteRows, err := tableio.ParseTableFile(suiteIn)
	if err != nil {
		return 0, fmt.Errorf("parsing suite: %w", err)
	}

	cons, err := tableio.RowsToConstraints(consRows)
	if err != nil {
		sink.Printf("error: %v", err)
		return validate.StatusConstraints, nil
	}
	suite, err := tableio.RowsToSuite(suiteRows)
	if err != nil {
		sink.Printf("error: %v", err)
		return validate.StatusSuite, nil
	}

	p.SetOptions(tableio.RowsToOptions(optRows))
	p.SetConstraints(cons)

	return validate.CheckProblem(p.Options(), p.Constraints(), &suite, sink), nil
}

// report prints the VERIFIED/UNVERIFIED marker and returns the process
// exit code for status, translating the internal status scheme
// (20 options / 30 constraints / 40 suite) into the checker program's own
// exit-code scheme (10 / 20 / 30), matching checkerMain's translation.
func report(status validate.Status) int {
	switch status {
	case validate.StatusOK, validate.StatusDegenerateWarning:
		fmt.Println("\033[1;32mVERIFIED\033[0m")
		return 0
	case validate.StatusOptions:
		fmt.Println("\033[1;31mUNVERIFIED\033[0m")
		return 10
	case validate.StatusConstraints:
		fmt.Println("\033[1;31mUNVERIFIED\033[0m")
		return 20
	case validate.StatusSuite:
		fmt.Println("\033[1;31mUNVERIFIED\033[0m")
		return 30
	default:
		fmt.Println("\033[1;31mUNVERIFIED\033[0m")
		return int(status)
	}
}
