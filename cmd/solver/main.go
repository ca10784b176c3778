// Command solver reads an options table and a constraints table, builds a
// pairwise-covering test suite, and writes it to a table. Exit codes:
// 0 success; 10 parse or print failure; 20 invalid options or constraints.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mheinekamp/pairwise/pkg/coverage"
	"github.com/mheinekamp/pairwise/pkg/diagnostic"
	"github.com/mheinekamp/pairwise/pkg/problem"
	"github.com/mheinekamp/pairwise/pkg/rng"
	"github.com/mheinekamp/pairwise/pkg/solve"
	"github.com/mheinekamp/pairwise/pkg/tableio"
	"github.com/mheinekamp/pairwise/pkg/validate"
)

var (
	policyPath = flag.String("policy", "", "path to a YAML policy file (default: built-in policy)")
	seedFlag   = flag.Uint64("seed", 0, "master seed (0 = use the policy's seed, or wall-clock time if that is 0 too)")
	verbose    = flag.Bool("v", false, "enable verbose diagnostics to stderr")
	heatmap    = flag.String("heatmap", "", "optional path to write an SVG pair-coverage heatmap")
)

func main() {
	flag.Parse()
	args := flag.Args()

	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: solver <options-in> <constraints-in> <suite-out>")
		os.Exit(10)
	}

	sink := diagnostic.Sink(diagnostic.Discard)
	if *verbose {
		sink = diagnostic.NewWriter(os.Stderr)
	}

	policy := solve.DefaultPolicy
	if *policyPath != "" {
		loaded, err := solve.LoadPolicy(*policyPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(10)
		}
		policy = *loaded
	}

	seed := *seedFlag
	if seed == 0 {
		seed = policy.Seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	p := problem.New(args[0], args[1], "", "")
	suiteOut := args[2]

	status, err := run(p, suiteOut, policy, seed, sink)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(10)
	}
	switch status {
	case validate.StatusOptions, validate.StatusConstraints:
		os.Exit(20)
	}

	fmt.Println("\033[1;32mCOMPLETE\033[0m")
}

func run(p *problem.Store, suiteOut string, policy solve.Policy, seed uint64, sink diagnostic.Sink) (validate.Status, error) {
	optRows, err := tableio.ParseTableFile(p.OptionsFileIn())
	if err != nil {
		return validate.StatusIO, fmt.Errorf("parsing options: %w", err)
	}
	consRows, err := tableio.ParseTableFile(p.ConstraintsFileIn())
	if err != nil {
		return validate.StatusIO, fmt.Errorf("parsing constraints: %w", err)
	}
	cons, err := tableio.RowsToConstraints(consRows)
	if err != nil {
		sink.Printf("error: %v", err)
		return validate.StatusConstraints, nil
	}
	p.SetOptions(tableio.RowsToOptions(optRows))
	p.SetConstraints(cons)

	gen := rng.NewRNG(seed, "solve", nil)
	suite, status := solve.Solve(p, policy, gen, sink)
	if status != validate.StatusOK {
		return status, nil
	}

	if err := tableio.PrintTableFile(suiteOut, tableio.SuiteToRows(suite)); err != nil {
		return validate.StatusIO, fmt.Errorf("printing suite: %w", err)
	}

	if *heatmap != "" {
		if err := coverage.RenderFile(*heatmap, p.Options().Useful(), suite, coverage.DefaultOptions()); err != nil {
			return validate.StatusIO, fmt.Errorf("rendering heatmap: %w", err)
		}
	}

	return validate.StatusOK, nil
}
