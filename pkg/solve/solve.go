// Package solve builds a pairwise-covering test suite from a problem.
// GeneratePairs and GenerateRow implement the randomized greedy
// construction adapted from solver.cpp's SOLVER class; Solve is the full
// entry point that runs that construction until the pair pool is exhausted
// or the rejection budget is spent, and restores
// degenerate categories that were stripped out before the row loop ran.
package solve

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mheinekamp/pairwise/pkg/diagnostic"
	"github.com/mheinekamp/pairwise/pkg/model"
	"github.com/mheinekamp/pairwise/pkg/problem"
	"github.com/mheinekamp/pairwise/pkg/rng"
	"github.com/mheinekamp/pairwise/pkg/validate"
)

// Policy configures a solve run: how persistent the row builder is before
// giving up, and the master seed driving its randomness.
type Policy struct {
	// RejectionBudget is the cumulative number of constraint-violating rows
	// tolerated across the whole run before the row-construction loop gives
	// up early, leaving any undrawn pairs uncovered. The original source
	// hardcoded this at 1000; it is configurable here.
	RejectionBudget int `yaml:"rejectionBudget"`

	// Seed is the master seed for the run's RNG. Solve itself does not read
	// it: the solver program seeds the *rng.RNG it passes to Solve from this
	// field when no -seed flag is given. Zero means the policy fixes no seed;
	// LoadPolicy never auto-generates one, since reproducibility is the point
	// of exposing this field at all.
	Seed uint64 `yaml:"seed"`
}

// DefaultPolicy mirrors the original source's hardcoded termination rule.
var DefaultPolicy = Policy{RejectionBudget: 1000}

// LoadPolicy reads and validates a YAML policy file.
func LoadPolicy(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading policy file: %w", err)
	}

	policy := DefaultPolicy
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return nil, fmt.Errorf("parsing policy YAML: %w", err)
	}
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("validating policy: %w", err)
	}
	return &policy, nil
}

// Validate checks the policy's constraints.
func (p *Policy) Validate() error {
	if p.RejectionBudget < 0 {
		return fmt.Errorf("rejectionBudget must be >= 0, got %d", p.RejectionBudget)
	}
	return nil
}

// GeneratePairs enumerates every (categoryA=valueA, categoryB=valueB)
// combination drawn from two distinct categories in useful, in canonical
// i<j category order. useful must already be filtered to categories with
// two or more values; a category with one value cannot contribute a pair.
func GeneratePairs(useful model.Options) []model.Pair {
	var pairs []model.Pair
	for i := 0; i < len(useful); i++ {
		for _, valA := range useful[i].Values {
			for k := i + 1; k < len(useful); k++ {
				for _, valB := range useful[k].Values {
					pairs = append(pairs, model.Pair{
						CatA: useful[i].Name, ValA: valA,
						CatB: useful[k].Name, ValB: valB,
					})
				}
			}
		}
	}
	return pairs
}

// remainingPoolWeight biases pair selection heavily toward the shrinking
// remaining pool: the original source's `path > 1 / pairs.size()` integer
// division collapses to "almost always pick remaining" whenever more than
// one pair remains, falling back to the full pool only ~1% of the time (or
// whenever the remaining pool is empty). WeightedChoice with these weights
// reproduces that bias explicitly instead of relying on integer-division
// truncation.
var remainingPoolWeight = []float64{99.0, 1.0}

// GenerateRow draws one row covering as many still-needed pairs as
// possible. It repeatedly picks a pair — with heavy bias toward remaining
// over all, mirroring the original construction — and, if both of the
// pair's categories are still unbound in the row under construction, binds
// them. If useful has an odd number of live categories once the loop can
// no longer place a pair, the last category is filled with a value chosen
// uniformly at random.
//
// It returns the constructed row and the indices into remaining that the
// row consumed, for the caller to delete in a single pass.
func GenerateRow(useful model.Options, remaining, all []model.Pair, gen *rng.RNG) (model.Row, []int) {
	var row model.Row
	var consumed []int

	live := make(map[string]bool, len(useful))
	for _, c := range useful {
		live[c.Name] = true
	}

	for len(live) > 1 {
		fromRemaining := len(remaining) > 0
		if fromRemaining {
			choice := gen.WeightedChoice(remainingPoolWeight)
			fromRemaining = choice == 0
		}

		if fromRemaining {
			idx := gen.Intn(len(remaining))
			pair := remaining[idx]
			if live[pair.CatA] && live[pair.CatB] {
				row = append(row, model.Binding{Category: pair.CatA, Value: pair.ValA}, model.Binding{Category: pair.CatB, Value: pair.ValB})
				consumed = append(consumed, idx)
				delete(live, pair.CatA)
				delete(live, pair.CatB)
			}
			continue
		}

		if len(all) == 0 {
			break
		}
		pair := all[gen.Intn(len(all))]
		if live[pair.CatA] && live[pair.CatB] {
			row = append(row, model.Binding{Category: pair.CatA, Value: pair.ValA}, model.Binding{Category: pair.CatB, Value: pair.ValB})
			delete(live, pair.CatA)
			delete(live, pair.CatB)
		}
	}

	for name := range live {
		cat, ok := useful.Find(name)
		if !ok || len(cat.Values) == 0 {
			continue
		}
		row = append(row, model.Binding{Category: name, Value: cat.Values[gen.Intn(len(cat.Values))]})
	}

	return row, consumed
}

// Solve runs CheckProblem on p, then — if the problem is valid, or only
// warns about degenerate categories — constructs a pairwise-covering suite
// and returns it with StatusOK; the degenerate warning is not passed on to
// the caller. A hard validation failure (anything but OK or the degenerate
// warning) short-circuits with an empty suite and that failure's status.
func Solve(p *problem.Store, policy Policy, gen *rng.RNG, sink diagnostic.Sink) (model.Suite, validate.Status) {
	opts := p.Options()
	cons := p.Constraints()

	status := validate.CheckProblem(opts, cons, nil, sink)
	containsDegenerate := status == validate.StatusDegenerateWarning
	if status != validate.StatusOK && !containsDegenerate {
		return nil, status
	}

	useful := opts.Useful()
	degenerate := opts.Degenerate()

	var suite model.Suite
	if len(useful) >= 2 {
		suite = buildSuite(useful, cons, policy, gen, sink)
	} else {
		sink.Printf("info: options file contains fewer than two categories with two or more values; nothing to pair")
	}

	if len(degenerate) > 0 {
		suite = absorbDegenerate(suite, degenerate, cons)
	}

	return suite, validate.StatusOK
}

// buildSuite runs the randomized greedy row-construction loop until the
// pair pool is exhausted or the cumulative rejection budget is spent.
func buildSuite(useful model.Options, cons model.Constraints, policy Policy, gen *rng.RNG, sink diagnostic.Sink) model.Suite {
	all := GeneratePairs(useful)
	remaining := append([]model.Pair(nil), all...)

	var suite model.Suite
	rejections := 0
	for len(remaining) > 0 {
		row, toDelete := GenerateRow(useful, remaining, all, gen)

		if model.AnyConstraintViolated(cons, row) {
			rejections++
			if rejections > policy.RejectionBudget {
				sink.Printf("stopping after %d rejections in total; %d pairs left uncovered", rejections, len(remaining))
				break
			}
			continue
		}

		suite = append(suite, row)
		remaining = deleteIndices(remaining, toDelete)
	}
	return suite
}

// absorbDegenerate appends every degenerate category's single value to
// each row, then drops any row that this addition pushes into violating a
// constraint — mirroring the original source's post-processing pass.
func absorbDegenerate(suite model.Suite, degenerate model.Options, cons model.Constraints) model.Suite {
	for i, row := range suite {
		for _, c := range degenerate {
			row = append(row, model.Binding{Category: c.Name, Value: c.Values[0]})
		}
		suite[i] = row
	}

	kept := make(model.Suite, 0, len(suite))
	for _, row := range suite {
		if !model.AnyConstraintViolated(cons, row) {
			kept = append(kept, row)
		}
	}
	return kept
}

// deleteIndices removes the elements of pairs at the given indices,
// preserving the order of the remainder.
func deleteIndices(pairs []model.Pair, indices []int) []model.Pair {
	if len(indices) == 0 {
		return pairs
	}
	drop := make(map[int]bool, len(indices))
	for _, idx := range indices {
		drop[idx] = true
	}
	out := make([]model.Pair, 0, len(pairs)-len(indices))
	for i, p := range pairs {
		if !drop[i] {
			out = append(out, p)
		}
	}
	return out
}
