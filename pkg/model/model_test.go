package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mheinekamp/pairwise/pkg/model"
)

func TestCategoryUsefulDegenerate(t *testing.T) {
	useful := model.Category{Name: "A", Values: []string{"1", "2"}}
	degenerate := model.Category{Name: "C", Values: []string{"z"}}

	require.True(t, useful.Useful())
	require.False(t, useful.Degenerate())
	require.True(t, degenerate.Degenerate())
	require.False(t, degenerate.Useful())
}

func TestCategoryHasValue(t *testing.T) {
	c := model.Category{Name: "A", Values: []string{"1", "2"}}
	require.True(t, c.HasValue("1"))
	require.False(t, c.HasValue("3"))
}

func TestOptionsFindUsefulDegenerate(t *testing.T) {
	opts := model.Options{
		{Name: "A", Values: []string{"1", "2"}},
		{Name: "B", Values: []string{"x", "y"}},
		{Name: "C", Values: []string{"z"}},
	}

	found, ok := opts.Find("B")
	require.True(t, ok)
	require.Equal(t, "B", found.Name)

	_, ok = opts.Find("missing")
	require.False(t, ok)

	require.Len(t, opts.Useful(), 2)
	require.Len(t, opts.Degenerate(), 1)
	require.Equal(t, "C", opts.Degenerate()[0].Name)
}

func TestConstraintAsSetDeduplicatesRepeatedBinding(t *testing.T) {
	// The same category may repeat within a single constraint row.
	c := model.Constraint{
		{Category: "A", Value: "1"},
		{Category: "A", Value: "1"},
		{Category: "B", Value: "x"},
	}
	require.Len(t, c.AsSet(), 2)
}

func TestRowCategories(t *testing.T) {
	r := model.Row{
		{Category: "A", Value: "1"},
		{Category: "B", Value: "x"},
		{Category: "A", Value: "1"},
	}
	require.Equal(t, []string{"A", "B"}, r.Categories())
}

func TestPairSatisfies(t *testing.T) {
	p := model.Pair{CatA: "A", ValA: "1", CatB: "B", ValB: "x"}
	row := model.Row{{Category: "A", Value: "1"}, {Category: "B", Value: "x"}}
	require.True(t, p.Satisfies(row))

	partial := model.Row{{Category: "A", Value: "1"}, {Category: "B", Value: "y"}}
	require.False(t, p.Satisfies(partial))
}

func TestViolatesSuperset(t *testing.T) {
	constraint := model.Constraint{{Category: "A", Value: "1"}, {Category: "B", Value: "x"}}

	full := model.Row{
		{Category: "A", Value: "1"},
		{Category: "B", Value: "x"},
		{Category: "C", Value: "z"},
	}
	require.True(t, model.ViolatesSuperset(constraint, full))

	partial := model.Row{
		{Category: "A", Value: "1"},
		{Category: "B", Value: "y"},
	}
	require.False(t, model.ViolatesSuperset(constraint, partial))

	require.False(t, model.ViolatesSuperset(nil, full))
}

func TestAnyConstraintViolated(t *testing.T) {
	cs := model.Constraints{
		{{Category: "A", Value: "1"}, {Category: "B", Value: "x"}},
		{{Category: "A", Value: "2"}, {Category: "B", Value: "y"}},
	}
	row := model.Row{{Category: "A", Value: "2"}, {Category: "B", Value: "y"}}
	require.True(t, model.AnyConstraintViolated(cs, row))

	safe := model.Row{{Category: "A", Value: "1"}, {Category: "B", Value: "y"}}
	require.False(t, model.AnyConstraintViolated(cs, safe))
}
