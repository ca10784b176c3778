package problem_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mheinekamp/pairwise/pkg/model"
	"github.com/mheinekamp/pairwise/pkg/problem"
)

func TestStoreFileIdentifiers(t *testing.T) {
	s := problem.New("in.options", "in.constraints", "out.options", "out.constraints")
	require.Equal(t, "in.options", s.OptionsFileIn())
	require.Equal(t, "in.constraints", s.ConstraintsFileIn())
	require.Equal(t, "out.options", s.OptionsFileOut())
	require.Equal(t, "out.constraints", s.ConstraintsFileOut())
}

func TestStoreSetGetWholesale(t *testing.T) {
	s := problem.New("", "", "", "")

	opts := model.Options{{Name: "A", Values: []string{"1", "2"}}}
	cons := model.Constraints{{{Category: "A", Value: "1"}}}

	s.SetOptions(opts)
	s.SetConstraints(cons)

	require.Equal(t, opts, s.Options())
	require.Equal(t, cons, s.Constraints())
}

func TestStoreZeroValueIsEmpty(t *testing.T) {
	s := problem.New("", "", "", "")
	require.Empty(t, s.Options())
	require.Empty(t, s.Constraints())
}
