package validate_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mheinekamp/pairwise/pkg/diagnostic"
	"github.com/mheinekamp/pairwise/pkg/model"
	"github.com/mheinekamp/pairwise/pkg/problem"
	"github.com/mheinekamp/pairwise/pkg/validate"
)

func sampleOptions() model.Options {
	return model.Options{
		{Name: "color", Values: []string{"red", "green", "blue"}},
		{Name: "size", Values: []string{"small", "large"}},
	}
}

func TestCheckProblemOK(t *testing.T) {
	opts := sampleOptions()
	cons := model.Constraints{{{Category: "color", Value: "red"}, {Category: "size", Value: "large"}}}
	require.Equal(t, validate.StatusOK, validate.CheckProblem(opts, cons, nil, diagnostic.Discard))
}

func TestCheckProblemDegenerateWarningLatchedBehindSuccess(t *testing.T) {
	opts := model.Options{
		{Name: "color", Values: []string{"red", "green"}},
		{Name: "fixed", Values: []string{"only"}},
	}
	require.Equal(t, validate.StatusDegenerateWarning, validate.CheckProblem(opts, nil, nil, diagnostic.Discard))
}

func TestCheckProblemWarningSuppressedByLaterError(t *testing.T) {
	opts := model.Options{
		{Name: "color", Values: []string{"red", "green"}},
		{Name: "fixed", Values: []string{"only"}},
	}
	cons := model.Constraints{{{Category: "nope", Value: "x"}}}
	require.Equal(t, validate.StatusConstraints, validate.CheckProblem(opts, cons, nil, diagnostic.Discard))
}

func TestCheckProblemRejectsEmptyCategory(t *testing.T) {
	opts := model.Options{{Name: "color", Values: nil}}
	require.Equal(t, validate.StatusOptions, validate.CheckProblem(opts, nil, nil, diagnostic.Discard))
}

func TestCheckProblemRejectsUnknownConstraintCategory(t *testing.T) {
	opts := sampleOptions()
	cons := model.Constraints{{{Category: "missing", Value: "x"}}}
	require.Equal(t, validate.StatusConstraints, validate.CheckProblem(opts, cons, nil, diagnostic.Discard))
}

func TestCheckProblemRejectsUnknownConstraintValue(t *testing.T) {
	opts := sampleOptions()
	cons := model.Constraints{{{Category: "color", Value: "purple"}}}
	require.Equal(t, validate.StatusConstraints, validate.CheckProblem(opts, cons, nil, diagnostic.Discard))
}

func TestCheckProblemWithSuiteDelegatesToSuiteChecks(t *testing.T) {
	opts := sampleOptions()
	suite := model.Suite{
		{{Category: "color", Value: "red"}, {Category: "size", Value: "small"}},
	}
	require.Equal(t, validate.StatusOK, validate.CheckProblem(opts, nil, &suite, diagnostic.Discard))

	badSuite := model.Suite{
		{{Category: "color", Value: "red"}},
	}
	require.Equal(t, validate.StatusSuite, validate.CheckProblem(opts, nil, &badSuite, diagnostic.Discard))
}

// checkSuiteSuite groups every CheckSuite scenario behind one shared
// problem (sampleOptions, no constraints by default), set up fresh per
// test by SetupTest rather than repeated in each test body.
type checkSuiteSuite struct {
	suite.Suite
	p *problem.Store
}

func (s *checkSuiteSuite) SetupTest() {
	s.p = problem.New("", "", "", "")
	s.p.SetOptions(sampleOptions())
}

func (s *checkSuiteSuite) TestArity() {
	row := model.Suite{{{Category: "color", Value: "red"}}}
	s.Equal(validate.StatusSuite, validate.CheckSuite(s.p, row, diagnostic.Discard))
}

func (s *checkSuiteSuite) TestUnknownCategory() {
	row := model.Suite{{{Category: "color", Value: "red"}, {Category: "weight", Value: "heavy"}}}
	s.Equal(validate.StatusSuite, validate.CheckSuite(s.p, row, diagnostic.Discard))
}

func (s *checkSuiteSuite) TestUnknownValue() {
	row := model.Suite{{{Category: "color", Value: "purple"}, {Category: "size", Value: "small"}}}
	s.Equal(validate.StatusSuite, validate.CheckSuite(s.p, row, diagnostic.Discard))
}

func (s *checkSuiteSuite) TestDuplicateCategory() {
	row := model.Suite{{{Category: "color", Value: "red"}, {Category: "color", Value: "green"}}}
	s.Equal(validate.StatusSuite, validate.CheckSuite(s.p, row, diagnostic.Discard))
}

func (s *checkSuiteSuite) TestForbiddenCombination() {
	s.p.SetConstraints(model.Constraints{{{Category: "color", Value: "red"}, {Category: "size", Value: "large"}}})
	row := model.Suite{{{Category: "color", Value: "red"}, {Category: "size", Value: "large"}}}
	s.Equal(validate.StatusSuite, validate.CheckSuite(s.p, row, diagnostic.Discard))
}

func (s *checkSuiteSuite) TestOK() {
	s.p.SetConstraints(model.Constraints{{{Category: "color", Value: "red"}, {Category: "size", Value: "large"}}})
	row := model.Suite{{{Category: "color", Value: "red"}, {Category: "size", Value: "small"}}}
	s.Equal(validate.StatusOK, validate.CheckSuite(s.p, row, diagnostic.Discard))
}

func TestCheckSuiteSuite(t *testing.T) {
	suite.Run(t, new(checkSuiteSuite))
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "ok", validate.StatusOK.String())
	require.Equal(t, "degenerate category warning", validate.StatusDegenerateWarning.String())
}
