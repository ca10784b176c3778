package coverage_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mheinekamp/pairwise/pkg/coverage"
	"github.com/mheinekamp/pairwise/pkg/model"
)

func TestGroupByCategoryPairEnumeratesEveryIJPair(t *testing.T) {
	useful := model.Options{
		{Name: "A", Values: []string{"1", "2"}},
		{Name: "B", Values: []string{"x", "y"}},
		{Name: "C", Values: []string{"p", "q"}},
	}

	// groupByCategoryPair is unexported; exercise it indirectly through
	// Render, which must draw one grid per i<j pair (3 categories -> 3
	// pairs: A-B, A-C, B-C), each labeled "catA × catB" on its own line.
	var buf bytes.Buffer
	require.NoError(t, coverage.Render(&buf, useful, nil, coverage.DefaultOptions()))

	out := buf.String()
	for _, label := range []string{"A × B", "A × C", "B × C"} {
		require.Contains(t, out, label)
	}
}

func TestRenderProducesWellFormedSVG(t *testing.T) {
	useful := model.Options{
		{Name: "A", Values: []string{"1", "2"}},
		{Name: "B", Values: []string{"x", "y"}},
	}
	suite := model.Suite{
		{{Category: "A", Value: "1"}, {Category: "B", Value: "x"}},
	}

	var buf bytes.Buffer
	require.NoError(t, coverage.Render(&buf, useful, suite, coverage.DefaultOptions()))

	out := buf.String()
	require.Contains(t, out, "<svg")
	require.Contains(t, out, "</svg>")
}

func TestRenderColorsCoveredAndUncoveredCellsDifferently(t *testing.T) {
	useful := model.Options{
		{Name: "A", Values: []string{"1", "2"}},
		{Name: "B", Values: []string{"x", "y"}},
	}
	// Only (A=1, B=x) is covered; the other three combinations are not.
	suite := model.Suite{
		{{Category: "A", Value: "1"}, {Category: "B", Value: "x"}},
	}

	var buf bytes.Buffer
	require.NoError(t, coverage.Render(&buf, useful, suite, coverage.DefaultOptions()))

	out := buf.String()
	require.Contains(t, out, "#10b981", "at least one covered cell should render green")
	require.Contains(t, out, "#ef4444", "at least one uncovered cell should render red")
}

func TestRenderEmptySuiteLeavesEveryCellUncovered(t *testing.T) {
	useful := model.Options{
		{Name: "A", Values: []string{"1", "2"}},
		{Name: "B", Values: []string{"x", "y"}},
	}

	var buf bytes.Buffer
	require.NoError(t, coverage.Render(&buf, useful, nil, coverage.DefaultOptions()))

	out := buf.String()
	require.NotContains(t, out, "#10b981")
	require.Contains(t, out, "#ef4444")
}

func TestRenderFileWritesReadableFile(t *testing.T) {
	useful := model.Options{
		{Name: "A", Values: []string{"1", "2"}},
	}
	path := t.TempDir() + "/heatmap.svg"

	require.NoError(t, coverage.RenderFile(path, useful, nil, coverage.DefaultOptions()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "</svg>")
}

func TestDefaultOptionsAreUsable(t *testing.T) {
	opts := coverage.DefaultOptions()
	require.Greater(t, opts.CellSize, 0)
	require.Greater(t, opts.Margin, 0)
	require.NotEmpty(t, opts.Title)
}
