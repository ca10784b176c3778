// Package coverage renders an SVG heatmap showing which pairs a suite
// covers. It is optional: no CLI program fails if the heatmap is skipped.
// The rendering style — dark canvas, a title, a color-coded grid — is
// adapted from pkg/export's SVG dungeon-graph renderer, swapping room
// nodes for a per-category-pair coverage grid. No legend is drawn.
package coverage

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	svg "github.com/ajstarks/svgo"

	"github.com/mheinekamp/pairwise/pkg/model"
)

// Options configures heatmap rendering.
type Options struct {
	CellSize int    // side length of one grid cell in pixels
	Margin   int    // canvas margin in pixels
	Title    string // optional title drawn above the grid
}

// DefaultOptions returns sensible default heatmap options.
func DefaultOptions() Options {
	return Options{CellSize: 28, Margin: 60, Title: "Pair Coverage"}
}

// Render draws a grid of cells, one per distinct category pair in useful,
// stacked vertically; within each grid, rows are the first category's
// values and columns the second's. A cell is colored green if the suite
// covers that (valueA, valueB) combination and red otherwise.
func Render(w io.Writer, useful model.Options, suite model.Suite, opts Options) error {
	if opts.CellSize <= 0 {
		opts.CellSize = 28
	}
	if opts.Margin <= 0 {
		opts.Margin = 60
	}

	pairs := groupByCategoryPair(useful)
	width, height := layoutSize(pairs, opts)

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#1a1a2e")

	if opts.Title != "" {
		canvas.Text(width/2, opts.Margin/2, opts.Title,
			"text-anchor:middle;font-size:18px;font-weight:bold;fill:#e2e8f0")
	}

	y := opts.Margin
	for _, grid := range pairs {
		y = drawGrid(canvas, grid, suite, opts, y)
	}

	canvas.End()
	return nil
}

// RenderFile writes a heatmap to path, creating or truncating it.
func RenderFile(path string, useful model.Options, suite model.Suite, opts Options) error {
	var buf bytes.Buffer
	if err := Render(&buf, useful, suite, opts); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing heatmap %s: %w", path, err)
	}
	return nil
}

// categoryPairGrid is one (categoryA, categoryB) axis pair to render.
type categoryPairGrid struct {
	catA, catB       string
	valuesA, valuesB []string
}

// groupByCategoryPair returns one grid per distinct i<j category pair in
// useful, in canonical order.
func groupByCategoryPair(useful model.Options) []categoryPairGrid {
	var grids []categoryPairGrid
	for i := 0; i < len(useful); i++ {
		for k := i + 1; k < len(useful); k++ {
			grids = append(grids, categoryPairGrid{
				catA: useful[i].Name, catB: useful[k].Name,
				valuesA: useful[i].Values, valuesB: useful[k].Values,
			})
		}
	}
	return grids
}

// layoutSize computes a canvas large enough to stack every grid with its
// own header, sized by its largest dimension.
func layoutSize(grids []categoryPairGrid, opts Options) (int, int) {
	maxCols := 1
	height := opts.Margin
	for _, g := range grids {
		if len(g.valuesB) > maxCols {
			maxCols = len(g.valuesB)
		}
		height += opts.Margin/2 + len(g.valuesA)*opts.CellSize
	}
	width := opts.Margin*2 + maxCols*opts.CellSize + 140 // +140 for row labels
	return width, height + opts.Margin
}

// drawGrid renders one category-pair grid starting at top and returns the
// y coordinate immediately below it.
func drawGrid(canvas *svg.SVG, g categoryPairGrid, suite model.Suite, opts Options, top int) int {
	canvas.Text(opts.Margin, top, fmt.Sprintf("%s × %s", g.catA, g.catB),
		"font-size:13px;fill:#cbd5e0")
	top += opts.Margin / 2

	covered := coveredSet(g, suite)

	valuesA := sortedCopy(g.valuesA)
	valuesB := sortedCopy(g.valuesB)

	labelWidth := 140
	for ri, va := range valuesA {
		y := top + ri*opts.CellSize
		canvas.Text(opts.Margin+labelWidth-10, y+opts.CellSize/2+4, va,
			"text-anchor:end;font-size:11px;fill:#a0aec0")
		for ci, vb := range valuesB {
			x := opts.Margin + labelWidth + ci*opts.CellSize
			color := "#ef4444"
			if covered[[2]string{va, vb}] {
				color = "#10b981"
			}
			canvas.Rect(x, y, opts.CellSize-2, opts.CellSize-2,
				fmt.Sprintf("fill:%s;stroke:#1a1a2e", color))
		}
	}

	return top + len(valuesA)*opts.CellSize
}

// coveredSet reports, for each (valueA, valueB) combination in g, whether
// some row in suite binds both category values together.
func coveredSet(g categoryPairGrid, suite model.Suite) map[[2]string]bool {
	covered := make(map[[2]string]bool)
	for _, row := range suite {
		var va, vb string
		var hasA, hasB bool
		for _, b := range row {
			if b.Category == g.catA {
				va, hasA = b.Value, true
			}
			if b.Category == g.catB {
				vb, hasB = b.Value, true
			}
		}
		if hasA && hasB {
			covered[[2]string{va, vb}] = true
		}
	}
	return covered
}

func sortedCopy(values []string) []string {
	out := append([]string(nil), values...)
	sort.Strings(out)
	return out
}
