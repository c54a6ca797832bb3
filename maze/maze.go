// Package maze generates the corridor mazes the baseline agent is tested on.
//
// A layout is a square of Size cells. Every Spacing-th row and column is a
// corridor; corridor intersections are always floor, and each run of cells
// between two intersections is, as a whole, either plain floor or (with
// probability SlowProbability) soul sand. Everything else is air.
//
// The start marker is placed on a random corridor cell in the top-left
// quadrant [0, Size/2−1)², the exit on one in [Size/2, Size−1)².
package maze

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/mineexpress/gridgraph"
)

// Generate builds a random layout. The same options always yield the same layout.
func Generate(opts ...Option) (*Layout, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Size < 2 || cfg.Spacing < 2 {
		return nil, fmt.Errorf("%w: size=%d spacing=%d", ErrBadSize, cfg.Size, cfg.Spacing)
	}
	if cfg.SlowProbability < 0 || cfg.SlowProbability > 1 {
		return nil, fmt.Errorf("%w: %v", ErrBadProbability, cfg.SlowProbability)
	}

	src := rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)
	rng := rand.New(src)
	slow := distuv.Bernoulli{P: cfg.SlowProbability, Src: src}

	n := cfg.Size
	cells := make([][]gridgraph.Label, n)
	for y := range cells {
		cells[y] = make([]gridgraph.Label, n)
		for x := range cells[y] {
			cells[y][x] = gridgraph.Air
		}
	}

	segment := func() gridgraph.Label {
		if slow.Rand() == 1 {
			return gridgraph.SoulSand
		}
		return gridgraph.DiamondBlock
	}
	for i := 0; i < n; i += cfg.Spacing {
		for k := 0; k < n; k += cfg.Spacing {
			cells[i][k] = gridgraph.DiamondBlock
		}
		for j := 1; j < n; j += cfg.Spacing {
			row, col := segment(), segment()
			for k := j; k < min(j+cfg.Spacing-1, n); k++ {
				cells[i][k] = row
				cells[k][i] = col
			}
		}
	}

	start, err := pick(rng, cells, 0, n/2-1)
	if err != nil {
		return nil, fmt.Errorf("%w: start", err)
	}
	end, err := pick(rng, cells, n/2, n-1)
	if err != nil {
		return nil, fmt.Errorf("%w: end", err)
	}
	cells[start.Y][start.X] = gridgraph.Start
	cells[end.Y][end.X] = gridgraph.End

	return &Layout{Size: n, Cells: cells, Start: start, End: end}, nil
}

// pick draws uniformly among the corridor cells of the square [lo,hi)².
func pick(rng *rand.Rand, cells [][]gridgraph.Label, lo, hi int) (Point, error) {
	var candidates []Point
	for y := lo; y < hi; y++ {
		for x := lo; x < hi; x++ {
			if !cells[y][x].Blocked() {
				candidates = append(candidates, Point{X: x, Y: y})
			}
		}
	}
	if len(candidates) == 0 {
		return Point{}, ErrNoEndpointCell
	}

	return candidates[rng.IntN(len(candidates))], nil
}

// Grid places the layout at (offset, offset) inside a side×side lattice of air.
func (l *Layout) Grid(side, offset int) (*gridgraph.Grid, error) {
	return l.Embed(side, offset, offset)
}

// Embed places the layout's top-left cell at column ox, row oy of a
// side×side lattice of air.
func (l *Layout) Embed(side, ox, oy int) (*gridgraph.Grid, error) {
	if ox < 0 || oy < 0 || ox+l.Size > side || oy+l.Size > side {
		return nil, fmt.Errorf("%w: size=%d origin=(%d,%d) side=%d", ErrDoesNotFit, l.Size, ox, oy, side)
	}
	out := make([]gridgraph.Label, side*side)
	for i := range out {
		out[i] = gridgraph.Air
	}
	for y, row := range l.Cells {
		copy(out[(oy+y)*side+ox:], row)
	}

	return gridgraph.NewGrid(out, side)
}

// ObservationOrigin is where the layout's top-left cell lands in the
// agent-centred observation: the start marker sits on the centre cell.
func (l *Layout) ObservationOrigin() (ox, oy int) {
	return ObservationCentre - l.Start.X, ObservationCentre - l.Start.Y
}

// ObservationGrid is the layout as the agent's grid observation sees it at spawn.
func (l *Layout) ObservationGrid() (*gridgraph.Grid, error) {
	ox, oy := l.ObservationOrigin()

	return l.Embed(ObservationSide, ox, oy)
}
