// Package gridgraph provides utilities to treat a flattened block-grid
// observation as an implicit 4-connected graph. It supports:
//
//   - Row-major index arithmetic with a fixed stride
//   - Neighbour enumeration that never wraps across rows or layers
//   - Locating the start and end markers
//   - Decoding the simulator's JSON grid observation
//
// Cells labelled Air are blocked; every other label is floor.
package gridgraph

import "fmt"

// NewGrid constructs a Grid from a non-empty cell sequence whose length is a
// multiple of stride×stride. It copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells is empty,
// ErrBadStride if stride ≤ 0 or the length does not fit the lattice.
// Algorithmic complexity: O(N) time and memory.
func NewGrid(cells []Label, stride int) (*Grid, error) {
	g := &Grid{Stride: stride, Cells: make([]Label, len(cells))}
	copy(g.Cells, cells)
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// Validate checks the shape of a Grid that was not built by NewGrid:
// a positive Stride and a non-empty Cells slice whose length is a multiple
// of Stride×Stride. A nil grid is ErrEmptyGrid.
func (g *Grid) Validate() error {
	if g == nil || len(g.Cells) == 0 {
		return ErrEmptyGrid
	}
	if g.Stride <= 0 {
		return fmt.Errorf("%w: stride=%d", ErrBadStride, g.Stride)
	}
	if len(g.Cells)%g.layerSize() != 0 {
		return fmt.Errorf("%w: %d cells, stride=%d", ErrBadStride, len(g.Cells), g.Stride)
	}

	return nil
}

// FromStrings is NewGrid for raw observation strings.
func FromStrings(cells []string, stride int) (*Grid, error) {
	labels := make([]Label, len(cells))
	for i, c := range cells {
		labels[i] = Label(c)
	}

	return NewGrid(labels, stride)
}

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.Cells) }

// Layers returns the number of stacked stride×stride layers.
func (g *Grid) Layers() int { return len(g.Cells) / g.layerSize() }

// layerSize is the number of cells in one layer.
func (g *Grid) layerSize() int { return g.Stride * g.Stride }

// InBounds reports whether i is a valid cell index.
// Complexity: O(1).
func (g *Grid) InBounds(i int) bool {
	return i >= 0 && i < len(g.Cells)
}

// Label returns the label at index i. i must be in bounds.
func (g *Grid) Label(i int) Label { return g.Cells[i] }

// Index maps (x,y,layer) to a row-major index.
// Complexity: O(1).
func (g *Grid) Index(x, y, layer int) int {
	return layer*g.layerSize() + y*g.Stride + x
}

// Coordinate converts a row-major index back to (x,y,layer).
// Complexity: O(1).
func (g *Grid) Coordinate(i int) (x, y, layer int) {
	size := g.layerSize()
	layer = i / size
	rem := i % size

	return rem % g.Stride, rem / g.Stride, layer
}

// Offsets returns the index offsets of the four neighbours in
// North, South, West, East order: −Stride, +Stride, −1, +1.
func (g *Grid) Offsets() [4]int {
	return [4]int{-g.Stride, g.Stride, -1, 1}
}

// Neighbors returns the in-bounds 4-connected neighbours of i, in
// North, South, West, East order. Moves never cross a row or layer boundary.
// Blocked cells are included; filtering is left to the caller's cost model.
// Complexity: O(1).
func (g *Grid) Neighbors(i int) []int {
	x, y, _ := g.Coordinate(i)
	out := make([]int, 0, 4)
	if y > 0 {
		out = append(out, i-g.Stride)
	}
	if y < g.Stride-1 {
		out = append(out, i+g.Stride)
	}
	if x > 0 {
		out = append(out, i-1)
	}
	if x < g.Stride-1 {
		out = append(out, i+1)
	}

	return out
}
