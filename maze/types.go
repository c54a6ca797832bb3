// Package maze defines options, layout types and sentinel errors for the
// random corridor-maze generator.
package maze

import (
	"errors"

	"github.com/katalvlaran/mineexpress/gridgraph"
)

// Sentinel errors for maze generation.
var (
	// ErrBadSize indicates Size < 2 or Spacing < 2.
	ErrBadSize = errors.New("maze: size and spacing must be at least 2")
	// ErrBadProbability indicates SlowProbability outside [0,1].
	ErrBadProbability = errors.New("maze: slow-terrain probability must be in [0,1]")
	// ErrNoEndpointCell indicates a spawn or exit region contains no corridor.
	ErrNoEndpointCell = errors.New("maze: endpoint region has no corridor cell")
	// ErrDoesNotFit indicates the layout cannot be placed inside the requested lattice.
	ErrDoesNotFit = errors.New("maze: layout does not fit the observation lattice")
)

// Observation lattice of the baseline mission. The grid observation is
// relative to the agent: it covers 18 cells either side of the agent's cell
// on both axes, so the spawn cell is always the centre cell.
const (
	ObservationSide   = 37
	ObservationCentre = 18
)

// Options configures Generate.
type Options struct {
	// Size is the layout side length.
	Size int
	// Spacing is the distance between parallel corridors.
	Spacing int
	// SlowProbability is the chance a corridor segment is soul sand.
	SlowProbability float64
	// Seed makes generation reproducible.
	Seed uint64
}

// Option configures Generate via functional arguments.
type Option func(*Options)

// WithSeed sets the random seed.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithSize sets the layout side length.
func WithSize(size int) Option {
	return func(o *Options) { o.Size = size }
}

// WithSpacing sets the corridor spacing.
func WithSpacing(spacing int) Option {
	return func(o *Options) { o.Spacing = spacing }
}

// WithSlowProbability sets the chance that a segment is soul sand.
func WithSlowProbability(p float64) Option {
	return func(o *Options) { o.SlowProbability = p }
}

// DefaultOptions returns the baseline mission's maze: 16×16, corridors every
// third cell, one segment in four slowed by soul sand.
func DefaultOptions() Options {
	return Options{
		Size:            16,
		Spacing:         3,
		SlowProbability: 0.25,
	}
}

// Point is a layout cell coordinate.
type Point struct {
	X, Y int
}

// Layout is a generated maze. Cells[y][x] is Air off the corridors.
type Layout struct {
	Size  int
	Cells [][]gridgraph.Label
	Start Point
	End   Point
}
