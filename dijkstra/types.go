// Package dijkstra defines core types and configuration options
// for shortest-path search over a gridgraph.Grid.
//
// The grid is an implicit graph: every cell is a vertex, and a step into a
// 4-connected neighbour v costs CostModel.Cost(label(v)). A cost of
// Impassable removes v from the graph.
//
// Options:
//
//	– WithCostModel: label → step-cost mapping (default UniformCost).
//	– WithEarlyExit: stop once the end cell is finalized.
//
// Errors (sentinel):
//
//	– ErrNilGrid            if the grid pointer is nil.
//	– ErrEndpointOutOfRange if start or end is not a cell index.
//	– ErrBlockedEndpoint    if start or end sits on an impassable cell.
//	– ErrUnreachable        if end is never finalized.
//	– ErrOptionViolation    if an option carries an invalid value.
package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mineexpress/gridgraph"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGrid indicates that a nil *gridgraph.Grid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrEndpointOutOfRange indicates that start or end is not a valid cell index.
	ErrEndpointOutOfRange = errors.New("dijkstra: endpoint index out of range")

	// ErrUnreachable indicates that no path connects start to end.
	ErrUnreachable = errors.New("dijkstra: end is unreachable from start")

	// ErrBlockedEndpoint indicates that start or end itself is impassable.
	// It wraps ErrUnreachable.
	ErrBlockedEndpoint = fmt.Errorf("%w: endpoint is on an impassable cell", ErrUnreachable)

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Impassable is the step cost marking a label as a wall.
const Impassable int64 = -1

// NoPredecessor is the predecessor recorded for the start cell.
const NoPredecessor = -1

// CostModel maps cell labels to the cost of stepping onto a cell.
// Labels absent from Costs cost Default.
type CostModel struct {
	Costs   map[gridgraph.Label]int64
	Default int64
}

// Cost returns the step cost for label l (Impassable for walls).
func (m CostModel) Cost(l gridgraph.Label) int64 {
	if c, ok := m.Costs[l]; ok {
		return c
	}

	return m.Default
}

// Validate checks that every cost is positive or Impassable.
func (m CostModel) Validate() error {
	if m.Default <= 0 && m.Default != Impassable {
		return fmt.Errorf("%w: default cost %d", ErrOptionViolation, m.Default)
	}
	for l, c := range m.Costs {
		if c <= 0 && c != Impassable {
			return fmt.Errorf("%w: cost %d for %q", ErrOptionViolation, c, l)
		}
	}

	return nil
}

// UniformCost is the baseline model: air is a wall, every other cell costs 1.
func UniformCost() CostModel {
	return CostModel{
		Costs:   map[gridgraph.Label]int64{gridgraph.Air: Impassable},
		Default: 1,
	}
}

// TerrainCost additionally slows the agent on packed ice (2) and soul sand (3).
func TerrainCost() CostModel {
	return CostModel{
		Costs: map[gridgraph.Label]int64{
			gridgraph.Air:       Impassable,
			gridgraph.PackedIce: 2,
			gridgraph.SoulSand:  3,
		},
		Default: 1,
	}
}

// Options configures ShortestPath.
//
// Costs     – label → step-cost mapping.
// EarlyExit – stop as soon as the end cell is finalized instead of
// exhausting the frontier. The returned path is identical either way.
type Options struct {
	Costs     CostModel
	EarlyExit bool

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithCostModel replaces the cost model. An invalid model is recorded and
// surfaced as ErrOptionViolation when ShortestPath is invoked.
func WithCostModel(m CostModel) Option {
	return func(o *Options) {
		if err := m.Validate(); err != nil {
			o.err = err
			return
		}
		o.Costs = m
	}
}

// WithEarlyExit stops the search once the end cell is finalized.
func WithEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = true
	}
}

// DefaultOptions returns uniform costs and full frontier exhaustion.
func DefaultOptions() Options {
	return Options{
		Costs:     UniformCost(),
		EarlyExit: false,
	}
}

// Result is a successful search outcome.
type Result struct {
	// Path lists cell indices from start to end inclusive.
	Path []int
	// Cost is the summed step cost along Path.
	Cost int64
	// Finalized counts the cells whose distance was settled.
	Finalized int
}
