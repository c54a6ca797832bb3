// Package gridgraph defines the cell vocabulary, grid type and options
// for the gridgraph subpackage of github.com/katalvlaran/mineexpress.
package gridgraph

// Label is the block type observed at one grid cell.
type Label string

// Cell vocabulary reported by the simulator's grid observation.
const (
	// Air is the only blocked label: there is no floor to walk on.
	Air Label = "air"
	// DiamondOre and DiamondBlock are the generic passable floor.
	DiamondOre   Label = "diamond_ore"
	DiamondBlock Label = "diamond_block"
	// PackedIce and SoulSand are the "slower" terrain types.
	PackedIce Label = "packed_ice"
	SoulSand  Label = "soul_sand"
	// Start marks the agent's spawn cell.
	Start Label = "emerald_block"
	// End marks the exit cell.
	End Label = "redstone_block"
)

// Blocked reports whether the label can never be stepped on.
func (l Label) Blocked() bool { return l == Air }

// Known reports whether l belongs to the cell vocabulary above.
func (l Label) Known() bool {
	switch l {
	case Air, DiamondOre, DiamondBlock, PackedIce, SoulSand, Start, End:
		return true
	}

	return false
}

// Direction indices into Grid.Offsets and Grid.Neighbors ordering.
const (
	North = iota
	South
	West
	East
)

// Grid is a flattened, row-major square lattice (optionally stacked in layers)
// of cell labels. It is immutable once built. Literals are allowed; the
// search entry points call Validate before touching the index arithmetic.
//
// Stride is the lattice side length; index i sits at column i%Stride,
// row (i%(Stride*Stride))/Stride and layer i/(Stride*Stride).
type Grid struct {
	Stride int
	Cells  []Label
}

// EndpointOptions controls how LocateEndpoints resolves duplicate markers.
type EndpointOptions struct {
	// LastMatchWins keeps the last occurrence of a duplicated marker
	// instead of reporting ErrDuplicateEndpoint.
	LastMatchWins bool
}

// EndpointOption configures LocateEndpoints.
type EndpointOption func(*EndpointOptions)

// WithLastMatchWins resolves duplicate markers to their last occurrence in scan order.
func WithLastMatchWins() EndpointOption {
	return func(o *EndpointOptions) {
		o.LastMatchWins = true
	}
}

// DefaultEndpointOptions returns strict endpoint resolution.
func DefaultEndpointOptions() EndpointOptions {
	return EndpointOptions{LastMatchWins: false}
}
