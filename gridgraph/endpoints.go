package gridgraph

import "fmt"

// LocateEndpoints scans every cell and returns the indices of the Start and
// End markers.
//
// Behavior:
//  1. A missing marker yields an error wrapping ErrMissingEndpoint.
//  2. A repeated marker yields ErrDuplicateEndpoint, unless
//     WithLastMatchWins() is given, in which case the last occurrence is kept.
//
// Complexity: O(N) time, O(1) memory.
func LocateEndpoints(g *Grid, opts ...EndpointOption) (start, end int, err error) {
	cfg := DefaultEndpointOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil || len(g.Cells) == 0 {
		return -1, -1, ErrEmptyGrid
	}

	start, end = -1, -1
	for i, l := range g.Cells {
		switch l {
		case Start:
			if start >= 0 && !cfg.LastMatchWins {
				return -1, -1, fmt.Errorf("%w: %s at %d and %d", ErrDuplicateEndpoint, Start, start, i)
			}
			start = i
		case End:
			if end >= 0 && !cfg.LastMatchWins {
				return -1, -1, fmt.Errorf("%w: %s at %d and %d", ErrDuplicateEndpoint, End, end, i)
			}
			end = i
		}
	}
	if start < 0 {
		return -1, -1, fmt.Errorf("%w: no %s (start)", ErrMissingEndpoint, Start)
	}
	if end < 0 {
		return -1, -1, fmt.Errorf("%w: no %s (end)", ErrMissingEndpoint, End)
	}

	return start, end, nil
}
