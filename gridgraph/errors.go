package gridgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input cell sequence is empty.
	ErrEmptyGrid = errors.New("gridgraph: grid must contain at least one cell")
	// ErrBadStride indicates a non-positive stride or a cell count that is not a multiple of stride×stride.
	ErrBadStride = errors.New("gridgraph: cell count must be a positive multiple of stride×stride")
	// ErrMissingEndpoint indicates the start or end marker is absent from the grid.
	ErrMissingEndpoint = errors.New("gridgraph: endpoint marker not found")
	// ErrDuplicateEndpoint indicates a marker occurs more than once.
	// It wraps ErrMissingEndpoint: an ambiguous endpoint is no endpoint at all.
	ErrDuplicateEndpoint = fmt.Errorf("%w: marker occurs more than once", ErrMissingEndpoint)
	// ErrObservationField indicates the observation document lacks the requested grid.
	ErrObservationField = errors.New("gridgraph: observation grid field missing")
)
