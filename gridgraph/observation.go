package gridgraph

import (
	"encoding/json"
	"fmt"
)

// DefaultObservationGrid is the grid name the baseline mission registers
// with its ObservationFromGrid handler.
const DefaultObservationGrid = "floorAll"

// DecodeObservation extracts the named string array from a JSON observation
// document and builds a Grid with the given stride.
// Other fields of the document (agent position, life, ...) are ignored.
// Returns ErrObservationField if the field is absent or null.
func DecodeObservation(data []byte, name string, stride int) (*Grid, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("gridgraph: decode observation: %w", err)
	}
	raw, ok := doc[name]
	if !ok || string(raw) == "null" {
		return nil, fmt.Errorf("%w: %q", ErrObservationField, name)
	}
	var cells []string
	if err := json.Unmarshal(raw, &cells); err != nil {
		return nil, fmt.Errorf("gridgraph: decode observation field %q: %w", name, err)
	}

	return FromStrings(cells, stride)
}

// EncodeObservation is the inverse of DecodeObservation: it writes the grid
// as a single named string array.
func EncodeObservation(g *Grid, name string) ([]byte, error) {
	return json.Marshal(map[string][]Label{name: g.Cells})
}
