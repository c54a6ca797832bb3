package planner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mineexpress/dijkstra"
	"github.com/katalvlaran/mineexpress/gridgraph"
)

// DefaultStride is the side of the baseline observation window: 18 cells
// either side of the agent on both axes (size*4+5, size 8).
const DefaultStride = 37

// ImpassableCost marks a label as a wall in Config.Costs.
const ImpassableCost = -1

// ErrUnknownLabel indicates a Config.Costs key outside the cell vocabulary.
var ErrUnknownLabel = errors.New("planner: unknown label in costs")

// Config holds the planner's tunables. It can be loaded from YAML:
//
//	stride: 37
//	grid_name: floorAll
//	strict_endpoints: true
//	early_exit: false
//	costs:
//	  air: -1
//	  soul_sand: 3
type Config struct {
	// Stride is the observation lattice side length.
	Stride int `yaml:"stride"`
	// GridName is the observation field holding the flattened grid.
	GridName string `yaml:"grid_name"`
	// StrictEndpoints rejects duplicated markers; false keeps the last match.
	StrictEndpoints bool `yaml:"strict_endpoints"`
	// EarlyExit stops the search once the exit is finalized.
	EarlyExit bool `yaml:"early_exit"`
	// Costs overrides step costs per label on top of uniform costs
	// (air impassable, everything else 1). Use -1 for a wall.
	Costs map[string]int64 `yaml:"costs,omitempty"`
}

// DefaultConfig returns the baseline agent's settings.
func DefaultConfig() Config {
	return Config{
		Stride:          DefaultStride,
		GridName:        gridgraph.DefaultObservationGrid,
		StrictEndpoints: true,
		EarlyExit:       false,
	}
}

// CostModel builds the dijkstra cost model described by Costs.
func (c Config) CostModel() dijkstra.CostModel {
	m := dijkstra.UniformCost()
	for label, cost := range c.Costs {
		m.Costs[gridgraph.Label(label)] = cost
	}

	return m
}

// Validate checks the configuration for out-of-range values.
func (c Config) Validate() error {
	if c.Stride <= 0 {
		return fmt.Errorf("stride must be positive, got %d", c.Stride)
	}
	if c.GridName == "" {
		return fmt.Errorf("grid_name must not be empty")
	}
	for label := range c.Costs {
		if !gridgraph.Label(label).Known() {
			return fmt.Errorf("%w: %q", ErrUnknownLabel, label)
		}
	}
	if err := c.CostModel().Validate(); err != nil {
		return err
	}

	return nil
}

// LoadConfig loads a Config from a YAML file. Fields omitted from the file
// keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".yaml" && ext != ".yml" {
		return Config{}, fmt.Errorf("config file must have .yaml or .yml extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return Config{}, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
