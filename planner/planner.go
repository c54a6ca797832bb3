package planner

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/mineexpress/bfs"
	"github.com/katalvlaran/mineexpress/dijkstra"
	"github.com/katalvlaran/mineexpress/gridgraph"
	"github.com/katalvlaran/mineexpress/moves"
)

// Planner turns grid snapshots into movement plans. It holds no per-call
// state and is safe for concurrent use.
type Planner struct {
	cfg          Config
	costs        dijkstra.CostModel
	endpointOpts []gridgraph.EndpointOption
	searchOpts   []dijkstra.Option
}

// Plan is the outcome of one planning call.
type Plan struct {
	// ID tags the plan's log lines.
	ID uuid.UUID
	// Grid is the snapshot the plan was made on.
	Grid  *gridgraph.Grid
	Start int
	End   int
	// Path lists cell indices from Start to End inclusive.
	Path []int
	// Cost is the path cost under the configured cost model.
	Cost int64
	// Actions holds one move per path edge.
	Actions []moves.Direction
}

// Commands returns the simulator commands for p.Actions.
func (p *Plan) Commands() []string {
	return moves.Commands(p.Actions)
}

// New validates cfg and returns a Planner.
func New(cfg Config) (*Planner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	p := &Planner{cfg: cfg, costs: cfg.CostModel()}
	if !cfg.StrictEndpoints {
		p.endpointOpts = append(p.endpointOpts, gridgraph.WithLastMatchWins())
	}
	p.searchOpts = append(p.searchOpts, dijkstra.WithCostModel(p.costs))
	if cfg.EarlyExit {
		p.searchOpts = append(p.searchOpts, dijkstra.WithEarlyExit())
	}

	return p, nil
}

// Config returns the planner's configuration.
func (p *Planner) Config() Config { return p.cfg }

// Plan locates the start and end markers in g, finds a shortest path between
// them and converts it into actions.
//
// Errors wrap gridgraph.ErrMissingEndpoint (absent or duplicated marker),
// dijkstra.ErrUnreachable (no route) or moves.ErrInvalidStep (internal defect).
func (p *Planner) Plan(g *gridgraph.Grid) (*Plan, error) {
	id := uuid.New()
	plan, err := p.plan(id, g)
	if err != nil {
		Logf("plan %s: %v", id, err)
		return nil, err
	}
	Logf("plan %s: start=%d end=%d path=%d cost=%d actions=%d",
		id, plan.Start, plan.End, len(plan.Path), plan.Cost, len(plan.Actions))

	return plan, nil
}

// PlanObservation decodes the configured grid field of a JSON observation and plans on it.
func (p *Planner) PlanObservation(data []byte) (*Plan, error) {
	g, err := gridgraph.DecodeObservation(data, p.cfg.GridName, p.cfg.Stride)
	if err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}

	return p.Plan(g)
}

func (p *Planner) plan(id uuid.UUID, g *gridgraph.Grid) (*Plan, error) {
	if g == nil {
		return nil, fmt.Errorf("planner: %w", dijkstra.ErrNilGrid)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("planner: %w", err)
	}
	start, end, err := gridgraph.LocateEndpoints(g, p.endpointOpts...)
	if err != nil {
		return nil, fmt.Errorf("planner: locate endpoints: %w", err)
	}
	res, err := dijkstra.ShortestPath(g, start, end, p.searchOpts...)
	if errors.Is(err, dijkstra.ErrUnreachable) && !errors.Is(err, dijkstra.ErrBlockedEndpoint) {
		return nil, fmt.Errorf("planner: shortest path: %w (start region %d cells)", err, p.region(g, start))
	}
	if err != nil {
		return nil, fmt.Errorf("planner: shortest path: %w", err)
	}
	actions, err := moves.ToActionList(res.Path, g.Stride)
	if err != nil {
		return nil, fmt.Errorf("planner: action list: %w", err)
	}

	return &Plan{
		ID:      id,
		Grid:    g,
		Start:   start,
		End:     end,
		Path:    res.Path,
		Cost:    res.Cost,
		Actions: actions,
	}, nil
}

// region counts the cells reachable from start under the planner's cost model.
func (p *Planner) region(g *gridgraph.Grid, start int) int {
	res, err := bfs.BFS(g, start, bfs.WithFilterNeighbor(func(_, next int) bool {
		return p.costs.Cost(g.Label(next)) != dijkstra.Impassable
	}))
	if err != nil {
		return 0
	}

	return len(res.Order)
}
