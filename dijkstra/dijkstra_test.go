// Package dijkstra_test contains unit tests for ShortestPath.
// These tests validate input checks, the pinned tie-breaking order,
// unreachable detection, weighted terrain, and optimality against an
// independent gonum shortest-path oracle on random grids.
package dijkstra_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/mineexpress/bfs"
	"github.com/katalvlaran/mineexpress/dijkstra"
	"github.com/katalvlaran/mineexpress/gridgraph"
)

// parse builds a grid from rows of glyphs: '#' air, '.' floor,
// '~' soul sand, '=' packed ice, 'S' start, 'E' end.
func parse(t testing.TB, rows ...string) *gridgraph.Grid {
	t.Helper()
	glyphs := map[rune]gridgraph.Label{
		'#': gridgraph.Air,
		'.': gridgraph.DiamondOre,
		'~': gridgraph.SoulSand,
		'=': gridgraph.PackedIce,
		'S': gridgraph.Start,
		'E': gridgraph.End,
	}
	var cells []gridgraph.Label
	for _, r := range rows {
		for _, c := range r {
			cells = append(cells, glyphs[c])
		}
	}
	g, err := gridgraph.NewGrid(cells, len(rows[0]))
	require.NoError(t, err)

	return g
}

// endpoints is LocateEndpoints that fails the test on error.
func endpoints(t testing.TB, g *gridgraph.Grid) (int, int) {
	t.Helper()
	s, e, err := gridgraph.LocateEndpoints(g)
	require.NoError(t, err)

	return s, e
}

// requireValidPath asserts path runs start→end through passable 4-neighbours
// and that cost is the sum of its step costs.
func requireValidPath(t *testing.T, g *gridgraph.Grid, m dijkstra.CostModel, res *dijkstra.Result, start, end int) {
	t.Helper()
	require.NotEmpty(t, res.Path)
	require.Equal(t, start, res.Path[0])
	require.Equal(t, end, res.Path[len(res.Path)-1])

	var sum int64
	for i := 1; i < len(res.Path); i++ {
		u, v := res.Path[i-1], res.Path[i]
		require.Contains(t, g.Neighbors(u), v, "step %d→%d is not a 4-neighbour move", u, v)
		c := m.Cost(g.Label(v))
		require.NotEqual(t, dijkstra.Impassable, c, "path crosses blocked cell %d", v)
		sum += c
	}
	require.Equal(t, res.Cost, sum)
}

// oracleCost computes the optimal cost with gonum's Dijkstra on an explicit
// weighted digraph; +Inf means unreachable.
func oracleCost(g *gridgraph.Grid, m dijkstra.CostModel, start, end int) float64 {
	wg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i := 0; i < g.Len(); i++ {
		if m.Cost(g.Label(i)) != dijkstra.Impassable {
			wg.AddNode(simple.Node(i))
		}
	}
	for i := 0; i < g.Len(); i++ {
		if wg.Node(int64(i)) == nil {
			continue
		}
		for _, v := range g.Neighbors(i) {
			if wg.Node(int64(v)) == nil {
				continue
			}
			w := float64(m.Cost(g.Label(v)))
			wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(i), simple.Node(v), w))
		}
	}

	return path.DijkstraFrom(simple.Node(start), wg).WeightTo(int64(end))
}

// randomGrid returns an n×n grid with roughly 30% walls, mixed terrain, and
// start/end on distinct random floor cells.
func randomGrid(t testing.TB, rng *rand.Rand, n int) *gridgraph.Grid {
	t.Helper()
	floors := []gridgraph.Label{gridgraph.DiamondOre, gridgraph.DiamondOre, gridgraph.SoulSand, gridgraph.PackedIce}
	cells := make([]gridgraph.Label, n*n)
	var open []int
	for i := range cells {
		if rng.Float64() < 0.3 {
			cells[i] = gridgraph.Air
			continue
		}
		cells[i] = floors[rng.Intn(len(floors))]
		open = append(open, i)
	}
	if len(open) < 2 {
		cells[0], cells[len(cells)-1] = gridgraph.DiamondOre, gridgraph.DiamondOre
		open = []int{0, len(cells) - 1}
	}
	rng.Shuffle(len(open), func(i, j int) { open[i], open[j] = open[j], open[i] })
	cells[open[0]] = gridgraph.Start
	cells[open[1]] = gridgraph.End
	g, err := gridgraph.NewGrid(cells, n)
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPath_NilGrid(t *testing.T) {
	_, err := dijkstra.ShortestPath(nil, 0, 1)
	assert.ErrorIs(t, err, dijkstra.ErrNilGrid)
}

func TestShortestPath_OutOfRange(t *testing.T) {
	g := parse(t, "S.", ".E")
	for _, se := range [][2]int{{-1, 3}, {0, 4}, {7, 0}} {
		_, err := dijkstra.ShortestPath(g, se[0], se[1])
		assert.ErrorIs(t, err, dijkstra.ErrEndpointOutOfRange, "start=%d end=%d", se[0], se[1])
	}
}

func TestShortestPath_BlockedEndpoint(t *testing.T) {
	g := parse(t, "S#", ".E")
	_, err := dijkstra.ShortestPath(g, 0, 1)
	assert.ErrorIs(t, err, dijkstra.ErrBlockedEndpoint)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
	_, err = dijkstra.ShortestPath(g, 1, 3)
	assert.ErrorIs(t, err, dijkstra.ErrBlockedEndpoint)
}

func TestShortestPath_BadCostModel(t *testing.T) {
	g := parse(t, "S.", ".E")
	cases := []dijkstra.CostModel{
		{Default: 0},
		{Default: -5},
		{Default: 1, Costs: map[gridgraph.Label]int64{gridgraph.SoulSand: 0}},
	}
	for _, m := range cases {
		_, err := dijkstra.ShortestPath(g, 0, 3, dijkstra.WithCostModel(m))
		assert.ErrorIs(t, err, dijkstra.ErrOptionViolation, "%+v", m)
	}
}

// ------------------------------------------------------------------------
// 2. Basic behaviour and pinned tie-breaking
// ------------------------------------------------------------------------

// TestShortestPath_CentreBlocked is the 5×5 reference scenario: index 12 is a
// wall, start 0, end 24. Equal-distance cells are finalized lowest index
// first, so the route runs along the top row and then down the east edge.
func TestShortestPath_CentreBlocked(t *testing.T) {
	g := parse(t,
		"S....",
		".....",
		"..#..",
		".....",
		"....E",
	)
	res, err := dijkstra.ShortestPath(g, 0, 24)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 9, 14, 19, 24}, res.Path)
	assert.Equal(t, int64(8), res.Cost)
	assert.Equal(t, 24, res.Finalized, "every passable cell is finalized without early exit")
}

func TestShortestPath_StartIsEnd(t *testing.T) {
	g := parse(t, "S.", "..")
	res, err := dijkstra.ShortestPath(g, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Path)
	assert.Zero(t, res.Cost)
}

func TestShortestPath_Deterministic(t *testing.T) {
	g := parse(t,
		"S.....",
		"......",
		"..##..",
		"..##..",
		"......",
		".....E",
	)
	s, e := endpoints(t, g)
	first, err := dijkstra.ShortestPath(g, s, e)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := dijkstra.ShortestPath(g, s, e)
		require.NoError(t, err)
		require.Equal(t, first.Path, again.Path)
	}
}

// TestShortestPath_NoRowWrap ensures east/west moves never wrap: the only
// way from the end of row 0 to the start of row 1 is around the grid.
func TestShortestPath_NoRowWrap(t *testing.T) {
	g := parse(t,
		"#.S",
		"E##",
		"...",
	)
	_, err := dijkstra.ShortestPath(g, 2, 3)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
	g = parse(t,
		".#S",
		"E#.",
		"...",
	)
	res, err := dijkstra.ShortestPath(g, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5, 8, 7, 6, 3}, res.Path)
}

// ------------------------------------------------------------------------
// 3. Unreachable
// ------------------------------------------------------------------------

// TestShortestPath_Ring encloses the end in a complete ring of air.
func TestShortestPath_Ring(t *testing.T) {
	g := parse(t,
		"S......",
		".#####.",
		".#...#.",
		".#.E.#.",
		".#...#.",
		".#####.",
		".......",
	)
	s, e := endpoints(t, g)
	res, err := dijkstra.ShortestPath(g, s, e)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
	assert.NotErrorIs(t, err, dijkstra.ErrBlockedEndpoint)
}

// ------------------------------------------------------------------------
// 4. Options
// ------------------------------------------------------------------------

func TestShortestPath_EarlyExit(t *testing.T) {
	g := parse(t,
		"SE......",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	full, err := dijkstra.ShortestPath(g, 0, 1)
	require.NoError(t, err)
	early, err := dijkstra.ShortestPath(g, 0, 1, dijkstra.WithEarlyExit())
	require.NoError(t, err)

	assert.Equal(t, full.Path, early.Path)
	assert.Equal(t, full.Cost, early.Cost)
	assert.Equal(t, []int{0, 1}, early.Path)
	assert.Equal(t, 64, full.Finalized)
	assert.Equal(t, 2, early.Finalized)
}

// TestShortestPath_TerrainCost detours around soul sand once it is weighted.
func TestShortestPath_TerrainCost(t *testing.T) {
	g := parse(t,
		"S~~E",
		"....",
		"####",
		"####",
	)
	uniform, err := dijkstra.ShortestPath(g, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, uniform.Path)
	assert.Equal(t, int64(3), uniform.Cost)

	weighted, err := dijkstra.ShortestPath(g, 0, 3, dijkstra.WithCostModel(dijkstra.TerrainCost()))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 5, 6, 7, 3}, weighted.Path)
	assert.Equal(t, int64(5), weighted.Cost)
}

// TestShortestPath_CustomWalls makes packed ice impassable through the cost model alone.
func TestShortestPath_CustomWalls(t *testing.T) {
	g := parse(t,
		"S=E",
		"...",
		"###",
	)
	m := dijkstra.UniformCost()
	m.Costs[gridgraph.PackedIce] = dijkstra.Impassable
	res, err := dijkstra.ShortestPath(g, 0, 2, dijkstra.WithCostModel(m))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 4, 5, 2}, res.Path)
}

// ------------------------------------------------------------------------
// 5. Properties on random grids
// ------------------------------------------------------------------------

// TestShortestPath_MatchesOracle checks validity and optimality against
// gonum's shortest path on random grids, under uniform and terrain costs,
// with and without early exit.
func TestShortestPath_MatchesOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	models := map[string]dijkstra.CostModel{
		"uniform": dijkstra.UniformCost(),
		"terrain": dijkstra.TerrainCost(),
	}
	for trial := 0; trial < 150; trial++ {
		g := randomGrid(t, rng, 3+rng.Intn(8))
		s, e := endpoints(t, g)
		for name, m := range models {
			want := oracleCost(g, m, s, e)
			for _, early := range []bool{false, true} {
				opts := []dijkstra.Option{dijkstra.WithCostModel(m)}
				if early {
					opts = append(opts, dijkstra.WithEarlyExit())
				}
				res, err := dijkstra.ShortestPath(g, s, e, opts...)
				if math.IsInf(want, 1) {
					require.ErrorIs(t, err, dijkstra.ErrUnreachable, "trial %d %s\n%s", trial, name, g.Render(nil))
					continue
				}
				require.NoError(t, err, "trial %d %s\n%s", trial, name, g.Render(nil))
				requireValidPath(t, g, m, res, s, e)
				require.Equal(t, int64(want), res.Cost, "trial %d %s\n%s", trial, name, g.Render(res.Path))
				if name == "uniform" {
					require.Len(t, res.Path, int(res.Cost)+1)
				}
			}
		}
	}
}

// TestShortestPath_EarlyExitParity pins that early exit never changes the route.
func TestShortestPath_EarlyExitParity(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 100; trial++ {
		g := randomGrid(t, rng, 4+rng.Intn(6))
		s, e := endpoints(t, g)
		full, errFull := dijkstra.ShortestPath(g, s, e)
		early, errEarly := dijkstra.ShortestPath(g, s, e, dijkstra.WithEarlyExit())
		if errFull != nil {
			require.ErrorIs(t, errEarly, dijkstra.ErrUnreachable)
			continue
		}
		require.NoError(t, errEarly)
		require.True(t, slices.Equal(full.Path, early.Path), "trial %d\n%s", trial, g.Render(nil))
	}
}

// TestShortestPath_UniformMatchesBFS pins that under uniform costs the route
// length equals the breadth-first step count.
func TestShortestPath_UniformMatchesBFS(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for trial := 0; trial < 100; trial++ {
		g := randomGrid(t, rng, 3+rng.Intn(8))
		s, e := endpoints(t, g)
		tree, err := bfs.BFS(g, s)
		require.NoError(t, err)

		res, err := dijkstra.ShortestPath(g, s, e)
		if !tree.Reached(e) {
			require.ErrorIs(t, err, dijkstra.ErrUnreachable)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, int64(tree.Depth[e]), res.Cost, "trial %d\n%s", trial, g.Render(nil))
		require.Len(t, res.Path, tree.Depth[e]+1)
	}
}

// TestShortestPath_TieBreakLowestIndex checks that, among equal-cost routes,
// the one through lower-index cells wins.
func TestShortestPath_TieBreakLowestIndex(t *testing.T) {
	cases := []struct {
		name       string
		rows       []string
		start, end int
		want       []int
	}{
		{"OpenSquare", []string{"S..", "...", "..E"}, 0, 8, []int{0, 1, 2, 5, 8}},
		{"FromBottomRight", []string{"E..", "...", "..S"}, 8, 0, []int{8, 5, 2, 1, 0}},
		{"FromTopRight", []string{"..S", "...", "E.."}, 2, 6, []int{2, 1, 0, 3, 6}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := dijkstra.ShortestPath(parse(t, tc.rows...), tc.start, tc.end)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Path)
		})
	}
}

// TestShortestPath_LiteralGrid accepts a well-formed Grid literal and rejects
// malformed ones with an error instead of a panic.
func TestShortestPath_LiteralGrid(t *testing.T) {
	d := gridgraph.DiamondBlock
	g := &gridgraph.Grid{Stride: 2, Cells: []gridgraph.Label{gridgraph.Start, d, gridgraph.Air, gridgraph.End}}
	res, err := dijkstra.ShortestPath(g, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3}, res.Path)

	for _, bad := range []*gridgraph.Grid{
		{Stride: 0, Cells: []gridgraph.Label{d}},
		{Stride: 2, Cells: []gridgraph.Label{d, d, d}},
		{Stride: 2},
	} {
		assert.NotPanics(t, func() {
			_, err := dijkstra.ShortestPath(bad, 0, 0)
			assert.Error(t, err)
		})
	}
}
