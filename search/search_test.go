// Package search_test contains unit tests for the generic search engine.
// These tests validate input checks, optimality on small weighted graphs,
// stale-entry handling, cost-table monotonicity, tie-break ordering and
// the option hooks.
package search_test

import (
	"bytes"
	"cmp"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/search"
)

// node is a minimal ordered position used throughout the tests.
type node int

func (n node) Compare(o node) int { return cmp.Compare(n, o) }

type edge struct {
	to node
	w  int64
}

// graph is a directed weighted adjacency list acting as an Expander.
type graph map[node][]edge

func (g graph) Expand(s search.State[node]) []search.State[node] {
	out := make([]search.State[node], 0, len(g[s.Pos]))
	for _, e := range g[s.Pos] {
		out = append(out, search.State[node]{Cost: s.Cost + e.w, Pos: e.to})
	}
	return out
}

// recordingTable wraps a MapCostTable and keeps every update per position.
type recordingTable struct {
	*search.MapCostTable[node]
	updates map[node][]int64
}

func newRecordingTable() *recordingTable {
	return &recordingTable{
		MapCostTable: search.NewMapCostTable[node](),
		updates:      make(map[node][]int64),
	}
}

func (t *recordingTable) Update(p node, c int64) {
	t.updates[p] = append(t.updates[p], c)
	t.MapCostTable.Update(p, c)
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestRun_Errors(t *testing.T) {
	g := graph{}
	start := search.State[node]{Cost: 0, Pos: 0}

	_, _, err := search.Run[node](nil, search.NewMapCostTable[node](), start, 1)
	assert.ErrorIs(t, err, search.ErrNilExpander)

	_, _, err = search.Run[node](g, nil, start, 1)
	assert.ErrorIs(t, err, search.ErrNilCostTable)

	_, _, err = search.Run[node](g, search.NewMapCostTable[node](), search.State[node]{Cost: -1, Pos: 0}, 1)
	assert.ErrorIs(t, err, search.ErrNegativeCost)

	_, _, err = search.Run[node](g, search.NewMapCostTable[node](), start, 1, search.WithMaxCost[node](-3))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

func TestRun_NegativeStep(t *testing.T) {
	g := graph{0: {{to: 1, w: 2}}, 1: {{to: 2, w: -5}}}
	_, found, err := search.Run[node](g, search.NewMapCostTable[node](), search.State[node]{Pos: 0}, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, search.ErrNegativeStep)
	assert.False(t, found)
}

// ------------------------------------------------------------------------
// 2. Basic functionality
// ------------------------------------------------------------------------

func TestRun_Triangle(t *testing.T) {
	// 0→1(1), 1→2(2), 0→2(5): best route to 2 goes through 1.
	g := graph{
		0: {{to: 1, w: 1}, {to: 2, w: 5}},
		1: {{to: 2, w: 2}},
	}
	cost, found, err := search.Run[node](g, search.NewMapCostTable[node](), search.State[node]{Pos: 0}, 2)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(3), cost)
}

func TestRun_StartIsGoal(t *testing.T) {
	cost, found, err := search.Run[node](graph{}, search.NewMapCostTable[node](), search.State[node]{Cost: 7, Pos: 4}, 4)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(7), cost)
}

func TestRun_NonZeroSeed(t *testing.T) {
	g := graph{0: {{to: 1, w: 1}}, 1: {{to: 2, w: 1}}}
	cost, found, err := search.Run[node](g, search.NewMapCostTable[node](), search.State[node]{Cost: 10, Pos: 0}, 2)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(12), cost)
}

func TestRun_Unreachable(t *testing.T) {
	g := graph{0: {{to: 1, w: 1}}, 2: {{to: 3, w: 1}}}
	cost, found, err := search.Run[node](g, search.NewMapCostTable[node](), search.State[node]{Pos: 0}, 3)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, cost)
}

func TestRun_Cycle(t *testing.T) {
	// Undirected ring 0-1-2-3-0 with one heavy edge.
	g := graph{
		0: {{to: 1, w: 1}, {to: 3, w: 10}},
		1: {{to: 0, w: 1}, {to: 2, w: 1}},
		2: {{to: 1, w: 1}, {to: 3, w: 1}},
		3: {{to: 2, w: 1}, {to: 0, w: 10}},
	}
	cost, found, err := search.Run[node](g, search.NewMapCostTable[node](), search.State[node]{Pos: 0}, 3)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(3), cost)
}

func TestRun_ZeroWeightEdges(t *testing.T) {
	g := graph{0: {{to: 1, w: 0}, {to: 2, w: 4}}, 1: {{to: 2, w: 0}}}
	cost, found, err := search.Run[node](g, search.NewMapCostTable[node](), search.State[node]{Pos: 0}, 2)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(0), cost)
}

func TestRun_ExpanderFunc(t *testing.T) {
	// Positions on a number line; each step moves +1 or +3 at unit cost.
	expand := search.ExpanderFunc[node](func(s search.State[node]) []search.State[node] {
		if s.Pos > 20 {
			return nil
		}
		return []search.State[node]{
			{Cost: s.Cost + 1, Pos: s.Pos + 1},
			{Cost: s.Cost + 1, Pos: s.Pos + 3},
		}
	})
	cost, found, err := search.Run[node](expand, search.NewMapCostTable[node](), search.State[node]{Pos: 0}, 10)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(4), cost) // 3+3+3+1
}

// ------------------------------------------------------------------------
// 3. Cost table behaviour
// ------------------------------------------------------------------------

func TestMapCostTable_DefaultsToInfinity(t *testing.T) {
	tbl := search.NewMapCostTable[node]()
	assert.Equal(t, search.Infinity, tbl.Lookup(42))
	tbl.Update(42, 3)
	assert.Equal(t, int64(3), tbl.Lookup(42))
	assert.Equal(t, 1, tbl.Len())
}

func TestCostTableFuncs(t *testing.T) {
	m := map[node]int64{}
	tbl := search.CostTableFuncs[node]{
		LookupFn: func(p node) int64 {
			if c, ok := m[p]; ok {
				return c
			}
			return search.Infinity
		},
		UpdateFn: func(p node, c int64) { m[p] = c },
	}
	g := graph{0: {{to: 1, w: 2}}, 1: {{to: 2, w: 2}}}
	cost, found, err := search.Run[node](g, tbl, search.State[node]{Pos: 0}, 2)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(4), cost)
	assert.Equal(t, map[node]int64{0: 0, 1: 2, 2: 4}, m)
}

func TestRun_CostTableOnlyDecreases(t *testing.T) {
	// 2 is first reached at cost 5 and later improved to 2 via 1.
	g := graph{
		0: {{to: 1, w: 1}, {to: 2, w: 5}},
		1: {{to: 2, w: 1}},
		2: {{to: 3, w: 1}},
	}
	tbl := newRecordingTable()
	_, found, err := search.Run[node](g, tbl, search.State[node]{Pos: 0}, 99)
	require.NoError(t, err)
	assert.False(t, found)

	for p, seq := range tbl.updates {
		for i := 1; i < len(seq); i++ {
			assert.Less(t, seq[i], seq[i-1], "position %d: update sequence %v", p, seq)
		}
	}
	assert.Equal(t, []int64{5, 2}, tbl.updates[2])
}

func TestRun_StaleEntriesDiscarded(t *testing.T) {
	g := graph{
		0: {{to: 1, w: 1}, {to: 2, w: 5}},
		1: {{to: 2, w: 1}},
	}
	var popped []search.State[node]
	expanded := map[node]int{}
	counting := search.ExpanderFunc[node](func(s search.State[node]) []search.State[node] {
		expanded[s.Pos]++
		return g.Expand(s)
	})
	_, found, err := search.Run[node](counting, search.NewMapCostTable[node](), search.State[node]{Pos: 0}, 99,
		search.WithOnPop(func(s search.State[node]) { popped = append(popped, s) }))
	require.NoError(t, err)
	assert.False(t, found)

	want := []search.State[node]{{Cost: 0, Pos: 0}, {Cost: 1, Pos: 1}, {Cost: 2, Pos: 2}, {Cost: 5, Pos: 2}}
	assert.Equal(t, want, popped)
	// the stale (5, 2) entry is popped but never expanded
	assert.Equal(t, 1, expanded[2])
}

// ------------------------------------------------------------------------
// 4. Ordering and options
// ------------------------------------------------------------------------

func TestRun_TieBreakStable(t *testing.T) {
	// Star: every leaf costs 1; leaves are pushed in descending order.
	g := graph{0: {{to: 5, w: 1}, {to: 3, w: 1}, {to: 4, w: 1}, {to: 1, w: 1}, {to: 2, w: 1}}}

	popSequence := func() []search.State[node] {
		var seq []search.State[node]
		_, _, err := search.Run[node](g, search.NewMapCostTable[node](), search.State[node]{Pos: 0}, 99,
			search.WithOnPop(func(s search.State[node]) { seq = append(seq, s) }))
		require.NoError(t, err)
		return seq
	}

	first := popSequence()
	want := []search.State[node]{
		{Cost: 0, Pos: 0},
		{Cost: 1, Pos: 1}, {Cost: 1, Pos: 2}, {Cost: 1, Pos: 3}, {Cost: 1, Pos: 4}, {Cost: 1, Pos: 5},
	}
	assert.Equal(t, want, first)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, popSequence(), "run %d", i)
	}
}

func TestRun_MaxCost(t *testing.T) {
	g := graph{0: {{to: 1, w: 1}}, 1: {{to: 2, w: 2}}}
	cases := []struct {
		max   int64
		found bool
	}{
		{0, false},
		{2, false},
		{3, true},
		{100, true},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("max=%d", tc.max), func(t *testing.T) {
			cost, found, err := search.Run[node](g, search.NewMapCostTable[node](), search.State[node]{Pos: 0}, 2,
				search.WithMaxCost[node](tc.max))
			require.NoError(t, err)
			assert.Equal(t, tc.found, found)
			if tc.found {
				assert.Equal(t, int64(3), cost)
			}
		})
	}
}

func TestRun_OnRelax(t *testing.T) {
	g := graph{0: {{to: 1, w: 1}, {to: 2, w: 5}}, 1: {{to: 2, w: 1}}}
	var relaxed []search.State[node]
	_, _, err := search.Run[node](g, search.NewMapCostTable[node](), search.State[node]{Pos: 0}, 99,
		search.WithOnRelax(func(s search.State[node]) { relaxed = append(relaxed, s) }))
	require.NoError(t, err)
	want := []search.State[node]{{Cost: 0, Pos: 0}, {Cost: 1, Pos: 1}, {Cost: 5, Pos: 2}, {Cost: 2, Pos: 2}}
	assert.Equal(t, want, relaxed)
}

func TestRun_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	g := graph{0: {{to: 1, w: 1}}}
	_, found, err := search.Run[node](g, search.NewMapCostTable[node](), search.State[node]{Pos: 0}, 1,
		search.WithLogger[node](logger))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Contains(t, buf.String(), `"message":"search finished"`)
	assert.Contains(t, buf.String(), `"found":true`)
	assert.NotContains(t, buf.String(), `"message":"pop"`) // trace is below debug
}
