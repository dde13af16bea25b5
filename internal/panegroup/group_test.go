package panegroup

import (
	"math/rand"
	"strings"
	"testing"

	"panegrid/internal/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPane struct {
	name string
}

func newPane(name string) *testPane { return &testPane{name: name} }

func (p *testPane) String() string { return p.name }

func (p *testPane) Render(width, height int) string {
	line := strings.Repeat(strings.ToLower(p.name), width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func rootAxis(t *testing.T, g *PaneGroup) *PaneAxis {
	t.Helper()
	axis, ok := g.Root().(*PaneAxis)
	require.True(t, ok, "root is %T", g.Root())
	return axis
}

func TestSplit_LonePane(t *testing.T) {
	tests := map[string]struct {
		direction geometry.SplitDirection
		want      string
		axis      geometry.Axis
	}{
		"right": {direction: geometry.Right, want: "H[P, N]", axis: geometry.Horizontal},
		"left":  {direction: geometry.Left, want: "H[N, P]", axis: geometry.Horizontal},
		"up":    {direction: geometry.Up, want: "V[N, P]", axis: geometry.Vertical},
		"down":  {direction: geometry.Down, want: "V[P, N]", axis: geometry.Vertical},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p, n := newPane("P"), newPane("N")
			g := New(p)

			require.NoError(t, g.Split(p, n, tt.direction))

			assert.Equal(t, tt.want, g.String())
			axis := rootAxis(t, g)
			assert.Equal(t, tt.axis, axis.Axis())
			assert.Equal(t, []float64{1, 1}, axis.Flexes())
		})
	}
}

func TestSplit_SameAxisInsertsSibling(t *testing.T) {
	a, b, c, d := newPane("A"), newPane("B"), newPane("C"), newPane("D")
	g := New(a)
	require.NoError(t, g.Split(a, b, geometry.Right))
	rootAxis(t, g).Weights().Resize(0, 1.3, 0.7)

	require.NoError(t, g.Split(b, c, geometry.Right))
	assert.Equal(t, "H[A, B, C]", g.String())
	assert.Equal(t, []float64{1, 1, 1}, rootAxis(t, g).Flexes())

	require.NoError(t, g.Split(a, d, geometry.Left))
	assert.Equal(t, "H[D, A, B, C]", g.String())
	assert.Equal(t, []float64{1, 1, 1, 1}, rootAxis(t, g).Flexes())
}

func TestSplit_CrossAxisWrapsOnlyThatChild(t *testing.T) {
	a, b, c := newPane("A"), newPane("B"), newPane("C")
	g := New(a)
	require.NoError(t, g.Split(a, b, geometry.Right))
	rootAxis(t, g).Weights().Resize(0, 1.3, 0.7)

	require.NoError(t, g.Split(a, c, geometry.Down))

	assert.Equal(t, "H[V[A, C], B]", g.String())
	root := rootAxis(t, g)
	assert.Equal(t, []float64{1.3, 0.7}, root.Flexes(), "ancestor weights are untouched")
	inner, ok := root.Members()[0].(*PaneAxis)
	require.True(t, ok)
	assert.Equal(t, geometry.Vertical, inner.Axis())
	assert.Equal(t, []float64{1, 1}, inner.Flexes())
}

func TestSplit_NestedResetsOnlyMutatedAxis(t *testing.T) {
	a, b, c, d := newPane("A"), newPane("B"), newPane("C"), newPane("D")
	g := New(a)
	require.NoError(t, g.Split(a, b, geometry.Right))
	require.NoError(t, g.Split(b, c, geometry.Down))
	root := rootAxis(t, g)
	root.Weights().Resize(0, 0.5, 1.5)
	inner := root.Members()[1].(*PaneAxis)
	inner.Weights().Resize(0, 1.2, 0.8)

	require.NoError(t, g.Split(c, d, geometry.Down))

	assert.Equal(t, "H[A, V[B, C, D]]", g.String())
	assert.Equal(t, []float64{0.5, 1.5}, root.Flexes())
	assert.Equal(t, []float64{1, 1, 1}, inner.Flexes())
}

func TestSplit_NotFound(t *testing.T) {
	a, b, stranger := newPane("A"), newPane("B"), newPane("X")

	lone := New(a)
	err := lone.Split(stranger, b, geometry.Right)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "A", lone.String())

	g := New(a)
	require.NoError(t, g.Split(a, b, geometry.Down))
	err = g.Split(stranger, newPane("C"), geometry.Right)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "V[A, B]", g.String())
}

func TestRemove_LonePaneIsNotRemoved(t *testing.T) {
	a := newPane("A")
	g := New(a)

	removed, err := g.Remove(a)

	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, []Pane{a}, g.Panes())
}

func TestRemove_CollapsesToSurvivor(t *testing.T) {
	tests := map[string]struct {
		build  func(a, b, c *testPane) *PaneGroup
		remove func(a, b, c *testPane) Pane
		want   string
	}{
		"pair collapses to leaf": {
			build: func(a, b, _ *testPane) *PaneGroup {
				return WithRoot(NewAxis(a, b, geometry.Right))
			},
			remove: func(a, _, _ *testPane) Pane { return a },
			want:   "B",
		},
		"survivor is a nested axis": {
			build: func(a, b, c *testPane) *PaneGroup {
				return WithRoot(NewPaneAxis(geometry.Horizontal, Leaf{Pane: a}, NewAxis(b, c, geometry.Down)))
			},
			remove: func(a, _, _ *testPane) Pane { return a },
			want:   "V[B, C]",
		},
		"nested pair collapses in place": {
			build: func(a, b, c *testPane) *PaneGroup {
				return WithRoot(NewPaneAxis(geometry.Horizontal, Leaf{Pane: a}, NewAxis(b, c, geometry.Down)))
			},
			remove: func(_, b, _ *testPane) Pane { return b },
			want:   "H[A, C]",
		},
		"three stay an axis": {
			build: func(a, b, c *testPane) *PaneGroup {
				return WithRoot(NewPaneAxis(geometry.Vertical, Leaf{Pane: a}, Leaf{Pane: b}, Leaf{Pane: c}))
			},
			remove: func(_, b, _ *testPane) Pane { return b },
			want:   "V[A, C]",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a, b, c := newPane("A"), newPane("B"), newPane("C")
			g := tt.build(a, b, c)

			removed, err := g.Remove(tt.remove(a, b, c))

			require.NoError(t, err)
			assert.True(t, removed)
			assert.Equal(t, tt.want, g.String())
		})
	}
}

func TestRemove_ResetsWeightsOfMutatedAxisOnly(t *testing.T) {
	a, b, c, d := newPane("A"), newPane("B"), newPane("C"), newPane("D")
	inner := NewPaneAxis(geometry.Vertical, Leaf{Pane: b}, Leaf{Pane: c}, Leaf{Pane: d})
	root := NewPaneAxis(geometry.Horizontal, Leaf{Pane: a}, inner)
	g := WithRoot(root)
	root.Weights().Resize(0, 1.4, 0.6)
	inner.Weights().Resize(1, 0.5, 1.5)

	_, err := g.Remove(c)

	require.NoError(t, err)
	assert.Equal(t, "H[A, V[B, D]]", g.String())
	assert.Equal(t, []float64{1.4, 0.6}, root.Flexes())
	assert.Equal(t, []float64{1, 1}, inner.Flexes())
}

func TestRemove_NotFound(t *testing.T) {
	a, b := newPane("A"), newPane("B")
	g := New(a)
	require.NoError(t, g.Split(a, b, geometry.Right))

	removed, err := g.Remove(newPane("X"))

	require.ErrorIs(t, err, ErrNotFound)
	assert.False(t, removed)
	assert.Equal(t, "H[A, B]", g.String())
}

func TestPaneGroup_EndToEnd(t *testing.T) {
	a, b, c := newPane("A"), newPane("B"), newPane("C")
	g := New(a)

	require.NoError(t, g.Split(a, b, geometry.Right))
	assert.Equal(t, "H[A, B]", g.String())

	require.NoError(t, g.Split(b, c, geometry.Down))
	assert.Equal(t, "H[A, V[B, C]]", g.String())

	removed, err := g.Remove(b)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, "H[A, C]", g.String())
	assert.Equal(t, []Pane{a, c}, g.Panes())
	assert.True(t, g.Contains(c))
	assert.False(t, g.Contains(b))
}

func countLeaves(m Member) int {
	switch m := m.(type) {
	case Leaf:
		return 1
	case *PaneAxis:
		n := 0
		for _, child := range m.Members() {
			n += countLeaves(child)
		}
		return n
	}
	return 0
}

func checkAxes(t *testing.T, m Member) {
	t.Helper()
	axis, ok := m.(*PaneAxis)
	if !ok {
		return
	}
	require.GreaterOrEqual(t, len(axis.Members()), 2, "axis with fewer than two members")
	require.Equal(t, len(axis.Members()), axis.Weights().Len())
	for _, w := range axis.Flexes() {
		require.Greater(t, w, 0.0)
	}
	for _, child := range axis.Members() {
		checkAxes(t, child)
	}
}

func TestPaneGroup_InvariantsUnderRandomEdits(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	first := newPane("P0")
	g := New(first)
	next := 1

	for step := 0; step < 500; step++ {
		panes := g.Panes()
		target := panes[rng.Intn(len(panes))]
		if rng.Intn(3) > 0 || len(panes) == 1 {
			p := newPane("P" + string(rune('0'+next%10)))
			next++
			direction := geometry.SplitDirection(rng.Intn(4))
			require.NoError(t, g.Split(target, p, direction))
			assert.True(t, g.Contains(p))
		} else {
			removed, err := g.Remove(target)
			require.NoError(t, err)
			require.True(t, removed)
			assert.False(t, g.Contains(target))
		}

		panes = g.Panes()
		require.Len(t, panes, countLeaves(g.Root()))
		seen := map[Pane]bool{}
		for _, p := range panes {
			require.False(t, seen[p], "pane appears twice")
			seen[p] = true
		}
		checkAxes(t, g.Root())
	}
}
