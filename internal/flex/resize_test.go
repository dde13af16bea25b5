package flex

import (
	"math"
	"testing"

	"panegrid/internal/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandle struct {
	calls []resizeCall
}

type resizeCall struct {
	ix            int
	current, next float64
}

func (r *recordingHandle) Resize(ix int, current, next float64) {
	r.calls = append(r.calls, resizeCall{ix: ix, current: current, next: next})
}

func baseGesture(h FlexHandle) ResizeGesture {
	return ResizeGesture{
		Axis:            geometry.Horizontal,
		Index:           0,
		ChildStart:      geometry.Vec(0, 0),
		ChildSize:       50,
		NextSize:        50,
		CurrentFlex:     1,
		NextFlex:        1,
		ContainerLength: 100,
		MinSize:         12,
		Weights:         h,
	}
}

func TestResizeGesture_Drag(t *testing.T) {
	tests := map[string]struct {
		pointer   float64
		wantDelta float64
	}{
		"grow":                    {pointer: 60, wantDelta: 0.10},
		"shrink":                  {pointer: 30, wantDelta: -0.20},
		"grow clamps next floor":  {pointer: 95, wantDelta: 0.38},
		"shrink clamps own floor": {pointer: 3, wantDelta: -0.38},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := &recordingHandle{}
			g := baseGesture(h)

			changed := g.Drag(geometry.Vec(tt.pointer, 7))

			require.True(t, changed)
			require.Len(t, h.calls, 1)
			call := h.calls[0]
			assert.Equal(t, 0, call.ix)
			assert.InDelta(t, 1+tt.wantDelta, call.current, 1e-9)
			assert.InDelta(t, 1-tt.wantDelta, call.next, 1e-9)
			assert.InDelta(t, 2.0, call.current+call.next, 1e-9, "flex is conserved across the divider")
		})
	}
}

func TestResizeGesture_NoOpWhenAlreadyBelowFloor(t *testing.T) {
	for name, mutate := range map[string]func(*ResizeGesture){
		"child too small": func(g *ResizeGesture) { g.ChildSize = 10 },
		"next too small":  func(g *ResizeGesture) { g.NextSize = 10 },
	} {
		t.Run(name, func(t *testing.T) {
			h := &recordingHandle{}
			g := baseGesture(h)
			mutate(&g)

			assert.False(t, g.Drag(geometry.Vec(40, 0)))
			assert.Empty(t, h.calls)
		})
	}
}

func TestResizeGesture_IgnoresNonFinitePosition(t *testing.T) {
	for name, pos := range map[string]geometry.Vector{
		"nan":          geometry.Vec(math.NaN(), 7),
		"+inf":         geometry.Vec(math.Inf(1), 7),
		"-inf":         geometry.Vec(math.Inf(-1), 7),
		"nan off axis": geometry.Vec(60, math.NaN()),
	} {
		t.Run(name, func(t *testing.T) {
			h := &recordingHandle{}
			assert.False(t, baseGesture(h).Drag(pos))
			assert.Empty(t, h.calls)
		})
	}

	w := NewWeights(2)
	g := baseGesture(w)
	assert.False(t, g.Drag(geometry.Vec(math.NaN(), 0)))
	assert.Equal(t, []float64{1, 1}, w.Values())
}

func TestResizeGesture_WithinToleranceStillResizes(t *testing.T) {
	h := &recordingHandle{}
	g := baseGesture(h)
	g.ChildSize = 11.5
	g.NextSize = 88.5

	assert.True(t, g.Drag(geometry.Vec(30, 0)))
}

func TestResizeGesture_UsesAxisAndStart(t *testing.T) {
	h := &recordingHandle{}
	g := baseGesture(h)
	g.Axis = geometry.Vertical
	g.Index = 2
	g.ChildStart = geometry.Vec(5, 10)
	g.ChildSize = 20
	g.NextSize = 20
	g.ContainerLength = 40
	g.MinSize = 4

	// Pointer x is irrelevant on the vertical axis; y=35 makes the child 25 tall.
	require.True(t, g.Drag(geometry.Vec(999, 35)))
	require.Len(t, h.calls, 1)
	assert.Equal(t, 2, h.calls[0].ix)
	assert.InDelta(t, 1.125, h.calls[0].current, 1e-9)
	assert.InDelta(t, 0.875, h.calls[0].next, 1e-9)
}

func TestResizeGesture_NeverPushesChildrenBelowFloor(t *testing.T) {
	w := NewWeights(2)
	e := axisWith(geometry.Horizontal, w, boxes(2)...).WithMinSizes(MinSizes{Horizontal: 12, Vertical: 4})
	bounds := geometry.NewRect(0, 0, 100, 10)

	for _, pointer := range []float64{99, 1, 95, 0, 100, 3, 88} {
		e.Layout(geometry.Strict(bounds.Size))
		s := NewScene(bounds)
		e.Paint(s, bounds.Origin, bounds)

		region, ok := s.Region(RegionID{Kind: ResizeHandleKind, Index: 1})
		require.True(t, ok)
		before := w.Total()
		region.OnDrag(DragEvent{Position: geometry.Vec(pointer, 5)}, &EventContext{d: NewDispatcher()})
		assert.InDelta(t, before, w.Total(), 1e-9)

		e.Layout(geometry.Strict(bounds.Size))
		for i, child := range e.Children() {
			assert.GreaterOrEqual(t, child.Size().X, 12.0-1e-9, "child %d after pointer %v", i, pointer)
		}
		for _, v := range w.Values() {
			assert.Greater(t, v, 0.0)
		}
	}
}

func TestMinSizes_Along(t *testing.T) {
	assert.Equal(t, 12.0, DefaultMinSizes.Along(geometry.Horizontal))
	assert.Equal(t, 4.0, DefaultMinSizes.Along(geometry.Vertical))
	assert.Greater(t, DefaultMinSizes.Horizontal, DefaultMinSizes.Vertical)
}
