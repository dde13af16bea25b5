package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDirection_AxisAndIncreasing(t *testing.T) {
	type tc struct {
		axis       Axis
		increasing bool
	}

	tests := map[SplitDirection]tc{
		Up:    {axis: Vertical, increasing: false},
		Down:  {axis: Vertical, increasing: true},
		Left:  {axis: Horizontal, increasing: false},
		Right: {axis: Horizontal, increasing: true},
	}

	for dir, tt := range tests {
		t.Run(dir.String(), func(t *testing.T) {
			assert.Equal(t, tt.axis, dir.Axis())
			assert.Equal(t, tt.increasing, dir.Increasing())
		})
	}
}

func TestSplitDirection_Edge(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	assert.Equal(t, 20.0, Up.Edge(r))
	assert.Equal(t, 60.0, Down.Edge(r))
	assert.Equal(t, 10.0, Left.Edge(r))
	assert.Equal(t, 40.0, Right.Edge(r))
}

func TestSplitDirection_AlongEdge(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	tests := map[string]struct {
		dir  SplitDirection
		want Rect
	}{
		"up":    {dir: Up, want: NewRect(10, 20, 30, 5)},
		"down":  {dir: Down, want: NewRect(10, 55, 30, 5)},
		"left":  {dir: Left, want: NewRect(10, 20, 5, 40)},
		"right": {dir: Right, want: NewRect(35, 20, 5, 40)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.dir.AlongEdge(r, 5)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.dir.Edge(r), tt.dir.Edge(got), "sub-rect must share the edge")
		})
	}
}

func TestSplitDirection_All(t *testing.T) {
	assert.Equal(t, [4]SplitDirection{Up, Down, Left, Right}, All())
}

func TestParseSplitDirection(t *testing.T) {
	for _, dir := range All() {
		got, err := ParseSplitDirection(dir.String())
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	}

	got, err := ParseSplitDirection(" L ")
	require.NoError(t, err)
	assert.Equal(t, Right, got)

	_, err = ParseSplitDirection("diagonal")
	assert.Error(t, err)
}
