package flex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeights_ResetIsUniform(t *testing.T) {
	w := NewWeights(3)
	assert.Equal(t, []float64{1, 1, 1}, w.Values())
	assert.Equal(t, 3.0, w.Total())

	w.Resize(0, 1.5, 0.5)
	w.Reset(4)
	assert.Equal(t, []float64{1, 1, 1, 1}, w.Values())
}

func TestWeights_ValuesIsACopy(t *testing.T) {
	w := NewWeights(2)
	values := w.Values()
	values[0] = 42

	assert.Equal(t, 1.0, w.At(0))
}

func TestWeights_ResizeOutOfRangePanics(t *testing.T) {
	w := NewWeights(2)

	assert.Panics(t, func() { w.Resize(1, 1, 1) })
	assert.Panics(t, func() { w.Resize(-1, 1, 1) })
}
