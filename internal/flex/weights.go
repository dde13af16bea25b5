package flex

import "fmt"

// FlexHandle is the narrow write access a resize gesture needs: replace the
// weights of the two children either side of a divider.
type FlexHandle interface {
	Resize(ix int, current, next float64)
}

// Weights is the flex vector of an axis group. It is owned by the tree node and
// shared by pointer with the element that lays the node out, so drag-driven
// edits are visible to the next layout pass. Access is single-threaded.
type Weights struct {
	values []float64
}

var _ FlexHandle = (*Weights)(nil)

// NewWeights returns n uniform weights of 1.0.
func NewWeights(n int) *Weights {
	w := &Weights{}
	w.Reset(n)
	return w
}

// Reset replaces the vector with n uniform weights of 1.0.
func (w *Weights) Reset(n int) {
	values := make([]float64, n)
	for i := range values {
		values[i] = 1
	}
	w.values = values
}

// Len returns the number of weights.
func (w *Weights) Len() int {
	return len(w.values)
}

// At returns the weight of child ix.
func (w *Weights) At(ix int) float64 {
	return w.values[ix]
}

// Values returns a copy of the weights.
func (w *Weights) Values() []float64 {
	out := make([]float64, len(w.values))
	copy(out, w.values)
	return out
}

// Total returns the sum of all weights.
func (w *Weights) Total() float64 {
	var total float64
	for _, v := range w.values {
		total += v
	}
	return total
}

// Resize sets the weights of children ix and ix+1.
func (w *Weights) Resize(ix int, current, next float64) {
	if ix < 0 || ix+1 >= len(w.values) {
		panic(fmt.Sprintf("flex: resize index %d out of range for %d weights", ix, len(w.values)))
	}
	w.values[ix] = current
	w.values[ix+1] = next
}
