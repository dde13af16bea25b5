package ui

import "slices"

// FocusManager tracks and rotates focus across panes.
type FocusManager struct {
	Current  string   // ID of the focused pane
	Order    []string // Tab order, the tree's pre-order
	OnChange func(from, to string)
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}

// Next advances focus to the next pane in order.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := slices.Index(f.Order, f.Current)
	f.set(f.Order[(idx+1)%len(f.Order)])
	return f.Current
}

// Prev moves focus to the previous pane in order.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := slices.Index(f.Order, f.Current) - 1
	if idx < 0 {
		idx = len(f.Order) - 1
	}
	f.set(f.Order[idx])
	return f.Current
}

// SetFocus sets focus to the given pane ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	if !slices.Contains(f.Order, id) {
		return false
	}
	f.set(id)
	return true
}

// Sync replaces the order after the tree changed. When the focused pane is
// gone, focus moves to the pane that took its place in order, or to the
// last one.
func (f *FocusManager) Sync(order []string) {
	prevIdx := slices.Index(f.Order, f.Current)
	f.Order = slices.Clone(order)
	if len(order) == 0 {
		f.set("")
		return
	}
	if slices.Contains(order, f.Current) {
		return
	}
	idx := max(prevIdx, 0)
	if idx >= len(order) {
		idx = len(order) - 1
	}
	f.set(order[idx])
}
