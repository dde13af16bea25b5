// Package flex implements the two-pass layout and paint pipeline used to draw
// pane groups in a terminal.
//
// Elements are measured with [Element.Layout] and then painted into a [Scene],
// which collects drawing primitives, cursor regions and mouse regions. A
// [Dispatcher] routes pointer events to the mouse regions of the most recently
// painted scene, and [Rasterize] composites the primitives into a string.
//
// [AxisElement] distributes space along one axis according to shared
// [Weights]; dragging a divider between two children adjusts the two adjacent
// weights in place so the next layout pass picks up the new sizes.
package flex
