// Package geometry provides the float geometry shared by the layout engine and
// the pane tree: axes, vectors, rectangles, size constraints and the four
// cardinal split directions.
//
// One unit corresponds to one terminal cell once a scene is rasterized.
package geometry
