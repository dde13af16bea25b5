// Package panegroup holds the split tree of a workspace: a root Member that is
// either a single pane or an axis of members laid out side by side. Split and
// Remove edit the tree; Render turns it into a flex element tree.
package panegroup
