package ui

// AppMode is the top-level state of the workspace.
type AppMode int

const (
	ModeTiled AppMode = iota
	ModeZoomed
)

func (m AppMode) String() string {
	switch m {
	case ModeTiled:
		return "TILED"
	case ModeZoomed:
		return "ZOOM"
	default:
		return "Unknown"
	}
}
