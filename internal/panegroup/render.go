package panegroup

import (
	"fmt"
	"maps"
	"slices"

	"panegrid/internal/flex"
	"panegrid/internal/geometry"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Region kinds of the clickable areas a rendered tree registers.
const (
	PaneRegionKind   = "pane"
	FollowRegionKind = "follow-leader"
)

// DefaultAppName is used in leader location messages when none is set.
const DefaultAppName = "panegrid"

// PeerID identifies a remote participant.
type PeerID string

// LocationKind classifies where a participant is looking.
type LocationKind int

const (
	// SharedProject means the participant is in a project shared with the
	// call; Location.ProjectID says which.
	SharedProject LocationKind = iota
	// UnsharedProject means the participant is in a project nobody else can see.
	UnsharedProject
	// External means the participant is in another application.
	External
)

// Location is where a participant is looking.
type Location struct {
	Kind      LocationKind
	ProjectID uint64
}

// Participant is what the tree needs to know about a leader.
type Participant struct {
	ReplicaID int
	Login     string
	UserID    uint64
	Location  Location
}

// Presence resolves peers to participants.
type Presence interface {
	Participant(peer PeerID) (Participant, bool)
}

// FollowerStates lists, per leader, the local panes following that leader.
type FollowerStates map[PeerID][]Pane

// Theme is the styling the tree reads when rendering.
type Theme struct {
	DividerColor        string
	DividerStyle        lipgloss.Border
	Background          string
	LeaderBorderWidth   float64
	LeaderBorderOpacity float64
	ReplicaColors       []string
	LocationMessage     lipgloss.Style
	MinSizes            flex.MinSizes
	HandleSize          float64
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	return Theme{
		DividerColor:        "#444444",
		DividerStyle:        lipgloss.NormalBorder(),
		Background:          "#1a1a1a",
		LeaderBorderWidth:   1,
		LeaderBorderOpacity: 0.7,
		ReplicaColors:       []string{"#4EBAAA", "#E5C07B", "#C678DD", "#61AFEF", "#E06C75", "#98C379"},
		LocationMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#5A5A5A")).
			Padding(0, 1),
		MinSizes:   flex.DefaultMinSizes,
		HandleSize: flex.HandleHitboxSize,
	}
}

func (t Theme) withDefaults() Theme {
	def := DefaultTheme()
	if t.DividerColor == "" {
		t.DividerColor = def.DividerColor
	}
	if t.DividerStyle == (lipgloss.Border{}) {
		t.DividerStyle = def.DividerStyle
	}
	if t.Background == "" {
		t.Background = def.Background
	}
	if t.LeaderBorderWidth <= 0 {
		t.LeaderBorderWidth = def.LeaderBorderWidth
	}
	if len(t.ReplicaColors) == 0 {
		t.ReplicaColors = def.ReplicaColors
	}
	if t.MinSizes == (flex.MinSizes{}) {
		t.MinSizes = def.MinSizes
	}
	if t.HandleSize <= 0 {
		t.HandleSize = def.HandleSize
	}
	return t
}

func (t Theme) dividerBorder(axis geometry.Axis) flex.Border {
	return flex.Border{
		Width:  1,
		Color:  lipgloss.Color(t.DividerColor),
		Style:  t.DividerStyle,
		Right:  axis == geometry.Horizontal,
		Bottom: axis == geometry.Vertical,
	}
}

// LeaderColor returns the replica colour for replicaID blended towards the
// background by the leader border opacity.
func (t Theme) LeaderColor(replicaID int) string {
	if len(t.ReplicaColors) == 0 {
		return ""
	}
	if replicaID < 0 {
		replicaID = -replicaID
	}
	hex := t.ReplicaColors[replicaID%len(t.ReplicaColors)]
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	bg, err := colorful.Hex(t.Background)
	if err != nil {
		return hex
	}
	opacity := min(max(t.LeaderBorderOpacity, 0), 1)
	return c.BlendLab(bg, 1-opacity).Clamped().Hex()
}

func (t Theme) leaderBorder(replicaID int) flex.Border {
	border := flex.BorderAll(t.LeaderBorderWidth, lipgloss.Color(t.LeaderColor(replicaID)))
	border.Style = lipgloss.ThickBorder()
	border.Overlay = true
	return border
}

// RenderContext carries everything a render pass reads besides the tree.
// Presence may be nil, in which case no leader decorations are drawn.
type RenderContext struct {
	Theme     Theme
	Followers FollowerStates
	Presence  Presence
	// ProjectID is the shared ID of the local project, 0 when not shared.
	ProjectID uint64
	Zoomed    Pane
	AppName   string

	OnFollow   func(projectID, userID uint64)
	OnActivate func(pane Pane)

	// Region ID counters for the current pass.
	nextHandle int
	nextLeaf   int
}

func (cx *RenderContext) leaderFor(pane Pane) (Participant, bool) {
	if cx.Presence == nil {
		return Participant{}, false
	}
	for _, peer := range slices.Sorted(maps.Keys(cx.Followers)) {
		if slices.Contains(cx.Followers[peer], pane) {
			return cx.Presence.Participant(peer)
		}
	}
	return Participant{}, false
}

// leaderStatus returns the label shown over a pane following leader, or nil
// when the leader is in this project.
func (cx *RenderContext) leaderStatus(id int, leader Participant) flex.Element {
	var label *flex.Label
	switch leader.Location.Kind {
	case SharedProject:
		if cx.ProjectID != 0 && leader.Location.ProjectID == cx.ProjectID {
			return nil
		}
		label = flex.NewLabel(
			fmt.Sprintf("Follow %s on their active project", leader.Login),
			cx.Theme.LocationMessage,
		)
		if cx.OnFollow != nil {
			projectID, userID, onFollow := leader.Location.ProjectID, leader.UserID, cx.OnFollow
			label.OnClick(flex.RegionID{Kind: FollowRegionKind, Index: id}, func(flex.ClickEvent, *flex.EventContext) {
				onFollow(projectID, userID)
			})
		}
	case UnsharedProject:
		label = flex.NewLabel(
			fmt.Sprintf("%s is viewing an unshared %s project", leader.Login, cx.AppName),
			cx.Theme.LocationMessage,
		)
	case External:
		label = flex.NewLabel(
			fmt.Sprintf("%s is viewing a window outside of %s", leader.Login, cx.AppName),
			cx.Theme.LocationMessage,
		)
	default:
		return nil
	}
	return flex.NewAligned(label, flex.AlignBottomRight)
}

func (l Leaf) render(cx *RenderContext) flex.Element {
	id := cx.nextLeaf
	cx.nextLeaf++

	var content flex.Element
	if cx.Zoomed != nil && cx.Zoomed == l.Pane {
		content = flex.NewEmpty()
	} else {
		box := flex.NewBox(l.Pane.Render)
		if cx.OnActivate != nil {
			pane, onActivate := l.Pane, cx.OnActivate
			box.OnClick(flex.RegionID{Kind: PaneRegionKind, Index: id}, func(flex.ClickEvent, *flex.EventContext) {
				onActivate(pane)
			})
		}
		content = box
	}

	leader, following := cx.leaderFor(l.Pane)
	var border flex.Border
	if following {
		border = cx.Theme.leaderBorder(leader.ReplicaID)
	}
	stack := flex.NewStack(flex.NewContainer(content, border))
	if following {
		if status := cx.leaderStatus(id, leader); status != nil {
			stack.WithChild(status)
		}
	}
	return stack
}
