package ui

import (
	"fmt"
	"os"
	"strings"

	"panegrid/internal/panegroup"
	"panegrid/internal/pty"
	"panegrid/internal/ui/textutil"

	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"
)

// Pane is a pane the workspace can focus and title.
type Pane interface {
	panegroup.Pane
	ID() string
	Title() string
	SetFocused(focused bool)
}

var (
	_ Pane = (*TextPane)(nil)
	_ Pane = (*MarkdownPane)(nil)
	_ Pane = (*CommandPane)(nil)
)

// paneBase holds what every pane kind shares and draws the title line.
type paneBase struct {
	id      string
	title   string
	focused bool
}

func newPaneBase(title string) paneBase {
	return paneBase{id: uuid.NewString(), title: title}
}

func (p *paneBase) ID() string              { return p.id }
func (p *paneBase) Title() string           { return p.title }
func (p *paneBase) String() string          { return p.title }
func (p *paneBase) SetFocused(focused bool) { p.focused = focused }

func (p *paneBase) titleLine(width int) string {
	style := Styles.PaneTitle
	marker := " "
	if p.focused {
		style = Styles.PaneTitleFocused
		marker = "●"
	}
	return style.Render(textutil.PadRightVisual(marker+" "+p.title, width))
}

// frame draws the title line over body lines, keeping the last lines of body
// when it is taller than the pane.
func (p *paneBase) frame(width, height int, body []string) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := []string{p.titleLine(width)}
	room := height - 1
	if len(body) > room {
		body = body[len(body)-room:]
	}
	for _, line := range body {
		lines = append(lines, textutil.TruncateStyled(line, width))
	}
	return strings.Join(lines, "\n")
}

// TextPane shows fixed text.
type TextPane struct {
	paneBase
	Body string
}

// NewTextPane returns a pane titled title showing body.
func NewTextPane(title, body string) *TextPane {
	return &TextPane{paneBase: newPaneBase(title), Body: body}
}

// Render implements panegroup.Pane.
func (p *TextPane) Render(width, height int) string {
	body := []string{Styles.Muted.Render(fmt.Sprintf("%dx%d", width, height))}
	if p.Body != "" {
		for _, line := range strings.Split(p.Body, "\n") {
			body = append(body, Styles.PaneBody.Render(line))
		}
	}
	if len(body) > height-1 {
		body = body[:max(height-1, 0)]
	}
	return p.frame(width, height, body)
}

// MarkdownPane renders a markdown file with glamour, wrapped to the pane width.
type MarkdownPane struct {
	paneBase
	Path string

	source   string
	err      error
	width    int
	rendered string
}

// NewMarkdownPane returns a pane rendering the file at path.
func NewMarkdownPane(title, path string) *MarkdownPane {
	p := &MarkdownPane{paneBase: newPaneBase(title), Path: path}
	p.Reload()
	return p
}

// Reload reads the file again.
func (p *MarkdownPane) Reload() {
	data, err := os.ReadFile(p.Path)
	p.source, p.err = string(data), err
	p.width = 0
}

// Render implements panegroup.Pane. Output is cached per width.
func (p *MarkdownPane) Render(width, height int) string {
	if p.err != nil {
		return p.frame(width, height, []string{Styles.PaneError.Render(p.err.Error())})
	}
	if width != p.width {
		p.width = width
		p.rendered = p.renderMarkdown(width)
	}
	body := strings.Split(strings.Trim(p.rendered, "\n"), "\n")
	if len(body) > height-1 {
		body = body[:max(height-1, 0)]
	}
	return p.frame(width, height, body)
}

func (p *MarkdownPane) renderMarkdown(width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(max(width-2, 1)),
	)
	if err != nil {
		return Styles.PaneError.Render(err.Error())
	}
	out, err := renderer.Render(p.source)
	if err != nil {
		return Styles.PaneError.Render(err.Error())
	}
	return out
}

// CommandPane shows the output of a shell command run in a PTY at the pane's
// size. The workspace reruns the command whenever the size changes.
type CommandPane struct {
	paneBase
	Command string

	size     pty.Size // size the pane was last drawn at
	captured pty.Size // size of the current output
	running  bool
	output   string
	err      error
}

// NewCommandPane returns a pane running command.
func NewCommandPane(title, command string) *CommandPane {
	return &CommandPane{paneBase: newPaneBase(title), Command: command}
}

// Render implements panegroup.Pane.
func (p *CommandPane) Render(width, height int) string {
	p.size = pty.Size{Rows: uint16(max(height-1, 0)), Cols: uint16(max(width, 0))}
	var body []string
	switch {
	case p.err != nil:
		body = append(body, Styles.PaneError.Render(p.err.Error()))
	case p.output == "" && p.running:
		body = append(body, Styles.Muted.Render("running "+p.Command+"…"))
	default:
		body = strings.Split(p.output, "\n")
	}
	return p.frame(width, height, body)
}

// stale reports whether the output was captured at a size other than the
// one the pane was last drawn at.
func (p *CommandPane) stale() bool {
	return !p.running && p.size.Rows > 0 && p.size.Cols > 0 && p.size != p.captured
}

// begin marks a capture as started and returns the size to run it at.
func (p *CommandPane) begin() pty.Size {
	p.running = true
	return p.size
}

func (p *CommandPane) setOutput(size pty.Size, output string, err error) {
	p.running = false
	p.captured = size
	p.output = output
	p.err = err
}
