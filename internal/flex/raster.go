package flex

import (
	"math"
	"strings"

	"panegrid/internal/geometry"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/cellbuf"
)

// cells is a half-open rectangle of terminal cells.
type cells struct {
	x0, y0, x1, y1 int
}

// toCells rounds each edge of r independently, so rectangles that share an
// edge in float space share it in cell space too.
func toCells(r geometry.Rect) cells {
	return cells{
		x0: int(math.Round(r.MinX())),
		y0: int(math.Round(r.MinY())),
		x1: int(math.Round(r.MaxX())),
		y1: int(math.Round(r.MaxY())),
	}
}

func (c cells) width() int  { return c.x1 - c.x0 }
func (c cells) height() int { return c.y1 - c.y0 }
func (c cells) empty() bool { return c.width() <= 0 || c.height() <= 0 }

func (c cells) intersect(o cells) cells {
	return cells{
		x0: max(c.x0, o.x0),
		y0: max(c.y0, o.y0),
		x1: min(c.x1, o.x1),
		y1: min(c.y1, o.y1),
	}
}

// Rasterize composites the scene's primitives, in paint order, into a block of
// width x height cells.
func Rasterize(s *Scene, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	buf := cellbuf.NewBuffer(width, height)
	cellbuf.SetContent(buf, FitBlock("", width, height))

	screen := cells{x1: width, y1: height}
	for _, p := range s.Primitives() {
		box := toCells(p.Bounds)
		visible := box.intersect(toCells(p.Clip)).intersect(screen)
		if visible.empty() {
			continue
		}
		switch p.kind {
		case primitiveContent:
			block := FitBlock(p.render(box.width(), box.height()), box.width(), box.height())
			writeBlock(buf, cropBlock(block, box, visible), visible)
		case primitiveBorder:
			drawBorder(buf, box, visible, p.border)
		}
	}
	return renderBufferLines(buf)
}

// FitBlock truncates or pads text so it is exactly width x height cells.
func FitBlock(text string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(text, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		lines[i] = fitLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func fitLine(text string, width int) string {
	truncated := ansi.Truncate(text, width, "")
	padding := width - lipgloss.Width(truncated)
	if padding < 0 {
		padding = 0
	}
	return truncated + strings.Repeat(" ", padding)
}

// cropBlock keeps the part of block (laid out over box) that falls in visible.
func cropBlock(block string, box, visible cells) string {
	if box == visible {
		return block
	}
	lines := strings.Split(block, "\n")
	top := visible.y0 - box.y0
	lines = lines[top : top+visible.height()]
	left := visible.x0 - box.x0
	for i, line := range lines {
		lines[i] = ansi.Cut(line, left, left+visible.width())
	}
	return strings.Join(lines, "\n")
}

func writeBlock(buf *cellbuf.Buffer, block string, at cells) {
	cellbuf.SetContentRect(buf, block, cellbuf.Rect(at.x0, at.y0, at.width(), at.height()))
}

func drawBorder(buf *cellbuf.Buffer, box, visible cells, b Border) {
	chars := b.Style
	if chars == (lipgloss.Border{}) {
		chars = lipgloss.NormalBorder()
	}
	style := lipgloss.NewStyle()
	if b.Color != nil {
		style = style.Foreground(b.Color)
	}

	put := func(x, y int, glyph string) {
		if x < visible.x0 || x >= visible.x1 || y < visible.y0 || y >= visible.y1 {
			return
		}
		writeBlock(buf, style.Render(glyph), cells{x0: x, y0: y, x1: x + 1, y1: y + 1})
	}

	left, right := box.x0, box.x1-1
	top, bottom := box.y0, box.y1-1
	if b.Top {
		for x := left; x <= right; x++ {
			put(x, top, chars.Top)
		}
	}
	if b.Bottom {
		for x := left; x <= right; x++ {
			put(x, bottom, chars.Bottom)
		}
	}
	if b.Left {
		for y := top; y <= bottom; y++ {
			put(left, y, chars.Left)
		}
	}
	if b.Right {
		for y := top; y <= bottom; y++ {
			put(right, y, chars.Right)
		}
	}
	if b.Top && b.Left {
		put(left, top, chars.TopLeft)
	}
	if b.Top && b.Right {
		put(right, top, chars.TopRight)
	}
	if b.Bottom && b.Left {
		put(left, bottom, chars.BottomLeft)
	}
	if b.Bottom && b.Right {
		put(right, bottom, chars.BottomRight)
	}
}

func renderBufferLines(buf *cellbuf.Buffer) string {
	height := buf.Bounds().Dy()
	lines := make([]string, height)
	for y := 0; y < height; y++ {
		_, line := cellbuf.RenderLine(buf, y)
		lines[y] = line
	}
	return strings.Join(lines, "\n")
}
