// ABOUTME: Styled character-cell buffer that overlay views render into
// ABOUTME: Serializes to a string for the Bubbletea view, grouping style runs
package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// StringWidth returns the display width of s in cells.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// cell is a single character cell. A nil style renders the rune bare. A
// continuation cell (rune 0 behind a wide rune) is skipped on output.
type cell struct {
	r            rune
	style        *lipgloss.Style
	continuation bool
}

// Buffer is a fixed-size grid of styled cells. Views draw into it with
// clipped, wide-rune-aware writes; the model serializes it once per frame.
type Buffer struct {
	width  int
	height int
	cells  [][]cell
}

// NewBuffer returns a buffer of the given size filled with spaces.
// Non-positive dimensions yield an empty buffer that ignores all writes.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]cell, height)
	for y := range cells {
		row := make([]cell, width)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		cells[y] = row
	}
	return &Buffer{width: width, height: height, cells: cells}
}

// Width returns the buffer width in cells.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in rows.
func (b *Buffer) Height() int { return b.height }

// SetString writes s starting at (x, y) with the given style, clipping at
// the buffer edge. Wide runes occupy two cells; a wide rune that would be
// split by the edge is dropped. Style may be nil for unstyled text.
func (b *Buffer) SetString(x, y int, s string, style *lipgloss.Style) {
	b.setString(x, y, s, b.width, style)
}

// SetStringN writes at most maxWidth cells of s starting at (x, y). Text is
// clipped at both the width budget and the buffer edge, so a view rendering
// into a rect narrower than the buffer cannot bleed past its right edge.
func (b *Buffer) SetStringN(x, y int, s string, maxWidth int, style *lipgloss.Style) {
	limit := x + maxWidth
	if limit > b.width {
		limit = b.width
	}
	b.setString(x, y, s, limit, style)
}

func (b *Buffer) setString(x, y int, s string, limit int, style *lipgloss.Style) {
	if y < 0 || y >= b.height {
		return
	}
	row := b.cells[y]
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x < 0 {
			x += w
			continue
		}
		if x+w > limit {
			return
		}
		row[x] = cell{r: r, style: style}
		for i := 1; i < w; i++ {
			row[x+i] = cell{style: style, continuation: true}
		}
		x += w
	}
}

// ClearArea resets every cell inside r (clipped to the buffer) to a bare
// space.
func (b *Buffer) ClearArea(r Rect) {
	for y := r.Y; y < r.Bottom(); y++ {
		if y < 0 || y >= b.height {
			continue
		}
		for x := r.X; x < r.X+r.Width; x++ {
			if x < 0 || x >= b.width {
				continue
			}
			b.cells[y][x] = cell{r: ' '}
		}
	}
}

// CellRune returns the rune at (x, y), or 0 when out of range. Continuation
// cells report 0. Intended for tests and cursor painting.
func (b *Buffer) CellRune(x, y int) rune {
	if y < 0 || y >= b.height || x < 0 || x >= b.width {
		return 0
	}
	return b.cells[y][x].r
}

// RowString returns the plain text of row y with styling stripped.
func (b *Buffer) RowString(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[y] {
		if c.continuation {
			continue
		}
		sb.WriteRune(c.r)
	}
	return sb.String()
}

// ApplyCursor paints the terminal caret by reversing the cell at pos.
// Bubbletea renders views as strings, so the caret has to be drawn into the
// frame rather than placed with an escape sequence.
func (b *Buffer) ApplyCursor(pos Position) {
	if pos.Y < 0 || pos.Y >= b.height || pos.X < 0 || pos.X >= b.width {
		return
	}
	c := b.cells[pos.Y][pos.X]
	var st lipgloss.Style
	if c.style != nil {
		st = c.style.Reverse(true)
	} else {
		st = lipgloss.NewStyle().Reverse(true)
	}
	c.style = &st
	b.cells[pos.Y][pos.X] = c
}

// String serializes the buffer for display. Consecutive cells sharing the
// same style value are rendered as one run.
func (b *Buffer) String() string {
	rows := make([]string, b.height)
	for y := 0; y < b.height; y++ {
		var sb strings.Builder
		var run strings.Builder
		var runStyle *lipgloss.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runStyle != nil {
				sb.WriteString(runStyle.Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
			run.Reset()
		}
		for _, c := range b.cells[y] {
			if c.continuation {
				continue
			}
			if c.style != runStyle {
				flush()
				runStyle = c.style
			}
			run.WriteRune(c.r)
		}
		flush()
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}
