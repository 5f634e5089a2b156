// ABOUTME: Multi-line text editing engine with cell-based word wrapping
// ABOUTME: Backs the bottom-pane prompt overlay; renders into a screen.Buffer
package textarea

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/lauraanormann/codex/internal/tui/screen"
)

// Model is a plain multi-line editor: logical lines of runes plus a cursor.
// It has no styling of its own; the owning view draws it into a buffer region
// and paints the caret from CursorPosWithState.
type Model struct {
	lines [][]rune
	row   int // cursor logical line
	col   int // cursor rune offset within the line
}

// RenderState is the per-frame scratch the render protocol needs: the
// vertical scroll offset, kept consistent between a Render call and the
// matching CursorPosWithState call on the same rect.
type RenderState struct {
	Scroll int
}

func New() *Model {
	return &Model{lines: [][]rune{{}}}
}

// Text returns the full buffer content with lines joined by newlines.
func (m *Model) Text() string {
	parts := make([]string, len(m.lines))
	for i, l := range m.lines {
		parts[i] = string(l)
	}
	return strings.Join(parts, "\n")
}

// IsEmpty reports whether no text has been entered.
func (m *Model) IsEmpty() bool {
	return len(m.lines) == 1 && len(m.lines[0]) == 0
}

// SetText replaces the content and moves the cursor to the end.
func (m *Model) SetText(s string) {
	raw := strings.Split(s, "\n")
	m.lines = make([][]rune, len(raw))
	for i, l := range raw {
		m.lines[i] = []rune(l)
	}
	m.row = len(m.lines) - 1
	m.col = len(m.lines[m.row])
}

// InsertRune inserts r at the cursor.
func (m *Model) InsertRune(r rune) {
	line := m.lines[m.row]
	line = append(line[:m.col], append([]rune{r}, line[m.col:]...)...)
	m.lines[m.row] = line
	m.col++
}

// InsertNewline splits the current line at the cursor.
func (m *Model) InsertNewline() {
	line := m.lines[m.row]
	rest := append([]rune{}, line[m.col:]...)
	m.lines[m.row] = line[:m.col]
	m.lines = append(m.lines[:m.row+1], append([][]rune{rest}, m.lines[m.row+1:]...)...)
	m.row++
	m.col = 0
}

// InsertString batch-inserts s at the cursor. Newlines split lines; carriage
// returns are dropped so pasted CRLF text lands cleanly.
func (m *Model) InsertString(s string) {
	for _, r := range s {
		switch r {
		case '\r':
		case '\n':
			m.InsertNewline()
		default:
			m.InsertRune(r)
		}
	}
}

func (m *Model) backspace() {
	if m.col > 0 {
		line := m.lines[m.row]
		m.lines[m.row] = append(line[:m.col-1], line[m.col:]...)
		m.col--
		return
	}
	if m.row == 0 {
		return
	}
	prev := m.lines[m.row-1]
	m.col = len(prev)
	m.lines[m.row-1] = append(prev, m.lines[m.row]...)
	m.lines = append(m.lines[:m.row], m.lines[m.row+1:]...)
	m.row--
}

func (m *Model) deleteForward() {
	line := m.lines[m.row]
	if m.col < len(line) {
		m.lines[m.row] = append(line[:m.col], line[m.col+1:]...)
		return
	}
	if m.row == len(m.lines)-1 {
		return
	}
	m.lines[m.row] = append(line, m.lines[m.row+1]...)
	m.lines = append(m.lines[:m.row+1], m.lines[m.row+2:]...)
}

// deleteWordBack removes the run of spaces then the word before the cursor.
func (m *Model) deleteWordBack() {
	if m.col == 0 {
		m.backspace()
		return
	}
	line := m.lines[m.row]
	i := m.col
	for i > 0 && line[i-1] == ' ' {
		i--
	}
	for i > 0 && line[i-1] != ' ' {
		i--
	}
	m.lines[m.row] = append(append([]rune{}, line[:i]...), line[m.col:]...)
	m.col = i
}

func (m *Model) killToEnd() {
	m.lines[m.row] = m.lines[m.row][:m.col]
}

func (m *Model) killToStart() {
	m.lines[m.row] = append([]rune{}, m.lines[m.row][m.col:]...)
	m.col = 0
}

func (m *Model) moveLeft() {
	if m.col > 0 {
		m.col--
		return
	}
	if m.row > 0 {
		m.row--
		m.col = len(m.lines[m.row])
	}
}

func (m *Model) moveRight() {
	if m.col < len(m.lines[m.row]) {
		m.col++
		return
	}
	if m.row < len(m.lines)-1 {
		m.row++
		m.col = 0
	}
}

func (m *Model) moveUp() {
	if m.row == 0 {
		m.col = 0
		return
	}
	m.row--
	if m.col > len(m.lines[m.row]) {
		m.col = len(m.lines[m.row])
	}
}

func (m *Model) moveDown() {
	if m.row == len(m.lines)-1 {
		m.col = len(m.lines[m.row])
		return
	}
	m.row++
	if m.col > len(m.lines[m.row]) {
		m.col = len(m.lines[m.row])
	}
}

// Input applies one key event with standard editing semantics. Keys the
// editor does not understand are ignored.
func (m *Model) Input(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return
		}
		for _, r := range msg.Runes {
			m.InsertRune(r)
		}
	case tea.KeySpace:
		m.InsertRune(' ')
	case tea.KeyTab:
		m.InsertRune('\t')
	case tea.KeyEnter, tea.KeyCtrlJ:
		m.InsertNewline()
	case tea.KeyBackspace:
		if msg.Alt {
			m.deleteWordBack()
		} else {
			m.backspace()
		}
	case tea.KeyDelete:
		m.deleteForward()
	case tea.KeyLeft:
		m.moveLeft()
	case tea.KeyRight:
		m.moveRight()
	case tea.KeyUp:
		m.moveUp()
	case tea.KeyDown:
		m.moveDown()
	case tea.KeyHome, tea.KeyCtrlA:
		m.col = 0
	case tea.KeyEnd, tea.KeyCtrlE:
		m.col = len(m.lines[m.row])
	case tea.KeyCtrlK:
		m.killToEnd()
	case tea.KeyCtrlU:
		m.killToStart()
	case tea.KeyCtrlW:
		m.deleteWordBack()
	}
}

// DesiredHeight returns the number of rows needed to show the full content
// wrapped at the given width. Always at least one row per logical line; a
// non-positive width degrades to the logical line count.
func (m *Model) DesiredHeight(width int) int {
	if width <= 0 {
		return len(m.lines)
	}
	total := 0
	for _, line := range m.lines {
		total += len(wrapLine(line, width))
	}
	return total
}

// Render draws the wrapped content into area, scrolling so the cursor row is
// visible. The same state must be handed to CursorPosWithState afterwards.
func (m *Model) Render(area screen.Rect, buf *screen.Buffer, st *RenderState) {
	if area.Empty() {
		return
	}
	rows := m.wrappedRows(area.Width)
	cursorRow, _ := m.cursorVisual(area.Width)
	m.scrollIntoView(st, cursorRow, len(rows), area.Height)
	for i := 0; i < area.Height; i++ {
		idx := st.Scroll + i
		if idx >= len(rows) {
			break
		}
		buf.SetStringN(area.X, area.Y+i, string(rows[idx]), area.Width, nil)
	}
}

// CursorPosWithState returns the caret cell in absolute buffer coordinates,
// or false when the caret is scrolled out of the area or there is no room.
func (m *Model) CursorPosWithState(area screen.Rect, st *RenderState) (screen.Position, bool) {
	if area.Empty() {
		return screen.Position{}, false
	}
	cursorRow, cursorCol := m.cursorVisual(area.Width)
	row := cursorRow - st.Scroll
	if row < 0 || row >= area.Height {
		return screen.Position{}, false
	}
	if cursorCol >= area.Width {
		cursorCol = area.Width - 1
	}
	return screen.Position{X: area.X + cursorCol, Y: area.Y + row}, true
}

func (m *Model) scrollIntoView(st *RenderState, cursorRow, totalRows, height int) {
	if st.Scroll > cursorRow {
		st.Scroll = cursorRow
	}
	if cursorRow >= st.Scroll+height {
		st.Scroll = cursorRow - height + 1
	}
	max := screen.Clamp0(totalRows, height)
	if st.Scroll > max {
		st.Scroll = max
	}
	if st.Scroll < 0 {
		st.Scroll = 0
	}
}

func (m *Model) wrappedRows(width int) [][]rune {
	var rows [][]rune
	for _, line := range m.lines {
		rows = append(rows, wrapLine(line, width)...)
	}
	return rows
}

// cursorVisual maps the logical cursor to (wrapped row, cell column) for the
// given wrap width.
func (m *Model) cursorVisual(width int) (int, int) {
	if width <= 0 {
		return m.row, 0
	}
	row := 0
	for i := 0; i < m.row; i++ {
		row += len(wrapLine(m.lines[i], width))
	}
	segs := wrapLine(m.lines[m.row], width)
	offset := 0
	for i, seg := range segs {
		if m.col <= offset+len(seg) {
			col := cellWidth(m.lines[m.row][offset:m.col])
			// A caret exactly at the wrap point belongs to the next row.
			if col >= width && i < len(segs)-1 {
				return row + i + 1, 0
			}
			return row + i, col
		}
		offset += len(seg)
	}
	last := len(segs) - 1
	return row + last, cellWidth(segs[last])
}

func cellWidth(rs []rune) int {
	w := 0
	for _, r := range rs {
		w += runewidth.RuneWidth(r)
	}
	return w
}

// wrapLine breaks a logical line into display rows of at most width cells,
// preferring space boundaries and hard-breaking words longer than the width.
// An empty line still occupies one row.
func wrapLine(line []rune, width int) [][]rune {
	if width <= 0 {
		return [][]rune{line}
	}
	if len(line) == 0 {
		return [][]rune{{}}
	}
	var rows [][]rune
	start := 0
	rowWidth := 0
	lastSpace := -1
	for i := 0; i < len(line); i++ {
		w := runewidth.RuneWidth(line[i])
		if rowWidth+w > width {
			brk := i
			if lastSpace > start {
				brk = lastSpace + 1
			}
			rows = append(rows, line[start:brk])
			start = brk
			rowWidth = cellWidth(line[start : i+1])
			lastSpace = -1
			continue
		}
		if line[i] == ' ' {
			lastSpace = i
		}
		rowWidth += w
	}
	rows = append(rows, line[start:])
	return rows
}
