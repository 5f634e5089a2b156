// ABOUTME: Tests for the PromptView overlay lifecycle, layout, and rendering
// ABOUTME: Covers submit/cancel transitions, trimming, paste, and geometry
package bottompane

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lauraanormann/codex/internal/tui/screen"
	"github.com/lauraanormann/codex/internal/tui/theme"
)

type submitSpy struct {
	calls []string
}

func (s *submitSpy) fn(text string) {
	s.calls = append(s.calls, text)
}

func newTestPrompt(spy *submitSpy) (*PromptView, *Pane) {
	pane := NewPane()
	view := NewPromptView("Review", theme.DefaultTheme, spy.fn)
	pane.Push(view)
	return view, pane
}

func typeString(v *PromptView, pane *Pane, s string) {
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			v.HandleKey(pane, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
		}
	}
}

func enter() tea.KeyMsg    { return tea.KeyMsg{Type: tea.KeyEnter} }
func altEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter, Alt: true} }
func escape() tea.KeyMsg   { return tea.KeyMsg{Type: tea.KeyEsc} }

func TestPromptView_SubmitInvokesCallbackWithText(t *testing.T) {
	spy := &submitSpy{}
	v, pane := newTestPrompt(spy)

	typeString(v, pane, "fix bug")
	v.HandleKey(pane, enter())

	require.Equal(t, []string{"fix bug"}, spy.calls)
	assert.True(t, v.IsComplete())
}

func TestPromptView_EmptySubmitIsSilentCancel(t *testing.T) {
	spy := &submitSpy{}
	v, pane := newTestPrompt(spy)

	v.HandleKey(pane, enter())

	assert.Empty(t, spy.calls)
	assert.True(t, v.IsComplete())
}

func TestPromptView_WhitespaceOnlySubmitIsSilentCancel(t *testing.T) {
	spy := &submitSpy{}
	v, pane := newTestPrompt(spy)

	typeString(v, pane, "   ")
	v.HandleKey(pane, enter())

	assert.Empty(t, spy.calls)
	assert.True(t, v.IsComplete())
}

func TestPromptView_EscapeCancelsWithoutCallback(t *testing.T) {
	spy := &submitSpy{}
	v, pane := newTestPrompt(spy)

	typeString(v, pane, "a")
	v.HandleKey(pane, escape())

	assert.Empty(t, spy.calls)
	assert.True(t, v.IsComplete())
}

func TestPromptView_ModifiedEnterInsertsNewline(t *testing.T) {
	spy := &submitSpy{}
	v, pane := newTestPrompt(spy)

	typeString(v, pane, "line1")
	v.HandleKey(pane, altEnter())
	assert.False(t, v.IsComplete())
	typeString(v, pane, "line2")
	v.HandleKey(pane, enter())

	require.Equal(t, []string{"line1\nline2"}, spy.calls)
	assert.True(t, v.IsComplete())
}

func TestPromptView_CtrlJInsertsNewline(t *testing.T) {
	spy := &submitSpy{}
	v, pane := newTestPrompt(spy)

	typeString(v, pane, "a")
	v.HandleKey(pane, tea.KeyMsg{Type: tea.KeyCtrlJ})
	typeString(v, pane, "b")

	assert.False(t, v.IsComplete())
	assert.Equal(t, "a\nb", v.Text())
}

func TestPromptView_SubmitTrimsOuterWhitespaceOnly(t *testing.T) {
	spy := &submitSpy{}
	v, pane := newTestPrompt(spy)

	typeString(v, pane, "  keep  inner  ")
	v.HandleKey(pane, enter())

	require.Equal(t, []string{"keep  inner"}, spy.calls)
}

func TestPromptView_CallbackFiresAtMostOnce(t *testing.T) {
	spy := &submitSpy{}
	v, pane := newTestPrompt(spy)

	typeString(v, pane, "once")
	v.HandleKey(pane, enter())
	// The host never delivers events after completion, but even if one
	// slipped through the callback must not fire again.
	v.HandleKey(pane, enter())

	assert.Equal(t, []string{"once"}, spy.calls)
}

func TestPromptView_CompleteIsMonotonic(t *testing.T) {
	spy := &submitSpy{}
	v, pane := newTestPrompt(spy)

	assert.False(t, v.IsComplete())
	typeString(v, pane, "x")
	assert.False(t, v.IsComplete())
	v.HandleKey(pane, escape())
	assert.True(t, v.IsComplete())
	assert.True(t, v.IsComplete())
}

func TestPromptView_PasteSemantics(t *testing.T) {
	spy := &submitSpy{}
	v, pane := newTestPrompt(spy)

	assert.False(t, v.HandlePaste(pane, ""))
	assert.Equal(t, "", v.Text())

	assert.True(t, v.HandlePaste(pane, "pasted text"))
	assert.Equal(t, "pasted text", v.Text())

	v.HandleKey(pane, enter())
	assert.Equal(t, []string{"pasted text"}, spy.calls)
}

func TestPromptView_PastePreservesNewlines(t *testing.T) {
	spy := &submitSpy{}
	v, pane := newTestPrompt(spy)

	require.True(t, v.HandlePaste(pane, "one\ntwo"))
	v.HandleKey(pane, enter())

	assert.Equal(t, []string{"one\ntwo"}, spy.calls)
}

func TestPromptView_DesiredHeightBounds(t *testing.T) {
	spy := &submitSpy{}
	v, pane := newTestPrompt(spy)

	for _, width := range []int{0, 1, 2, 3, 10, 80, 500} {
		h := v.DesiredHeight(width)
		assert.GreaterOrEqual(t, h, 3, "width %d", width)
		assert.LessOrEqual(t, h, 12, "width %d", width)
	}

	// Long content grows the prompt only up to the hard ceiling.
	v.HandlePaste(pane, strings.Repeat("word ", 400))
	for _, width := range []int{0, 3, 10, 80} {
		h := v.DesiredHeight(width)
		assert.LessOrEqual(t, h, 12, "width %d", width)
	}
}

func TestPromptView_DesiredHeightEmptyContent(t *testing.T) {
	spy := &submitSpy{}
	v, _ := newTestPrompt(spy)

	// 1 title + (1 editor row + 1 spacer) + 1 blank + 1 hint.
	assert.Equal(t, 5, v.DesiredHeight(80))
}

func TestPromptView_InputRegionCapAtEightRows(t *testing.T) {
	spy := &submitSpy{}
	v, pane := newTestPrompt(spy)

	// Seven newlines make exactly eight editor rows: the +1 spacer lands on
	// the cap, so the cap itself changes nothing.
	v.HandlePaste(pane, "1\n2\n3\n4\n5\n6\n7\n8")
	assert.Equal(t, 12, v.DesiredHeight(80))

	// A ninth row would exceed the clamp and must not grow the prompt.
	v.HandlePaste(pane, "\n9")
	assert.Equal(t, 12, v.DesiredHeight(80))
}

func TestPromptView_RenderChrome(t *testing.T) {
	spy := &submitSpy{}
	v, _ := newTestPrompt(spy)

	area := screen.Rect{X: 0, Y: 0, Width: 60, Height: v.DesiredHeight(60)}
	buf := screen.NewBuffer(area.Width, area.Height)
	v.Render(area, buf)

	assert.Contains(t, buf.RowString(0), "▌ Review")
	// Gutter glyph on every input-region row and the blank row.
	for y := 1; y <= 3; y++ {
		assert.Contains(t, buf.RowString(y), "▌", "row %d", y)
	}
	assert.Contains(t, buf.RowString(2), "Type instructions and press Enter")
	assert.Contains(t, buf.RowString(4), "enter submit")
}

func TestPromptView_PlaceholderReplacedByContent(t *testing.T) {
	spy := &submitSpy{}
	v, pane := newTestPrompt(spy)

	typeString(v, pane, "hello")

	area := screen.Rect{X: 0, Y: 0, Width: 60, Height: v.DesiredHeight(60)}
	buf := screen.NewBuffer(area.Width, area.Height)
	v.Render(area, buf)

	assert.Contains(t, buf.RowString(2), "hello")
	assert.NotContains(t, buf.RowString(2), "Type instructions")
}

func TestPromptView_RenderZeroAreaIsNoop(t *testing.T) {
	spy := &submitSpy{}
	v, _ := newTestPrompt(spy)

	buf := screen.NewBuffer(10, 5)
	v.Render(screen.Rect{Width: 0, Height: 5}, buf)
	v.Render(screen.Rect{Width: 10, Height: 0}, buf)

	for y := 0; y < 5; y++ {
		assert.Equal(t, strings.Repeat(" ", 10), buf.RowString(y))
	}
}

func TestPromptView_RenderTinyRects(t *testing.T) {
	spy := &submitSpy{}
	v, pane := newTestPrompt(spy)
	typeString(v, pane, "content")

	// Degenerate sizes must not panic or write out of bounds.
	for _, r := range []screen.Rect{
		{Width: 1, Height: 1},
		{Width: 2, Height: 2},
		{Width: 3, Height: 1},
		{Width: 60, Height: 2},
	} {
		buf := screen.NewBuffer(r.Width, r.Height)
		v.Render(r, buf)
	}
}

func TestPromptView_CursorPos(t *testing.T) {
	spy := &submitSpy{}
	v, pane := newTestPrompt(spy)

	area := screen.Rect{X: 0, Y: 0, Width: 60, Height: v.DesiredHeight(60)}
	buf := screen.NewBuffer(area.Width, area.Height)
	v.Render(area, buf)

	pos, ok := v.CursorPos(area)
	require.True(t, ok)
	assert.Equal(t, screen.Position{X: 2, Y: 2}, pos)

	typeString(v, pane, "abc")
	v.Render(area, buf)
	pos, ok = v.CursorPos(area)
	require.True(t, ok)
	assert.Equal(t, screen.Position{X: 5, Y: 2}, pos)
}

func TestPromptView_CursorPosNoneForDegenerateRects(t *testing.T) {
	spy := &submitSpy{}
	v, _ := newTestPrompt(spy)

	for _, r := range []screen.Rect{
		{Width: 60, Height: 1},
		{Width: 60, Height: 0},
		{Width: 2, Height: 10},
		{Width: 0, Height: 10},
	} {
		_, ok := v.CursorPos(r)
		assert.False(t, ok, "rect %+v", r)
	}
}

func TestPromptView_RenderStaysInsideNarrowRect(t *testing.T) {
	spy := &submitSpy{}
	v, pane := newTestPrompt(spy)
	typeString(v, pane, "a long instruction that wraps")

	area := screen.Rect{X: 5, Y: 0, Width: 10, Height: v.DesiredHeight(10)}
	buf := screen.NewBuffer(40, area.Height)
	for y := 0; y < area.Height; y++ {
		buf.SetString(0, y, strings.Repeat("x", 40), nil)
	}

	v.Render(area, buf)

	// Nothing outside the rect may change, even though the buffer is wider.
	for y := 0; y < area.Height; y++ {
		for x := 0; x < buf.Width(); x++ {
			if x >= area.X && x < area.X+area.Width {
				continue
			}
			assert.Equal(t, "x", string(buf.CellRune(x, y)), "cell (%d,%d)", x, y)
		}
	}
}

func TestPromptView_HintLineClippedToRect(t *testing.T) {
	spy := &submitSpy{}
	v, _ := newTestPrompt(spy)

	// Wide enough for the first hint but not the full line.
	area := screen.Rect{X: 0, Y: 0, Width: 14, Height: v.DesiredHeight(14)}
	buf := screen.NewBuffer(40, area.Height)
	v.Render(area, buf)

	hintRow := buf.RowString(area.Height - 1)
	assert.Contains(t, hintRow, "enter")
	assert.Equal(t, strings.Repeat(" ", 40-area.Width), hintRow[area.Width:])
}
