// ABOUTME: Tests for the Pane overlay stack
// ABOUTME: Covers routing to the top view, pruning, and empty-stack behavior
package bottompane

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lauraanormann/codex/internal/tui/screen"
	"github.com/lauraanormann/codex/internal/tui/theme"
)

// fakeView records events and completes on demand.
type fakeView struct {
	keys     int
	pastes   []string
	consume  bool
	complete bool
	height   int
}

func (f *fakeView) HandleKey(_ *Pane, _ tea.KeyMsg) { f.keys++ }
func (f *fakeView) HandlePaste(_ *Pane, text string) bool {
	f.pastes = append(f.pastes, text)
	return f.consume
}
func (f *fakeView) IsComplete() bool                       { return f.complete }
func (f *fakeView) DesiredHeight(_ int) int                { return f.height }
func (f *fakeView) Render(_ screen.Rect, _ *screen.Buffer) {}
func (f *fakeView) CursorPos(_ screen.Rect) (screen.Position, bool) {
	return screen.Position{}, false
}

func TestPane_EmptyStack(t *testing.T) {
	pane := NewPane()

	assert.False(t, pane.HasActiveView())
	assert.Equal(t, 0, pane.DesiredHeight(80))
	assert.False(t, pane.HandlePaste("text"))
	pane.HandleKey(tea.KeyMsg{Type: tea.KeyEnter})

	_, ok := pane.CursorPos(screen.Rect{Width: 80, Height: 5})
	assert.False(t, ok)
}

func TestPane_TopViewReceivesEvents(t *testing.T) {
	pane := NewPane()
	bottom := &fakeView{height: 2}
	top := &fakeView{height: 3, consume: true}
	pane.Push(bottom)
	pane.Push(top)

	pane.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.True(t, pane.HandlePaste("p"))

	assert.Equal(t, 1, top.keys)
	assert.Equal(t, []string{"p"}, top.pastes)
	assert.Zero(t, bottom.keys)
	assert.Empty(t, bottom.pastes)
	assert.Equal(t, 3, pane.DesiredHeight(80))
}

func TestPane_CompletedViewIsRemoved(t *testing.T) {
	pane := NewPane()
	bottom := &fakeView{height: 2}
	top := &fakeView{height: 3}
	pane.Push(bottom)
	pane.Push(top)

	top.complete = true
	pane.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})

	require.True(t, pane.HasActiveView())
	assert.Equal(t, 2, pane.DesiredHeight(80))

	pane.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	assert.Equal(t, 1, bottom.keys)
}

func TestPane_PrunesRunOfCompleteViews(t *testing.T) {
	pane := NewPane()
	a := &fakeView{complete: true}
	b := &fakeView{}
	pane.Push(a)
	pane.Push(b)

	b.complete = true
	pane.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, pane.HasActiveView())
}

func TestPane_PromptCompletionRestoresEmptyPane(t *testing.T) {
	pane := NewPane()
	pane.Push(NewPromptView("Review", theme.DefaultTheme, nil))
	require.True(t, pane.HasActiveView())

	pane.HandleKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, pane.HasActiveView())
}
