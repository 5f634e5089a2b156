// ABOUTME: View rendering for the TUI (converts model state to terminal output)
// ABOUTME: Implements the Elm architecture View function
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lauraanormann/codex/internal/tui/screen"
)

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.helpOverlay.IsVisible() {
		return m.helpOverlay.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Top,
		m.chatView.View(),
		m.bottomRegionView(),
		m.statusBar.View(),
	)
}

// bottomRegionView renders either the active overlay (through the cell
// buffer protocol) or the regular composer.
func (m Model) bottomRegionView() string {
	if !m.pane.HasActiveView() {
		return m.inputArea.View()
	}

	area := screen.Rect{
		X:      0,
		Y:      0,
		Width:  m.width,
		Height: m.pane.DesiredHeight(m.width),
	}
	buf := screen.NewBuffer(area.Width, area.Height)
	m.pane.Render(area, buf)
	if pos, ok := m.pane.CursorPos(area); ok {
		buf.ApplyCursor(pos)
	}
	return buf.String()
}
