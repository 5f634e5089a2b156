// ABOUTME: StatusBar component for connection status and key shortcuts
// ABOUTME: Shows relay state with a colored indicator, shortcuts right-aligned
package components

import (
	"fmt"
	"strings"

	"github.com/lauraanormann/codex/internal/tui/theme"
)

type StatusBar struct {
	width            int
	theme            theme.Theme
	connectionStatus string
}

func NewStatusBar(width int, t theme.Theme) *StatusBar {
	return &StatusBar{
		width:            width,
		theme:            t,
		connectionStatus: "disconnected",
	}
}

func (s *StatusBar) SetConnectionStatus(status string) {
	s.connectionStatus = status
}

func (s *StatusBar) SetSize(width int) {
	s.width = width
}

func (s *StatusBar) View() string {
	var statusIcon, statusText string
	switch s.connectionStatus {
	case "connected":
		statusIcon = "🟢"
		statusText = "Connected"
	case "connecting":
		statusIcon = "🟡"
		statusText = "Connecting"
	default:
		statusIcon = "🔴"
		statusText = "Disconnected"
	}

	left := fmt.Sprintf("[%s %s]", statusIcon, statusText)
	shortcuts := "Ctrl+R: Instructions, ?: Help, Ctrl+C: Quit"

	padding := s.width - len(left) - len(shortcuts) - 7
	if padding < 1 {
		padding = 1
	}

	content := fmt.Sprintf("%s%s| %s", left, strings.Repeat(" ", padding), shortcuts)

	return s.theme.StatusBarStyle().
		Width(s.width - 2).
		Render(content)
}
