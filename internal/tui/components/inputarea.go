// ABOUTME: InputArea component for the always-present chat composer
// ABOUTME: Wraps bubbles/textarea with theme styling and focus management
package components

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lauraanormann/codex/internal/tui/theme"
)

// InputArea is the regular bottom composer shown when no overlay is active.
type InputArea struct {
	width    int
	height   int
	theme    theme.Theme
	textarea textarea.Model
	focused  bool
}

func NewInputArea(width, height int, th theme.Theme) *InputArea {
	ta := textarea.New()
	ta.Placeholder = "Type a message... (Ctrl+S to send)"
	ta.SetWidth(width - 2) // Account for padding
	ta.SetHeight(height)
	ta.ShowLineNumbers = false
	ta.CharLimit = 0

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.BlurredStyle.CursorLine = lipgloss.NewStyle()

	return &InputArea{
		width:    width,
		height:   height,
		theme:    th,
		textarea: ta,
	}
}

func (ia *InputArea) SetValue(value string) {
	ia.textarea.SetValue(value)
}

func (ia *InputArea) GetValue() string {
	return ia.textarea.Value()
}

func (ia *InputArea) Clear() {
	ia.textarea.Reset()
}

func (ia *InputArea) Focus() {
	ia.focused = true
	ia.textarea.Focus()
}

func (ia *InputArea) Blur() {
	ia.focused = false
	ia.textarea.Blur()
}

func (ia *InputArea) Focused() bool {
	return ia.focused
}

func (ia *InputArea) SetSize(width, height int) {
	ia.width = width
	ia.height = height
	ia.textarea.SetWidth(width - 2)
	ia.textarea.SetHeight(height)
}

func (ia *InputArea) Init() tea.Cmd {
	return textarea.Blink
}

func (ia *InputArea) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	ia.textarea, cmd = ia.textarea.Update(msg)
	return cmd
}

func (ia *InputArea) View() string {
	return ia.theme.InputAreaStyle().
		Width(ia.width).
		Height(ia.height).
		Render(ia.textarea.View())
}
