// ABOUTME: HelpOverlay component for displaying keyboard shortcuts
// ABOUTME: Shows a centered modal dialog listing the available bindings
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lauraanormann/codex/internal/tui/theme"
)

type Shortcut struct {
	key         string
	description string
}

type HelpOverlay struct {
	width     int
	height    int
	theme     theme.Theme
	visible   bool
	shortcuts []Shortcut
}

func NewHelpOverlay(width, height int, t theme.Theme) *HelpOverlay {
	return &HelpOverlay{
		width:  width,
		height: height,
		theme:  t,
		shortcuts: []Shortcut{
			{"Ctrl+R", "Compose review instructions"},
			{"Ctrl+S", "Send message"},
			{"Tab", "Switch focus between areas"},
			{"Enter", "Submit overlay prompt"},
			{"Alt+Enter", "Insert newline in a prompt"},
			{"Esc", "Cancel overlay"},
			{"Ctrl+C", "Quit"},
			{"?", "Toggle help"},
		},
	}
}

func (h *HelpOverlay) Show() { h.visible = true }

func (h *HelpOverlay) Hide() { h.visible = false }

func (h *HelpOverlay) IsVisible() bool { return h.visible }

func (h *HelpOverlay) Toggle() { h.visible = !h.visible }

func (h *HelpOverlay) SetSize(width, height int) {
	h.width = width
	h.height = height
}

func (h *HelpOverlay) View() string {
	if !h.visible {
		return ""
	}

	var content strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(h.theme.Primary).
		Align(lipgloss.Center)

	content.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	content.WriteString("\n\n")

	maxKeyLen := 0
	for _, sc := range h.shortcuts {
		if len(sc.key) > maxKeyLen {
			maxKeyLen = len(sc.key)
		}
	}

	keyStyle := lipgloss.NewStyle().
		Foreground(h.theme.Success).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(h.theme.Foreground)

	for _, sc := range h.shortcuts {
		paddedKey := sc.key + strings.Repeat(" ", maxKeyLen-len(sc.key))
		content.WriteString(fmt.Sprintf("  %s  %s\n",
			keyStyle.Render(paddedKey),
			descStyle.Render(sc.description)))
	}

	modalWidth := 50
	if modalWidth > h.width-4 {
		modalWidth = h.width - 4
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(h.theme.Primary).
		Background(h.theme.Background).
		Padding(1, 2).
		Width(modalWidth)

	modal := boxStyle.Render(content.String())

	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, modal)
}
