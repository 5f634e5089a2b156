// ABOUTME: ConfirmView yes/no overlay for destructive or final actions
// ABOUTME: y/enter decides yes, n/esc decides no; completes after one answer
package bottompane

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lauraanormann/codex/internal/tui/screen"
	"github.com/lauraanormann/codex/internal/tui/theme"
)

// ConfirmView asks a single yes/no question. The decision callback runs at
// most once; any answer completes the view.
type ConfirmView struct {
	question   string
	onDecision func(bool)
	theme      theme.Theme
	complete   bool
}

func NewConfirmView(question string, th theme.Theme, onDecision func(bool)) *ConfirmView {
	return &ConfirmView{question: question, onDecision: onDecision, theme: th}
}

func (c *ConfirmView) decide(yes bool) {
	if c.onDecision != nil {
		decision := c.onDecision
		c.onDecision = nil
		decision(yes)
	}
	c.complete = true
}

func (c *ConfirmView) HandleKey(_ *Pane, msg tea.KeyMsg) {
	switch {
	case msg.Type == tea.KeyEnter && !msg.Alt:
		c.decide(true)
	case msg.Type == tea.KeyEsc:
		c.decide(false)
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		switch msg.Runes[0] {
		case 'y', 'Y':
			c.decide(true)
		case 'n', 'N':
			c.decide(false)
		}
	}
}

func (c *ConfirmView) HandlePaste(_ *Pane, _ string) bool {
	return false
}

func (c *ConfirmView) IsComplete() bool {
	return c.complete
}

func (c *ConfirmView) DesiredHeight(_ int) int {
	return 2
}

func (c *ConfirmView) Render(area screen.Rect, buf *screen.Buffer) {
	if area.Empty() {
		return
	}
	gutter := c.theme.GutterStyle()
	title := c.theme.OverlayTitleStyle()
	dim := c.theme.HintDescStyle()
	buf.SetStringN(area.X, area.Y, gutterGlyph, area.Width, &gutter)
	buf.SetStringN(area.X+gutterWidth, area.Y, c.question, screen.Clamp0(area.Width, gutterWidth), &title)
	if hint := area.Row(1); !hint.Empty() {
		buf.SetStringN(hint.X, hint.Y, gutterGlyph, hint.Width, &gutter)
		buf.SetStringN(hint.X+gutterWidth, hint.Y, "y/enter yes   n/esc no", screen.Clamp0(hint.Width, gutterWidth), &dim)
	}
}

func (c *ConfirmView) CursorPos(_ screen.Rect) (screen.Position, bool) {
	return screen.Position{}, false
}
