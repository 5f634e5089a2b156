// ABOUTME: Standard key-hint line shown under bottom-pane overlays
// ABOUTME: Builds the hints from bubbles/key bindings with help text
package bottompane

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/lauraanormann/codex/internal/tui/screen"
	"github.com/lauraanormann/codex/internal/tui/theme"
)

var overlayHints = []key.Binding{
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	key.NewBinding(key.WithKeys("alt+enter", "ctrl+j"), key.WithHelp("alt+enter", "newline")),
	key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

// renderHintLine draws the standard hint row into a 1-high rect.
func renderHintLine(area screen.Rect, buf *screen.Buffer, th theme.Theme) {
	if area.Empty() {
		return
	}
	keyStyle := th.HintKeyStyle()
	descStyle := th.HintDescStyle()
	right := area.X + area.Width
	x := area.X
	for i, b := range overlayHints {
		h := b.Help()
		if i > 0 {
			x += 3
		}
		if x >= right {
			return
		}
		buf.SetStringN(x, area.Y, h.Key, right-x, &keyStyle)
		x += screen.StringWidth(h.Key)
		if x >= right {
			return
		}
		buf.SetStringN(x, area.Y, " "+h.Desc, right-x, &descStyle)
		x += screen.StringWidth(h.Desc) + 1
	}
}
