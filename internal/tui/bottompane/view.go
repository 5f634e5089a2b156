// ABOUTME: View interface implemented by modal overlays in the bottom pane
// ABOUTME: The pane dispatches events and render calls through this interface
package bottompane

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lauraanormann/codex/internal/tui/screen"
)

// View is a modal overlay hosted by the Pane. The pane owns a heterogeneous
// stack of these and talks to the active one through dynamic dispatch.
//
// A view signals the end of its life by reporting IsComplete; the pane
// removes it after the event that completed it. Completion is terminal: the
// pane never delivers another event to a complete view.
type View interface {
	// HandleKey processes one key event. The pane is passed so a view can
	// push follow-up views.
	HandleKey(pane *Pane, msg tea.KeyMsg)

	// HandlePaste processes pasted text. It returns true when the view
	// consumed the paste, telling the host not to apply default handling.
	HandlePaste(pane *Pane, text string) bool

	// IsComplete reports whether the view is finished and should be removed.
	IsComplete() bool

	// DesiredHeight returns the rows the view needs at the given width. The
	// host calls it before Render to allocate a non-overlapping rect.
	DesiredHeight(width int) int

	// Render draws the view into the given rect of the buffer.
	Render(area screen.Rect, buf *screen.Buffer)

	// CursorPos returns the caret cell for the rect the host will render
	// into, or false when no caret should be shown.
	CursorPos(area screen.Rect) (screen.Position, bool)
}
