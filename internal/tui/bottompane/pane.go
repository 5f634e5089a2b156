// ABOUTME: Pane owning the stack of bottom overlay views
// ABOUTME: Routes key and paste events to the active view and prunes complete ones
package bottompane

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lauraanormann/codex/internal/tui/screen"
)

// Pane hosts zero or more overlay views, newest on top. Only the top view
// receives events; when it completes it is popped and the one below (if any)
// becomes active again.
type Pane struct {
	views []View
}

func NewPane() *Pane {
	return &Pane{}
}

// Push makes v the active view.
func (p *Pane) Push(v View) {
	p.views = append(p.views, v)
}

// HasActiveView reports whether an overlay is currently shown.
func (p *Pane) HasActiveView() bool {
	return len(p.views) > 0
}

func (p *Pane) active() View {
	if len(p.views) == 0 {
		return nil
	}
	return p.views[len(p.views)-1]
}

func (p *Pane) prune() {
	for len(p.views) > 0 && p.views[len(p.views)-1].IsComplete() {
		p.views = p.views[:len(p.views)-1]
	}
}

// HandleKey forwards the key to the active view and removes it if the event
// completed it.
func (p *Pane) HandleKey(msg tea.KeyMsg) {
	v := p.active()
	if v == nil {
		return
	}
	v.HandleKey(p, msg)
	p.prune()
}

// HandlePaste forwards pasted text to the active view. It returns whether
// the paste was consumed.
func (p *Pane) HandlePaste(text string) bool {
	v := p.active()
	if v == nil {
		return false
	}
	consumed := v.HandlePaste(p, text)
	p.prune()
	return consumed
}

// DesiredHeight returns the rows the active view wants, or zero when no
// overlay is shown.
func (p *Pane) DesiredHeight(width int) int {
	v := p.active()
	if v == nil {
		return 0
	}
	return v.DesiredHeight(width)
}

// Render draws the active view into the given rect.
func (p *Pane) Render(area screen.Rect, buf *screen.Buffer) {
	v := p.active()
	if v == nil {
		return
	}
	v.Render(area, buf)
}

// CursorPos reports the active view's caret for the same rect Render was
// given, or false when no caret is visible.
func (p *Pane) CursorPos(area screen.Rect) (screen.Position, bool) {
	v := p.active()
	if v == nil {
		return screen.Position{}, false
	}
	return v.CursorPos(area)
}
