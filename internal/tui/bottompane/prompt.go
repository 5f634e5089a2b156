// ABOUTME: PromptView modal overlay collecting multi-line free-form instructions
// ABOUTME: Esc cancels, plain enter submits trimmed text, alt+enter inserts a newline
package bottompane

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lauraanormann/codex/internal/tui/screen"
	"github.com/lauraanormann/codex/internal/tui/textarea"
	"github.com/lauraanormann/codex/internal/tui/theme"
)

const (
	gutterGlyph = "▌ "
	gutterWidth = 2

	promptPlaceholder = "Type instructions and press Enter"

	// Editor rows are clamped to this range; with the one-row top spacer the
	// whole input region never exceeds maxInputRegionHeight.
	minEditorRows        = 1
	maxEditorRows        = 8
	maxInputRegionHeight = 9
)

// PromptView is a minimal multi-line text input overlay. On plain enter it
// hands the trimmed text to onSubmit and completes; esc completes without
// submitting. The view is single-use: once complete it is never interacted
// with again.
type PromptView struct {
	title    string
	onSubmit func(string)
	theme    theme.Theme

	editor   *textarea.Model
	state    textarea.RenderState
	complete bool
}

func NewPromptView(title string, th theme.Theme, onSubmit func(string)) *PromptView {
	return &PromptView{
		title:    title,
		onSubmit: onSubmit,
		theme:    th,
		editor:   textarea.New(),
	}
}

// Text returns the in-progress editor content. Intended for tests.
func (p *PromptView) Text() string {
	return p.editor.Text()
}

func (p *PromptView) HandleKey(_ *Pane, msg tea.KeyMsg) {
	switch {
	case msg.Type == tea.KeyEsc:
		p.complete = true
	case msg.Type == tea.KeyEnter && !msg.Alt:
		text := strings.TrimSpace(p.editor.Text())
		if text != "" && p.onSubmit != nil {
			submit := p.onSubmit
			p.onSubmit = nil
			submit(text)
		}
		p.complete = true
	default:
		// Modified enter falls through here and becomes a literal newline.
		p.editor.Input(msg)
	}
}

func (p *PromptView) HandlePaste(_ *Pane, text string) bool {
	if text == "" {
		return false
	}
	p.editor.InsertString(text)
	return true
}

func (p *PromptView) IsComplete() bool {
	return p.complete
}

// inputHeight is the gutter-prefixed input region height at the given total
// width: the editor's wrapped height clamped to [1,8], plus the one-row top
// spacer, capped at 9.
func (p *PromptView) inputHeight(width int) int {
	usable := screen.Clamp0(width, gutterWidth)
	rows := p.editor.DesiredHeight(usable)
	if rows < minEditorRows {
		rows = minEditorRows
	}
	if rows > maxEditorRows {
		rows = maxEditorRows
	}
	if rows+1 > maxInputRegionHeight {
		return maxInputRegionHeight
	}
	return rows + 1
}

// DesiredHeight is one title row, the input region, a blank spacer row, and
// the hint row.
func (p *PromptView) DesiredHeight(width int) int {
	return 1 + p.inputHeight(width) + 2
}

func (p *PromptView) Render(area screen.Rect, buf *screen.Buffer) {
	if area.Empty() {
		return
	}
	gutter := p.theme.GutterStyle()
	titleStyle := p.theme.OverlayTitleStyle()

	inputHeight := p.inputHeight(area.Width)

	// Title row.
	buf.SetStringN(area.X, area.Y, gutterGlyph, area.Width, &gutter)
	buf.SetStringN(area.X+gutterWidth, area.Y, p.title, screen.Clamp0(area.Width, gutterWidth), &titleStyle)

	// Input region: gutter glyph on every row, then a blank spacer row and
	// the editor below it.
	inputArea := area.Inset(0, 1).WithHeight(inputHeight)
	if inputArea.Width >= gutterWidth {
		for row := 0; row < inputArea.Height; row++ {
			buf.SetStringN(inputArea.X, inputArea.Y+row, gutterGlyph, inputArea.Width, &gutter)
		}

		editorHeight := screen.Clamp0(inputArea.Height, 1)
		if editorHeight > 0 {
			if inputArea.Width > gutterWidth {
				buf.ClearArea(screen.Rect{
					X:      inputArea.X + gutterWidth,
					Y:      inputArea.Y,
					Width:  inputArea.Width - gutterWidth,
					Height: 1,
				})
			}
			editorArea := screen.Rect{
				X:      inputArea.X + gutterWidth,
				Y:      inputArea.Y + 1,
				Width:  screen.Clamp0(inputArea.Width, gutterWidth),
				Height: editorHeight,
			}
			p.editor.Render(editorArea, buf, &p.state)
			if p.editor.IsEmpty() {
				placeholder := p.theme.PlaceholderStyle()
				buf.SetStringN(editorArea.X, editorArea.Y, promptPlaceholder, editorArea.Width, &placeholder)
			}
		}
	}

	// Blank prefixed row and hint row below the input region, each only if it
	// still fits inside the rect.
	blank := area.Row(1 + inputHeight)
	if !blank.Empty() {
		buf.ClearArea(blank)
		buf.SetStringN(blank.X, blank.Y, gutterGlyph, blank.Width, &gutter)
	}
	hint := area.Row(2 + inputHeight)
	if !hint.Empty() {
		renderHintLine(hint, buf, p.theme)
	}
}

func (p *PromptView) CursorPos(area screen.Rect) (screen.Position, bool) {
	if area.Height < 2 || area.Width <= gutterWidth {
		return screen.Position{}, false
	}
	editorHeight := screen.Clamp0(p.inputHeight(area.Width), 1)
	if editorHeight == 0 {
		return screen.Position{}, false
	}
	editorArea := screen.Rect{
		X:      area.X + gutterWidth,
		Y:      area.Y + 2,
		Width:  screen.Clamp0(area.Width, gutterWidth),
		Height: editorHeight,
	}
	return p.editor.CursorPosWithState(editorArea, &p.state)
}
