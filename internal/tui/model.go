// ABOUTME: Core Bubbletea model and state management for the codex TUI
// ABOUTME: Implements the Model interface with Init, Update, and View methods
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lauraanormann/codex/internal/client"
	"github.com/lauraanormann/codex/internal/config"
	"github.com/lauraanormann/codex/internal/history"
	"github.com/lauraanormann/codex/internal/tui/bottompane"
	"github.com/lauraanormann/codex/internal/tui/components"
	"github.com/lauraanormann/codex/internal/tui/theme"
)

// FocusArea represents which component currently has focus
type FocusArea int

const (
	FocusChatView FocusArea = iota
	FocusInputArea
)

// submitResult carries a prompt submission out of the overlay callback so
// Update can act on it after the event is routed.
type submitResult struct {
	title string
	text  string
	ok    bool
}

// quitResult carries the quit confirmation decision the same way.
type quitResult struct {
	confirmed bool
}

type Model struct {
	config *config.Config
	theme  theme.Theme
	width  int
	height int

	// Components
	chatView    *components.ChatView
	inputArea   *components.InputArea
	statusBar   *components.StatusBar
	helpOverlay *components.HelpOverlay
	pane        *bottompane.Pane

	// Data managers
	relay    *client.Relay
	messages *client.MessageStore
	history  *history.Store

	// UI state
	focusedArea   FocusArea
	pendingSubmit *submitResult
	pendingQuit   *quitResult
}

func NewModel(cfg *config.Config, store *history.Store) Model {
	th := theme.GetTheme(cfg.UI.Theme, nil)

	// Initial dimensions are placeholders until the first WindowSizeMsg.
	chatView := components.NewChatView(80, 20, th)
	inputArea := components.NewInputArea(80, cfg.Input.ComposerHeight, th)
	statusBar := components.NewStatusBar(80, th)
	helpOverlay := components.NewHelpOverlay(80, 24, th)
	pane := bottompane.NewPane()

	inputArea.Focus()

	return Model{
		config:        cfg,
		theme:         th,
		chatView:      chatView,
		inputArea:     inputArea,
		statusBar:     statusBar,
		helpOverlay:   helpOverlay,
		pane:          pane,
		relay:         client.NewRelay(cfg.Relay.URL),
		messages:      client.NewMessageStore(cfg.UI.ChatHistoryLimit),
		history:       store,
		focusedArea:   FocusInputArea,
		pendingSubmit: &submitResult{},
		pendingQuit:   &quitResult{},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.inputArea.Init(), m.connectRelay())
}

func (m Model) connectRelay() tea.Cmd {
	relay := m.relay
	return func() tea.Msg {
		if err := relay.Connect(context.Background()); err != nil {
			return RelayErrorMsg{Err: err}
		}
		return RelayConnectedMsg{}
	}
}

func (m Model) waitForRelayMessage() tea.Cmd {
	relay := m.relay
	return func() tea.Msg {
		select {
		case data, ok := <-relay.Incoming():
			if !ok {
				return RelayDisconnectedMsg{}
			}
			return RelayMessageMsg{Data: data}
		case err := <-relay.Errors():
			return RelayErrorMsg{Err: err}
		}
	}
}
