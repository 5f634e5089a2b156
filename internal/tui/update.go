// ABOUTME: Update logic for the TUI (handles all messages and state transitions)
// ABOUTME: Implements the Elm architecture Update function
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lauraanormann/codex/internal/client"
	"github.com/lauraanormann/codex/internal/history"
	"github.com/lauraanormann/codex/internal/logger"
	"github.com/lauraanormann/codex/internal/tui/bottompane"
)

// Messages for relay communication
type RelayMessageMsg struct {
	Data []byte
}

type RelayErrorMsg struct {
	Err error
}

type RelayConnectedMsg struct{}

type RelayDisconnectedMsg struct{}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateComponentSizes()
		return m, nil

	case tea.KeyMsg:
		// Help overlay gets priority
		if m.helpOverlay.IsVisible() {
			if msg.String() == "?" || msg.String() == "esc" {
				m.helpOverlay.Toggle()
			}
			return m, nil
		}

		// An active bottom-pane overlay captures all key and paste input.
		if m.pane.HasActiveView() {
			if msg.Paste {
				m.pane.HandlePaste(string(msg.Runes))
			} else {
				m.pane.HandleKey(msg)
			}
			return m.afterOverlayEvent()
		}

		// Global shortcuts
		switch msg.String() {
		case "ctrl+c":
			m.openQuitConfirm()
			return m, nil

		case "q":
			// Only a shortcut while the chat view has focus; in the
			// composer it is just a letter.
			if m.focusedArea == FocusChatView {
				m.openQuitConfirm()
				return m, nil
			}

		case "ctrl+r":
			m.openPromptOverlay()
			return m, nil

		case "ctrl+s":
			return m.sendComposerMessage()

		case "?":
			m.helpOverlay.Toggle()
			return m, nil

		case "tab":
			m.cycleFocus()
			return m, nil
		}

	case RelayConnectedMsg:
		logger.Debug("relay connected")
		m.statusBar.SetConnectionStatus("connected")
		return m, m.waitForRelayMessage()

	case RelayMessageMsg:
		m.messages.Add(&client.Message{
			Type:      client.MessageTypeAgent,
			Content:   string(msg.Data),
			Timestamp: time.Now(),
		})
		m.chatView.SetMessages(m.messages.All())
		return m, m.waitForRelayMessage()

	case RelayErrorMsg:
		logger.Error("relay error: %v", msg.Err)
		m.statusBar.SetConnectionStatus("disconnected")
		m.messages.Add(&client.Message{
			Type:      client.MessageTypeError,
			Content:   msg.Err.Error(),
			Timestamp: time.Now(),
		})
		m.chatView.SetMessages(m.messages.All())
		return m, nil

	case RelayDisconnectedMsg:
		m.statusBar.SetConnectionStatus("disconnected")
		return m, nil
	}

	// Route remaining messages to the focused component.
	switch m.focusedArea {
	case FocusChatView:
		cmd = m.chatView.Update(msg)
		cmds = append(cmds, cmd)
	case FocusInputArea:
		cmd = m.inputArea.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// openPromptOverlay pushes the custom prompt view onto the bottom pane.
func (m *Model) openPromptOverlay() {
	res := m.pendingSubmit
	title := "Review instructions"
	m.pane.Push(bottompane.NewPromptView(title, m.theme, func(text string) {
		res.title = title
		res.text = text
		res.ok = true
	}))
}

func (m *Model) openQuitConfirm() {
	res := m.pendingQuit
	m.pane.Push(bottompane.NewConfirmView("Quit codex?", m.theme, func(yes bool) {
		res.confirmed = yes
	}))
}

// afterOverlayEvent applies any callback results an overlay produced while
// handling the event it just consumed.
func (m Model) afterOverlayEvent() (tea.Model, tea.Cmd) {
	if m.pendingQuit.confirmed {
		if m.relay != nil {
			_ = m.relay.Close()
		}
		return m, tea.Quit
	}
	if !m.pendingSubmit.ok {
		return m, nil
	}

	title, text := m.pendingSubmit.title, m.pendingSubmit.text
	*m.pendingSubmit = submitResult{}

	id := ""
	if m.history != nil {
		recorded, err := m.history.Record(history.Prompt{Title: title, Text: text})
		if err != nil {
			logger.Warn("record prompt: %v", err)
		} else {
			id = recorded
		}
	}

	if m.relay.IsConnected() {
		err := m.relay.SendInstruction(client.Instruction{
			ID:    id,
			Kind:  "review",
			Title: title,
			Text:  text,
		})
		if err != nil {
			logger.Warn("send instruction: %v", err)
		}
	}

	m.messages.Add(&client.Message{
		Type:      client.MessageTypeUser,
		Content:   text,
		Timestamp: time.Now(),
	})
	m.chatView.SetMessages(m.messages.All())
	return m, nil
}

func (m Model) sendComposerMessage() (tea.Model, tea.Cmd) {
	text := m.inputArea.GetValue()
	if text == "" {
		return m, nil
	}
	m.inputArea.Clear()

	if m.relay.IsConnected() {
		err := m.relay.SendInstruction(client.Instruction{Kind: "chat", Text: text})
		if err != nil {
			logger.Warn("send message: %v", err)
		}
	}

	m.messages.Add(&client.Message{
		Type:      client.MessageTypeUser,
		Content:   text,
		Timestamp: time.Now(),
	})
	m.chatView.SetMessages(m.messages.All())
	return m, nil
}

// updateComponentSizes recalculates component sizes from the window size.
func (m *Model) updateComponentSizes() {
	if m.width == 0 || m.height == 0 {
		return
	}

	statusBarHeight := 1
	available := m.height - statusBarHeight

	inputHeight := m.config.Input.ComposerHeight
	if inputHeight > available/3 {
		inputHeight = available / 3
	}
	if inputHeight < 1 {
		inputHeight = 1
	}
	chatHeight := available - inputHeight

	m.chatView.SetSize(m.width, chatHeight)
	m.inputArea.SetSize(m.width, inputHeight)
	m.statusBar.SetSize(m.width)
	m.helpOverlay.SetSize(m.width, m.height)
}

// cycleFocus moves focus to the next component
func (m *Model) cycleFocus() {
	switch m.focusedArea {
	case FocusInputArea:
		m.inputArea.Blur()
		m.focusedArea = FocusChatView
	case FocusChatView:
		m.focusedArea = FocusInputArea
		m.inputArea.Focus()
	}
}
