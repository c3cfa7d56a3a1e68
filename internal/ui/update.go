package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.toasts.SetWidth(min(60, m.width/2))
		m.helpModel.Width = m.width
		if m.panel != nil {
			m.panel.SetWidth(m.panelWidth())
		}
		return m, nil

	case NotificationMsg, toastExpiredMsg:
		m.toasts, cmd = m.toasts.Update(msg)
		return m, cmd

	case SignResultMsg:
		// The panel that sent this request may be gone
		if m.panel == nil || m.panel.ID() != msg.PanelID {
			m.logger.Debug("Dropping signing result for unmounted panel", "panel", msg.PanelID)
			return m, nil
		}
		m.panel, cmd = m.panel.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	if m.panel != nil {
		m.panel, cmd = m.panel.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Global keys - highest priority
	if key.Matches(msg, m.globalKeys.Quit) {
		return m, tea.Quit
	}

	// Help overlay swallows keys until dismissed
	if m.showHelp {
		if key.Matches(msg, m.globalKeys.Help) || msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.globalKeys.NewPanel):
		if !m.isAdmin() {
			return m, m.toasts.Notify(NotifyInfo, AdminRequiredText)
		}
		m.MountPanel()
		return m, nil

	case key.Matches(msg, m.globalKeys.ClosePanel):
		m.UnmountPanel()
		return m, nil

	case key.Matches(msg, m.globalKeys.Help) && !m.inputFocused():
		m.showHelp = true
		return m, nil
	}

	if m.panel != nil {
		m.panel, cmd = m.panel.Update(msg)
		return m, cmd
	}

	return m, nil
}
