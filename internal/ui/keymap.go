package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// GlobalKeyMap defines key bindings that work regardless of panel state
type GlobalKeyMap struct {
	Quit       key.Binding
	Help       key.Binding
	NewPanel   key.Binding
	ClosePanel key.Binding
}

// DefaultGlobalKeyMap returns the default global key bindings
func DefaultGlobalKeyMap() GlobalKeyMap {
	return GlobalKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		NewPanel: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "new sign panel"),
		),
		ClosePanel: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "close sign panel"),
		),
	}
}

// ShortHelp returns a short list of global key bindings
func (k GlobalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns the full list of global key bindings
func (k GlobalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NewPanel, k.ClosePanel},
		{k.Help, k.Quit},
	}
}

// PanelKeyMap defines key bindings for the sign message panel
type PanelKeyMap struct {
	Toggle key.Binding
	Submit key.Binding
	Copy   key.Binding
}

// DefaultPanelKeyMap returns the default key bindings for the sign panel
func DefaultPanelKeyMap() PanelKeyMap {
	return PanelKeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "open/close"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "sign"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy signature"),
		),
	}
}

// ShortHelp returns a short list of key bindings
func (k PanelKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Submit, k.Copy}
}

// FullHelp returns the full list of key bindings organized by category
func (k PanelKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle},
		{k.Submit, k.Copy},
	}
}
