package ui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/miles-w-3/signpad/internal/account"
	"github.com/miles-w-3/signpad/internal/clipboard"
	"github.com/miles-w-3/signpad/internal/signing"
	"github.com/miles-w-3/signpad/internal/theme"
)

// AdminRequiredText explains why no panel is shown for regular accounts
const AdminRequiredText = "Signing messages requires an admin account"

// Options configures the root model
type Options struct {
	Endpoint      string
	Signer        signing.Signer
	Account       account.Provider
	Clipboard     clipboard.Writer
	Errors        *ErrorTracker
	Logger        *slog.Logger
	ToastDuration time.Duration
}

// Model is the root UI state. It mounts at most one sign panel.
type Model struct {
	endpoint  string
	signer    signing.Signer
	account   account.Provider
	clipboard clipboard.Writer
	errors    *ErrorTracker
	logger    *slog.Logger

	panel  *Panel
	toasts *ToastStack

	globalKeys GlobalKeyMap
	helpModel  help.Model
	showHelp   bool

	width  int
	height int
}

// NewModel creates the root model. A panel is mounted right away when the
// account is allowed to sign.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	toastDuration := opts.ToastDuration
	if toastDuration <= 0 {
		toastDuration = 3 * time.Second
	}

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.SmallLink)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.ChartLink)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.SmallLink).Bold(true)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.ChartLink)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.CardBorder)

	m := Model{
		endpoint:   opts.Endpoint,
		signer:     opts.Signer,
		account:    opts.Account,
		clipboard:  opts.Clipboard,
		errors:     opts.Errors,
		logger:     logger,
		toasts:     NewToastStack(toastDuration),
		globalKeys: DefaultGlobalKeyMap(),
		helpModel:  h,
		width:      80,
		height:     24,
	}

	if m.isAdmin() {
		m.MountPanel()
	}

	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Panel returns the mounted panel, or nil
func (m Model) Panel() *Panel {
	return m.panel
}

// Toasts returns the notification stack
func (m Model) Toasts() *ToastStack {
	return m.toasts
}

// MountPanel replaces any mounted panel with a fresh one
func (m *Model) MountPanel() {
	m.panel = NewPanel(PanelDeps{
		Signer:    m.signer,
		Auth:      m.account,
		Notifier:  m.toasts,
		Clipboard: m.clipboard,
		Logger:    m.logger,
	})
	m.panel.SetWidth(m.panelWidth())
	m.logger.Debug("Mounted sign panel", "panel", m.panel.ID())
}

// UnmountPanel discards the mounted panel and all of its state
func (m *Model) UnmountPanel() {
	if m.panel == nil {
		return
	}
	m.logger.Debug("Unmounted sign panel", "panel", m.panel.ID())
	m.panel = nil
}

func (m Model) isAdmin() bool {
	return m.account != nil && m.account.Account().Admin
}

// inputFocused reports whether typed characters belong to the draft
func (m Model) inputFocused() bool {
	return m.panel != nil && m.panel.Expanded()
}

func (m Model) panelWidth() int {
	return max(20, min(100, m.width-4))
}

// helpGroups collects the key bindings shown in the help overlay
func (m Model) helpGroups() [][]key.Binding {
	groups := DefaultPanelKeyMap().FullHelp()
	return append(groups, m.globalKeys.FullHelp()...)
}
