package ui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/miles-w-3/signpad/internal/account"
	"github.com/miles-w-3/signpad/internal/clipboard"
	"github.com/miles-w-3/signpad/internal/signing"
	"github.com/miles-w-3/signpad/internal/util"
)

// RequestStatusKind enumerates the lifecycle of a signing request
type RequestStatusKind int

const (
	RequestIdle RequestStatusKind = iota
	RequestPending
	RequestSucceeded
	RequestFailed
)

func (k RequestStatusKind) String() string {
	switch k {
	case RequestPending:
		return "pending"
	case RequestSucceeded:
		return "succeeded"
	case RequestFailed:
		return "failed"
	default:
		return "idle"
	}
}

// RequestStatus is the state of the panel's most recent signing request.
// Signature is set only for RequestSucceeded and Err only for RequestFailed.
type RequestStatus struct {
	Kind      RequestStatusKind
	Signature string
	Err       error
}

// Pending reports whether a request is in flight
func (s RequestStatus) Pending() bool {
	return s.Kind == RequestPending
}

// SignResultMsg reports the completion of a signing request
type SignResultMsg struct {
	PanelID   string
	Seq       int
	Signature string
	Err       error
}

// PanelDeps are the collaborators a panel needs
type PanelDeps struct {
	Signer    signing.Signer
	Auth      account.Provider
	Notifier  Notifier
	Clipboard clipboard.Writer
	Logger    *slog.Logger
}

// CopiedText is the notification shown after a successful copy
const CopiedText = "Signature Copied"

// Panel lets the user type a message, have it signed remotely and copy the
// resulting signature. Each panel owns its draft and result exclusively.
type Panel struct {
	id     string
	deps   PanelDeps
	keys   PanelKeyMap
	logger *slog.Logger

	input   textinput.Model
	spinner spinner.Model

	expanded  bool
	signature string
	status    RequestStatus
	seq       int

	width int
}

// NewPanel creates a collapsed panel with an empty draft
func NewPanel(deps PanelDeps) *Panel {
	input := textinput.New()
	input.Placeholder = "Message to sign..."
	input.Prompt = ""
	input.CharLimit = 0

	s := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(pendingStyle))

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	id := uuid.NewString()

	return &Panel{
		id:      id,
		deps:    deps,
		keys:    DefaultPanelKeyMap(),
		logger:  logger.With("panel", id),
		input:   input,
		spinner: s,
		width:   60,
	}
}

// ID returns the panel's unique id
func (p *Panel) ID() string {
	return p.id
}

// Draft returns the message being edited
func (p *Panel) Draft() string {
	return p.input.Value()
}

// Signature returns the last signature received, or ""
func (p *Panel) Signature() string {
	return p.signature
}

// Expanded reports whether the input/output area is visible
func (p *Panel) Expanded() bool {
	return p.expanded
}

// Status returns the state of the latest request
func (p *Panel) Status() RequestStatus {
	return p.status
}

// Keys returns the panel key bindings
func (p *Panel) Keys() PanelKeyMap {
	return p.keys
}

// CanSubmit reports whether the sign control is shown and enabled
func (p *Panel) CanSubmit() bool {
	return p.expanded && p.Draft() != "" && !p.status.Pending()
}

// CanCopy reports whether the copy control is available
func (p *Panel) CanCopy() bool {
	return p.signature != ""
}

// CanToggle reports whether the visibility control is enabled
func (p *Panel) CanToggle() bool {
	return !p.status.Pending()
}

// SetWidth sets the render width
func (p *Panel) SetWidth(width int) {
	p.width = width
	p.input.Width = max(10, width-4)
}

// Toggle shows or hides the input area. Disabled while a request is in flight.
func (p *Panel) Toggle() tea.Cmd {
	if !p.CanToggle() {
		return nil
	}

	p.expanded = !p.expanded
	if p.expanded {
		return p.input.Focus()
	}
	p.input.Blur()
	return nil
}

// EditDraft replaces the draft message
func (p *Panel) EditDraft(text string) {
	p.input.SetValue(text)
}

// Submit asks the signing service to sign the current draft. Nothing is sent
// while collapsed, when the draft is empty or while a request is in flight.
func (p *Panel) Submit() tea.Cmd {
	if !p.CanSubmit() {
		return nil
	}

	p.seq++
	seq := p.seq
	id := p.id
	message := p.Draft()
	auth := p.deps.Auth.Auth()
	signer := p.deps.Signer

	p.status = RequestStatus{Kind: RequestPending}
	p.logger.Info("Submitting message for signing", "seq", seq, "preview", util.Truncate(message, 24))

	request := func() tea.Msg {
		sig, err := signer.Sign(context.Background(), auth, message)
		return SignResultMsg{PanelID: id, Seq: seq, Signature: sig, Err: err}
	}

	return tea.Batch(p.spinner.Tick, request)
}

// HandleResult applies the outcome of a signing request. Results for another
// panel or for a request that is no longer in flight are ignored.
func (p *Panel) HandleResult(msg SignResultMsg) tea.Cmd {
	if msg.PanelID != p.id || msg.Seq != p.seq || !p.status.Pending() {
		p.logger.Debug("Ignoring stale signing result", "seq", msg.Seq, "current", p.seq)
		return nil
	}

	if msg.Err != nil {
		p.status = RequestStatus{Kind: RequestFailed, Err: msg.Err}
		p.logger.Error("Signing request failed", "seq", msg.Seq, "error", msg.Err)
		return p.deps.Notifier.Notify(NotifyError, signing.ErrorContent(msg.Err))
	}

	p.signature = msg.Signature
	p.status = RequestStatus{Kind: RequestSucceeded, Signature: msg.Signature}
	p.logger.Info("Signature received", "seq", msg.Seq)
	return nil
}

// Copy places the signature on the clipboard
func (p *Panel) Copy() tea.Cmd {
	if !p.CanCopy() {
		return nil
	}

	if err := p.deps.Clipboard.WriteAll(p.signature); err != nil {
		p.logger.Error("Failed to copy signature", "error", err)
		return p.deps.Notifier.Notify(NotifyError, err.Error())
	}

	return p.deps.Notifier.Notify(NotifySuccess, CopiedText)
}

// Update handles messages for the panel
func (p *Panel) Update(msg tea.Msg) (*Panel, tea.Cmd) {
	switch msg := msg.(type) {
	case SignResultMsg:
		return p, p.HandleResult(msg)

	case spinner.TickMsg:
		if !p.status.Pending() {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		return p.handleKeyPress(msg)
	}

	if p.expanded {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	return p, nil
}

func (p *Panel) handleKeyPress(msg tea.KeyMsg) (*Panel, tea.Cmd) {
	if !p.expanded {
		// Collapsed: the header control is the only thing to act on
		if key.Matches(msg, p.keys.Toggle) || key.Matches(msg, p.keys.Submit) {
			return p, p.Toggle()
		}
		return p, nil
	}

	switch {
	case key.Matches(msg, p.keys.Toggle):
		return p, p.Toggle()
	case key.Matches(msg, p.keys.Submit):
		return p, p.Submit()
	case key.Matches(msg, p.keys.Copy):
		return p, p.Copy()
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View renders the panel
func (p *Panel) View() string {
	header := p.renderHeader()
	if !p.expanded {
		return header
	}

	sections := []string{header, p.renderInput()}

	// The result is only ever shown while expanded
	if p.signature != "" {
		sections = append(sections, p.renderResult())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (p *Panel) renderHeader() string {
	title := titleStyle.Render("Sign Message")

	var control string
	switch {
	case !p.CanToggle():
		control = disabledButtonStyle.Render("✗")
	case p.expanded:
		control = buttonStyle.Render("✗")
	default:
		control = buttonStyle.Render("Sign ›")
	}

	spacing := max(1, p.width-lipgloss.Width(title)-lipgloss.Width(control)-4)
	return title + strings.Repeat(" ", spacing) + control
}

func (p *Panel) renderInput() string {
	label := subtitleStyle.Render("Message: ")
	line := label + p.input.View()

	var button string
	switch {
	case p.status.Pending():
		button = disabledButtonStyle.Render(p.spinner.View() + " Signing")
	case p.CanSubmit():
		button = buttonStyle.Render("Sign")
	default:
		button = disabledButtonStyle.Render("Sign")
	}

	separator := separatorStyle.Render(strings.Repeat("─", max(1, p.width-4)))

	return lipgloss.JoinVertical(lipgloss.Left, line, button, separator)
}

func (p *Panel) renderResult() string {
	result := resultStyle.
		Width(max(10, p.width-4)).
		Render(p.signature)

	copyButton := buttonStyle.Render("⧉ Copy")

	return lipgloss.JoinVertical(lipgloss.Left, result, copyButton)
}
