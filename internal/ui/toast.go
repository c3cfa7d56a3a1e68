package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/miles-w-3/signpad/internal/theme"
)

// NotificationKind represents the flavor of a notification
type NotificationKind int

const (
	NotifySuccess NotificationKind = iota
	NotifyError
	NotifyInfo
)

// maxToasts bounds how many notifications are on screen at once
const maxToasts = 4

// Notifier emits user-visible notifications. Notify is fire-and-forget; the
// returned command delivers the notification to whoever renders it.
type Notifier interface {
	Notify(kind NotificationKind, text string) tea.Cmd
}

// NotificationMsg carries a notification to the toast stack
type NotificationMsg struct {
	Kind NotificationKind
	Text string
}

// toastExpiredMsg removes a toast once its lifetime is over
type toastExpiredMsg struct {
	id int
}

type toast struct {
	id   int
	kind NotificationKind
	text string
}

// ToastStack shows transient notifications in the corner of the screen
type ToastStack struct {
	toasts   []toast
	nextID   int
	duration time.Duration
	width    int
}

// NewToastStack creates a toast stack whose toasts live for duration
func NewToastStack(duration time.Duration) *ToastStack {
	return &ToastStack{
		duration: duration,
		width:    48,
	}
}

// Notify implements Notifier
func (s *ToastStack) Notify(kind NotificationKind, text string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg{Kind: kind, Text: text}
	}
}

// SetWidth sets the maximum toast width
func (s *ToastStack) SetWidth(width int) {
	if width > 0 {
		s.width = width
	}
}

// Len returns the number of visible toasts
func (s *ToastStack) Len() int {
	return len(s.toasts)
}

// Texts returns the text of every visible toast, oldest first
func (s *ToastStack) Texts() []string {
	texts := make([]string, 0, len(s.toasts))
	for _, t := range s.toasts {
		texts = append(texts, t.text)
	}
	return texts
}

// Update handles notification and expiry messages
func (s *ToastStack) Update(msg tea.Msg) (*ToastStack, tea.Cmd) {
	switch msg := msg.(type) {
	case NotificationMsg:
		id := s.nextID
		s.nextID++
		s.toasts = append(s.toasts, toast{id: id, kind: msg.Kind, text: msg.Text})
		if len(s.toasts) > maxToasts {
			s.toasts = s.toasts[len(s.toasts)-maxToasts:]
		}
		return s, tea.Tick(s.duration, func(time.Time) tea.Msg {
			return toastExpiredMsg{id: id}
		})

	case toastExpiredMsg:
		for i, t := range s.toasts {
			if t.id == msg.id {
				s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
				break
			}
		}
	}

	return s, nil
}

// View renders the stack, newest at the bottom
func (s *ToastStack) View() string {
	if len(s.toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(s.toasts))
	for _, t := range s.toasts {
		rendered = append(rendered, s.renderToast(t))
	}
	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

func (s *ToastStack) renderToast(t toast) string {
	var borderColor lipgloss.TerminalColor
	var icon string

	switch t.kind {
	case NotifyError:
		borderColor = theme.Danger
		icon = "✗"
	case NotifySuccess:
		borderColor = theme.Success
		icon = "✓"
	default:
		borderColor = theme.ProgressSecond
		icon = "ℹ"
	}

	text := strings.TrimSpace(t.text)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Foreground(theme.Text).
		Padding(0, 1).
		MaxWidth(s.width).
		Width(min(s.width-2, lipgloss.Width(icon+" "+text)+2)).
		Render(icon + " " + text)
}
