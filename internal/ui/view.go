package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI
func (m Model) View() string {
	baseView := m.renderMainView()

	// Help sits above everything else
	if m.showHelp {
		return m.renderOverlay(baseView, m.renderHelpOverlay(), lipgloss.Center, lipgloss.Center)
	}

	if m.toasts.Len() > 0 {
		return m.renderOverlay(baseView, m.toasts.View(), lipgloss.Right, lipgloss.Bottom)
	}

	return baseView
}

// renderMainView renders header, status line, panel and help bar
func (m Model) renderMainView() string {
	var body string
	switch {
	case !m.isAdmin():
		body = helpStyle.Render(AdminRequiredText)
	case m.panel == nil:
		body = helpStyle.Render(fmt.Sprintf("No sign panel open. Press %s to open one.",
			keyStyle.Render(m.globalKeys.NewPanel.Help().Key)))
	default:
		body = m.panel.View()
	}

	boxed := panelStyle.
		Width(m.panelWidth()).
		Render(body)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderStatusLine(),
		boxed,
		m.renderStatusBar(),
		m.renderHelp(),
	)
}

// renderHeader renders the header
func (m Model) renderHeader() string {
	return headerStyle.Render(titleStyle.Render("signpad"))
}

// renderStatusLine renders the endpoint on the left and account on the right
func (m Model) renderStatusLine() string {
	accountName := "none"
	if m.account != nil {
		accountName = m.account.Account().Name
	}

	left := statusInfoStyle.Bold(true).Render(fmt.Sprintf("Endpoint: %s", m.endpoint))
	right := titleStyle.Render(fmt.Sprintf("Account: %s", accountName))

	spacing := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(right)-4)
	return left + strings.Repeat(" ", spacing) + right
}

// renderStatusBar renders request state and the error log counter
func (m Model) renderStatusBar() string {
	parts := []string{}

	if m.panel != nil {
		parts = append(parts, statusInfoStyle.Render(fmt.Sprintf("Request: %s", m.panel.Status().Kind)))
	}

	if m.errors != nil && m.errors.HasErrors() {
		parts = append(parts, statusErrorStyle.Render(fmt.Sprintf("%d error(s) in log", m.errors.ErrorCount())))
	}

	if len(parts) == 0 {
		return ""
	}
	return statusBarStyle.Render(strings.Join(parts, " | "))
}

// renderHelp renders the one-line key hints
func (m Model) renderHelp() string {
	bindings := m.globalKeys.ShortHelp()
	if m.panel != nil {
		bindings = append(m.panel.Keys().ShortHelp(), bindings...)
	}
	return m.helpModel.ShortHelpView(bindings)
}

// renderHelpOverlay renders the full key binding reference
func (m Model) renderHelpOverlay() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(titleStyle.GetForeground()).
		Padding(0, 1).
		Render("Help - Press ? to close")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		m.helpModel.FullHelpView(m.helpGroups()),
	)

	return panelStyle.
		Padding(1, 2).
		Render(content)
}

// renderOverlay composites fg on top of baseView at the given position
func (m Model) renderOverlay(baseView, fg string, hPos, vPos lipgloss.Position) string {
	placed := lipgloss.Place(
		m.width,
		m.height,
		hPos,
		vPos,
		fg,
		lipgloss.WithWhitespaceChars(" "),
	)

	baseLines := strings.Split(baseView, "\n")
	overlayLines := strings.Split(placed, "\n")

	maxLines := max(len(baseLines), len(overlayLines))
	outputLines := make([]string, maxLines)

	for i := 0; i < maxLines; i++ {
		var baseLine, overlayLine string

		if i < len(baseLines) {
			baseLine = baseLines[i]
		}
		if i < len(overlayLines) {
			overlayLine = overlayLines[i]
		}

		// Lines the overlay does not touch keep the base content
		if strings.TrimSpace(stripANSI(overlayLine)) == "" {
			outputLines[i] = baseLine
		} else {
			outputLines[i] = overlayLine
		}
	}

	return strings.Join(outputLines, "\n")
}

// stripANSI removes ANSI escape codes for checking if line has content
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	escapeDepth := 0

	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			escapeDepth = 0
			continue
		}
		if inEscape {
			escapeDepth++
			if r == 'm' || escapeDepth > 20 {
				inEscape = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
