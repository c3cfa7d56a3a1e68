package ui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/miles-w-3/signpad/internal/account"
	"github.com/miles-w-3/signpad/internal/signing"
)

type signCall struct {
	auth    account.Credential
	message string
}

// fakeSigner returns a fixed signature or error and records every call
type fakeSigner struct {
	mu        sync.Mutex
	signature string
	err       error
	calls     []signCall
}

func (f *fakeSigner) Sign(_ context.Context, auth account.Credential, message string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, signCall{auth: auth, message: message})
	if f.err != nil {
		return "", signing.NewRequestFailure(f.err)
	}
	return f.signature, nil
}

func (f *fakeSigner) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type notification struct {
	kind NotificationKind
	text string
}

// fakeNotifier records notifications synchronously
type fakeNotifier struct {
	notifications []notification
}

func (f *fakeNotifier) Notify(kind NotificationKind, text string) tea.Cmd {
	f.notifications = append(f.notifications, notification{kind: kind, text: text})
	return nil
}

// recordingClipboard keeps the last copied text
type recordingClipboard struct {
	content string
}

func (c *recordingClipboard) WriteAll(text string) error {
	c.content = text
	return nil
}

func (c *recordingClipboard) Content() string {
	return c.content
}

type failingClipboard struct{}

func (failingClipboard) WriteAll(string) error {
	return errors.New("clipboard unavailable")
}

// mutableProvider lets tests swap the credential between submissions
type mutableProvider struct {
	acct account.Account
}

func (p *mutableProvider) Auth() account.Credential { return p.acct.Credential }
func (p *mutableProvider) Account() account.Account { return p.acct }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func adminAccount() *account.Static {
	return account.NewStatic(account.Account{
		Name:       "admin",
		Admin:      true,
		Credential: account.Credential{"macaroon": "abcd"},
	})
}

type panelFixture struct {
	panel     *Panel
	signer    *fakeSigner
	notifier  *fakeNotifier
	clipboard *recordingClipboard
	auth      *mutableProvider
}

func newPanelFixture(signer *fakeSigner) *panelFixture {
	f := &panelFixture{
		signer:    signer,
		notifier:  &fakeNotifier{},
		clipboard: &recordingClipboard{},
		auth: &mutableProvider{acct: account.Account{
			Name:       "admin",
			Admin:      true,
			Credential: account.Credential{"macaroon": "abcd"},
		}},
	}
	f.panel = NewPanel(PanelDeps{
		Signer:    f.signer,
		Auth:      f.auth,
		Notifier:  f.notifier,
		Clipboard: f.clipboard,
		Logger:    discardLogger(),
	})
	return f
}

// collectMsgs runs cmd and flattens any batches into their messages
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// runSign executes a submit command and returns its completion message
func runSign(t *testing.T, cmd tea.Cmd) SignResultMsg {
	t.Helper()
	require.NotNil(t, cmd, "expected a signing command")

	for _, msg := range collectMsgs(cmd) {
		if result, ok := msg.(SignResultMsg); ok {
			return result
		}
	}
	t.Fatal("command did not produce a SignResultMsg")
	return SignResultMsg{}
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func typeText(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}
