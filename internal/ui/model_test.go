package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miles-w-3/signpad/internal/account"
)

func newTestModel(provider account.Provider, signer *fakeSigner) Model {
	return NewModel(Options{
		Endpoint:  "http://localhost:3000/api/graphql",
		Signer:    signer,
		Account:   provider,
		Clipboard: &recordingClipboard{},
		Logger:    discardLogger(),
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func TestModel_AdminGetsPanel(t *testing.T) {
	m := newTestModel(adminAccount(), &fakeSigner{signature: "sig"})

	require.NotNil(t, m.Panel())
	assert.Contains(t, m.View(), "Sign Message")
	assert.Contains(t, m.View(), "Account: admin")
}

func TestModel_NonAdminHasNoPanel(t *testing.T) {
	provider := account.NewStatic(account.Account{
		Name:       "viewer",
		Credential: account.Credential{"token": "t"},
	})
	m := newTestModel(provider, &fakeSigner{signature: "sig"})

	assert.Nil(t, m.Panel())
	assert.Contains(t, m.View(), AdminRequiredText)

	m, cmd := update(t, m, keyPress(tea.KeyCtrlN))
	assert.Nil(t, m.Panel())

	msgs := collectMsgs(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, NotificationMsg{Kind: NotifyInfo, Text: AdminRequiredText}, msgs[0])
}

func TestModel_SignFlowThroughRoot(t *testing.T) {
	signer := &fakeSigner{signature: "3045...ab"}
	m := newTestModel(adminAccount(), signer)

	m, _ = update(t, m, keyPress(tea.KeyTab))
	m, _ = update(t, m, typeText("hello"))
	m, cmd := update(t, m, keyPress(tea.KeyEnter))

	m, _ = update(t, m, runSign(t, cmd))
	assert.Equal(t, "3045...ab", m.Panel().Signature())
	assert.Contains(t, m.View(), "3045...ab")

	m, cmd = update(t, m, keyPress(tea.KeyCtrlY))
	msgs := collectMsgs(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, NotificationMsg{Kind: NotifySuccess, Text: CopiedText}, msgs[0])

	m, expire := update(t, m, msgs[0])
	assert.NotNil(t, expire)
	assert.Equal(t, []string{CopiedText}, m.Toasts().Texts())
	assert.Contains(t, m.View(), CopiedText)
}

func TestModel_FailureShowsErrorToast(t *testing.T) {
	signer := &fakeSigner{err: assert.AnError}
	m := newTestModel(adminAccount(), signer)

	m, _ = update(t, m, keyPress(tea.KeyTab))
	m, _ = update(t, m, typeText("hello"))
	m, cmd := update(t, m, keyPress(tea.KeyEnter))

	m, cmd = update(t, m, runSign(t, cmd))
	msgs := collectMsgs(cmd)
	require.Len(t, msgs, 1)

	notice, ok := msgs[0].(NotificationMsg)
	require.True(t, ok)
	assert.Equal(t, NotifyError, notice.Kind)
	assert.Contains(t, notice.Text, assert.AnError.Error())

	assert.Equal(t, "hello", m.Panel().Draft())
	assert.Empty(t, m.Panel().Signature())
}

func TestModel_ResultForUnmountedPanelIsDropped(t *testing.T) {
	signer := &fakeSigner{signature: "late-sig"}
	m := newTestModel(adminAccount(), signer)
	oldID := m.Panel().ID()

	m, _ = update(t, m, keyPress(tea.KeyTab))
	m, _ = update(t, m, typeText("hello"))
	m, cmd := update(t, m, keyPress(tea.KeyEnter))
	result := runSign(t, cmd)

	m, _ = update(t, m, keyPress(tea.KeyCtrlW))
	assert.Nil(t, m.Panel())

	m, cmd = update(t, m, result)
	assert.Nil(t, cmd)
	assert.Nil(t, m.Panel())

	// A fresh panel starts empty and ignores the old result
	m, _ = update(t, m, keyPress(tea.KeyCtrlN))
	require.NotNil(t, m.Panel())
	assert.NotEqual(t, oldID, m.Panel().ID())
	assert.Empty(t, m.Panel().Draft())

	m, _ = update(t, m, result)
	assert.Empty(t, m.Panel().Signature())
	assert.Equal(t, RequestIdle, m.Panel().Status().Kind)
}

func TestModel_HelpOverlay(t *testing.T) {
	m := newTestModel(adminAccount(), &fakeSigner{signature: "sig"})

	m, _ = update(t, m, typeText("?"))
	assert.Contains(t, m.View(), "Help - Press ? to close")

	// Keys are swallowed while help is open
	m, _ = update(t, m, keyPress(tea.KeyTab))
	assert.False(t, m.Panel().Expanded())

	m, _ = update(t, m, typeText("?"))
	assert.NotContains(t, m.View(), "Help - Press ? to close")
}

func TestModel_QuestionMarkTypesIntoDraftWhenExpanded(t *testing.T) {
	m := newTestModel(adminAccount(), &fakeSigner{signature: "sig"})

	m, _ = update(t, m, keyPress(tea.KeyTab))
	m, _ = update(t, m, typeText("why?"))

	assert.Equal(t, "why?", m.Panel().Draft())
	assert.NotContains(t, m.View(), "Help - Press ? to close")
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(adminAccount(), &fakeSigner{signature: "sig"})

	_, cmd := update(t, m, keyPress(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_WindowResize(t *testing.T) {
	m := newTestModel(adminAccount(), &fakeSigner{signature: "sig"})

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Nil(t, cmd)
	assert.Equal(t, 100, m.panelWidth())
	assert.Equal(t, 100, m.Panel().width)
}
