package gui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chenwei791129/screader/internal/config"
	"github.com/chenwei791129/screader/pkg/superchat"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	testApp := test.NewApp()
	t.Cleanup(testApp.Quit)

	cfg, err := config.Load()
	require.NoError(t, err)

	a := newApp(testApp, zap.NewNop(), cfg)
	a.build()
	return a
}

func TestApp_Build(t *testing.T) {
	a := newTestApp(t)

	require.Equal(t, superchat.WindowTitle(), a.configWindow.Title())
	require.Equal(t, superchat.ChatWindowTitle, a.chatWindow.Title())
	require.Same(t, a.menu, a.configWindow.MainMenu())
	require.Equal(t, 4, a.messages.Len())
	require.True(t, a.viewItem.Checked)
}

func TestApp_ChatPlacedRightOfConfig(t *testing.T) {
	a := newTestApp(t)

	cfg := a.controller.config.Geometry()
	chat := a.controller.chat.Geometry()

	require.Equal(t, cfg.Right()+20, chat.X)
	require.Equal(t, cfg.Y, chat.Y)
}

func TestApp_ViewItemFollowsChatVisibility(t *testing.T) {
	a := newTestApp(t)

	a.viewItem.Action()
	require.False(t, a.controller.ChatShown())
	require.False(t, a.viewItem.Checked)

	a.viewItem.Action()
	require.True(t, a.controller.ChatShown())
	require.True(t, a.viewItem.Checked)

	a.controller.SetChatVisible(false)
	require.False(t, a.viewItem.Checked)
	require.True(t, a.controller.Running())
}

func TestApp_Quit(t *testing.T) {
	a := newTestApp(t)

	a.Quit()

	require.False(t, a.controller.Running())
}
