// Package gui provides the graphical user interface for Superchat Reader.
package gui

import (
	"context"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"go.uber.org/zap"

	"github.com/chenwei791129/screader/internal/config"
	"github.com/chenwei791129/screader/pkg/superchat"
)

const (
	// AppID is the unique identifier for the application
	AppID = "com.github.chenwei791129.screader"

	// loopStopTimeout bounds the wait for the poll loop after the event loop ended
	loopStopTimeout = time.Second
)

// App wraps the Fyne application and its two windows
type App struct {
	fyneApp fyne.App
	cfg     config.Config
	logger  *zap.Logger

	configWindow fyne.Window
	chatWindow   fyne.Window
	menu         *fyne.MainMenu
	viewItem     *fyne.MenuItem

	controller *Controller
	messages   *MessageList
}

// NewApp creates a new GUI application
func NewApp(logger *zap.Logger, cfg config.Config) *App {
	return newApp(app.NewWithID(AppID), logger, cfg)
}

func newApp(fyneApp fyne.App, logger *zap.Logger, cfg config.Config) *App {
	return &App{
		fyneApp: fyneApp,
		cfg:     cfg,
		logger:  logger,
	}
}

// build creates both windows, the menu bar and the startup messages
func (a *App) build() {
	a.configWindow = a.fyneApp.NewWindow(superchat.WindowTitle())
	a.chatWindow = a.fyneApp.NewWindow(superchat.ChatWindowTitle)

	configSurface := newFyneSurface(a.configWindow)
	chatSurface := newFyneSurface(a.chatWindow)
	a.controller = NewController(a.logger, configSurface, chatSurface)

	var items map[CommandID]*fyne.MenuItem
	a.menu, items = buildMainMenu(mainMenuLayout, a.controller.Dispatch, func(id CommandID) bool {
		return id == CmdToggleChat && a.controller.ChatShown()
	})
	a.viewItem = items[CmdToggleChat]
	a.controller.OnChatVisibilityChange(a.syncViewItem)

	a.configWindow.SetMainMenu(a.menu)
	a.configWindow.SetContent(newConfigContent(a.controller.Dispatch))
	configSurface.Place(Geometry{
		X:      a.cfg.ConfigX,
		Y:      a.cfg.ConfigY,
		Width:  a.cfg.ConfigWidth,
		Height: a.cfg.ConfigHeight,
	})

	a.messages = NewMessageList(MessageLayout{
		MetaWidth:    a.cfg.MetaWidth,
		UsernameWrap: a.cfg.UsernameWrap,
		ContentWrap:  a.cfg.ContentWrap,
		RowHeight:    a.cfg.RowHeight,
	})
	for _, msg := range superchat.SampleMessages() {
		a.messages.Append(msg)
	}
	a.chatWindow.SetContent(container.NewVScroll(a.messages.Object()))

	a.controller.BindCloseActions()
	a.controller.PlaceChatWindow(a.cfg.ChatWidth, a.cfg.ChatHeight, a.cfg.ChatGap)
}

// syncViewItem keeps the View menu check mark in line with the chat window
func (a *App) syncViewItem(shown bool) {
	if a.viewItem == nil || a.viewItem.Checked == shown {
		return
	}
	a.viewItem.Checked = shown
	a.menu.Refresh()
}

// Run shows both windows and blocks until the application quits.
// Cancelling ctx quits the application like the Quit menu item.
func (a *App) Run(ctx context.Context) {
	a.build()
	a.configWindow.Show()
	a.chatWindow.Show()
	a.controller.ReportGeometry()

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		a.controller.Run(ctx, a.cfg.PollInterval)
		fyne.Do(a.fyneApp.Quit)
	}()

	a.fyneApp.Run()

	// The event loop can also end on its own, e.g. through the OS application menu
	a.controller.Shutdown()
	select {
	case <-loopDone:
	case <-time.After(loopStopTimeout):
		a.logger.Warn("Main loop did not stop in time")
	}
}

// Controller returns the window controller, available after Run has started
func (a *App) Controller() *Controller {
	return a.controller
}

// Quit stops the main loop, which then quits the application
func (a *App) Quit() {
	if a.controller != nil {
		a.controller.Shutdown()
	}
}
