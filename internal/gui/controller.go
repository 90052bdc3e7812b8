package gui

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Controller owns the application state: both windows, the chat window
// visibility, the running flag and the command table.
type Controller struct {
	logger   *zap.Logger
	config   Surface
	chat     Surface
	commands *Commands

	mu        sync.Mutex
	chatShown bool
	onChat    func(shown bool)

	running  atomic.Bool
	done     chan struct{}
	stopOnce sync.Once
}

// NewController creates a controller with the chat window initially shown
func NewController(logger *zap.Logger, config, chat Surface) *Controller {
	c := &Controller{
		logger:    logger,
		config:    config,
		chat:      chat,
		commands:  NewCommands(),
		chatShown: true,
		done:      make(chan struct{}),
	}
	c.running.Store(true)

	for _, id := range stubCommands {
		c.commands.Register(id, func() {
			c.logger.Debug("Command not implemented", zap.String("command", string(id)))
		})
	}
	c.commands.Register(CmdPrintGeometry, c.ReportGeometry)
	c.commands.Register(CmdQuit, func() { c.Shutdown() })
	c.commands.Register(CmdToggleChat, c.ToggleChat)

	return c
}

// Commands returns the dispatch table
func (c *Controller) Commands() *Commands {
	return c.commands
}

// Dispatch runs a command, logging identifiers that have no handler
func (c *Controller) Dispatch(id CommandID) {
	if err := c.commands.Dispatch(id); err != nil {
		c.logger.Warn("Failed to dispatch command", zap.Error(err))
	}
}

// BindCloseActions routes the native close buttons: closing the config
// window quits, closing the chat window behaves like the View toggle.
func (c *Controller) BindCloseActions() {
	c.config.SetCloseIntercept(func() {
		c.Dispatch(CmdQuit)
	})
	c.chat.SetCloseIntercept(func() {
		c.Dispatch(CmdToggleChat)
	})
}

// OnChatVisibilityChange registers fn to be called after every visibility change
func (c *Controller) OnChatVisibilityChange(fn func(shown bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChat = fn
}

// ChatShown returns the chat window visibility state
func (c *Controller) ChatShown() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.chatShown
}

// SetChatVisible moves the chat window to the desired state.
// Showing also moves input focus to the config window, even if the chat
// window was already visible.
func (c *Controller) SetChatVisible(desired bool) {
	c.mu.Lock()
	c.chatShown = desired
	onChat := c.onChat
	c.mu.Unlock()

	if desired {
		c.chat.Show()
		c.config.RequestFocus()
	} else {
		c.chat.Hide()
	}

	if onChat != nil {
		onChat(desired)
	}
	c.logger.Debug("Chat window visibility changed", zap.Bool("shown", desired))
}

// ToggleChat inverts the chat window visibility, as clicking the View item does
func (c *Controller) ToggleChat() {
	c.SetChatVisible(!c.ChatShown())
}

// PlaceChatWindow sizes the chat window and puts it gap units right of the
// config window, aligned with its top edge.
func (c *Controller) PlaceChatWindow(width, height, gap int) {
	cfg := c.config.Geometry()
	c.chat.Place(Geometry{
		X:      cfg.Right() + gap,
		Y:      cfg.Y,
		Width:  width,
		Height: height,
	})
}

// ReportGeometry logs the rectangle of both windows.
// The position is the one last requested through Place, not where the user may have dragged the window.
func (c *Controller) ReportGeometry() {
	c.logger.Info("config Window "+c.config.Geometry().String(), zap.String("position", "requested"))
	c.logger.Info("chat Window   "+c.chat.Geometry().String(), zap.String("position", "requested"))
}

// Running reports whether the poll loop should keep going
func (c *Controller) Running() bool {
	return c.running.Load()
}

// Done is closed once Shutdown has run
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// Shutdown clears the running flag. It returns false if the flag was already cleared.
func (c *Controller) Shutdown() bool {
	if !c.running.CompareAndSwap(true, false) {
		return false
	}
	c.logger.Info("Shutdown")
	c.stopOnce.Do(func() {
		close(c.done)
	})
	return true
}

// Interrupt handles Ctrl-C the same way as the Quit command
func (c *Controller) Interrupt() {
	c.logger.Info("Interrupt caught, shutting down.")
	c.Dispatch(CmdQuit)
}
