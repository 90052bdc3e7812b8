package gui

import (
	"errors"
	"fmt"
	"sync"
)

// CommandID identifies an action reachable from the menu bar or a button
type CommandID string

const (
	CmdOpen           CommandID = "file.open"
	CmdSave           CommandID = "file.save"
	CmdSaveWithImages CommandID = "file.save_with_images"
	CmdPrintGeometry  CommandID = "file.print_geometry"
	CmdQuit           CommandID = "file.quit"
	CmdToggleChat     CommandID = "view.chat"
	CmdAddAccount     CommandID = "connect.add_account"
	CmdImportVideo    CommandID = "connect.import_video"
	CmdRefreshVideos  CommandID = "connect.refresh_videos"
)

// stubCommands have menu entries but no behaviour yet
var stubCommands = []CommandID{
	CmdOpen,
	CmdSave,
	CmdSaveWithImages,
	CmdAddAccount,
	CmdImportVideo,
	CmdRefreshVideos,
}

// ErrUnknownCommand is returned when dispatching an identifier with no handler
var ErrUnknownCommand = errors.New("unknown command")

// Commands maps command identifiers to their handlers
type Commands struct {
	mu       sync.RWMutex
	handlers map[CommandID]func()
}

// NewCommands creates an empty dispatch table
func NewCommands() *Commands {
	return &Commands{
		handlers: make(map[CommandID]func()),
	}
}

// Register binds a handler to id, replacing any previous one
func (c *Commands) Register(id CommandID, handler func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[id] = handler
}

// Has reports whether id has a handler
func (c *Commands) Has(id CommandID) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.handlers[id]
	return ok
}

// Dispatch runs the handler registered for id
func (c *Commands) Dispatch(id CommandID) error {
	c.mu.RLock()
	handler, ok := c.handlers[id]
	c.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, id)
	}
	handler()
	return nil
}
