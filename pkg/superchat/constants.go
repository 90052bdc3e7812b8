// Package superchat holds the placeholder data shown by the Superchat Reader mockup.
package superchat

import "fmt"

const (
	// VersionMajor and VersionMinor make up the version shown in the window title
	VersionMajor = 0
	VersionMinor = 1
	VersionPatch = 0

	// DefaultAmount is shown when a message carries no amount
	DefaultAmount = "$0.00"

	// DefaultUsername is shown when a message carries no username
	DefaultUsername = "Unknown User"

	// ChatWindowTitle is the title of the message window
	ChatWindowTitle = "Messages"
)

// WindowTitle returns the config window title, e.g. "Superchat Reader v0.1"
func WindowTitle() string {
	return fmt.Sprintf("Superchat Reader v%d.%d", VersionMajor, VersionMinor)
}

// Version returns the full version string
func Version() string {
	return fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
}
