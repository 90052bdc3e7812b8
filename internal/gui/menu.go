package gui

import "fyne.io/fyne/v2"

type menuEntry struct {
	label     string
	command   CommandID
	separator bool
	checkbox  bool
	quit      bool
}

type menuGroup struct {
	label   string
	entries []menuEntry
}

// mainMenuLayout describes the menu bar of the config window
var mainMenuLayout = []menuGroup{
	{
		label: "File",
		entries: []menuEntry{
			{label: "Open...", command: CmdOpen},
			{label: "Save...", command: CmdSave},
			{label: "Save with images...", command: CmdSaveWithImages},
			{separator: true},
			{label: "Print Geometries", command: CmdPrintGeometry},
			{label: "Quit", command: CmdQuit, quit: true},
		},
	},
	{
		label: "View",
		entries: []menuEntry{
			{label: "Show Chat Messages", command: CmdToggleChat, checkbox: true},
		},
	},
	{
		label: "Connect",
		entries: []menuEntry{
			{label: "Add new account", command: CmdAddAccount},
			{label: "Import messages from video", command: CmdImportVideo},
		},
	},
}

// buildMainMenu turns groups into a fyne menu whose items call dispatch.
// checked gives the initial state of checkbox items. The returned map holds
// the item created for every command so callers can update check marks.
func buildMainMenu(groups []menuGroup, dispatch func(CommandID), checked func(CommandID) bool) (*fyne.MainMenu, map[CommandID]*fyne.MenuItem) {
	items := make(map[CommandID]*fyne.MenuItem)
	menus := make([]*fyne.Menu, 0, len(groups))

	for _, group := range groups {
		menuItems := make([]*fyne.MenuItem, 0, len(group.entries))
		for _, entry := range group.entries {
			if entry.separator {
				menuItems = append(menuItems, fyne.NewMenuItemSeparator())
				continue
			}

			id := entry.command
			item := fyne.NewMenuItem(entry.label, func() {
				dispatch(id)
			})
			item.IsQuit = entry.quit
			if entry.checkbox && checked != nil {
				item.Checked = checked(id)
			}
			items[id] = item
			menuItems = append(menuItems, item)
		}
		menus = append(menus, fyne.NewMenu(group.label, menuItems...))
	}

	return fyne.NewMainMenu(menus...), items
}
