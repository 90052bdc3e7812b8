package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/chenwei791129/screader/pkg/superchat"
)

// newConfigContent builds the account and video columns of the config window
func newConfigContent(dispatch func(CommandID)) fyne.CanvasObject {
	accounts := container.NewVBox()
	for _, name := range superchat.PlaceholderAccounts() {
		accounts.Add(widget.NewLabel(name))
	}
	accounts.Add(widget.NewButton("+ Add Account", func() {
		dispatch(CmdAddAccount)
	}))

	videos := container.NewVBox()
	for _, name := range superchat.PlaceholderVideos() {
		videos.Add(widget.NewLabel(name))
	}
	refresh := widget.NewButton("Refresh Videos", func() {
		dispatch(CmdRefreshVideos)
	})
	refresh.Importance = widget.HighImportance
	videos.Add(refresh)

	return container.NewPadded(container.NewGridWithColumns(2,
		widget.NewCard("Accounts", "", accounts),
		widget.NewCard("Videos", "", videos),
	))
}
