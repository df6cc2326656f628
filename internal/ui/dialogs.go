package ui

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

// Dialogs shows the modal dialogs used by the main window
type Dialogs interface {
	ShowInformation(title, message string)
	ShowError(message string)
	ShowCompletion(title, message, openLabel, dismissLabel string, onOpen func())
	ChooseFolder(start string, onChosen func(dir string))
}

// fyneDialogs renders Dialogs with fyne's dialog package
type fyneDialogs struct {
	window fyne.Window
}

func newFyneDialogs(window fyne.Window) *fyneDialogs {
	return &fyneDialogs{window: window}
}

func (d *fyneDialogs) ShowInformation(title, message string) {
	dialog.ShowInformation(title, message, d.window)
}

func (d *fyneDialogs) ShowError(message string) {
	dialog.ShowError(errors.New(message), d.window)
}

func (d *fyneDialogs) ShowCompletion(title, message, openLabel, dismissLabel string, onOpen func()) {
	dialog.ShowCustomConfirm(title, openLabel, dismissLabel, widget.NewLabel(message), func(open bool) {
		if open && onOpen != nil {
			onOpen()
		}
	}, d.window)
}

// ChooseFolder opens a folder picker at start; onChosen is not called on cancel
func (d *fyneDialogs) ChooseFolder(start string, onChosen func(dir string)) {
	fd := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			log.Printf("Folder selection failed: %v", err)
			return
		}
		if uri == nil {
			return
		}
		onChosen(uri.Path())
	}, d.window)

	if start != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(start)); err == nil {
			fd.SetLocation(lister)
		} else {
			log.Printf("Cannot start folder picker at %s: %v", start, err)
		}
	}

	fd.Resize(fyne.NewSize(DialogWidth, DialogHeight))
	fd.Show()
}
