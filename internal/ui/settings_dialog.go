package ui

import (
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-quick/internal/config"
)

// SettingsDialog edits the persisted preferences
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialogs      Dialogs
	onSaved      func()

	downloadDirEntry *widget.Entry
	languageSelect   *widget.Select
	autoInstallCheck *widget.Check

	// languageCodes is parallel to languageSelect.Options
	languageCodes []string
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, dialogs Dialogs) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		dialogs:      dialogs,
	}

	sd.createWidgets()
	sd.loadCurrentSettings()
	return sd
}

// SetOnSaved registers a callback run after settings are stored
func (sd *SettingsDialog) SetOnSaved(fn func()) {
	sd.onSaved = fn
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	l := sd.localization

	browseDirBtn := widget.NewButton(IconFolder, sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyDownloadDirectory)),
		downloadDirRow,
		widget.NewLabel(l.GetText(KeyLanguage)),
		sd.languageSelect,
		widget.NewSeparator(),
		sd.autoInstallCheck,
	)

	d := dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)
	d.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
	d.Show()
}

// createWidgets creates the dialog inputs
func (sd *SettingsDialog) createWidgets() {
	sd.downloadDirEntry = widget.NewEntry()

	options := sd.settings.GetLanguageOptions()
	sd.languageCodes = make([]string, 0, len(options))
	for code := range options {
		sd.languageCodes = append(sd.languageCodes, code)
	}
	sort.Strings(sd.languageCodes)

	labels := make([]string, 0, len(sd.languageCodes))
	for _, code := range sd.languageCodes {
		labels = append(labels, options[code])
	}
	sd.languageSelect = widget.NewSelect(labels, nil)

	sd.autoInstallCheck = widget.NewCheck(sd.localization.GetText(KeyAutoInstall), nil)
}

// loadCurrentSettings loads current settings into the inputs
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.autoInstallCheck.SetChecked(sd.settings.GetAutoInstall())

	current := sd.settings.GetLanguage()
	for i, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelectedIndex(i)
			break
		}
	}
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	sd.dialogs.ChooseFolder(sd.downloadDirEntry.Text, func(dir string) {
		sd.downloadDirEntry.SetText(dir)
	})
}

// selectedLanguage returns the language code for the current selection
func (sd *SettingsDialog) selectedLanguage() string {
	idx := sd.languageSelect.SelectedIndex()
	if idx < 0 || idx >= len(sd.languageCodes) {
		return ""
	}
	return sd.languageCodes[idx]
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := strings.TrimSpace(sd.downloadDirEntry.Text); dir != "" {
		sd.settings.SetDownloadDirectory(dir)
	}

	if lang := sd.selectedLanguage(); lang != "" {
		sd.settings.SetLanguage(lang)
	}

	sd.settings.SetAutoInstall(sd.autoInstallCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	sd.dialogs.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved))
}
