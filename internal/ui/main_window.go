package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-quick/internal/config"
	"github.com/ytget/yt-quick/internal/download"
	"github.com/ytget/yt-quick/internal/model"
	"github.com/ytget/yt-quick/internal/platform"
)

// MainWindow is the download form and the owner of the active worker
type MainWindow struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	runner       download.Runner
	dialogs      Dialogs

	// dispatch runs a function on the UI goroutine
	dispatch func(func())

	urlLabel         *widget.Label
	urlEntry         *widget.Entry
	qualityLabel     *widget.Label
	qualitySelect    *widget.Select
	audioOnlyCheck   *widget.Check
	saveToLabel      *widget.Label
	destinationEntry *widget.Entry
	browseBtn        *widget.Button
	progressBar      *widget.ProgressBar
	downloadBtn      *widget.Button
	statusLabel      *widget.Label

	// status is rendered from a text key plus an optional detail so it can be relabeled
	statusKey    string
	statusDetail string

	destination string
	worker      *download.Worker
	pumps       sync.WaitGroup
}

// NewMainWindow creates the form inside window and wires it to runner
func NewMainWindow(window fyne.Window, settings *config.Settings, runner download.Runner) *MainWindow {
	return newMainWindow(window, settings, runner, newFyneDialogs(window), fyne.Do)
}

func newMainWindow(window fyne.Window, settings *config.Settings, runner download.Runner, dialogs Dialogs, dispatch func(func())) *MainWindow {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	destination := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(destination); err != nil {
		log.Printf("failed to ensure downloads dir %s: %v", destination, err)
	}

	mw := &MainWindow{
		window:       window,
		settings:     settings,
		localization: localization,
		runner:       runner,
		dialogs:      dialogs,
		dispatch:     dispatch,
		destination:  destination,
	}

	mw.setupUI()
	mw.createMenu()
	return mw
}

// setupUI creates and arranges the form
func (mw *MainWindow) setupUI() {
	l := mw.localization

	mw.window.SetTitle(l.GetText(KeyAppTitle))

	mw.urlLabel = widget.NewLabel(l.GetText(KeyURLLabel))
	mw.urlEntry = widget.NewEntry()
	mw.urlEntry.SetPlaceHolder(l.GetText(KeyEnterURL))
	// Enter in the URL field behaves like the Download button
	mw.urlEntry.OnSubmitted = func(string) {
		mw.onDownloadClick()
	}

	mw.qualityLabel = widget.NewLabel(l.GetText(KeyQualityLabel))
	mw.qualitySelect = widget.NewSelect(mw.qualityOptions(), nil)
	mw.qualitySelect.SetSelectedIndex(mw.settings.GetQuality().Index())

	mw.audioOnlyCheck = widget.NewCheck(l.GetText(KeyAudioOnly), nil)
	mw.audioOnlyCheck.SetChecked(mw.settings.GetAudioOnly())
	mw.audioOnlyCheck.OnChanged = mw.onAudioOnlyChanged
	mw.onAudioOnlyChanged(mw.audioOnlyCheck.Checked)

	mw.saveToLabel = widget.NewLabel(l.GetText(KeySaveTo))
	mw.destinationEntry = widget.NewEntry()
	mw.destinationEntry.SetText(mw.destination)
	mw.destinationEntry.Disable()
	mw.browseBtn = widget.NewButton(l.GetText(KeyBrowse), mw.onBrowseClick)

	mw.progressBar = widget.NewProgressBar()
	mw.progressBar.Min = ProgressMin
	mw.progressBar.Max = ProgressMax

	mw.downloadBtn = widget.NewButton(l.GetText(KeyDownload), mw.onDownloadClick)
	mw.downloadBtn.Importance = widget.HighImportance

	mw.statusLabel = widget.NewLabel("")
	mw.setStatus(KeyStatusReady, "")

	form := container.NewVBox(
		container.NewBorder(nil, nil, mw.urlLabel, nil, mw.urlEntry),
		container.NewBorder(nil, nil, mw.qualityLabel, nil, mw.qualitySelect),
		mw.audioOnlyCheck,
		container.NewBorder(nil, nil, mw.saveToLabel, mw.browseBtn, mw.destinationEntry),
		mw.progressBar,
		mw.downloadBtn,
		mw.statusLabel,
	)

	mw.window.SetContent(container.NewPadded(form))
}

// createMenu creates the application menu
func (mw *MainWindow) createMenu() {
	l := mw.localization

	settingsItem := fyne.NewMenuItem(l.GetText(KeySettings), mw.onShowSettings)

	languageMenu := fyne.NewMenu(l.GetText(KeyLanguage))
	for code, name := range l.GetAvailableLanguages() {
		langCode := code
		item := fyne.NewMenuItem(name, func() {
			mw.onLanguageChange(langCode)
		})
		item.Checked = l.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, item)
	}

	mw.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(l.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// qualityOptions returns the select labels in model.Qualities() order
func (mw *MainWindow) qualityOptions() []string {
	qualities := model.Qualities()
	options := make([]string, 0, len(qualities))
	for _, q := range qualities {
		if q == model.QualityDefault {
			options = append(options, mw.localization.GetText(KeyBestQuality))
			continue
		}
		options = append(options, q.Label())
	}
	return options
}

// selectedQuality maps the select position to a tier
func (mw *MainWindow) selectedQuality() model.Quality {
	return model.QualityAt(mw.qualitySelect.SelectedIndex())
}

// onAudioOnlyChanged disables the quality select, which audio downloads ignore
func (mw *MainWindow) onAudioOnlyChanged(checked bool) {
	if checked {
		mw.qualitySelect.Disable()
	} else {
		mw.qualitySelect.Enable()
	}
}

// onBrowseClick lets the user pick a destination folder; cancel keeps the current one
func (mw *MainWindow) onBrowseClick() {
	mw.dialogs.ChooseFolder(mw.destination, func(dir string) {
		if strings.TrimSpace(dir) == "" {
			return
		}
		mw.setDestination(dir)
	})
}

func (mw *MainWindow) setDestination(dir string) {
	log.Printf("Destination changed: %s", dir)
	mw.destination = dir
	mw.destinationEntry.SetText(dir)
	mw.settings.SetDownloadDirectory(dir)
}

// onDownloadClick validates the form and starts a worker
func (mw *MainWindow) onDownloadClick() {
	req := model.NewDownloadRequest(mw.urlEntry.Text, mw.selectedQuality(), mw.audioOnlyCheck.Checked, mw.destination)
	if err := req.Validate(); err != nil {
		log.Printf("Download rejected: %v", err)
		mw.dialogs.ShowInformation(mw.localization.GetText(KeyErrorTitle), mw.localization.GetText(KeyPleaseEnterURL))
		return
	}

	if mw.worker != nil && mw.worker.State().IsActive() {
		log.Printf("Download %s still running, ignoring request for %s", mw.worker.ID, req.URL)
		return
	}

	mw.settings.SetQuality(req.Quality)
	mw.settings.SetAudioOnly(req.AudioOnly)

	mw.downloadBtn.Disable()
	mw.progressBar.SetValue(ProgressMin)
	mw.setStatus(KeyStatusDownloading, "")

	worker := download.NewWorker(req, mw.runner)
	if err := worker.Start(context.Background()); err != nil {
		mw.downloadError(err.Error())
		return
	}
	mw.worker = worker

	mw.pumps.Add(1)
	go mw.pump(worker)
}

// pump forwards worker events to the UI goroutine in order
func (mw *MainWindow) pump(w *download.Worker) {
	defer mw.pumps.Done()

	destination := w.Request().Destination
	for event := range w.Events() {
		e := event
		mw.dispatch(func() {
			mw.handleEvent(e, destination)
		})
	}
}

func (mw *MainWindow) handleEvent(e model.Event, destination string) {
	switch e.Kind {
	case model.EventProgress:
		mw.updateProgress(e.Percent)
	case model.EventFinished:
		mw.downloadFinished(destination)
	case model.EventFailed:
		mw.downloadError(e.Message)
	}
}

// updateProgress sets the progress bar; must run on the UI goroutine
func (mw *MainWindow) updateProgress(value int) {
	if value < ProgressMin {
		value = ProgressMin
	}
	if value > ProgressMax {
		value = ProgressMax
	}
	mw.progressBar.SetValue(float64(value))
}

// downloadFinished restores the idle form and confirms where the file went
func (mw *MainWindow) downloadFinished(destination string) {
	l := mw.localization

	mw.downloadBtn.Enable()
	mw.setStatus(KeyStatusCompleted, "")

	mw.dialogs.ShowCompletion(
		l.GetText(KeySuccessTitle),
		fmt.Sprintf(l.GetText(KeyDownloadSaved), destination),
		l.GetText(KeyOpenFolder),
		l.GetText(KeyOK),
		func() { mw.revealFolder(destination) },
	)
}

// downloadError restores the idle form and reports message; progress is left as is
func (mw *MainWindow) downloadError(message string) {
	mw.downloadBtn.Enable()
	mw.setStatus(KeyStatusError, message)
	mw.dialogs.ShowError(mw.localization.GetText(KeyDownloadFailed) + message)
}

func (mw *MainWindow) revealFolder(dir string) {
	if err := platform.OpenFolder(dir); err != nil {
		log.Printf("Error opening folder %s: %v", dir, err)
		mw.dialogs.ShowError(mw.localization.GetText(KeyErrorOpeningDir) + err.Error())
	}
}

func (mw *MainWindow) setStatus(key, detail string) {
	mw.statusKey = key
	mw.statusDetail = detail
	mw.statusLabel.SetText(mw.localization.GetText(key) + detail)
}

// onShowSettings shows the settings dialog
func (mw *MainWindow) onShowSettings() {
	sd := NewSettingsDialog(mw.settings, mw.localization, mw.window, mw.dialogs)
	sd.SetOnSaved(func() {
		if dir := mw.settings.GetDownloadDirectory(); dir != mw.destination {
			mw.setDestination(dir)
		}
		if lang := mw.settings.GetLanguage(); lang != mw.localization.GetCurrentLanguage() {
			mw.onLanguageChange(lang)
		}
	})
	sd.Show()
}

// onLanguageChange handles language change
func (mw *MainWindow) onLanguageChange(langCode string) {
	mw.localization.SetLanguage(langCode)
	mw.settings.SetLanguage(langCode)
	mw.refreshUITexts()
	mw.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (mw *MainWindow) refreshUITexts() {
	l := mw.localization

	mw.window.SetTitle(l.GetText(KeyAppTitle))
	mw.urlLabel.SetText(l.GetText(KeyURLLabel))
	mw.urlEntry.SetPlaceHolder(l.GetText(KeyEnterURL))
	mw.qualityLabel.SetText(l.GetText(KeyQualityLabel))
	mw.saveToLabel.SetText(l.GetText(KeySaveTo))
	mw.browseBtn.SetText(l.GetText(KeyBrowse))
	mw.downloadBtn.SetText(l.GetText(KeyDownload))

	mw.audioOnlyCheck.Text = l.GetText(KeyAudioOnly)
	mw.audioOnlyCheck.Refresh()

	selected := mw.qualitySelect.SelectedIndex()
	mw.qualitySelect.SetOptions(mw.qualityOptions())
	mw.qualitySelect.SetSelectedIndex(selected)

	mw.setStatus(mw.statusKey, mw.statusDetail)
}
