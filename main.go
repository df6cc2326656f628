package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/yt-quick/internal/config"
	"github.com/ytget/yt-quick/internal/download"
	"github.com/ytget/yt-quick/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-quick"
	AppName = "YT Quick Downloader"
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewFormTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowMinWidth, ui.WindowMinHeight))

	settings := config.NewSettings(myApp)
	runner := download.NewYTDLPRunner(settings.GetAutoInstall())

	ui.NewMainWindow(myWindow, settings, runner)

	myWindow.ShowAndRun()
}
