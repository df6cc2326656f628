// Package ui contains the Fyne desktop form: URL entry, quality and audio-only
// choices, destination picker, progress bar and status line. It starts one
// download worker at a time and applies its events on the UI goroutine.
// All UI strings are localized via Localization.
package ui
