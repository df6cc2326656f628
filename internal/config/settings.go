package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/yt-quick/internal/model"
	"github.com/ytget/yt-quick/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir = "download_directory"
	KeyQuality     = "quality"
	KeyAudioOnly   = "audio_only"
	KeyLanguage    = "app_language"
	KeyAutoInstall = "auto_install_ytdlp"
)

// Default values
const (
	DefaultQuality     = model.QualityDefault
	DefaultAudioOnly   = false
	DefaultLanguage    = "system"
	DefaultAutoInstall = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir := platform.DefaultDownloadsDir()
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory; empty values are ignored
func (s *Settings) SetDownloadDirectory(dir string) {
	if dir == "" {
		return
	}
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetQuality returns the last used quality tier
func (s *Settings) GetQuality() model.Quality {
	q, ok := model.ParseQuality(s.app.Preferences().String(KeyQuality))
	if !ok {
		return DefaultQuality
	}
	return q
}

// SetQuality stores the quality tier
func (s *Settings) SetQuality(q model.Quality) {
	s.app.Preferences().SetString(KeyQuality, string(q))
}

// GetAudioOnly returns whether audio-only mode was last selected
func (s *Settings) GetAudioOnly() bool {
	return s.app.Preferences().BoolWithFallback(KeyAudioOnly, DefaultAudioOnly)
}

// SetAudioOnly stores the audio-only choice
func (s *Settings) SetAudioOnly(audioOnly bool) {
	s.app.Preferences().SetBool(KeyAudioOnly, audioOnly)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoInstall returns whether yt-dlp is fetched automatically when missing
func (s *Settings) GetAutoInstall() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoInstall, DefaultAutoInstall)
}

// SetAutoInstall sets whether yt-dlp is fetched automatically when missing
func (s *Settings) SetAutoInstall(autoInstall bool) {
	s.app.Preferences().SetBool(KeyAutoInstall, autoInstall)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
