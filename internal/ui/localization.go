package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyURLLabel          = "url_label"
	KeyEnterURL          = "enter_url"
	KeyQualityLabel      = "quality_label"
	KeyBestQuality       = "best_quality"
	KeyAudioOnly         = "audio_only"
	KeySaveTo            = "save_to"
	KeyBrowse            = "browse"
	KeyDownload          = "download"
	KeyStatusReady       = "status_ready"
	KeyStatusDownloading = "status_downloading"
	KeyStatusCompleted   = "status_completed"
	KeyStatusError       = "status_error"
	KeyErrorTitle        = "error_title"
	KeyPleaseEnterURL    = "please_enter_url"
	KeySuccessTitle      = "success_title"
	KeyDownloadSaved     = "download_saved"
	KeyDownloadFailed    = "download_failed"
	KeyOpenFolder        = "open_folder"
	KeyOK                = "ok"
	KeyErrorOpeningDir   = "error_opening_dir"
	KeyFile              = "file"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyAutoInstall       = "auto_install"
	KeyDownloadDirectory = "download_directory"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "YouTube Video Downloader",
		KeyURLLabel:          "YouTube URL:",
		KeyEnterURL:          "Paste YouTube URL here...",
		KeyQualityLabel:      "Video Quality:",
		KeyBestQuality:       "Best Quality",
		KeyAudioOnly:         "Download Audio Only (Original Format)",
		KeySaveTo:            "Save to:",
		KeyBrowse:            "Browse",
		KeyDownload:          "Download",
		KeyStatusReady:       "Ready to download",
		KeyStatusDownloading: "Downloading...",
		KeyStatusCompleted:   "Download completed!",
		KeyStatusError:       "Error: ",
		KeyErrorTitle:        "Error",
		KeyPleaseEnterURL:    "Please enter a YouTube URL.",
		KeySuccessTitle:      "Success",
		KeyDownloadSaved:     "Download completed successfully!\nSaved to: %s",
		KeyDownloadFailed:    "Download failed: ",
		KeyOpenFolder:        "Open Folder",
		KeyOK:                "OK",
		KeyErrorOpeningDir:   "Could not open folder: ",
		KeyFile:              "File",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeyAutoInstall:       "Install yt-dlp automatically",
		KeyDownloadDirectory: "Download Directory",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Загрузчик видео YouTube",
		KeyURLLabel:          "URL YouTube:",
		KeyEnterURL:          "Вставьте URL YouTube...",
		KeyQualityLabel:      "Качество видео:",
		KeyBestQuality:       "Лучшее качество",
		KeyAudioOnly:         "Только аудио (исходный формат)",
		KeySaveTo:            "Сохранить в:",
		KeyBrowse:            "Обзор",
		KeyDownload:          "Скачать",
		KeyStatusReady:       "Готово к загрузке",
		KeyStatusDownloading: "Загрузка...",
		KeyStatusCompleted:   "Загрузка завершена!",
		KeyStatusError:       "Ошибка: ",
		KeyErrorTitle:        "Ошибка",
		KeyPleaseEnterURL:    "Пожалуйста, введите URL YouTube.",
		KeySuccessTitle:      "Готово",
		KeyDownloadSaved:     "Загрузка успешно завершена!\nСохранено в: %s",
		KeyDownloadFailed:    "Ошибка загрузки: ",
		KeyOpenFolder:        "Открыть папку",
		KeyOK:                "OK",
		KeyErrorOpeningDir:   "Не удалось открыть папку: ",
		KeyFile:              "Файл",
		KeySettings:          "Настройки",
		KeyLanguage:          "Язык",
		KeyAutoInstall:       "Устанавливать yt-dlp автоматически",
		KeyDownloadDirectory: "Папка загрузки",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Baixador de Vídeos do YouTube",
		KeyURLLabel:          "URL do YouTube:",
		KeyEnterURL:          "Cole a URL do YouTube aqui...",
		KeyQualityLabel:      "Qualidade do vídeo:",
		KeyBestQuality:       "Melhor qualidade",
		KeyAudioOnly:         "Baixar apenas áudio (formato original)",
		KeySaveTo:            "Salvar em:",
		KeyBrowse:            "Navegar",
		KeyDownload:          "Baixar",
		KeyStatusReady:       "Pronto para baixar",
		KeyStatusDownloading: "Baixando...",
		KeyStatusCompleted:   "Download concluído!",
		KeyStatusError:       "Erro: ",
		KeyErrorTitle:        "Erro",
		KeyPleaseEnterURL:    "Por favor, digite uma URL do YouTube.",
		KeySuccessTitle:      "Sucesso",
		KeyDownloadSaved:     "Download concluído com sucesso!\nSalvo em: %s",
		KeyDownloadFailed:    "Falha no download: ",
		KeyOpenFolder:        "Abrir pasta",
		KeyOK:                "OK",
		KeyErrorOpeningDir:   "Não foi possível abrir a pasta: ",
		KeyFile:              "Arquivo",
		KeySettings:          "Configurações",
		KeyLanguage:          "Idioma",
		KeyAutoInstall:       "Instalar yt-dlp automaticamente",
		KeyDownloadDirectory: "Diretório de Download",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
	}
}
