package ui

import (
	"errors"
	"fmt"

	"github.com/ytget/tubefetch/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyHeading           = "heading"
	KeyEnterURL          = "enter_url"
	KeyGetInfo           = "get_info"
	KeyResolution        = "resolution"
	KeyDestination       = "destination"
	KeyBrowse            = "browse"
	KeyDownloadVideo     = "download_video"
	KeyDownloadAudio     = "download_audio"
	KeyNoTitle           = "no_title"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyDownloadDirectory = "download_directory"
	KeyYTDLPPath         = "ytdlp_path"
	KeyFFmpegPath        = "ffmpeg_path"
	KeyAutoReveal        = "auto_reveal"
	KeyPathPlaceholder   = "path_placeholder"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeySuccess           = "success"
	KeyVideoSaved        = "video_saved"
	KeyAudioSaved        = "audio_saved"
	KeyDownloadCompleted = "download_completed"
	KeyErrorOpeningDir   = "error_opening_directory"

	// Error texts, one per failure kind
	KeyErrEmptyURL          = "err_empty_url"
	KeyErrNoDestination     = "err_no_destination"
	KeyErrInvalidInput      = "err_invalid_input"
	KeyErrFetch             = "err_fetch"
	KeyErrEmptyCatalog      = "err_empty_catalog"
	KeyErrTranscoderMissing = "err_transcoder_missing"
	KeyErrDownload          = "err_download"
	KeyErrBusy              = "err_busy"
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

	// Final fallback - return key itself
	return key
}

// Format returns localized text for key with args substituted
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
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

// ErrorMessage renders err for an error dialog. Engine messages are kept
// verbatim after a localized lead-in.
func (l *Localization) ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	detail := err.Error()
	var opErr *model.OperationError
	if errors.As(err, &opErr) {
		detail = opErr.Detail()
	}

	switch model.KindOf(err) {
	case model.KindInvalidInput:
		switch {
		case errors.Is(err, model.ErrEmptyURL):
			return l.GetText(KeyErrEmptyURL)
		case errors.Is(err, model.ErrNoDestination):
			return l.GetText(KeyErrNoDestination)
		}
		return l.Format(KeyErrInvalidInput, detail)
	case model.KindFetch:
		return l.Format(KeyErrFetch, detail)
	case model.KindEmptyCatalog:
		return l.GetText(KeyErrEmptyCatalog)
	case model.KindTranscoderMissing:
		return l.GetText(KeyErrTranscoderMissing)
	case model.KindBusy:
		return l.GetText(KeyErrBusy)
	default:
		return l.Format(KeyErrDownload, detail)
	}
}

// SuccessMessage renders the completion text for a download
func (l *Localization) SuccessMessage(mode model.DownloadMode, destination string) string {
	if mode == model.ModeAudio {
		return l.Format(KeyAudioSaved, destination)
	}
	return l.Format(KeyVideoSaved, destination)
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "YouTube Downloader",
		KeyHeading:           "YouTube Video Downloader",
		KeyEnterURL:          "Enter YouTube URL (https://youtube.com/watch?v=...)",
		KeyGetInfo:           "Get Video Info",
		KeyResolution:        "Resolution",
		KeyDestination:       "Save to",
		KeyBrowse:            "Browse",
		KeyDownloadVideo:     "Download Video",
		KeyDownloadAudio:     "Download Audio",
		KeyNoTitle:           "Video title will appear here",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyDownloadDirectory: "Default Download Directory",
		KeyYTDLPPath:         "yt-dlp Executable",
		KeyFFmpegPath:        "FFmpeg Executable or Folder",
		KeyAutoReveal:        "Open folder when a download completes",
		KeyPathPlaceholder:   "Leave empty to search PATH",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeySuccess:           "Success",
		KeyVideoSaved:        "Video downloaded successfully to %s",
		KeyAudioSaved:        "Audio downloaded successfully to %s",
		KeyDownloadCompleted: "Download completed",
		KeyErrorOpeningDir:   "Error opening folder",

		KeyErrEmptyURL:          "Please enter a URL",
		KeyErrNoDestination:     "Please choose a destination folder",
		KeyErrInvalidInput:      "Invalid input: %s",
		KeyErrFetch:             "Failed to fetch video info: %s",
		KeyErrEmptyCatalog:      "No resolutions available for this video",
		KeyErrTranscoderMissing: "FFmpeg is not installed. Please install FFmpeg and make sure it is in your PATH, or set its location in Settings.",
		KeyErrDownload:          "Download failed: %s",
		KeyErrBusy:              "Please wait until the current operation finishes",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "YouTube Загрузчик",
		KeyHeading:           "Загрузчик видео с YouTube",
		KeyEnterURL:          "Введите URL YouTube (https://youtube.com/watch?v=...)",
		KeyGetInfo:           "Получить информацию",
		KeyResolution:        "Разрешение",
		KeyDestination:       "Сохранить в",
		KeyBrowse:            "Обзор",
		KeyDownloadVideo:     "Скачать видео",
		KeyDownloadAudio:     "Скачать аудио",
		KeyNoTitle:           "Здесь появится название видео",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyDownloadDirectory: "Папка загрузки по умолчанию",
		KeyYTDLPPath:         "Путь к yt-dlp",
		KeyFFmpegPath:        "Путь к FFmpeg или папке",
		KeyAutoReveal:        "Открывать папку после загрузки",
		KeyPathPlaceholder:   "Оставьте пустым для поиска в PATH",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeySuccess:           "Готово",
		KeyVideoSaved:        "Видео успешно сохранено в %s",
		KeyAudioSaved:        "Аудио успешно сохранено в %s",
		KeyDownloadCompleted: "Загрузка завершена",
		KeyErrorOpeningDir:   "Ошибка открытия папки",

		KeyErrEmptyURL:          "Пожалуйста, введите URL",
		KeyErrNoDestination:     "Пожалуйста, выберите папку назначения",
		KeyErrInvalidInput:      "Некорректный ввод: %s",
		KeyErrFetch:             "Не удалось получить информацию о видео: %s",
		KeyErrEmptyCatalog:      "Для этого видео нет доступных разрешений",
		KeyErrTranscoderMissing: "FFmpeg не установлен. Установите FFmpeg и добавьте его в PATH или укажите путь в настройках.",
		KeyErrDownload:          "Ошибка загрузки: %s",
		KeyErrBusy:              "Дождитесь завершения текущей операции",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "YouTube Downloader",
		KeyHeading:           "Baixador de Vídeos do YouTube",
		KeyEnterURL:          "Digite a URL do YouTube (https://youtube.com/watch?v=...)",
		KeyGetInfo:           "Obter Informações",
		KeyResolution:        "Resolução",
		KeyDestination:       "Salvar em",
		KeyBrowse:            "Procurar",
		KeyDownloadVideo:     "Baixar Vídeo",
		KeyDownloadAudio:     "Baixar Áudio",
		KeyNoTitle:           "O título do vídeo aparecerá aqui",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyDownloadDirectory: "Pasta de Download Padrão",
		KeyYTDLPPath:         "Executável do yt-dlp",
		KeyFFmpegPath:        "Executável ou pasta do FFmpeg",
		KeyAutoReveal:        "Abrir a pasta ao concluir o download",
		KeyPathPlaceholder:   "Deixe vazio para procurar no PATH",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeySuccess:           "Sucesso",
		KeyVideoSaved:        "Vídeo baixado com sucesso em %s",
		KeyAudioSaved:        "Áudio baixado com sucesso em %s",
		KeyDownloadCompleted: "Download concluído",
		KeyErrorOpeningDir:   "Erro ao abrir a pasta",

		KeyErrEmptyURL:          "Por favor, digite uma URL",
		KeyErrNoDestination:     "Por favor, escolha uma pasta de destino",
		KeyErrInvalidInput:      "Entrada inválida: %s",
		KeyErrFetch:             "Falha ao obter informações do vídeo: %s",
		KeyErrEmptyCatalog:      "Nenhuma resolução disponível para este vídeo",
		KeyErrTranscoderMissing: "O FFmpeg não está instalado. Instale o FFmpeg e adicione-o ao PATH, ou defina o caminho nas Configurações.",
		KeyErrDownload:          "Falha no download: %s",
		KeyErrBusy:              "Aguarde a conclusão da operação atual",
	}
}
