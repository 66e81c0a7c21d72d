package ui

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/tubefetch/internal/config"
	"github.com/ytget/tubefetch/internal/controller"
	"github.com/ytget/tubefetch/internal/download"
	"github.com/ytget/tubefetch/internal/info"
	"github.com/ytget/tubefetch/internal/logging"
	"github.com/ytget/tubefetch/internal/model"
	"github.com/ytget/tubefetch/internal/platform"
)

// RootUI represents the main window. It implements controller.View.
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	ctrl         *controller.Controller
	log          zerolog.Logger

	// OnSettingsSaved runs after the settings dialog stored new values
	OnSettingsSaved func(*config.Settings)

	heading          *widget.Label
	urlEntry         *widget.Entry
	fetchBtn         *widget.Button
	title            binding.String
	titleLabel       *widget.Label
	resolutionLabel  *widget.Label
	resolutionSelect *widget.Select
	progress         binding.Float
	progressBar      *widget.ProgressBar
	destinationLabel *widget.Label
	destinationEntry *widget.Entry
	browseBtn        *widget.Button
	videoBtn         *widget.Button
	audioBtn         *widget.Button
}

// NewRootUI builds the window content and starts the controller loop,
// which stops when ctx is done.
func NewRootUI(ctx context.Context, window fyne.Window, app fyne.App, settings *config.Settings, fetcher info.Fetcher, downloader download.Downloader) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		title:        binding.NewString(),
		progress:     binding.NewFloat(),
		log:          logging.For("ui"),
	}

	ui.ctrl = controller.New(fetcher, downloader, ui, fyne.DoAndWait)
	ui.ctrl.SetDefaultDestination(settings.GetDownloadDirectory)

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()

	go func() {
		if err := ui.ctrl.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			ui.log.Error().Str("op", "ui/run").Err(err).Msg("Controller stopped")
		}
	}()

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	l := ui.localization

	ui.createMenu()

	ui.heading = widget.NewLabelWithStyle(l.GetText(KeyHeading), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	// URL row
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(l.GetText(KeyEnterURL))
	ui.urlEntry.Validator = validateURL
	ui.urlEntry.OnChanged = ui.ctrl.SetURL
	// Fetch info when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.ctrl.FetchInfo()
	}
	ui.fetchBtn = widget.NewButton(l.GetText(KeyGetInfo), ui.ctrl.FetchInfo)

	// Title, bound so the controller only has to set a string
	ui.titleLabel = widget.NewLabelWithData(ui.title)
	ui.titleLabel.TextStyle = fyne.TextStyle{Italic: true}
	ui.titleLabel.Wrapping = fyne.TextWrapWord
	ui.titleLabel.Alignment = fyne.TextAlignCenter
	ui.SetTitle("")

	// Resolution selector, options replaced wholesale after every fetch
	ui.resolutionLabel = widget.NewLabel(l.GetText(KeyResolution))
	ui.resolutionSelect = widget.NewSelect(nil, ui.ctrl.SelectResolution)
	ui.resolutionSelect.PlaceHolder = model.ResolutionLabel(download.DefaultResolution)

	// Progress
	ui.progressBar = widget.NewProgressBarWithData(ui.progress)
	ui.progressBar.Min = ProgressBarMin
	ui.progressBar.Max = ProgressBarMax
	ui.progressBar.TextFormatter = func() string {
		return fmt.Sprintf("%.0f%%", ui.progressBar.Value)
	}

	// Destination row
	ui.destinationLabel = widget.NewLabel(l.GetText(KeyDestination))
	ui.destinationEntry = widget.NewEntry()
	ui.destinationEntry.OnChanged = ui.ctrl.SetDestination
	ui.destinationEntry.SetText(ui.settings.GetDownloadDirectory())
	ui.browseBtn = widget.NewButton(IconFolder+" "+l.GetText(KeyBrowse), ui.onBrowseDestination)

	// Actions
	ui.videoBtn = widget.NewButton(IconVideo+" "+l.GetText(KeyDownloadVideo), ui.ctrl.DownloadVideo)
	ui.videoBtn.Importance = widget.HighImportance
	ui.audioBtn = widget.NewButton(IconMusic+" "+l.GetText(KeyDownloadAudio), ui.ctrl.DownloadAudio)

	urlRow := container.NewBorder(nil, nil, nil, ui.fetchBtn, ui.urlEntry)
	resolutionRow := container.NewBorder(nil, nil, ui.resolutionLabel, nil, ui.resolutionSelect)
	destinationRow := container.NewBorder(nil, nil, ui.destinationLabel, ui.browseBtn, ui.destinationEntry)
	actions := container.NewGridWithColumns(2, ui.videoBtn, ui.audioBtn)

	content := container.NewVBox(
		ui.heading,
		urlRow,
		ui.titleLabel,
		resolutionRow,
		ui.progressBar,
		destinationRow,
		actions,
	)

	ui.window.SetContent(container.NewPadded(content))
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	l := ui.localization

	ui.window.SetTitle(l.GetText(KeyAppTitle))
	ui.heading.SetText(l.GetText(KeyHeading))
	ui.urlEntry.SetPlaceHolder(l.GetText(KeyEnterURL))
	ui.fetchBtn.SetText(l.GetText(KeyGetInfo))
	ui.resolutionLabel.SetText(l.GetText(KeyResolution))
	ui.destinationLabel.SetText(l.GetText(KeyDestination))
	ui.browseBtn.SetText(IconFolder + " " + l.GetText(KeyBrowse))
	ui.videoBtn.SetText(IconVideo + " " + l.GetText(KeyDownloadVideo))
	ui.audioBtn.SetText(IconMusic + " " + l.GetText(KeyDownloadAudio))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()

		if ui.OnSettingsSaved != nil {
			ui.OnSettingsSaved(ui.settings)
		}
	}).Show()
}

// onBrowseDestination opens the native folder chooser
func (ui *RootUI) onBrowseDestination() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if uri == nil {
			return
		}
		ui.destinationEntry.SetText(uri.Path())
	}, ui.window)
}

// SetTitle shows the fetched video title
func (ui *RootUI) SetTitle(title string) {
	if title == "" {
		title = ui.localization.GetText(KeyNoTitle)
	}
	if err := ui.title.Set(title); err != nil {
		ui.log.Warn().Str("op", "ui/title").Err(err).Msg("Failed to set title")
	}
}

// SetResolutions replaces the selector options
func (ui *RootUI) SetResolutions(labels []string, selected string) {
	ui.resolutionSelect.Options = labels
	if selected == "" {
		ui.resolutionSelect.ClearSelected()
	} else {
		ui.resolutionSelect.SetSelected(selected)
	}
	ui.resolutionSelect.Refresh()
}

// SetProgress moves the progress bar
func (ui *RootUI) SetProgress(percent float64) {
	if err := ui.progress.Set(percent); err != nil {
		ui.log.Warn().Str("op", "ui/progress").Err(err).Msg("Failed to set progress")
	}
}

// SetBusy disables the action buttons while an operation runs
func (ui *RootUI) SetBusy(busy bool) {
	for _, btn := range []*widget.Button{ui.fetchBtn, ui.videoBtn, ui.audioBtn} {
		if busy {
			btn.Disable()
		} else {
			btn.Enable()
		}
	}
}

// ShowError shows a blocking error dialog
func (ui *RootUI) ShowError(err error) {
	ui.log.Warn().
		Str("op", "ui/error").
		Str("kind", model.KindOf(err).String()).
		Err(err).
		Msg("Operation failed")
	dialog.ShowError(errors.New(ui.localization.ErrorMessage(err)), ui.window)
}

// ShowSuccess reports a finished download
func (ui *RootUI) ShowSuccess(mode model.DownloadMode, destination string) {
	message := ui.localization.SuccessMessage(mode, destination)
	dialog.ShowInformation(ui.localization.GetText(KeySuccess), message, ui.window)

	ui.app.SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyDownloadCompleted),
		Content: truncate(message, NotificationContentMax),
	})

	if ui.settings.GetAutoRevealOnComplete() {
		if err := platform.OpenDirectory(destination); err != nil {
			ui.log.Error().Str("op", "ui/reveal").Str("dir", destination).Err(err).Msg("Failed to open folder")
			dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningDir), err), ui.window)
		}
	}
}

// validateURL validates the entered URL
func validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed
	}

	parsedURL, err := url.Parse(strings.TrimSpace(input))
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}

	return nil
}

// truncate shortens s to at most limit runes
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
