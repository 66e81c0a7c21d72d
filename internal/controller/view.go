package controller

import "github.com/ytget/tubefetch/internal/model"

// View is the widget surface the controller drives. All methods are
// called on the UI thread.
type View interface {
	SetTitle(title string)
	// SetResolutions replaces the selector options. labels is never
	// mutated after the call; selected is "" when nothing is selected.
	SetResolutions(labels []string, selected string)
	SetProgress(percent float64)
	// SetBusy enables or disables the action buttons
	SetBusy(busy bool)
	ShowError(err error)
	ShowSuccess(mode model.DownloadMode, destination string)
}

// Dispatcher runs fn on the UI thread and returns when it is done
type Dispatcher func(fn func())

// Direct runs fn on the calling goroutine
func Direct(fn func()) {
	fn()
}
