// Package ui contains the Fyne desktop window. RootUI renders the session
// driven by the controller and forwards user input to it; settings and
// translations live alongside. All UI strings are localized via Localization.
package ui
