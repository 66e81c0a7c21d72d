package controller

import "github.com/ytget/tubefetch/internal/model"

// message is anything the Run loop applies to the session
type message interface {
	isMessage()
}

// User input

type setURLMsg struct{ url string }

type setDestinationMsg struct{ dir string }

type selectResolutionMsg struct{ label string }

type fetchRequestedMsg struct{}

type downloadRequestedMsg struct{ mode model.DownloadMode }

// Worker output

type fetchDoneMsg struct {
	opID string
	info *model.VideoInfo
	err  error
}

type progressMsg struct {
	opID    string
	percent float64
}

type downloadDoneMsg struct {
	opID        string
	mode        model.DownloadMode
	destination string
	err         error
}

func (setURLMsg) isMessage()            {}
func (setDestinationMsg) isMessage()    {}
func (selectResolutionMsg) isMessage()  {}
func (fetchRequestedMsg) isMessage()    {}
func (downloadRequestedMsg) isMessage() {}
func (fetchDoneMsg) isMessage()         {}
func (progressMsg) isMessage()          {}
func (downloadDoneMsg) isMessage()      {}
