package controller

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ytget/tubefetch/internal/download"
	"github.com/ytget/tubefetch/internal/info"
	"github.com/ytget/tubefetch/internal/logging"
	"github.com/ytget/tubefetch/internal/model"
)

const (
	// QueueSize bounds pending messages. Workers block when it is full.
	QueueSize = 64

	opIDPrefix = "op-"
)

// Controller is the UI state controller for one session
type Controller struct {
	fetcher    info.Fetcher
	downloader download.Downloader
	view       View
	dispatch   Dispatcher

	// defaultDestination supplies a folder when the user left it blank
	defaultDestination func() string

	msgs    chan message
	session *model.Session // owned by the Run loop
	opID    string         // id of the operation in flight, "" when idle

	newID func() string
	log   zerolog.Logger
}

// New creates a controller. dispatch may be nil, in which case messages
// are applied on the Run goroutine.
func New(fetcher info.Fetcher, downloader download.Downloader, view View, dispatch Dispatcher) *Controller {
	if dispatch == nil {
		dispatch = Direct
	}
	return &Controller{
		fetcher:    fetcher,
		downloader: downloader,
		view:       view,
		dispatch:   dispatch,
		msgs:       make(chan message, QueueSize),
		session:    model.NewSession(),
		newID:      newOperationID,
		log:        logging.For("controller"),
	}
}

// SetDefaultDestination installs the fallback for an empty destination.
// Must be called before Run.
func (c *Controller) SetDefaultDestination(fn func() string) {
	c.defaultDestination = fn
}

// SetURL records the URL field contents
func (c *Controller) SetURL(url string) {
	c.post(setURLMsg{url: url})
}

// SetDestination records the destination field contents
func (c *Controller) SetDestination(dir string) {
	c.post(setDestinationMsg{dir: dir})
}

// SelectResolution records a selector label such as "720p"
func (c *Controller) SelectResolution(label string) {
	c.post(selectResolutionMsg{label: label})
}

// FetchInfo starts a metadata fetch for the current URL
func (c *Controller) FetchInfo() {
	c.post(fetchRequestedMsg{})
}

// DownloadVideo starts a video download at the selected resolution
func (c *Controller) DownloadVideo() {
	c.post(downloadRequestedMsg{mode: model.ModeVideo})
}

// DownloadAudio starts an MP3 download
func (c *Controller) DownloadAudio() {
	c.post(downloadRequestedMsg{mode: model.ModeAudio})
}

func (c *Controller) post(m message) {
	c.msgs <- m
}

// Run applies messages until ctx is done. It must be started exactly once.
func (c *Controller) Run(ctx context.Context) error {
	c.log.Debug().Str("op", "controller/run").Msg("Controller loop started")
	for {
		select {
		case <-ctx.Done():
			c.log.Debug().Str("op", "controller/run").Msg("Controller loop stopped")
			return ctx.Err()
		case m := <-c.msgs:
			c.dispatch(func() {
				c.apply(ctx, m)
			})
		}
	}
}

// apply is the only place the session is read or written
func (c *Controller) apply(ctx context.Context, m message) {
	switch msg := m.(type) {
	case setURLMsg:
		c.session.URL = msg.url
	case setDestinationMsg:
		c.session.Destination = msg.dir
	case selectResolutionMsg:
		c.selectResolution(msg.label)
	case fetchRequestedMsg:
		c.startFetch(ctx)
	case downloadRequestedMsg:
		c.startDownload(ctx, msg.mode)
	case fetchDoneMsg:
		c.finishFetch(msg)
	case progressMsg:
		c.updateProgress(msg)
	case downloadDoneMsg:
		c.finishDownload(msg)
	default:
		c.log.Warn().Str("op", "controller/apply").Msgf("Unknown message %T", m)
	}
}

func (c *Controller) selectResolution(label string) {
	if label == "" {
		c.session.SelectedResolution = 0
		return
	}
	height, err := model.ParseResolution(label)
	if err != nil {
		c.log.Debug().Str("op", "controller/select").Err(err).Msg("Ignoring resolution")
		return
	}
	for _, h := range c.session.Resolutions {
		if h == height {
			c.session.SelectedResolution = height
			return
		}
	}
	c.log.Debug().Str("op", "controller/select").Int("height", height).Msg("Resolution not in catalog")
}

// rejectIfBusy shows the busy error and reports true while an operation runs
func (c *Controller) rejectIfBusy() bool {
	if !c.session.Status.IsBusy() {
		return false
	}
	c.log.Debug().Str("op", "controller/busy").Str("status", c.session.Status.String()).Msg("Action rejected")
	c.view.ShowError(model.NewOperationError(model.KindBusy, model.ErrBusy))
	return true
}

// requireURL returns the trimmed URL or shows the input error
func (c *Controller) requireURL() (string, bool) {
	url := strings.TrimSpace(c.session.URL)
	if url == "" {
		c.view.ShowError(model.NewOperationError(model.KindInvalidInput, model.ErrEmptyURL))
		return "", false
	}
	return url, true
}

func (c *Controller) startFetch(ctx context.Context) {
	if c.rejectIfBusy() {
		return
	}
	url, ok := c.requireURL()
	if !ok {
		return
	}

	opID := c.begin(model.StatusFetchingInfo)
	c.log.Info().Str("op", "controller/fetch").Str("id", opID).Str("url", url).Msg("Fetching video info")

	go func() {
		videoInfo, err := c.fetcher.FetchInfo(ctx, url)
		c.emit(ctx, fetchDoneMsg{opID: opID, info: videoInfo, err: err})
	}()
}

func (c *Controller) finishFetch(msg fetchDoneMsg) {
	if !c.current(msg.opID) {
		return
	}
	c.end()

	if msg.err != nil {
		c.session.ClearInfo()
		c.renderInfo()
		c.view.ShowError(asOperationError(model.KindFetch, msg.err))
		return
	}

	if !c.session.ApplyInfo(msg.info) {
		c.renderInfo()
		c.view.ShowError(model.NewOperationError(model.KindEmptyCatalog, model.ErrNoResolutions))
		return
	}
	c.renderInfo()
	c.log.Info().
		Str("op", "controller/fetch").
		Str("id", msg.opID).
		Ints("resolutions", c.session.Resolutions).
		Msg("Video info ready")
}

func (c *Controller) renderInfo() {
	c.view.SetTitle(c.session.Title)
	selected := ""
	if c.session.SelectedResolution > 0 {
		selected = model.ResolutionLabel(c.session.SelectedResolution)
	}
	c.view.SetResolutions(model.ResolutionLabels(c.session.Resolutions), selected)
}

func (c *Controller) startDownload(ctx context.Context, mode model.DownloadMode) {
	if c.rejectIfBusy() {
		return
	}
	url, ok := c.requireURL()
	if !ok {
		return
	}

	dest := strings.TrimSpace(c.session.Destination)
	if dest == "" && c.defaultDestination != nil {
		dest = c.defaultDestination()
	}
	if dest == "" {
		c.view.ShowError(model.NewOperationError(model.KindInvalidInput, model.ErrNoDestination))
		return
	}

	opts := model.DownloadOptions{
		URL:         url,
		Mode:        mode,
		Resolution:  c.session.SelectedResolution,
		Destination: dest,
	}

	c.session.ResetProgress()
	c.view.SetProgress(c.session.Progress)
	opID := c.begin(model.StatusDownloading)
	c.log.Info().
		Str("op", "controller/download").
		Str("id", opID).
		Str("mode", mode.String()).
		Int("resolution", opts.Resolution).
		Str("destination", dest).
		Msg("Starting download")

	go func() {
		err := c.downloader.Download(ctx, opts, func(percent float64) {
			c.emit(ctx, progressMsg{opID: opID, percent: percent})
		})
		c.emit(ctx, downloadDoneMsg{opID: opID, mode: mode, destination: dest, err: err})
	}()
}

func (c *Controller) updateProgress(msg progressMsg) {
	if !c.current(msg.opID) || c.session.Status != model.StatusDownloading {
		return
	}
	c.session.SetProgress(msg.percent)
	c.view.SetProgress(c.session.Progress)
}

func (c *Controller) finishDownload(msg downloadDoneMsg) {
	if !c.current(msg.opID) {
		return
	}
	c.end()
	c.session.ResetProgress()
	c.view.SetProgress(c.session.Progress)

	if msg.err != nil {
		c.view.ShowError(download.Classify(msg.err, msg.mode))
		return
	}
	c.view.ShowSuccess(msg.mode, msg.destination)
}

// begin marks the session busy and returns the new operation id
func (c *Controller) begin(status model.OperationStatus) string {
	c.opID = c.newID()
	c.session.Status = status
	c.view.SetBusy(true)
	return c.opID
}

// end returns the session to idle
func (c *Controller) end() {
	c.opID = ""
	c.session.Status = model.StatusIdle
	c.view.SetBusy(false)
}

// current reports whether opID belongs to the operation in flight
func (c *Controller) current(opID string) bool {
	if opID == "" || opID != c.opID {
		c.log.Debug().Str("op", "controller/stale").Str("id", opID).Msg("Dropping stale message")
		return false
	}
	return true
}

// emit is used by workers; it gives up once the loop has stopped
func (c *Controller) emit(ctx context.Context, m message) {
	select {
	case c.msgs <- m:
	case <-ctx.Done():
	}
}

func asOperationError(kind model.ErrorKind, err error) error {
	var opErr *model.OperationError
	if errors.As(err, &opErr) {
		return err
	}
	return model.NewOperationError(kind, err)
}

func newOperationID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return opIDPrefix + uuid.NewString()
	}
	return opIDPrefix + id.String()
}
