package model

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures shown to the user
type ErrorKind int

const (
	// KindInvalidInput is a problem with what the user typed; no work was started
	KindInvalidInput ErrorKind = iota
	// KindFetch is any failure reported by the engine while reading metadata
	KindFetch
	// KindEmptyCatalog means the fetch worked but no usable video format exists
	KindEmptyCatalog
	// KindTranscoderMissing means ffmpeg is required but could not be found
	KindTranscoderMissing
	// KindDownload is any other download failure
	KindDownload
	// KindBusy means an operation is already running
	KindBusy
)

// String returns a short name for logging
func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindFetch:
		return "fetch"
	case KindEmptyCatalog:
		return "empty_catalog"
	case KindTranscoderMissing:
		return "transcoder_missing"
	case KindDownload:
		return "download"
	case KindBusy:
		return "busy"
	default:
		return "unknown"
	}
}

var (
	ErrEmptyURL          = errors.New("please enter a URL")
	ErrNoDestination     = errors.New("no destination folder")
	ErrNoResolutions     = errors.New("no resolutions available for this video")
	ErrBusy              = errors.New("another operation is in progress")
	ErrTranscoderMissing = errors.New("ffmpeg is required but was not found")
)

// OperationError is the error surfaced to the user for a failed action
type OperationError struct {
	Kind ErrorKind
	Mode DownloadMode // set for download failures
	Err  error
}

// NewOperationError wraps err with a kind
func NewOperationError(kind ErrorKind, err error) *OperationError {
	return &OperationError{Kind: kind, Err: err}
}

func (e *OperationError) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Detail returns the underlying message without the kind prefix
func (e *OperationError) Detail() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// KindOf extracts the kind of err. Unclassified errors count as KindDownload.
func KindOf(err error) ErrorKind {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	return KindDownload
}
