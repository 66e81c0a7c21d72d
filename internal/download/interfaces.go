package download

import (
	"context"

	"github.com/ytget/tubefetch/internal/model"
)

// ProgressFunc receives download progress in percent (0 to 100)
type ProgressFunc func(percent float64)

// Downloader defines the interface for the download service.
type Downloader interface {
	Download(ctx context.Context, opts model.DownloadOptions, onProgress ProgressFunc) error
}

// Runner executes a prepared request against the download engine.
type Runner interface {
	Run(ctx context.Context, req model.DownloadRequest, onProgress func(model.ProgressEvent)) error
}
