package info

import (
	"context"

	"github.com/ytget/tubefetch/internal/model"
)

// Fetcher defines the interface for the info service.
type Fetcher interface {
	// FetchInfo returns the title and resolution catalog for url
	FetchInfo(ctx context.Context, url string) (*model.VideoInfo, error)
}

// Extractor is the engine side: it returns the raw JSON metadata for a URL
// without downloading any media.
type Extractor interface {
	ExtractInfo(ctx context.Context, url string) ([]byte, error)
}
