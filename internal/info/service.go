package info

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ytget/tubefetch/internal/logging"
	"github.com/ytget/tubefetch/internal/model"
)

// Timeout constants
const (
	DefaultFetchTimeout = 60 * time.Second
)

// Service fetches video metadata through an Extractor
type Service struct {
	extractor Extractor
	timeout   time.Duration
	log       zerolog.Logger
}

// NewService creates a new info service
func NewService(extractor Extractor) *Service {
	return &Service{
		extractor: extractor,
		timeout:   DefaultFetchTimeout,
		log:       logging.For("info"),
	}
}

// SetTimeout sets the timeout for metadata requests. Zero disables it.
func (s *Service) SetTimeout(timeout time.Duration) {
	s.timeout = timeout
}

// FetchInfo returns the title and resolution catalog for url. The engine is
// not called for an empty URL. Engine failures come back as KindFetch.
func (s *Service) FetchInfo(ctx context.Context, url string) (*model.VideoInfo, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, model.NewOperationError(model.KindInvalidInput, model.ErrEmptyURL)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	started := time.Now()
	raw, err := s.extractor.ExtractInfo(ctx, url)
	if err != nil {
		s.log.Error().Str("op", "info/fetch").Str("url", url).Err(err).Msg("Metadata extraction failed")
		return nil, model.NewOperationError(model.KindFetch, err)
	}

	info, err := ParseVideoInfo(raw)
	if err != nil {
		s.log.Error().Str("op", "info/fetch").Str("url", url).Err(err).Msg("Metadata parsing failed")
		return nil, model.NewOperationError(model.KindFetch, fmt.Errorf("failed to parse metadata: %w", err))
	}

	s.log.Info().
		Str("op", "info/fetch").
		Str("title", info.Title).
		Ints("resolutions", info.Resolutions).
		Dur("took", time.Since(started)).
		Msg("Metadata fetched")
	return info, nil
}
