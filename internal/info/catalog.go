package info

import (
	"errors"
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/ytget/tubefetch/internal/model"
)

// Metadata JSON paths
const (
	TitlePath   = "title"
	FormatsPath = "formats"
	VCodecKey   = "vcodec"
	HeightKey   = "height"
	NoCodec     = "none"
)

// ErrInvalidMetadata is returned when the engine output is not JSON
var ErrInvalidMetadata = errors.New("invalid metadata JSON")

// ParseVideoInfo converts the engine's JSON dump into a VideoInfo
func ParseVideoInfo(raw []byte) (*model.VideoInfo, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrInvalidMetadata
	}
	doc := gjson.ParseBytes(raw)

	title := strings.TrimSpace(doc.Get(TitlePath).String())
	if title == "" {
		title = model.DefaultVideoTitle
	}

	return &model.VideoInfo{
		Title:       title,
		Resolutions: BuildCatalog(doc.Get(FormatsPath).Array()),
	}, nil
}

// BuildCatalog returns the distinct heights of all formats that carry a
// video stream, sorted ascending. Formats without a video codec or without
// a known height are skipped.
func BuildCatalog(formats []gjson.Result) []int {
	seen := make(map[int]struct{}, len(formats))
	heights := make([]int, 0, len(formats))

	for _, f := range formats {
		height, ok := videoHeight(f)
		if !ok {
			continue
		}
		if _, dup := seen[height]; dup {
			continue
		}
		seen[height] = struct{}{}
		heights = append(heights, height)
	}

	sort.Ints(heights)
	return heights
}

// videoHeight reports the height of a format that has a video codec
func videoHeight(format gjson.Result) (int, bool) {
	vcodec := format.Get(VCodecKey)
	if !vcodec.Exists() || vcodec.Type == gjson.Null {
		return 0, false
	}
	if codec := strings.TrimSpace(vcodec.String()); codec == "" || codec == NoCodec {
		return 0, false
	}

	height := format.Get(HeightKey)
	if height.Type != gjson.Number {
		return 0, false
	}
	h := int(height.Int())
	if h <= 0 {
		return 0, false
	}
	return h, true
}
