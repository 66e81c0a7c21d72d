package info

import (
	"errors"
	"testing"

	"github.com/tidwall/gjson"
)

func TestBuildCatalog(t *testing.T) {
	tests := []struct {
		name     string
		formats  string
		expected []int
	}{
		{
			name:     "empty list",
			formats:  `[]`,
			expected: []int{},
		},
		{
			name: "sorted and deduplicated",
			formats: `[
				{"vcodec": "avc1", "height": 720},
				{"vcodec": "vp9", "height": 360},
				{"vcodec": "avc1", "height": 720},
				{"vcodec": "av01", "height": 480}
			]`,
			expected: []int{360, 480, 720},
		},
		{
			name: "audio-only formats are skipped",
			formats: `[
				{"vcodec": "none", "acodec": "opus", "height": null},
				{"vcodec": "none", "height": 1080},
				{"vcodec": "avc1", "height": 240}
			]`,
			expected: []int{240},
		},
		{
			name: "missing or null codec is skipped",
			formats: `[
				{"height": 1080},
				{"vcodec": null, "height": 720},
				{"vcodec": "", "height": 480},
				{"vcodec": "vp9", "height": 144}
			]`,
			expected: []int{144},
		},
		{
			name: "unknown height is skipped",
			formats: `[
				{"vcodec": "avc1"},
				{"vcodec": "avc1", "height": null},
				{"vcodec": "avc1", "height": 0},
				{"vcodec": "avc1", "height": "720"},
				{"vcodec": "avc1", "height": 1440}
			]`,
			expected: []int{1440},
		},
		{
			name:     "fractional heights are truncated",
			formats:  `[{"vcodec": "avc1", "height": 720.0}, {"vcodec": "avc1", "height": 720}]`,
			expected: []int{720},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildCatalog(gjson.Parse(tt.formats).Array())

			if len(got) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
			for i := range tt.expected {
				if got[i] != tt.expected[i] {
					t.Errorf("expected %v, got %v", tt.expected, got)
					break
				}
			}
		})
	}
}

func TestBuildCatalogIsStrictlyIncreasing(t *testing.T) {
	formats := `[
		{"vcodec": "avc1", "height": 2160}, {"vcodec": "avc1", "height": 144},
		{"vcodec": "vp9", "height": 1080}, {"vcodec": "vp9", "height": 144},
		{"vcodec": "av01", "height": 2160}, {"vcodec": "avc1", "height": 360}
	]`

	got := BuildCatalog(gjson.Parse(formats).Array())
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("catalog not strictly increasing: %v", got)
		}
	}
}

func TestParseVideoInfo(t *testing.T) {
	raw := []byte(`{
		"id": "abc",
		"title": "Some Video",
		"formats": [
			{"format_id": "140", "vcodec": "none", "acodec": "mp4a.40.2"},
			{"format_id": "18", "vcodec": "avc1.42001E", "height": 360},
			{"format_id": "22", "vcodec": "avc1.64001F", "height": 720}
		]
	}`)

	info, err := ParseVideoInfo(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if info.Title != "Some Video" {
		t.Errorf("expected title 'Some Video', got '%s'", info.Title)
	}
	if len(info.Resolutions) != 2 || info.Resolutions[0] != 360 || info.Resolutions[1] != 720 {
		t.Errorf("unexpected resolutions %v", info.Resolutions)
	}
}

func TestParseVideoInfo_DefaultTitle(t *testing.T) {
	info, err := ParseVideoInfo([]byte(`{"formats": []}`))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if info.Title != "Unknown Title" {
		t.Errorf("expected default title, got '%s'", info.Title)
	}
	if len(info.Resolutions) != 0 {
		t.Errorf("expected empty catalog, got %v", info.Resolutions)
	}
}

func TestParseVideoInfo_InvalidJSON(t *testing.T) {
	_, err := ParseVideoInfo([]byte(`{not json`))
	if !errors.Is(err, ErrInvalidMetadata) {
		t.Errorf("expected ErrInvalidMetadata, got %v", err)
	}
}
