package transcode

// Locator resolves the external transcoder binary.
type Locator interface {
	// Locate returns the path to ffmpeg or model.ErrTranscoderMissing.
	Locate() (string, error)
}
