package platform

// Package platform contains OS integration and external tooling glue:
// filesystem helpers, the yt-dlp engine adapter, and folder reveal.
