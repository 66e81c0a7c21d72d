package download

// Package download turns a user's download choice into an engine request,
// runs it, relays progress to the caller, and classifies failures. The
// engine itself (yt-dlp, via github.com/lrstanley/go-ytdlp) sits behind the
// Runner interface.
