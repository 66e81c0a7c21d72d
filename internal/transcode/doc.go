// Package transcode describes the post-download conversion handed to the
// engine and locates the ffmpeg binary it depends on.
package transcode
