package info

// Package info reads video metadata through the extraction engine and turns
// the engine's format list into the resolution catalog shown in the UI.
