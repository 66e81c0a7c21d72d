package model

// Package model defines the data shared across the app: session state,
// the resolution catalog, download requests and the user-facing error
// taxonomy. It has no dependencies on other project packages.
