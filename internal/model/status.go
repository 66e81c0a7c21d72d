package model

// OperationStatus represents what the session is currently doing
type OperationStatus string

const (
	// StatusIdle means no operation is in flight
	StatusIdle OperationStatus = "Idle"

	// StatusFetchingInfo means a metadata request is running
	StatusFetchingInfo OperationStatus = "FetchingInfo"

	// StatusDownloading means a download is running
	StatusDownloading OperationStatus = "Downloading"
)

// String returns the string representation of OperationStatus
func (s OperationStatus) String() string {
	return string(s)
}

// IsBusy returns true while a background operation owns the session
func (s OperationStatus) IsBusy() bool {
	return s == StatusFetchingInfo || s == StatusDownloading
}
