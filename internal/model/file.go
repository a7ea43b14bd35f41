package model

import "time"

// UploadedFile represents an uploaded study material in the system.
// This is a pure domain model with no storage-specific dependencies or tags.
// Records are immutable once created; only deletion may be added later.
type UploadedFile struct {
	ID           string    `json:"id"`
	OriginalName string    `json:"original_name"`
	SavedName    string    `json:"saved_name"`
	Size         int64     `json:"size"`
	UploadedAt   time.Time `json:"uploaded_at"`
	Path         string    `json:"path"`
}
