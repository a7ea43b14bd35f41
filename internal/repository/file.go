package repository

import (
	"context"

	"auralearn/internal/model"
)

// FileRepository defines data access for uploaded file metadata.
// No business logic here — strictly store operations.
type FileRepository interface {
	// Create inserts a new file record. The caller provides all fields
	// (ID, SavedName, UploadedAt); records are never mutated afterwards.
	Create(ctx context.Context, f *model.UploadedFile) (*model.UploadedFile, error)

	// List returns all file records in insertion order.
	List(ctx context.Context) ([]model.UploadedFile, error)

	// FindByID returns a file record by its ID, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.UploadedFile, error)

	// Delete removes a file record by ID, or returns ErrNotFound.
	// Not exposed over HTTP yet; kept so deletion can be added later.
	Delete(ctx context.Context, id string) error
}
