package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"auralearn/internal/model"
	"auralearn/internal/repository"
	"auralearn/internal/storage"
)

// FileService defines the use cases for uploaded study materials.
type FileService interface {
	// Upload stores the content in the storage backend, records metadata,
	// and rolls back storage if the metadata insert fails.
	// - originalFilename is untrusted and used only to extract the
	//   extension; the stored name is a fresh UUID + that extension.
	Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.UploadedFile, error)

	// List returns all uploaded file records. No pagination: the store is
	// in-memory and bounded by process lifetime.
	List(ctx context.Context) ([]model.UploadedFile, error)
}

// fileService is a concrete implementation of FileService.
type fileService struct {
	store storage.Storage
	repo  repository.FileRepository
}

// NewFileService constructs a new FileService.
func NewFileService(store storage.Storage, repo repository.FileRepository) FileService {
	return &fileService{store: store, repo: repo}
}

func (s *fileService) Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.UploadedFile, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	// The UUID guarantees no two uploads ever target the same key.
	id := uuid.New().String()
	savedName := id + safeExt(originalFilename)
	key := "uploads/" + savedName

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	f := &model.UploadedFile{
		ID:           id,
		OriginalName: originalFilename,
		SavedName:    savedName,
		Size:         objInfo.Size,
		UploadedAt:   time.Now().UTC(),
		Path:         objInfo.Key,
	}
	stored, err := s.repo.Create(ctx, f)
	if err != nil {
		// Rollback: remove the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("metadata save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("metadata save failed: %w", err)
	}
	return stored, nil
}

func (s *fileService) List(ctx context.Context) ([]model.UploadedFile, error) {
	return s.repo.List(ctx)
}

// safeExt extracts the extension from an untrusted filename. An extension
// carrying path separators would let the client steer the storage key, so it
// is discarded entirely.
func safeExt(name string) string {
	ext := filepath.Ext(name)
	if strings.ContainsAny(ext, `/\`) {
		return ""
	}
	return ext
}
