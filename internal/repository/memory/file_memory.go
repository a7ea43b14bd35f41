package memory

import (
	"context"
	"sync"

	"auralearn/internal/model"
	"auralearn/internal/repository"
)

// fileMemory is an in-memory FileRepository. State lives for the process
// lifetime only; a restart clears it. Safe for concurrent use: mutators hold
// the write lock for the whole read-modify-write, readers hold the read lock.
type fileMemory struct {
	mu    sync.RWMutex
	files map[string]model.UploadedFile
	order []string
}

// NewFileMemory constructs an empty in-memory file store.
func NewFileMemory() repository.FileRepository {
	return &fileMemory{files: make(map[string]model.UploadedFile)}
}

func (r *fileMemory) Create(ctx context.Context, f *model.UploadedFile) (*model.UploadedFile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.files[f.ID] = *f
	r.order = append(r.order, f.ID)

	stored := *f
	return &stored, nil
}

// List returns records in insertion order. Go maps do not iterate in
// insertion order, so the order slice is the contract here.
func (r *fileMemory) List(ctx context.Context) ([]model.UploadedFile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.UploadedFile, 0, len(r.order))
	for _, id := range r.order {
		if f, ok := r.files[id]; ok {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *fileMemory) FindByID(ctx context.Context, id string) (*model.UploadedFile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.files[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &f, nil
}

func (r *fileMemory) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.files[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.files, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
