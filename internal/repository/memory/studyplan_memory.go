package memory

import (
	"context"
	"slices"
	"sync"

	"auralearn/internal/model"
	"auralearn/internal/repository"
)

// studyPlanMemory is an in-memory StudyPlanRepository guarded by a single
// coarse-grained RWMutex, which is enough for the low-throughput design.
type studyPlanMemory struct {
	mu    sync.RWMutex
	plans map[string]model.StudyPlan
	order []string
}

// NewStudyPlanMemory constructs an empty in-memory study plan store.
func NewStudyPlanMemory() repository.StudyPlanRepository {
	return &studyPlanMemory{plans: make(map[string]model.StudyPlan)}
}

func (r *studyPlanMemory) Create(ctx context.Context, plan *model.StudyPlan) (*model.StudyPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := clonePlan(plan)
	r.plans[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	out := clonePlan(&stored)
	return &out, nil
}

func (r *studyPlanMemory) List(ctx context.Context) ([]model.StudyPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.StudyPlan, 0, len(r.order))
	for _, id := range r.order {
		if p, ok := r.plans[id]; ok {
			out = append(out, clonePlan(&p))
		}
	}
	return out, nil
}

func (r *studyPlanMemory) FindByID(ctx context.Context, id string) (*model.StudyPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := clonePlan(&p)
	return &out, nil
}

// Update is a whole-record replace: the path id wins over any id in the
// payload and the stored CreatedAt is preserved. Runs atomically under the
// write lock so readers never observe a partially-applied mutation.
func (r *studyPlanMemory) Update(ctx context.Context, id string, plan *model.StudyPlan) (*model.StudyPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.plans[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	stored := clonePlan(plan)
	stored.ID = id
	stored.CreatedAt = old.CreatedAt
	r.plans[id] = stored

	out := clonePlan(&stored)
	return &out, nil
}

func (r *studyPlanMemory) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.plans[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.plans, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// clonePlan copies the record including its topics slice so callers can
// never alias the store's internal state.
func clonePlan(p *model.StudyPlan) model.StudyPlan {
	out := *p
	out.Topics = slices.Clone(p.Topics)
	return out
}
