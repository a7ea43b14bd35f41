package repository

import (
	"context"

	"auralearn/internal/model"
)

// StudyPlanRepository defines data access for study plans.
type StudyPlanRepository interface {
	// Create inserts a new study plan record. It never fails on field
	// contents; the caller provides ID and both timestamps.
	Create(ctx context.Context, plan *model.StudyPlan) (*model.StudyPlan, error)

	// List returns all study plans in insertion order.
	List(ctx context.Context) ([]model.StudyPlan, error)

	// FindByID returns a study plan by its ID, or ErrNotFound.
	FindByID(ctx context.Context, id string) (*model.StudyPlan, error)

	// Update replaces the stored record for id with plan, keeping the
	// stored CreatedAt and forcing plan.ID to id. The replacement happens
	// atomically under the store lock. Returns ErrNotFound if id is absent.
	Update(ctx context.Context, id string, plan *model.StudyPlan) (*model.StudyPlan, error)

	// Delete removes a study plan by ID, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}
