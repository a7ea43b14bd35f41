package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"auralearn/internal/model"
	"auralearn/internal/repository"
)

// StudyPlanInput carries the caller-supplied fields of a study plan.
// Update is a whole-record replace, so create and update share this shape.
type StudyPlanInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Topics      []string `json:"topics"`
}

// StudyPlanService defines the use cases for study plans.
type StudyPlanService interface {
	// Create assigns a fresh identifier and both timestamps. It has no
	// validation failure path: empty fields are accepted as-is.
	Create(ctx context.Context, in StudyPlanInput) (*model.StudyPlan, error)

	// List returns all study plans.
	List(ctx context.Context) ([]model.StudyPlan, error)

	// Get returns a study plan by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*model.StudyPlan, error)

	// Update replaces title/description/topics wholesale, preserves the
	// original CreatedAt and refreshes UpdatedAt. Returns ErrNotFound if
	// the id is absent.
	Update(ctx context.Context, id string, in StudyPlanInput) (*model.StudyPlan, error)

	// Delete removes a study plan permanently, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}

type studyPlanService struct {
	repo repository.StudyPlanRepository
}

// NewStudyPlanService constructs a new StudyPlanService.
func NewStudyPlanService(repo repository.StudyPlanRepository) StudyPlanService {
	return &studyPlanService{repo: repo}
}

func (s *studyPlanService) Create(ctx context.Context, in StudyPlanInput) (*model.StudyPlan, error) {
	now := time.Now().UTC()
	plan := &model.StudyPlan{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Topics:      in.Topics,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.repo.Create(ctx, plan)
}

func (s *studyPlanService) List(ctx context.Context) ([]model.StudyPlan, error) {
	return s.repo.List(ctx)
}

func (s *studyPlanService) Get(ctx context.Context, id string) (*model.StudyPlan, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	plan, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return plan, nil
}

func (s *studyPlanService) Update(ctx context.Context, id string, in StudyPlanInput) (*model.StudyPlan, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	plan := &model.StudyPlan{
		Title:       in.Title,
		Description: in.Description,
		Topics:      in.Topics,
		UpdatedAt:   time.Now().UTC(),
	}
	updated, err := s.repo.Update(ctx, id, plan)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *studyPlanService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
