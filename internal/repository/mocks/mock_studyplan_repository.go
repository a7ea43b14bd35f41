package mocks

import (
	"context"

	"auralearn/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockStudyPlanRepository struct {
	mock.Mock
}

func (m *MockStudyPlanRepository) Create(ctx context.Context, plan *model.StudyPlan) (*model.StudyPlan, error) {
	args := m.Called(ctx, plan)
	if fn, ok := args.Get(0).(func(context.Context, *model.StudyPlan) *model.StudyPlan); ok {
		return fn(ctx, plan), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StudyPlan), args.Error(1)
}

func (m *MockStudyPlanRepository) List(ctx context.Context) ([]model.StudyPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StudyPlan), args.Error(1)
}

func (m *MockStudyPlanRepository) FindByID(ctx context.Context, id string) (*model.StudyPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StudyPlan), args.Error(1)
}

func (m *MockStudyPlanRepository) Update(ctx context.Context, id string, plan *model.StudyPlan) (*model.StudyPlan, error) {
	args := m.Called(ctx, id, plan)
	if fn, ok := args.Get(0).(func(context.Context, string, *model.StudyPlan) *model.StudyPlan); ok {
		return fn(ctx, id, plan), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StudyPlan), args.Error(1)
}

func (m *MockStudyPlanRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
