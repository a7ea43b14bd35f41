package mocks

import (
	"context"

	"auralearn/internal/model"
	"auralearn/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockStudyPlanService struct {
	mock.Mock
}

func (m *MockStudyPlanService) Create(ctx context.Context, in service.StudyPlanInput) (*model.StudyPlan, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StudyPlan), args.Error(1)
}

func (m *MockStudyPlanService) List(ctx context.Context) ([]model.StudyPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StudyPlan), args.Error(1)
}

func (m *MockStudyPlanService) Get(ctx context.Context, id string) (*model.StudyPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StudyPlan), args.Error(1)
}

func (m *MockStudyPlanService) Update(ctx context.Context, id string, in service.StudyPlanInput) (*model.StudyPlan, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StudyPlan), args.Error(1)
}

func (m *MockStudyPlanService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
