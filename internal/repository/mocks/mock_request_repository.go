package mocks

import (
	"context"
	"time"

	"bloodlink/internal/model"
	"bloodlink/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockBloodRequestRepository struct {
	mock.Mock
}

func (m *MockBloodRequestRepository) List(ctx context.Context, f repository.RequestFilter) ([]model.BloodRequest, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BloodRequest), args.Error(1)
}

func (m *MockBloodRequestRepository) Create(ctx context.Context, r *model.BloodRequest) (*model.BloodRequest, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BloodRequest), args.Error(1)
}

func (m *MockBloodRequestRepository) UpdateStatus(ctx context.Context, id, status string, at time.Time) (*model.BloodRequest, error) {
	args := m.Called(ctx, id, status, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BloodRequest), args.Error(1)
}

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) CreateBatch(ctx context.Context, ns []model.Notification) error {
	args := m.Called(ctx, ns)
	return args.Error(0)
}

func (m *MockNotificationRepository) UpsertMatch(ctx context.Context, dm model.DonorMatch) error {
	args := m.Called(ctx, dm)
	return args.Error(0)
}
