package mocks

import (
	"context"
	"time"

	"bloodlink/internal/model"
	"bloodlink/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockQueueRepository struct {
	mock.Mock
}

func (m *MockQueueRepository) ListDay(ctx context.Context, hospitalID, date string) ([]model.QueueEntry, error) {
	args := m.Called(ctx, hospitalID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.QueueEntry), args.Error(1)
}

func (m *MockQueueRepository) Enqueue(ctx context.Context, e *model.QueueEntry) (*model.QueueEntry, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QueueEntry), args.Error(1)
}

func (m *MockQueueRepository) UpdateStatus(ctx context.Context, id, status string, checkIn, completed *time.Time) (*model.QueueEntry, error) {
	args := m.Called(ctx, id, status, checkIn, completed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QueueEntry), args.Error(1)
}

type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) Snapshot(ctx context.Context, recent int) (*repository.DashboardSnapshot, error) {
	args := m.Called(ctx, recent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.DashboardSnapshot), args.Error(1)
}
