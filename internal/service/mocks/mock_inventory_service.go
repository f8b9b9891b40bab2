package mocks

import (
	"context"

	"bloodlink/internal/model"
	"bloodlink/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) List(ctx context.Context, q service.InventoryQuery) (*service.InventoryResult, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InventoryResult), args.Error(1)
}

func (m *MockInventoryService) Update(ctx context.Context, in service.UpdateInventoryInput) (*service.InventoryView, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InventoryView), args.Error(1)
}

type MockHospitalService struct {
	mock.Mock
}

func (m *MockHospitalService) List(ctx context.Context, city string, bloodBankOnly bool) ([]model.Hospital, error) {
	args := m.Called(ctx, city, bloodBankOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Hospital), args.Error(1)
}

type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) List(ctx context.Context, city, eventType string) ([]model.Event, error) {
	args := m.Called(ctx, city, eventType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Event), args.Error(1)
}

func (m *MockEventService) Create(ctx context.Context, in service.CreateEventInput) (*model.Event, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Get(ctx context.Context) (*service.Dashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Dashboard), args.Error(1)
}
