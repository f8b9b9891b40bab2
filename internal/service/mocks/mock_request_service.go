package mocks

import (
	"context"

	"bloodlink/internal/model"
	"bloodlink/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockBloodRequestService struct {
	mock.Mock
}

func (m *MockBloodRequestService) List(ctx context.Context, q service.RequestQuery) ([]model.BloodRequest, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BloodRequest), args.Error(1)
}

func (m *MockBloodRequestService) Create(ctx context.Context, in service.CreateRequestInput) (*model.BloodRequest, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BloodRequest), args.Error(1)
}

func (m *MockBloodRequestService) CreateEmergency(ctx context.Context, in service.CreateRequestInput) (*service.EmergencyResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.EmergencyResult), args.Error(1)
}

func (m *MockBloodRequestService) UpdateStatus(ctx context.Context, id, status string) (*model.BloodRequest, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BloodRequest), args.Error(1)
}

type MockDonationService struct {
	mock.Mock
}

func (m *MockDonationService) List(ctx context.Context, q service.DonationQuery) ([]model.Donation, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Donation), args.Error(1)
}

func (m *MockDonationService) Record(ctx context.Context, in service.RecordDonationInput) (*model.Donation, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donation), args.Error(1)
}
