package mocks

import (
	"context"

	"bloodlink/internal/model"
	"bloodlink/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockDonorRepository struct {
	mock.Mock
}

func (m *MockDonorRepository) List(ctx context.Context, f repository.DonorFilter) ([]model.Donor, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Donor), args.Error(1)
}

func (m *MockDonorRepository) FindByID(ctx context.Context, id string) (*model.Donor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donor), args.Error(1)
}

func (m *MockDonorRepository) FindByAuthID(ctx context.Context, authID string) (*model.Donor, error) {
	args := m.Called(ctx, authID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donor), args.Error(1)
}

func (m *MockDonorRepository) Create(ctx context.Context, d *model.Donor) (*model.Donor, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donor), args.Error(1)
}

func (m *MockDonorRepository) UpdateByAuthID(ctx context.Context, authID string, fields map[string]any) (*model.Donor, error) {
	args := m.Called(ctx, authID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donor), args.Error(1)
}
