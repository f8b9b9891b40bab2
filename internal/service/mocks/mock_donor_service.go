package mocks

import (
	"context"

	"bloodlink/internal/auth"
	"bloodlink/internal/model"
	"bloodlink/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockDonorService struct {
	mock.Mock
}

func (m *MockDonorService) List(ctx context.Context, q service.DonorQuery) ([]model.Donor, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Donor), args.Error(1)
}

func (m *MockDonorService) Register(ctx context.Context, id auth.Identity, in service.RegisterDonorInput) (*model.Donor, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donor), args.Error(1)
}

func (m *MockDonorService) Match(ctx context.Context, in service.MatchInput) (*service.MatchResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MatchResult), args.Error(1)
}

func (m *MockDonorService) Contact(ctx context.Context, in service.ContactInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Get(ctx context.Context, id auth.Identity) (*service.ProfileView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProfileView), args.Error(1)
}

func (m *MockProfileService) Save(ctx context.Context, id auth.Identity, in service.ProfileInput) (*model.Donor, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Donor), args.Error(1)
}
