package mocks

import (
	"context"
	"io"

	"bloodlink/internal/model"
	"bloodlink/internal/service"
	"bloodlink/internal/storage"
	"github.com/stretchr/testify/mock"
)

type MockCertificateService struct {
	mock.Mock
}

func (m *MockCertificateService) List(ctx context.Context, userID string) ([]model.Certificate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Certificate), args.Error(1)
}

func (m *MockCertificateService) Issue(ctx context.Context, in service.IssueCertificateInput) (*service.IssuedCertificate, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.IssuedCertificate), args.Error(1)
}

func (m *MockCertificateService) DownloadURL(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *MockCertificateService) Open(ctx context.Context, id string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, storage.ObjectInfo{}, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), args.Error(2)
}

type MockQueueService struct {
	mock.Mock
}

func (m *MockQueueService) Day(ctx context.Context, hospitalID, date string) (*service.QueueDay, error) {
	args := m.Called(ctx, hospitalID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.QueueDay), args.Error(1)
}

func (m *MockQueueService) Enqueue(ctx context.Context, in service.EnqueueInput) (*service.EnqueueResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.EnqueueResult), args.Error(1)
}

func (m *MockQueueService) UpdateStatus(ctx context.Context, id, status string) (*model.QueueEntry, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QueueEntry), args.Error(1)
}

type MockEligibilityService struct {
	mock.Mock
}

func (m *MockEligibilityService) Check(ctx context.Context, in service.HealthCheckInput) (*service.HealthCheckResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.HealthCheckResult), args.Error(1)
}
