package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockCache struct {
	mock.Mock
}

// Get returns (fill, err): a non-nil func(dst any) in the first slot fills dst.
func (m *MockCache) Get(ctx context.Context, key string, dst any) error {
	args := m.Called(ctx, key, dst)
	if fill, ok := args.Get(0).(func(any)); ok && fill != nil {
		fill(dst)
	}
	return args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	args := m.Called(ctx, key, v, ttl)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockCache) Close() error {
	args := m.Called()
	return args.Error(0)
}
