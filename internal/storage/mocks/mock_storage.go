package mocks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"bloodlink/internal/storage"
)

// MockStorage is a certificate bucket double. Put drains the body so tests
// can inspect the uploaded document with Object; expectations match on the
// key and options only.
type MockStorage struct {
	mock.Mock

	mu      sync.Mutex
	objects map[string][]byte
}

// Put records the body under key. Returning nil from the expectation reports
// the stored key, size and content type back to the caller.
func (m *MockStorage) Put(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) (storage.ObjectInfo, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return storage.ObjectInfo{}, err
	}

	args := m.Called(ctx, key, opt)
	if args.Error(1) != nil {
		return storage.ObjectInfo{}, args.Error(1)
	}

	m.mu.Lock()
	if m.objects == nil {
		m.objects = make(map[string][]byte)
	}
	m.objects[key] = body
	m.mu.Unlock()

	if args.Get(0) == nil {
		return storage.ObjectInfo{Key: key, Size: int64(len(body)), ContentType: opt.ContentType}, nil
	}
	return args.Get(0).(storage.ObjectInfo), nil
}

// Object returns what the last successful Put stored under key.
func (m *MockStorage) Object(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.objects[key]
	return b, ok
}

// Keys lists every stored key.
func (m *MockStorage) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.objects))
	for k := range m.objects {
		keys = append(keys, k)
	}
	return keys
}

func (m *MockStorage) Get(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, key)
	if err := args.Error(2); err != nil {
		return nil, storage.ObjectInfo{}, err
	}
	if args.Get(0) == nil {
		if b, ok := m.Object(key); ok {
			return io.NopCloser(bytes.NewReader(b)), storage.ObjectInfo{Key: key, Size: int64(len(b))}, nil
		}
		return nil, storage.ObjectInfo{}, fmt.Errorf("no object stored at %q", key)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(storage.ObjectInfo), nil
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	if err := args.Error(0); err != nil {
		return err
	}
	m.mu.Lock()
	delete(m.objects, key)
	m.mu.Unlock()
	return nil
}

func (m *MockStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}
