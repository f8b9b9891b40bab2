package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bloodlink/internal/cache"
	cacheMocks "bloodlink/internal/cache/mocks"
	"bloodlink/internal/logging"
	"bloodlink/internal/model"
	"bloodlink/internal/repository"
	repoMocks "bloodlink/internal/repository/mocks"
)

func TestLivesSaved(t *testing.T) {
	assert.Equal(t, 0, LivesSaved(0))
	assert.Equal(t, 3, LivesSaved(1))
	assert.Equal(t, 36, LivesSaved(12))
}

func TestDashboardService_Get(t *testing.T) {
	ctx := context.Background()
	ttl := time.Minute
	snapshot := &repository.DashboardSnapshot{
		TotalDonors:       10,
		TotalDonations:    4,
		TotalUnits:        5,
		TotalHospitals:    2,
		ActiveEvents:      1,
		PendingRequests:   3,
		EmergencyRequests: 1,
		InventoryByType:   map[string]int{"O-": 7},
		RecentDonations:   []model.Donation{{ID: "n1"}},
	}

	t.Run("cache hit skips the database", func(t *testing.T) {
		mRepo := new(repoMocks.MockDashboardRepository)
		mCache := new(cacheMocks.MockCache)
		mCache.On("Get", ctx, DashboardCacheKey, mock.AnythingOfType("*service.Dashboard")).
			Return(func(dst any) { dst.(*Dashboard).Stats.TotalDonors = 99 }, nil)

		d, err := NewDashboardService(mRepo, mCache, ttl, logging.Discard()).Get(ctx)

		require.NoError(t, err)
		assert.Equal(t, 99, d.Stats.TotalDonors)
		mRepo.AssertNotCalled(t, "Snapshot", mock.Anything, mock.Anything)
	})

	t.Run("miss builds and stores", func(t *testing.T) {
		mRepo := new(repoMocks.MockDashboardRepository)
		mCache := new(cacheMocks.MockCache)
		mCache.On("Get", ctx, DashboardCacheKey, mock.Anything).Return(nil, cache.ErrMiss)
		mRepo.On("Snapshot", ctx, 5).Return(snapshot, nil)
		mCache.On("Set", ctx, DashboardCacheKey, mock.AnythingOfType("*service.Dashboard"), ttl).Return(nil)

		d, err := NewDashboardService(mRepo, mCache, ttl, logging.Discard()).Get(ctx)

		require.NoError(t, err)
		assert.Equal(t, DashboardStats{
			TotalDonors:       10,
			TotalDonations:    4,
			TotalUnits:        5,
			LivesSaved:        15,
			TotalHospitals:    2,
			ActiveEvents:      1,
			PendingRequests:   3,
			EmergencyRequests: 1,
		}, d.Stats)
		assert.Equal(t, map[string]int{
			"A+": 0, "A-": 0, "B+": 0, "B-": 0,
			"AB+": 0, "AB-": 0, "O+": 0, "O-": 7,
		}, d.Inventory)
		assert.Len(t, d.RecentDonations, 1)
		mCache.AssertExpectations(t)
	})

	t.Run("cache errors are logged and tolerated", func(t *testing.T) {
		mRepo := new(repoMocks.MockDashboardRepository)
		mCache := new(cacheMocks.MockCache)
		mCache.On("Get", ctx, DashboardCacheKey, mock.Anything).Return(nil, errors.New("redis down"))
		mRepo.On("Snapshot", ctx, 5).Return(&repository.DashboardSnapshot{}, nil)
		mCache.On("Set", ctx, DashboardCacheKey, mock.Anything, ttl).Return(errors.New("redis down"))
		logger, hook := test.NewNullLogger()

		d, err := NewDashboardService(mRepo, mCache, ttl, logger).Get(ctx)

		require.NoError(t, err)
		assert.Len(t, d.Inventory, 8)
		assert.NotNil(t, d.RecentDonations)
		require.Len(t, hook.AllEntries(), 2)
		assert.Equal(t, "dashboard_cache_read_failed", hook.AllEntries()[0].Message)
		assert.Equal(t, "dashboard_cache_write_failed", hook.AllEntries()[1].Message)
	})

	t.Run("zero ttl never writes", func(t *testing.T) {
		mRepo := new(repoMocks.MockDashboardRepository)
		mCache := new(cacheMocks.MockCache)
		mCache.On("Get", ctx, DashboardCacheKey, mock.Anything).Return(nil, cache.ErrMiss)
		mRepo.On("Snapshot", ctx, 5).Return(snapshot, nil)

		_, err := NewDashboardService(mRepo, mCache, 0, logging.Discard()).Get(ctx)

		require.NoError(t, err)
		mCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("snapshot failure", func(t *testing.T) {
		mRepo := new(repoMocks.MockDashboardRepository)
		mCache := new(cacheMocks.MockCache)
		mCache.On("Get", ctx, DashboardCacheKey, mock.Anything).Return(nil, cache.ErrMiss)
		mRepo.On("Snapshot", ctx, 5).Return(nil, errors.New("db down"))

		d, err := NewDashboardService(mRepo, mCache, ttl, logging.Discard()).Get(ctx)

		assert.EqualError(t, err, "db down")
		assert.Nil(t, d)
	})
}
