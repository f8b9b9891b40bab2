package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cacheMocks "bloodlink/internal/cache/mocks"
	"bloodlink/internal/logging"
	"bloodlink/internal/model"
	"bloodlink/internal/repository"
	repoMocks "bloodlink/internal/repository/mocks"
)

func TestDonationService_List(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockDonationRepository)
	mRepo.On("List", ctx, repository.DonationFilter{DonorID: "d1", Status: "completed"}).
		Return([]model.Donation{{ID: "n1"}}, nil)

	svc := NewDonationService(mRepo, new(cacheMocks.MockCache), logging.Discard())
	got, err := svc.List(ctx, DonationQuery{DonorID: "d1", Status: "completed"})

	require.NoError(t, err)
	assert.Len(t, got, 1)
	mRepo.AssertExpectations(t)
}

func TestDonationService_Record(t *testing.T) {
	ctx := context.Background()
	donated := time.Date(2026, 10, 1, 10, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))

	tests := []struct {
		name       string
		in         RecordDonationInput
		setupMocks func(r *repoMocks.MockDonationRepository, c *cacheMocks.MockCache)
		wantErr    error
		wantLog    string
	}{
		{
			name: "defaults and cache eviction",
			in:   RecordDonationInput{DonorID: "d1"},
			setupMocks: func(r *repoMocks.MockDonationRepository, c *cacheMocks.MockCache) {
				r.On("Record", ctx, mock.MatchedBy(func(d *model.Donation) bool {
					return d.DonorID == "d1" && d.UnitsDonated == 1 && d.Status == model.DonationCompleted &&
						d.DonationDate.Equal(fixedNow) && d.ID != ""
				})).Return(&model.Donation{ID: "n1"}, nil)
				c.On("Delete", ctx, []string{DashboardCacheKey}).Return(nil)
			},
		},
		{
			name: "explicit values kept in UTC",
			in: RecordDonationInput{
				DonorID: "d1", DonationDate: &donated, UnitsDonated: 2, Status: model.DonationScheduled,
			},
			setupMocks: func(r *repoMocks.MockDonationRepository, c *cacheMocks.MockCache) {
				r.On("Record", ctx, mock.MatchedBy(func(d *model.Donation) bool {
					return d.UnitsDonated == 2 && d.Status == model.DonationScheduled &&
						d.DonationDate.Equal(donated) && d.DonationDate.Location() == time.UTC
				})).Return(&model.Donation{ID: "n1"}, nil)
				c.On("Delete", ctx, []string{DashboardCacheKey}).Return(nil)
			},
		},
		{
			name: "eviction failure is only logged",
			in:   RecordDonationInput{DonorID: "d1"},
			setupMocks: func(r *repoMocks.MockDonationRepository, c *cacheMocks.MockCache) {
				r.On("Record", ctx, mock.Anything).Return(&model.Donation{ID: "n1"}, nil)
				c.On("Delete", ctx, []string{DashboardCacheKey}).Return(errors.New("redis down"))
			},
			wantLog: "dashboard_cache_evict_failed",
		},
		{
			name: "unknown donor",
			in:   RecordDonationInput{DonorID: "ghost"},
			setupMocks: func(r *repoMocks.MockDonationRepository, c *cacheMocks.MockCache) {
				r.On("Record", ctx, mock.Anything).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name:       "missing donor",
			in:         RecordDonationInput{},
			setupMocks: func(*repoMocks.MockDonationRepository, *cacheMocks.MockCache) {},
			wantErr:    ErrInvalidInput,
		},
		{
			name:       "negative units",
			in:         RecordDonationInput{DonorID: "d1", UnitsDonated: -1},
			setupMocks: func(*repoMocks.MockDonationRepository, *cacheMocks.MockCache) {},
			wantErr:    ErrInvalidInput,
		},
		{
			name:       "unknown status",
			in:         RecordDonationInput{DonorID: "d1", Status: "lost"},
			setupMocks: func(*repoMocks.MockDonationRepository, *cacheMocks.MockCache) {},
			wantErr:    ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockDonationRepository)
			mCache := new(cacheMocks.MockCache)
			tt.setupMocks(mRepo, mCache)
			logger, hook := test.NewNullLogger()
			svc := NewDonationService(mRepo, mCache, logger).(*donationService)
			svc.now = clock

			d, err := svc.Record(ctx, tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, d)
				mCache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "n1", d.ID)
			}
			if tt.wantLog != "" {
				require.NotNil(t, hook.LastEntry())
				assert.Equal(t, tt.wantLog, hook.LastEntry().Message)
			}
			mRepo.AssertExpectations(t)
			mCache.AssertExpectations(t)
		})
	}
}
