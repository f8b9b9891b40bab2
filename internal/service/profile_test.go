package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bloodlink/internal/auth"
	"bloodlink/internal/model"
	repoMocks "bloodlink/internal/repository/mocks"
)

func TestProfileService_Get(t *testing.T) {
	ctx := context.Background()
	id := auth.Identity{AuthID: "auth-1", Email: "asha@example.com"}

	t.Run("with profile", func(t *testing.T) {
		m := new(repoMocks.MockDonorRepository)
		m.On("FindByAuthID", ctx, "auth-1").Return(&model.Donor{ID: "d1"}, nil)

		view, err := NewProfileService(m).Get(ctx, id)

		require.NoError(t, err)
		assert.True(t, view.Authenticated)
		assert.Equal(t, id, view.User)
		require.NotNil(t, view.Profile)
		assert.Equal(t, "d1", view.Profile.ID)
	})

	t.Run("without profile", func(t *testing.T) {
		m := new(repoMocks.MockDonorRepository)
		m.On("FindByAuthID", ctx, "auth-1").Return(nil, sql.ErrNoRows)

		view, err := NewProfileService(m).Get(ctx, id)

		require.NoError(t, err)
		assert.True(t, view.Authenticated)
		assert.Nil(t, view.Profile)
	})

	t.Run("db error", func(t *testing.T) {
		m := new(repoMocks.MockDonorRepository)
		m.On("FindByAuthID", ctx, "auth-1").Return(nil, errors.New("db down"))

		view, err := NewProfileService(m).Get(ctx, id)

		assert.EqualError(t, err, "db down")
		assert.Nil(t, view)
	})
}

func TestProfileService_Save(t *testing.T) {
	ctx := context.Background()
	id := auth.Identity{AuthID: "auth-1", Email: "asha@example.com", FullName: "Asha Rao"}

	tests := []struct {
		name       string
		in         ProfileInput
		setupMocks func(m *repoMocks.MockDonorRepository)
		wantErr    error
	}{
		{
			name: "updates only given fields",
			in:   ProfileInput{City: ptr("Pune"), IsAvailable: ptr(false)},
			setupMocks: func(m *repoMocks.MockDonorRepository) {
				m.On("FindByAuthID", ctx, "auth-1").Return(&model.Donor{ID: "d1"}, nil)
				m.On("UpdateByAuthID", ctx, "auth-1", map[string]any{
					"email":        "asha@example.com",
					"is_donor":     true,
					"updated_at":   fixedNow,
					"city":         "Pune",
					"is_available": false,
				}).Return(&model.Donor{ID: "d1", City: "Pune"}, nil)
			},
		},
		{
			name: "creates on first save",
			in:   ProfileInput{BloodType: ptr("AB-"), Phone: ptr("98200")},
			setupMocks: func(m *repoMocks.MockDonorRepository) {
				m.On("FindByAuthID", ctx, "auth-1").Return(nil, sql.ErrNoRows)
				m.On("Create", ctx, mock.MatchedBy(func(d *model.Donor) bool {
					return d.BloodType == "AB-" && d.Phone == "98200" && d.FullName == "Asha Rao" &&
						d.Email == "asha@example.com" && d.IsDonor && d.IsAvailable
				})).Return(&model.Donor{ID: "d2"}, nil)
			},
		},
		{
			name: "create needs blood type",
			in:   ProfileInput{City: ptr("Pune")},
			setupMocks: func(m *repoMocks.MockDonorRepository) {
				m.On("FindByAuthID", ctx, "auth-1").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:       "invalid blood type",
			in:         ProfileInput{BloodType: ptr("Z")},
			setupMocks: func(m *repoMocks.MockDonorRepository) {},
			wantErr:    ErrInvalidBloodType,
		},
		{
			name:       "invalid date",
			in:         ProfileInput{DateOfBirth: ptr("yesterday")},
			setupMocks: func(m *repoMocks.MockDonorRepository) {},
			wantErr:    ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(repoMocks.MockDonorRepository)
			tt.setupMocks(m)
			svc := NewProfileService(m).(*profileService)
			svc.now = clock

			d, err := svc.Save(ctx, id, tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, d)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, d)
			}
			m.AssertExpectations(t)
		})
	}
}
