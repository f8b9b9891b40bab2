package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bloodlink/internal/model"
	repoMocks "bloodlink/internal/repository/mocks"
)

func newTestQueueService(m *repoMocks.MockQueueRepository) *queueService {
	// 20:00 UTC on the 19th is already the 20th in Kolkata.
	loc, _ := time.LoadLocation("Asia/Kolkata")
	s := NewQueueService(m, loc).(*queueService)
	s.now = func() time.Time { return time.Date(2026, 10, 19, 20, 0, 0, 0, time.UTC) }
	return s
}

func TestQueueService_Day(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to today in the service timezone", func(t *testing.T) {
		m := new(repoMocks.MockQueueRepository)
		m.On("ListDay", ctx, "h1", "2026-10-20").Return([]model.QueueEntry{
			{QueueNumber: 1, Status: model.QueueCompleted},
			{QueueNumber: 2, Status: model.QueueInProgress},
			{QueueNumber: 3, Status: model.QueueWaiting},
			{QueueNumber: 4, Status: model.QueueWaiting},
		}, nil)

		day, err := newTestQueueService(m).Day(ctx, "h1", "")

		require.NoError(t, err)
		assert.Len(t, day.Queue, 4)
		assert.Equal(t, QueueStats{Total: 4, Waiting: 2, InProgress: 1, Completed: 1}, day.Stats)
	})

	t.Run("explicit date across hospitals", func(t *testing.T) {
		m := new(repoMocks.MockQueueRepository)
		m.On("ListDay", ctx, "", "2026-11-02").Return([]model.QueueEntry{}, nil)

		day, err := newTestQueueService(m).Day(ctx, "", "2026-11-02")

		require.NoError(t, err)
		assert.Equal(t, QueueStats{}, day.Stats)
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := newTestQueueService(new(repoMocks.MockQueueRepository)).Day(ctx, "h1", "02-11-2026")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestQueueService_Enqueue(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		in         EnqueueInput
		setupMocks func(m *repoMocks.MockQueueRepository)
		wantErr    error
		wantNumber int
	}{
		{
			name: "assigns next number",
			in:   EnqueueInput{HospitalID: "h1", DonorID: "d1"},
			setupMocks: func(m *repoMocks.MockQueueRepository) {
				m.On("Enqueue", ctx, mock.MatchedBy(func(e *model.QueueEntry) bool {
					return e.HospitalID == "h1" && e.DonorID == "d1" && e.AppointmentDate == "2026-10-20" &&
						e.Status == model.QueueWaiting && e.ID != ""
				})).Return(&model.QueueEntry{ID: "q1", QueueNumber: 7}, nil)
			},
			wantNumber: 7,
		},
		{
			name: "explicit day",
			in:   EnqueueInput{HospitalID: "h1", DonorID: "d1", AppointmentDate: "2026-12-01"},
			setupMocks: func(m *repoMocks.MockQueueRepository) {
				m.On("Enqueue", ctx, mock.MatchedBy(func(e *model.QueueEntry) bool {
					return e.AppointmentDate == "2026-12-01"
				})).Return(&model.QueueEntry{ID: "q2", QueueNumber: 1}, nil)
			},
			wantNumber: 1,
		},
		{name: "missing hospital", in: EnqueueInput{DonorID: "d1"}, setupMocks: func(*repoMocks.MockQueueRepository) {}, wantErr: ErrInvalidInput},
		{name: "missing donor", in: EnqueueInput{HospitalID: "h1"}, setupMocks: func(*repoMocks.MockQueueRepository) {}, wantErr: ErrInvalidInput},
		{name: "bad date", in: EnqueueInput{HospitalID: "h1", DonorID: "d1", AppointmentDate: "soon"}, setupMocks: func(*repoMocks.MockQueueRepository) {}, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(repoMocks.MockQueueRepository)
			tt.setupMocks(m)

			res, err := newTestQueueService(m).Enqueue(ctx, tt.in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantNumber, res.QueueNumber)
				assert.Equal(t, tt.wantNumber, res.QueueEntry.QueueNumber)
			}
			m.AssertExpectations(t)
		})
	}
}

func TestQueueService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 20, 0, 0, 0, time.UTC)
	isNow := mock.MatchedBy(func(at *time.Time) bool { return at != nil && at.Equal(now) })
	isNil := mock.MatchedBy(func(at *time.Time) bool { return at == nil })

	tests := []struct {
		name       string
		status     string
		setupMocks func(m *repoMocks.MockQueueRepository)
		wantErr    error
	}{
		{
			name:   "in progress stamps check-in",
			status: model.QueueInProgress,
			setupMocks: func(m *repoMocks.MockQueueRepository) {
				m.On("UpdateStatus", ctx, "q1", model.QueueInProgress, isNow, isNil).Return(&model.QueueEntry{ID: "q1"}, nil)
			},
		},
		{
			name:   "completed stamps completion",
			status: model.QueueCompleted,
			setupMocks: func(m *repoMocks.MockQueueRepository) {
				m.On("UpdateStatus", ctx, "q1", model.QueueCompleted, isNil, isNow).Return(&model.QueueEntry{ID: "q1"}, nil)
			},
		},
		{
			name:   "back to waiting stamps nothing",
			status: model.QueueWaiting,
			setupMocks: func(m *repoMocks.MockQueueRepository) {
				m.On("UpdateStatus", ctx, "q1", model.QueueWaiting, isNil, isNil).Return(&model.QueueEntry{ID: "q1"}, nil)
			},
		},
		{
			name:   "not found",
			status: model.QueueWaiting,
			setupMocks: func(m *repoMocks.MockQueueRepository) {
				m.On("UpdateStatus", ctx, "q1", model.QueueWaiting, isNil, isNil).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{name: "bad status", status: "skipped", setupMocks: func(*repoMocks.MockQueueRepository) {}, wantErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(repoMocks.MockQueueRepository)
			tt.setupMocks(m)

			e, err := newTestQueueService(m).UpdateStatus(ctx, "q1", tt.status)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, e)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "q1", e.ID)
			}
			m.AssertExpectations(t)
		})
	}

	t.Run("missing id", func(t *testing.T) {
		_, err := newTestQueueService(new(repoMocks.MockQueueRepository)).UpdateStatus(ctx, "", model.QueueWaiting)
		assert.ErrorIs(t, err, ErrIDRequired)
	})
}
