package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloodlink/internal/model"
)

func TestNotificationPostgres_CreateBatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewNotificationPostgres(db)
	now := time.Now()

	t.Run("empty batch skips the database", func(t *testing.T) {
		require.NoError(t, repo.CreateBatch(context.Background(), nil))
	})

	t.Run("multi row insert", func(t *testing.T) {
		ns := []model.Notification{
			{ID: "n1", UserID: "d1", Title: "Emergency", Message: "m", Type: model.NotificationEmergency,
				Data: json.RawMessage(`{"request_id":"r1"}`), CreatedAt: now},
			{ID: "n2", UserID: "d2", Title: "Emergency", Message: "m", Type: model.NotificationEmergency, CreatedAt: now},
		}

		mock.ExpectExec(`INSERT INTO notifications \(id,user_id,title,message,type,data,is_read,created_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8\),\(\$9,`).
			WithArgs(
				"n1", "d1", "Emergency", "m", model.NotificationEmergency, `{"request_id":"r1"}`, false, now,
				"n2", "d2", "Emergency", "m", model.NotificationEmergency, "{}", false, now,
			).
			WillReturnResult(sqlmock.NewResult(0, 2))

		require.NoError(t, repo.CreateBatch(context.Background(), ns))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationPostgres_UpsertMatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectExec(`INSERT INTO donor_matches \(request_id,donor_id,status,notified_at\) VALUES \(\$1,\$2,\$3,\$4\) ON CONFLICT \(request_id, donor_id\) DO UPDATE`).
		WithArgs("r1", "d1", model.MatchNotified, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewNotificationPostgres(db).UpsertMatch(context.Background(), model.DonorMatch{
		RequestID:  "r1",
		DonorID:    "d1",
		Status:     model.MatchNotified,
		NotifiedAt: now,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
