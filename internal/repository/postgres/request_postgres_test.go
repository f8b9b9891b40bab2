package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloodlink/internal/model"
	"bloodlink/internal/repository"
)

var requestRowColumns = []string{
	"id", "requester_id", "hospital_id", "patient_name", "blood_type", "units_needed", "urgency",
	"is_emergency", "status", "city", "contact_phone", "notes", "created_at", "updated_at",
}

func TestBloodRequestPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM blood_requests WHERE status = \$1 AND is_emergency = \$2 ORDER BY created_at DESC`).
		WithArgs(model.RequestPending, true).
		WillReturnRows(sqlmock.NewRows(requestRowColumns).
			AddRow("r1", nil, "h1", "P", "AB-", 2, model.UrgencyCritical, true, model.RequestPending,
				"Pune", "", "", now, now))

	items, err := NewBloodRequestPostgres(db).List(context.Background(), repository.RequestFilter{
		Status:        model.RequestPending,
		EmergencyOnly: true,
	})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].RequesterID)
	assert.Equal(t, "h1", *items[0].HospitalID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBloodRequestPostgres_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBloodRequestPostgres(db)
	now := time.Now()

	mock.ExpectQuery(`UPDATE blood_requests SET status = \$1, updated_at = \$2 WHERE id = \$3 RETURNING`).
		WithArgs(model.RequestFulfilled, now, "r1").
		WillReturnRows(sqlmock.NewRows(requestRowColumns).
			AddRow("r1", nil, nil, "", "A+", 1, model.UrgencyNormal, false, model.RequestFulfilled,
				"", "", "", now, now))
	mock.ExpectQuery(`UPDATE blood_requests`).WillReturnError(sql.ErrNoRows)

	got, err := repo.UpdateStatus(context.Background(), "r1", model.RequestFulfilled, now)
	require.NoError(t, err)
	assert.Equal(t, model.RequestFulfilled, got.Status)

	_, err = repo.UpdateStatus(context.Background(), "missing", model.RequestFulfilled, now)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInventoryPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM blood_inventory i LEFT JOIN hospitals h ON h.id = i.hospital_id WHERE i.blood_type = \$1 ORDER BY i.blood_type, h.name`).
		WithArgs("O-").
		WillReturnRows(sqlmock.NewRows([]string{"id", "hospital_id", "name", "city", "blood_type", "a", "r", "u"}).
			AddRow("i1", "h1", "City Hospital", "Pune", "O-", 3, 1, now))

	items, err := NewInventoryPostgres(db).List(context.Background(), repository.InventoryFilter{BloodType: "O-"})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "City Hospital", items[0].HospitalName)
	assert.Equal(t, 3, items[0].UnitsAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEventPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM events WHERE is_active = \$1 AND city ILIKE \$2 ORDER BY start_date`).
		WithArgs(true, "%pune%").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "hospital_id", "title", "description", "event_type", "city", "location",
			"start_date", "end_date", "is_active", "created_at",
		}).AddRow("e1", nil, "Camp", "", "camp", "Pune", "Hall", now, nil, true, now))

	items, err := NewEventPostgres(db).List(context.Background(), repository.EventFilter{City: "pune"})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].EndDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
