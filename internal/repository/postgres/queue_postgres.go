package postgres

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"bloodlink/internal/model"
	"bloodlink/internal/repository"
)

var queueColumns = []string{
	"q.id", "q.hospital_id", "q.donor_id", "COALESCE(u.full_name, '')", "COALESCE(u.blood_type, '')",
	"to_char(q.appointment_date, 'YYYY-MM-DD')", "q.queue_number", "q.status",
	"q.check_in_time", "q.completed_time", "q.created_at",
}

// queueReturning mirrors queueColumns for statements that cannot join users.
const queueReturning = `RETURNING id, hospital_id, donor_id, '', '', to_char(appointment_date, 'YYYY-MM-DD'),
	queue_number, status, check_in_time, completed_time, created_at`

func scanQueueEntry(row rowScanner) (*model.QueueEntry, error) {
	var e model.QueueEntry
	if err := row.Scan(
		&e.ID,
		&e.HospitalID,
		&e.DonorID,
		&e.DonorName,
		&e.DonorBloodType,
		&e.AppointmentDate,
		&e.QueueNumber,
		&e.Status,
		&e.CheckInTime,
		&e.CompletedTime,
		&e.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

// QueuePostgres is a PostgreSQL implementation of repository.QueueRepository.
type QueuePostgres struct {
	db *sql.DB
}

// NewQueuePostgres creates a new QueuePostgres repository.
func NewQueuePostgres(db *sql.DB) *QueuePostgres {
	return &QueuePostgres{db: db}
}

var _ repository.QueueRepository = (*QueuePostgres)(nil)

// ListDay returns a day's queue ordered by queue number.
func (r *QueuePostgres) ListDay(ctx context.Context, hospitalID, date string) ([]model.QueueEntry, error) {
	q := psql.Select(queueColumns...).
		From("hospital_queue q").
		LeftJoin("users u ON u.id = q.donor_id").
		Where(sq.Eq{"q.appointment_date": date})
	if hospitalID != "" {
		q = q.Where(sq.Eq{"q.hospital_id": hospitalID})
	}
	q = q.OrderBy("q.queue_number")
	return getMany(ctx, r.db, q, scanQueueEntry)
}

// Enqueue inserts the entry numbered one past the current maximum for its hospital and day.
func (r *QueuePostgres) Enqueue(ctx context.Context, e *model.QueueEntry) (*model.QueueEntry, error) {
	next := sq.Expr(
		"(SELECT COALESCE(MAX(queue_number), 0) + 1 FROM hospital_queue WHERE hospital_id = ? AND appointment_date = ?)",
		e.HospitalID, e.AppointmentDate,
	)
	q := psql.Insert("hospital_queue").
		Columns("id", "hospital_id", "donor_id", "appointment_date", "queue_number", "status", "created_at").
		Values(e.ID, e.HospitalID, e.DonorID, e.AppointmentDate, next, e.Status, e.CreatedAt).
		Suffix(queueReturning)
	return getOne(ctx, r.db, q, scanQueueEntry)
}

// UpdateStatus sets the status plus any provided timestamps. Last write wins.
func (r *QueuePostgres) UpdateStatus(ctx context.Context, id, status string, checkIn, completed *time.Time) (*model.QueueEntry, error) {
	q := psql.Update("hospital_queue").Set("status", status)
	if checkIn != nil {
		q = q.Set("check_in_time", *checkIn)
	}
	if completed != nil {
		q = q.Set("completed_time", *completed)
	}
	q = q.Where(sq.Eq{"id": id}).Suffix(queueReturning)
	return getOne(ctx, r.db, q, scanQueueEntry)
}
