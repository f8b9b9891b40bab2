package postgres

import (
	"context"
	"database/sql"

	"bloodlink/internal/model"
	"bloodlink/internal/repository"
)

// NotificationPostgres is a PostgreSQL implementation of repository.NotificationRepository.
type NotificationPostgres struct {
	db *sql.DB
}

// NewNotificationPostgres creates a new NotificationPostgres repository.
func NewNotificationPostgres(db *sql.DB) *NotificationPostgres {
	return &NotificationPostgres{db: db}
}

var _ repository.NotificationRepository = (*NotificationPostgres)(nil)

// CreateBatch inserts all notifications in one statement. An empty batch is a no-op.
func (r *NotificationPostgres) CreateBatch(ctx context.Context, ns []model.Notification) error {
	if len(ns) == 0 {
		return nil
	}
	q := psql.Insert("notifications").
		Columns("id", "user_id", "title", "message", "type", "data", "is_read", "created_at")
	for _, n := range ns {
		data := string(n.Data)
		if data == "" {
			data = "{}"
		}
		q = q.Values(n.ID, n.UserID, n.Title, n.Message, n.Type, data, n.IsRead, n.CreatedAt)
	}
	_, err := exec(ctx, r.db, q)
	return err
}

// UpsertMatch records that a donor was notified about a request.
func (r *NotificationPostgres) UpsertMatch(ctx context.Context, m model.DonorMatch) error {
	q := psql.Insert("donor_matches").
		Columns("request_id", "donor_id", "status", "notified_at").
		Values(m.RequestID, m.DonorID, m.Status, m.NotifiedAt).
		Suffix("ON CONFLICT (request_id, donor_id) DO UPDATE SET status = EXCLUDED.status, notified_at = EXCLUDED.notified_at")
	_, err := exec(ctx, r.db, q)
	return err
}
