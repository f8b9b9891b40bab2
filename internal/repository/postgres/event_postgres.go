package postgres

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"bloodlink/internal/model"
	"bloodlink/internal/repository"
)

var eventColumns = []string{
	"id", "hospital_id", "title", "description", "event_type", "city", "location",
	"start_date", "end_date", "is_active", "created_at",
}

func scanEvent(row rowScanner) (*model.Event, error) {
	var e model.Event
	if err := row.Scan(
		&e.ID,
		&e.HospitalID,
		&e.Title,
		&e.Description,
		&e.EventType,
		&e.City,
		&e.Location,
		&e.StartDate,
		&e.EndDate,
		&e.IsActive,
		&e.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

// EventPostgres is a PostgreSQL implementation of repository.EventRepository.
type EventPostgres struct {
	db *sql.DB
}

// NewEventPostgres creates a new EventPostgres repository.
func NewEventPostgres(db *sql.DB) *EventPostgres {
	return &EventPostgres{db: db}
}

var _ repository.EventRepository = (*EventPostgres)(nil)

// List returns active events, soonest first.
func (r *EventPostgres) List(ctx context.Context, f repository.EventFilter) ([]model.Event, error) {
	q := psql.Select(eventColumns...).From("events").Where(sq.Eq{"is_active": true})
	if f.City != "" {
		q = q.Where(ilike("city", f.City))
	}
	if f.EventType != "" {
		q = q.Where(sq.Eq{"event_type": f.EventType})
	}
	q = q.OrderBy("start_date")
	return getMany(ctx, r.db, q, scanEvent)
}

// Create inserts an event and returns the stored record.
func (r *EventPostgres) Create(ctx context.Context, e *model.Event) (*model.Event, error) {
	q := psql.Insert("events").
		Columns(eventColumns...).
		Values(
			e.ID, e.HospitalID, e.Title, e.Description, e.EventType, e.City, e.Location,
			e.StartDate, e.EndDate, e.IsActive, e.CreatedAt,
		).
		Suffix("RETURNING " + strings.Join(eventColumns, ", "))
	return getOne(ctx, r.db, q, scanEvent)
}
