package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"bloodlink/internal/model"
	"bloodlink/internal/repository"
)

const requestTable = "blood_requests"

var requestColumns = []string{
	"id", "requester_id", "hospital_id", "patient_name", "blood_type", "units_needed", "urgency",
	"is_emergency", "status", "city", "contact_phone", "notes", "created_at", "updated_at",
}

func scanRequest(row rowScanner) (*model.BloodRequest, error) {
	var br model.BloodRequest
	if err := row.Scan(
		&br.ID,
		&br.RequesterID,
		&br.HospitalID,
		&br.PatientName,
		&br.BloodType,
		&br.UnitsNeeded,
		&br.Urgency,
		&br.IsEmergency,
		&br.Status,
		&br.City,
		&br.ContactPhone,
		&br.Notes,
		&br.CreatedAt,
		&br.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &br, nil
}

// BloodRequestPostgres is a PostgreSQL implementation of repository.BloodRequestRepository.
type BloodRequestPostgres struct {
	db *sql.DB
}

// NewBloodRequestPostgres creates a new BloodRequestPostgres repository.
func NewBloodRequestPostgres(db *sql.DB) *BloodRequestPostgres {
	return &BloodRequestPostgres{db: db}
}

var _ repository.BloodRequestRepository = (*BloodRequestPostgres)(nil)

// List returns requests newest first.
func (r *BloodRequestPostgres) List(ctx context.Context, f repository.RequestFilter) ([]model.BloodRequest, error) {
	q := psql.Select(requestColumns...).From(requestTable)
	if f.Status != "" {
		q = q.Where(sq.Eq{"status": f.Status})
	}
	if f.BloodType != "" {
		q = q.Where(sq.Eq{"blood_type": f.BloodType})
	}
	if f.EmergencyOnly {
		q = q.Where(sq.Eq{"is_emergency": true})
	}
	q = q.OrderBy("created_at DESC")
	return getMany(ctx, r.db, q, scanRequest)
}

// Create inserts a request and returns the stored record.
func (r *BloodRequestPostgres) Create(ctx context.Context, br *model.BloodRequest) (*model.BloodRequest, error) {
	q := psql.Insert(requestTable).
		Columns(requestColumns...).
		Values(
			br.ID, br.RequesterID, br.HospitalID, br.PatientName, br.BloodType, br.UnitsNeeded,
			br.Urgency, br.IsEmergency, br.Status, br.City, br.ContactPhone, br.Notes,
			br.CreatedAt, br.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(requestColumns, ", "))
	return getOne(ctx, r.db, q, scanRequest)
}

// UpdateStatus changes a request's status.
func (r *BloodRequestPostgres) UpdateStatus(ctx context.Context, id, status string, at time.Time) (*model.BloodRequest, error) {
	q := psql.Update(requestTable).
		Set("status", status).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(requestColumns, ", "))
	return getOne(ctx, r.db, q, scanRequest)
}
