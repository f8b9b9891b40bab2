package postgres

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"bloodlink/internal/model"
	"bloodlink/internal/repository"
)

var hospitalColumns = []string{
	"id", "name", "address", "city", "state", "phone", "latitude", "longitude", "has_blood_bank", "is_verified",
}

func scanHospital(row rowScanner) (*model.Hospital, error) {
	var h model.Hospital
	if err := row.Scan(
		&h.ID,
		&h.Name,
		&h.Address,
		&h.City,
		&h.State,
		&h.Phone,
		&h.Latitude,
		&h.Longitude,
		&h.HasBloodBank,
		&h.IsVerified,
	); err != nil {
		return nil, err
	}
	return &h, nil
}

// HospitalPostgres is a PostgreSQL implementation of repository.HospitalRepository.
type HospitalPostgres struct {
	db *sql.DB
}

// NewHospitalPostgres creates a new HospitalPostgres repository.
func NewHospitalPostgres(db *sql.DB) *HospitalPostgres {
	return &HospitalPostgres{db: db}
}

var _ repository.HospitalRepository = (*HospitalPostgres)(nil)

// List returns verified hospitals ordered by name.
func (r *HospitalPostgres) List(ctx context.Context, f repository.HospitalFilter) ([]model.Hospital, error) {
	q := psql.Select(hospitalColumns...).From("hospitals").Where(sq.Eq{"is_verified": true})
	if f.City != "" {
		q = q.Where(ilike("city", f.City))
	}
	if f.BloodBankOnly {
		q = q.Where(sq.Eq{"has_blood_bank": true})
	}
	q = q.OrderBy("name")
	return getMany(ctx, r.db, q, scanHospital)
}
