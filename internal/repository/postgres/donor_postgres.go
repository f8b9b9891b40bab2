package postgres

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"bloodlink/internal/model"
	"bloodlink/internal/repository"
)

const donorTable = "users"

var donorColumns = []string{
	"id", "COALESCE(auth_id, '')", "email", "full_name", "phone", "blood_type", "city", "state",
	"address", "date_of_birth", "gender", "latitude", "longitude", "is_donor", "is_available",
	"total_donations", "last_donation_date", "created_at", "updated_at",
}

var donorReturning = "RETURNING " + strings.Join(donorColumns, ", ")

func scanDonor(row rowScanner) (*model.Donor, error) {
	var d model.Donor
	if err := row.Scan(
		&d.ID,
		&d.AuthID,
		&d.Email,
		&d.FullName,
		&d.Phone,
		&d.BloodType,
		&d.City,
		&d.State,
		&d.Address,
		&d.DateOfBirth,
		&d.Gender,
		&d.Latitude,
		&d.Longitude,
		&d.IsDonor,
		&d.IsAvailable,
		&d.TotalDonations,
		&d.LastDonationDate,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// DonorPostgres is a PostgreSQL implementation of repository.DonorRepository.
type DonorPostgres struct {
	db *sql.DB
}

// NewDonorPostgres creates a new DonorPostgres repository.
func NewDonorPostgres(db *sql.DB) *DonorPostgres {
	return &DonorPostgres{db: db}
}

var _ repository.DonorRepository = (*DonorPostgres)(nil)

// List returns donors matching the filter ordered by total donations.
func (r *DonorPostgres) List(ctx context.Context, f repository.DonorFilter) ([]model.Donor, error) {
	q := psql.Select(donorColumns...).From(donorTable).Where(sq.Eq{"is_donor": true})
	if f.BloodType != "" {
		q = q.Where(sq.Eq{"blood_type": f.BloodType})
	}
	if len(f.BloodTypes) > 0 {
		q = q.Where(sq.Eq{"blood_type": f.BloodTypes})
	}
	if f.City != "" {
		q = q.Where(ilike("city", f.City))
	}
	if f.AvailableOnly {
		q = q.Where(sq.Eq{"is_available": true})
	}
	q = q.OrderBy("total_donations DESC", "id")
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	return getMany(ctx, r.db, q, scanDonor)
}

// FindByID fetches a single donor.
func (r *DonorPostgres) FindByID(ctx context.Context, id string) (*model.Donor, error) {
	q := psql.Select(donorColumns...).From(donorTable).Where(sq.Eq{"id": id})
	return getOne(ctx, r.db, q, scanDonor)
}

// FindByAuthID fetches the profile linked to an identity provider subject.
func (r *DonorPostgres) FindByAuthID(ctx context.Context, authID string) (*model.Donor, error) {
	q := psql.Select(donorColumns...).From(donorTable).Where(sq.Eq{"auth_id": authID})
	return getOne(ctx, r.db, q, scanDonor)
}

// Create inserts a donor row and returns the stored record.
func (r *DonorPostgres) Create(ctx context.Context, d *model.Donor) (*model.Donor, error) {
	var authID any
	if d.AuthID != "" {
		authID = d.AuthID
	}
	q := psql.Insert(donorTable).
		Columns(
			"id", "auth_id", "email", "full_name", "phone", "blood_type", "city", "state",
			"address", "date_of_birth", "gender", "latitude", "longitude", "is_donor",
			"is_available", "total_donations", "created_at", "updated_at",
		).
		Values(
			d.ID, authID, d.Email, d.FullName, d.Phone, d.BloodType, d.City, d.State,
			d.Address, d.DateOfBirth, d.Gender, d.Latitude, d.Longitude, d.IsDonor,
			d.IsAvailable, d.TotalDonations, d.CreatedAt, d.UpdatedAt,
		).
		Suffix(donorReturning)
	return getOne(ctx, r.db, q, scanDonor)
}

// UpdateByAuthID applies fields to the profile owned by authID and returns the updated row.
func (r *DonorPostgres) UpdateByAuthID(ctx context.Context, authID string, fields map[string]any) (*model.Donor, error) {
	q := psql.Update(donorTable).
		SetMap(fields).
		Where(sq.Eq{"auth_id": authID}).
		Suffix(donorReturning)
	return getOne(ctx, r.db, q, scanDonor)
}
