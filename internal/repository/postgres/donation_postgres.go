package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"bloodlink/internal/model"
	"bloodlink/internal/repository"
)

const donationTable = "donations"

var donationColumns = []string{
	"id", "donor_id", "hospital_id", "donation_date", "units_donated", "status", "notes", "created_at",
}

func scanDonation(row rowScanner) (*model.Donation, error) {
	var d model.Donation
	if err := row.Scan(
		&d.ID,
		&d.DonorID,
		&d.HospitalID,
		&d.DonationDate,
		&d.UnitsDonated,
		&d.Status,
		&d.Notes,
		&d.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// DonationPostgres is a PostgreSQL implementation of repository.DonationRepository.
type DonationPostgres struct {
	db *sql.DB
}

// NewDonationPostgres creates a new DonationPostgres repository.
func NewDonationPostgres(db *sql.DB) *DonationPostgres {
	return &DonationPostgres{db: db}
}

var _ repository.DonationRepository = (*DonationPostgres)(nil)

// List returns donations, most recent donation date first.
func (r *DonationPostgres) List(ctx context.Context, f repository.DonationFilter) ([]model.Donation, error) {
	q := psql.Select(donationColumns...).From(donationTable)
	if f.DonorID != "" {
		q = q.Where(sq.Eq{"donor_id": f.DonorID})
	}
	if f.Status != "" {
		q = q.Where(sq.Eq{"status": f.Status})
	}
	q = q.OrderBy("donation_date DESC")
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	return getMany(ctx, r.db, q, scanDonation)
}

// FindByID fetches a single donation.
func (r *DonationPostgres) FindByID(ctx context.Context, id string) (*model.Donation, error) {
	q := psql.Select(donationColumns...).From(donationTable).Where(sq.Eq{"id": id})
	return getOne(ctx, r.db, q, scanDonation)
}

// Record inserts the donation and credits the donor inside a single transaction.
func (r *DonationPostgres) Record(ctx context.Context, d *model.Donation) (*model.Donation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ins := psql.Insert(donationTable).
		Columns(donationColumns...).
		Values(d.ID, d.DonorID, d.HospitalID, d.DonationDate, d.UnitsDonated, d.Status, d.Notes, d.CreatedAt).
		Suffix("RETURNING " + strings.Join(donationColumns, ", "))
	stored, err := getOne(ctx, tx, ins, scanDonation)
	if err != nil {
		return nil, fmt.Errorf("insert donation: %w", err)
	}

	upd := psql.Update(donorTable).
		Set("total_donations", sq.Expr("total_donations + 1")).
		Set("last_donation_date", d.DonationDate).
		Set("updated_at", d.CreatedAt).
		Where(sq.Eq{"id": d.DonorID})
	if d.Status == model.DonationCompleted {
		upd = upd.Set("is_available", false)
	}
	res, err := exec(ctx, tx, upd)
	if err != nil {
		return nil, fmt.Errorf("credit donor: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, fmt.Errorf("credit donor: %w", sql.ErrNoRows)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return stored, nil
}
