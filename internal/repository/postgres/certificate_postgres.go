package postgres

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"bloodlink/internal/model"
	"bloodlink/internal/repository"
)

var certificateColumns = []string{
	"id", "user_id", "donation_id", "certificate_number", "issued_date", "storage_path", "created_at",
}

func scanCertificate(row rowScanner) (*model.Certificate, error) {
	var c model.Certificate
	if err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.DonationID,
		&c.CertificateNumber,
		&c.IssuedDate,
		&c.StoragePath,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// CertificatePostgres is a PostgreSQL implementation of repository.CertificateRepository.
type CertificatePostgres struct {
	db *sql.DB
}

// NewCertificatePostgres creates a new CertificatePostgres repository.
func NewCertificatePostgres(db *sql.DB) *CertificatePostgres {
	return &CertificatePostgres{db: db}
}

var _ repository.CertificateRepository = (*CertificatePostgres)(nil)

// List returns certificates newest first, optionally for one user.
func (r *CertificatePostgres) List(ctx context.Context, userID string) ([]model.Certificate, error) {
	q := psql.Select(certificateColumns...).From("certificates")
	if userID != "" {
		q = q.Where(sq.Eq{"user_id": userID})
	}
	q = q.OrderBy("issued_date DESC", "created_at DESC")
	return getMany(ctx, r.db, q, scanCertificate)
}

// FindByID fetches a single certificate.
func (r *CertificatePostgres) FindByID(ctx context.Context, id string) (*model.Certificate, error) {
	q := psql.Select(certificateColumns...).From("certificates").Where(sq.Eq{"id": id})
	return getOne(ctx, r.db, q, scanCertificate)
}

// Create inserts a certificate and returns the stored record.
func (r *CertificatePostgres) Create(ctx context.Context, c *model.Certificate) (*model.Certificate, error) {
	q := psql.Insert("certificates").
		Columns(certificateColumns...).
		Values(c.ID, c.UserID, c.DonationID, c.CertificateNumber, c.IssuedDate, c.StoragePath, c.CreatedAt).
		Suffix("RETURNING " + strings.Join(certificateColumns, ", "))
	return getOne(ctx, r.db, q, scanCertificate)
}
