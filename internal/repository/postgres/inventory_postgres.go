package postgres

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"bloodlink/internal/model"
	"bloodlink/internal/repository"
)

var inventoryColumns = []string{
	"i.id", "i.hospital_id", "COALESCE(h.name, '')", "COALESCE(h.city, '')", "i.blood_type",
	"i.units_available", "i.units_reserved", "i.last_updated",
}

func scanInventory(row rowScanner) (*model.InventoryItem, error) {
	var it model.InventoryItem
	if err := row.Scan(
		&it.ID,
		&it.HospitalID,
		&it.HospitalName,
		&it.HospitalCity,
		&it.BloodType,
		&it.UnitsAvailable,
		&it.UnitsReserved,
		&it.LastUpdated,
	); err != nil {
		return nil, err
	}
	return &it, nil
}

// InventoryPostgres is a PostgreSQL implementation of repository.InventoryRepository.
type InventoryPostgres struct {
	db *sql.DB
}

// NewInventoryPostgres creates a new InventoryPostgres repository.
func NewInventoryPostgres(db *sql.DB) *InventoryPostgres {
	return &InventoryPostgres{db: db}
}

var _ repository.InventoryRepository = (*InventoryPostgres)(nil)

// List returns inventory rows joined with their hospital, ordered by blood type.
func (r *InventoryPostgres) List(ctx context.Context, f repository.InventoryFilter) ([]model.InventoryItem, error) {
	q := psql.Select(inventoryColumns...).
		From("blood_inventory i").
		LeftJoin("hospitals h ON h.id = i.hospital_id")
	if f.HospitalID != "" {
		q = q.Where(sq.Eq{"i.hospital_id": f.HospitalID})
	}
	if f.BloodType != "" {
		q = q.Where(sq.Eq{"i.blood_type": f.BloodType})
	}
	q = q.OrderBy("i.blood_type", "h.name")
	return getMany(ctx, r.db, q, scanInventory)
}

// UpdateUnits overwrites stock counts and stamps last_updated.
func (r *InventoryPostgres) UpdateUnits(ctx context.Context, id string, available, reserved int, at time.Time) (*model.InventoryItem, error) {
	q := psql.Update("blood_inventory i").
		Set("units_available", available).
		Set("units_reserved", reserved).
		Set("last_updated", at).
		Where(sq.Eq{"i.id": id}).
		Suffix(`RETURNING i.id, i.hospital_id, '', '', i.blood_type, i.units_available, i.units_reserved, i.last_updated`)
	return getOne(ctx, r.db, q, scanInventory)
}
