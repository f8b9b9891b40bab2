package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"bloodlink/internal/repository"
)

// DashboardPostgres is a PostgreSQL implementation of repository.DashboardRepository.
type DashboardPostgres struct {
	db *sql.DB
}

// NewDashboardPostgres creates a new DashboardPostgres repository.
func NewDashboardPostgres(db *sql.DB) *DashboardPostgres {
	return &DashboardPostgres{db: db}
}

var _ repository.DashboardRepository = (*DashboardPostgres)(nil)

// Snapshot gathers every dashboard aggregate. recent bounds the recent donations list.
func (r *DashboardPostgres) Snapshot(ctx context.Context, recent int) (*repository.DashboardSnapshot, error) {
	var s repository.DashboardSnapshot

	counts := psql.Select(
		"(SELECT COUNT(*) FROM users WHERE is_donor)",
		"(SELECT COUNT(*) FROM donations)",
		"(SELECT COALESCE(SUM(units_donated), 0) FROM donations)",
		"(SELECT COUNT(*) FROM hospitals WHERE is_verified)",
		"(SELECT COUNT(*) FROM events WHERE is_active)",
		"(SELECT COUNT(*) FROM blood_requests WHERE status = 'pending')",
		"(SELECT COUNT(*) FROM blood_requests WHERE is_emergency)",
	)
	query, args, err := counts.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.TotalDonors,
		&s.TotalDonations,
		&s.TotalUnits,
		&s.TotalHospitals,
		&s.ActiveEvents,
		&s.PendingRequests,
		&s.EmergencyRequests,
	); err != nil {
		return nil, fmt.Errorf("dashboard counts: %w", err)
	}

	inv := psql.Select("blood_type", "COALESCE(SUM(units_available), 0)").
		From("blood_inventory").
		GroupBy("blood_type")
	query, args, err = inv.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("inventory by type: %w", err)
	}
	defer rows.Close()

	s.InventoryByType = make(map[string]int)
	for rows.Next() {
		var bt string
		var units int
		if err := rows.Scan(&bt, &units); err != nil {
			return nil, err
		}
		s.InventoryByType[bt] = units
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	recentQ := psql.Select(donationColumns...).
		From(donationTable).
		OrderBy("donation_date DESC").
		Limit(uint64(recent))
	s.RecentDonations, err = getMany(ctx, r.db, recentQ, scanDonation)
	if err != nil {
		return nil, fmt.Errorf("recent donations: %w", err)
	}

	return &s, nil
}
