package postgres

import (
	"context"
	"database/sql"
	"strings"

	"bloodlink/internal/model"
	"bloodlink/internal/repository"
)

var healthCheckColumns = []string{
	"id", "user_id", "age", "weight_kg", "hemoglobin", "blood_pressure_systolic", "blood_pressure_diastolic",
	"pulse_rate", "temperature", "has_recent_illness", "has_recent_surgery", "has_tattoo_recently",
	"is_pregnant", "is_breastfeeding", "on_medication", "medication_details", "is_eligible",
	"eligibility_reason", "created_at",
}

func scanHealthCheck(row rowScanner) (*model.HealthCheck, error) {
	var h model.HealthCheck
	if err := row.Scan(
		&h.ID,
		&h.UserID,
		&h.Age,
		&h.WeightKg,
		&h.Hemoglobin,
		&h.Systolic,
		&h.Diastolic,
		&h.PulseRate,
		&h.TemperatureC,
		&h.RecentIllness,
		&h.RecentSurgery,
		&h.RecentTattoo,
		&h.Pregnant,
		&h.Breastfeeding,
		&h.OnMedication,
		&h.MedicationNotes,
		&h.IsEligible,
		&h.EligibilityReason,
		&h.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &h, nil
}

// HealthCheckPostgres is a PostgreSQL implementation of repository.HealthCheckRepository.
type HealthCheckPostgres struct {
	db *sql.DB
}

// NewHealthCheckPostgres creates a new HealthCheckPostgres repository.
func NewHealthCheckPostgres(db *sql.DB) *HealthCheckPostgres {
	return &HealthCheckPostgres{db: db}
}

var _ repository.HealthCheckRepository = (*HealthCheckPostgres)(nil)

// Create inserts a questionnaire result.
func (r *HealthCheckPostgres) Create(ctx context.Context, h *model.HealthCheck) (*model.HealthCheck, error) {
	q := psql.Insert("health_checks").
		Columns(healthCheckColumns...).
		Values(
			h.ID, h.UserID, h.Age, h.WeightKg, h.Hemoglobin, h.Systolic, h.Diastolic,
			h.PulseRate, h.TemperatureC, h.RecentIllness, h.RecentSurgery, h.RecentTattoo,
			h.Pregnant, h.Breastfeeding, h.OnMedication, h.MedicationNotes, h.IsEligible,
			h.EligibilityReason, h.CreatedAt,
		).
		Suffix("RETURNING " + strings.Join(healthCheckColumns, ", "))
	return getOne(ctx, r.db, q, scanHealthCheck)
}
