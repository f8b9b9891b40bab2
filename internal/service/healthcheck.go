package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bloodlink/internal/eligibility"
	"bloodlink/internal/model"
	"bloodlink/internal/repository"
)

// HealthCheckInput is an eligibility questionnaire, optionally tied to a user.
type HealthCheckInput struct {
	UserID string `json:"user_id"`
	eligibility.Questionnaire
}

// HealthCheckResult is the verdict, plus the stored record when the check was persisted.
type HealthCheckResult struct {
	Eligible    bool               `json:"eligible"`
	Reasons     []string           `json:"reasons"`
	HealthCheck *model.HealthCheck `json:"health_check,omitempty"`
}

// EligibilityService evaluates donation eligibility questionnaires.
type EligibilityService interface {
	// Check evaluates in and persists the result when UserID is set.
	Check(ctx context.Context, in HealthCheckInput) (*HealthCheckResult, error)
}

type eligibilityService struct {
	checks repository.HealthCheckRepository
	now    func() time.Time
}

func NewEligibilityService(checks repository.HealthCheckRepository) EligibilityService {
	return &eligibilityService{checks: checks, now: time.Now}
}

func (s *eligibilityService) Check(ctx context.Context, in HealthCheckInput) (*HealthCheckResult, error) {
	v := eligibility.Evaluate(in.Questionnaire)
	res := &HealthCheckResult{Eligible: v.Eligible, Reasons: v.Reasons}
	if in.UserID == "" {
		return res, nil
	}

	q := in.Questionnaire
	stored, err := s.checks.Create(ctx, &model.HealthCheck{
		ID:                uuid.New().String(),
		UserID:            in.UserID,
		Age:               q.Age,
		WeightKg:          q.WeightKg,
		Hemoglobin:        q.Hemoglobin,
		Systolic:          q.Systolic,
		Diastolic:         q.Diastolic,
		PulseRate:         q.PulseRate,
		TemperatureC:      q.TemperatureC,
		RecentIllness:     q.RecentIllness,
		RecentSurgery:     q.RecentSurgery,
		RecentTattoo:      q.RecentTattoo,
		Pregnant:          q.Pregnant,
		Breastfeeding:     q.Breastfeeding,
		OnMedication:      q.OnMedication,
		MedicationNotes:   q.MedicationNotes,
		IsEligible:        v.Eligible,
		EligibilityReason: v.Summary(),
		CreatedAt:         s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	res.HealthCheck = stored
	return res, nil
}
