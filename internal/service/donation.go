package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"bloodlink/internal/cache"
	"bloodlink/internal/model"
	"bloodlink/internal/repository"
)

// DonationQuery filters donation listings.
type DonationQuery struct {
	DonorID string
	Status  string
}

// RecordDonationInput is the donation payload. Zero values take defaults:
// today, one unit, completed.
type RecordDonationInput struct {
	DonorID      string     `json:"donor_id"`
	HospitalID   *string    `json:"hospital_id"`
	DonationDate *time.Time `json:"donation_date"`
	UnitsDonated int        `json:"units_donated"`
	Status       string     `json:"status"`
	Notes        string     `json:"notes"`
}

// DonationService records donations and credits donors.
type DonationService interface {
	List(ctx context.Context, q DonationQuery) ([]model.Donation, error)
	// Record stores the donation, increments the donor's total and sets their last
	// donation date. A completed donation also marks the donor unavailable.
	Record(ctx context.Context, in RecordDonationInput) (*model.Donation, error)
}

type donationService struct {
	donations repository.DonationRepository
	cache     cache.Cache
	log       *logrus.Entry
	now       func() time.Time
}

// NewDonationService constructs a DonationService. Recording a donation evicts the cached dashboard.
func NewDonationService(donations repository.DonationRepository, c cache.Cache, logger *logrus.Logger) DonationService {
	return &donationService{
		donations: donations,
		cache:     c,
		log:       logger.WithField("component", "donation_service"),
		now:       time.Now,
	}
}

var donationStatuses = map[string]bool{
	model.DonationScheduled: true,
	model.DonationCompleted: true,
	model.DonationCancelled: true,
}

func (s *donationService) List(ctx context.Context, q DonationQuery) ([]model.Donation, error) {
	return s.donations.List(ctx, repository.DonationFilter{DonorID: q.DonorID, Status: q.Status})
}

func (s *donationService) Record(ctx context.Context, in RecordDonationInput) (*model.Donation, error) {
	if in.DonorID == "" {
		return nil, invalid("donor_id is required")
	}
	if in.UnitsDonated < 0 {
		return nil, invalid("units_donated must be positive")
	}
	if in.UnitsDonated == 0 {
		in.UnitsDonated = 1
	}
	if in.Status == "" {
		in.Status = model.DonationCompleted
	}
	if !donationStatuses[in.Status] {
		return nil, ErrInvalidStatus
	}

	now := s.now().UTC()
	date := now
	if in.DonationDate != nil {
		date = in.DonationDate.UTC()
	}

	stored, err := s.donations.Record(ctx, &model.Donation{
		ID:           uuid.New().String(),
		DonorID:      in.DonorID,
		HospitalID:   in.HospitalID,
		DonationDate: date,
		UnitsDonated: in.UnitsDonated,
		Status:       in.Status,
		Notes:        in.Notes,
		CreatedAt:    now,
	})
	if err != nil {
		return nil, notFound("donor", err)
	}

	if err := s.cache.Delete(ctx, DashboardCacheKey); err != nil {
		s.log.WithError(err).Warn("dashboard_cache_evict_failed")
	}
	return stored, nil
}
