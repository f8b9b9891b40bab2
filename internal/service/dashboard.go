package service

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"bloodlink/internal/cache"
	"bloodlink/internal/matching"
	"bloodlink/internal/model"
	"bloodlink/internal/repository"
)

// DashboardCacheKey holds the cached dashboard payload.
const DashboardCacheKey = "bloodlink:dashboard"

const (
	livesPerUnit         = 3
	recentDonationsLimit = 5
)

// DashboardStats are the headline counters.
type DashboardStats struct {
	TotalDonors       int `json:"totalDonors"`
	TotalDonations    int `json:"totalDonations"`
	TotalUnits        int `json:"totalUnits"`
	LivesSaved        int `json:"livesSaved"`
	TotalHospitals    int `json:"totalHospitals"`
	ActiveEvents      int `json:"activeEvents"`
	PendingRequests   int `json:"pendingRequests"`
	EmergencyRequests int `json:"emergencyRequests"`
}

// Dashboard is the landing page summary.
type Dashboard struct {
	Stats           DashboardStats   `json:"stats"`
	Inventory       map[string]int   `json:"inventory"`
	RecentDonations []model.Donation `json:"recentDonations"`
}

// DashboardService builds the dashboard, serving it from cache while fresh.
type DashboardService interface {
	Get(ctx context.Context) (*Dashboard, error)
}

type dashboardService struct {
	repo  repository.DashboardRepository
	cache cache.Cache
	ttl   time.Duration
	log   *logrus.Entry
}

func NewDashboardService(repo repository.DashboardRepository, c cache.Cache, ttl time.Duration, logger *logrus.Logger) DashboardService {
	return &dashboardService{
		repo:  repo,
		cache: c,
		ttl:   ttl,
		log:   logger.WithField("component", "dashboard_service"),
	}
}

func (s *dashboardService) Get(ctx context.Context) (*Dashboard, error) {
	var cached Dashboard
	err := s.cache.Get(ctx, DashboardCacheKey, &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrMiss) {
		s.log.WithError(err).Warn("dashboard_cache_read_failed")
	}

	snap, err := s.repo.Snapshot(ctx, recentDonationsLimit)
	if err != nil {
		return nil, err
	}
	d := &Dashboard{
		Stats: DashboardStats{
			TotalDonors:       snap.TotalDonors,
			TotalDonations:    snap.TotalDonations,
			TotalUnits:        snap.TotalUnits,
			LivesSaved:        LivesSaved(snap.TotalUnits),
			TotalHospitals:    snap.TotalHospitals,
			ActiveEvents:      snap.ActiveEvents,
			PendingRequests:   snap.PendingRequests,
			EmergencyRequests: snap.EmergencyRequests,
		},
		Inventory:       unitsByType(snap.InventoryByType),
		RecentDonations: snap.RecentDonations,
	}
	if d.RecentDonations == nil {
		d.RecentDonations = []model.Donation{}
	}

	if s.ttl > 0 {
		if err := s.cache.Set(ctx, DashboardCacheKey, d, s.ttl); err != nil {
			s.log.WithError(err).Warn("dashboard_cache_write_failed")
		}
	}
	return d, nil
}

// LivesSaved estimates lives saved from donated units.
func LivesSaved(units int) int {
	return int(math.Floor(float64(units) * livesPerUnit))
}

// unitsByType reports every blood type, zero when no stock row exists.
func unitsByType(stock map[string]int) map[string]int {
	out := make(map[string]int, len(stock)+8)
	for _, bt := range matching.AllBloodTypes() {
		out[bt] = 0
	}
	for bt, units := range stock {
		out[bt] = units
	}
	return out
}
