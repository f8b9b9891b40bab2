// Package repository declares the persistence contracts for every table the
// service touches. Implementations live in subpackages (postgres) and hold no
// business rules: they filter, sort and write exactly what they are asked to.
package repository

import (
	"context"
	"time"

	"bloodlink/internal/model"
)

// DonorFilter narrows donor listings. Zero values mean "no filter".
type DonorFilter struct {
	BloodType     string
	BloodTypes    []string
	City          string
	AvailableOnly bool
	Limit         int
}

// DonorRepository reads and writes donors stored in users.
type DonorRepository interface {
	// List returns donors (is_donor) matching f, most donations first.
	List(ctx context.Context, f DonorFilter) ([]model.Donor, error)
	FindByID(ctx context.Context, id string) (*model.Donor, error)
	// FindByAuthID returns sql.ErrNoRows when the identity has no profile yet.
	FindByAuthID(ctx context.Context, authID string) (*model.Donor, error)
	Create(ctx context.Context, d *model.Donor) (*model.Donor, error)
	// UpdateByAuthID applies the given column values to the profile owned by authID.
	UpdateByAuthID(ctx context.Context, authID string, fields map[string]any) (*model.Donor, error)
}

// RequestFilter narrows blood request listings.
type RequestFilter struct {
	Status        string
	BloodType     string
	EmergencyOnly bool
}

// BloodRequestRepository persists blood_requests.
type BloodRequestRepository interface {
	List(ctx context.Context, f RequestFilter) ([]model.BloodRequest, error)
	Create(ctx context.Context, r *model.BloodRequest) (*model.BloodRequest, error)
	UpdateStatus(ctx context.Context, id, status string, at time.Time) (*model.BloodRequest, error)
}

// DonationFilter narrows donation listings.
type DonationFilter struct {
	DonorID string
	Status  string
	Limit   int
}

// DonationRepository persists donations.
type DonationRepository interface {
	List(ctx context.Context, f DonationFilter) ([]model.Donation, error)
	FindByID(ctx context.Context, id string) (*model.Donation, error)
	// Record inserts the donation and credits the donor in one transaction:
	// total_donations is incremented and last_donation_date set; a completed
	// donation also marks the donor unavailable.
	Record(ctx context.Context, d *model.Donation) (*model.Donation, error)
}

// InventoryFilter narrows inventory listings.
type InventoryFilter struct {
	HospitalID string
	BloodType  string
}

// InventoryRepository persists blood_inventory.
type InventoryRepository interface {
	List(ctx context.Context, f InventoryFilter) ([]model.InventoryItem, error)
	UpdateUnits(ctx context.Context, id string, available, reserved int, at time.Time) (*model.InventoryItem, error)
}

// HospitalFilter narrows hospital listings. Only verified hospitals are ever listed.
type HospitalFilter struct {
	City          string
	BloodBankOnly bool
}

// HospitalRepository reads hospitals.
type HospitalRepository interface {
	List(ctx context.Context, f HospitalFilter) ([]model.Hospital, error)
}

// EventFilter narrows event listings. Only active events are ever listed.
type EventFilter struct {
	City      string
	EventType string
}

// EventRepository persists events.
type EventRepository interface {
	List(ctx context.Context, f EventFilter) ([]model.Event, error)
	Create(ctx context.Context, e *model.Event) (*model.Event, error)
}

// CertificateRepository persists certificates.
type CertificateRepository interface {
	// List returns certificates newest first; an empty userID lists all.
	List(ctx context.Context, userID string) ([]model.Certificate, error)
	FindByID(ctx context.Context, id string) (*model.Certificate, error)
	Create(ctx context.Context, c *model.Certificate) (*model.Certificate, error)
}

// NotificationRepository writes notifications and donor match links.
type NotificationRepository interface {
	CreateBatch(ctx context.Context, ns []model.Notification) error
	UpsertMatch(ctx context.Context, m model.DonorMatch) error
}

// QueueRepository persists hospital_queue.
type QueueRepository interface {
	// ListDay returns one day's entries ordered by queue number. An empty hospitalID lists all hospitals.
	ListDay(ctx context.Context, hospitalID, date string) ([]model.QueueEntry, error)
	// Enqueue inserts e with the next queue number for its hospital and day.
	Enqueue(ctx context.Context, e *model.QueueEntry) (*model.QueueEntry, error)
	// UpdateStatus sets status and whichever timestamps are non-nil.
	UpdateStatus(ctx context.Context, id, status string, checkIn, completed *time.Time) (*model.QueueEntry, error)
}

// HealthCheckRepository persists health_checks.
type HealthCheckRepository interface {
	Create(ctx context.Context, h *model.HealthCheck) (*model.HealthCheck, error)
}

// DashboardSnapshot carries the raw aggregates behind the dashboard.
type DashboardSnapshot struct {
	TotalDonors       int
	TotalDonations    int
	TotalUnits        int
	TotalHospitals    int
	ActiveEvents      int
	PendingRequests   int
	EmergencyRequests int
	InventoryByType   map[string]int
	RecentDonations   []model.Donation
}

// DashboardRepository computes cross-table aggregates.
type DashboardRepository interface {
	Snapshot(ctx context.Context, recent int) (*DashboardSnapshot, error)
}
