// Package model contains the domain models shared by the repository, service
// and HTTP layers. Models carry JSON tags only; persistence mapping lives in
// the repository implementations.
package model

import (
	"encoding/json"
	"time"
)

// Status values used across tables.
const (
	RequestPending   = "pending"
	RequestFulfilled = "fulfilled"
	RequestCancelled = "cancelled"

	UrgencyLow      = "low"
	UrgencyNormal   = "normal"
	UrgencyHigh     = "high"
	UrgencyCritical = "critical"

	DonationScheduled = "scheduled"
	DonationCompleted = "completed"
	DonationCancelled = "cancelled"

	QueueWaiting    = "waiting"
	QueueInProgress = "in_progress"
	QueueCompleted  = "completed"

	NotificationEmergency       = "emergency"
	NotificationDonationRequest = "donation_request"

	MatchNotified = "notified"
)

// Donor is a row in users. Only donors (IsDonor) take part in matching.
type Donor struct {
	ID               string     `json:"id"`
	AuthID           string     `json:"auth_id,omitempty"`
	Email            string     `json:"email,omitempty"`
	FullName         string     `json:"full_name"`
	Phone            string     `json:"phone,omitempty"`
	BloodType        string     `json:"blood_type"`
	City             string     `json:"city"`
	State            string     `json:"state"`
	Address          string     `json:"address,omitempty"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty"`
	Gender           string     `json:"gender,omitempty"`
	Latitude         *float64   `json:"latitude"`
	Longitude        *float64   `json:"longitude"`
	IsDonor          bool       `json:"is_donor"`
	IsAvailable      bool       `json:"is_available"`
	TotalDonations   int        `json:"total_donations"`
	LastDonationDate *time.Time `json:"last_donation_date"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// BloodRequest is a row in blood_requests.
type BloodRequest struct {
	ID           string    `json:"id"`
	RequesterID  *string   `json:"requester_id"`
	HospitalID   *string   `json:"hospital_id"`
	PatientName  string    `json:"patient_name"`
	BloodType    string    `json:"blood_type"`
	UnitsNeeded  int       `json:"units_needed"`
	Urgency      string    `json:"urgency"`
	IsEmergency  bool      `json:"is_emergency"`
	Status       string    `json:"status"`
	City         string    `json:"city"`
	ContactPhone string    `json:"contact_phone"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Donation is a row in donations.
type Donation struct {
	ID           string    `json:"id"`
	DonorID      string    `json:"donor_id"`
	HospitalID   *string   `json:"hospital_id"`
	DonationDate time.Time `json:"donation_date"`
	UnitsDonated int       `json:"units_donated"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

// InventoryItem is a row in blood_inventory.
type InventoryItem struct {
	ID             string    `json:"id"`
	HospitalID     string    `json:"hospital_id"`
	HospitalName   string    `json:"hospital_name,omitempty"`
	HospitalCity   string    `json:"hospital_city,omitempty"`
	BloodType      string    `json:"blood_type"`
	UnitsAvailable int       `json:"units_available"`
	UnitsReserved  int       `json:"units_reserved"`
	LastUpdated    time.Time `json:"last_updated"`
}

// Hospital is a row in hospitals.
type Hospital struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Phone        string   `json:"phone"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	HasBloodBank bool     `json:"has_blood_bank"`
	IsVerified   bool     `json:"is_verified"`
}

// Event is a row in events (donation drives, camps).
type Event struct {
	ID          string     `json:"id"`
	HospitalID  *string    `json:"hospital_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	EventType   string     `json:"event_type"`
	City        string     `json:"city"`
	Location    string     `json:"location"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Certificate is a row in certificates. The rendered PDF lives in object storage under StoragePath.
type Certificate struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	DonationID        *string   `json:"donation_id"`
	CertificateNumber string    `json:"certificate_number"`
	IssuedDate        time.Time `json:"issued_date"`
	StoragePath       string    `json:"storage_path"`
	CreatedAt         time.Time `json:"created_at"`
}

// Notification is a row in notifications.
type Notification struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
	IsRead    bool            `json:"is_read"`
	CreatedAt time.Time       `json:"created_at"`
}

// DonorMatch links a donor to a request they were notified about.
type DonorMatch struct {
	RequestID  string    `json:"request_id"`
	DonorID    string    `json:"donor_id"`
	Status     string    `json:"status"`
	NotifiedAt time.Time `json:"notified_at"`
}

// QueueEntry is a row in hospital_queue.
type QueueEntry struct {
	ID              string     `json:"id"`
	HospitalID      string     `json:"hospital_id"`
	DonorID         string     `json:"donor_id"`
	DonorName       string     `json:"donor_name,omitempty"`
	DonorBloodType  string     `json:"donor_blood_type,omitempty"`
	AppointmentDate string     `json:"appointment_date"`
	QueueNumber     int        `json:"queue_number"`
	Status          string     `json:"status"`
	CheckInTime     *time.Time `json:"check_in_time"`
	CompletedTime   *time.Time `json:"completed_time"`
	CreatedAt       time.Time  `json:"created_at"`
}

// HealthCheck is a persisted eligibility questionnaire.
type HealthCheck struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Age               *int      `json:"age"`
	WeightKg          *float64  `json:"weight_kg"`
	Hemoglobin        *float64  `json:"hemoglobin"`
	Systolic          *int      `json:"blood_pressure_systolic"`
	Diastolic         *int      `json:"blood_pressure_diastolic"`
	PulseRate         *int      `json:"pulse_rate"`
	TemperatureC      *float64  `json:"temperature"`
	RecentIllness     bool      `json:"has_recent_illness"`
	RecentSurgery     bool      `json:"has_recent_surgery"`
	RecentTattoo      bool      `json:"has_tattoo_recently"`
	Pregnant          bool      `json:"is_pregnant"`
	Breastfeeding     bool      `json:"is_breastfeeding"`
	OnMedication      bool      `json:"on_medication"`
	MedicationNotes   string    `json:"medication_details"`
	IsEligible        bool      `json:"is_eligible"`
	EligibilityReason string    `json:"eligibility_reason"`
	CreatedAt         time.Time `json:"created_at"`
}
