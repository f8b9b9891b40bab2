package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"bloodlink/internal/broker"
	"bloodlink/internal/matching"
	"bloodlink/internal/model"
	"bloodlink/internal/repository"
)

// RequestQuery filters blood request listings.
type RequestQuery struct {
	Status        string
	BloodType     string
	EmergencyOnly bool
}

// CreateRequestInput is the blood request payload.
type CreateRequestInput struct {
	RequesterID  *string `json:"requester_id"`
	HospitalID   *string `json:"hospital_id"`
	PatientName  string  `json:"patient_name"`
	BloodType    string  `json:"blood_type"`
	UnitsNeeded  int     `json:"units_needed"`
	Urgency      string  `json:"urgency"`
	IsEmergency  bool    `json:"is_emergency"`
	City         string  `json:"city"`
	ContactPhone string  `json:"contact_phone"`
	Notes        string  `json:"notes"`
}

// EmergencyResult reports the stored request and how many donors were notified.
type EmergencyResult struct {
	Request        *model.BloodRequest `json:"request"`
	NotifiedDonors int                 `json:"notified_donors"`
}

// BloodRequestService manages blood requests and emergency broadcasts.
type BloodRequestService interface {
	List(ctx context.Context, q RequestQuery) ([]model.BloodRequest, error)
	Create(ctx context.Context, in CreateRequestInput) (*model.BloodRequest, error)

	// CreateEmergency stores a critical pending request, notifies up to the configured
	// number of available compatible donors, and publishes an event. Notification and
	// publish failures are logged; the stored request is still returned.
	CreateEmergency(ctx context.Context, in CreateRequestInput) (*EmergencyResult, error)

	UpdateStatus(ctx context.Context, id, status string) (*model.BloodRequest, error)
}

type bloodRequestService struct {
	requests      repository.BloodRequestRepository
	donors        repository.DonorRepository
	notifications repository.NotificationRepository
	events        broker.Publisher
	notifyLimit   int
	log           *logrus.Entry
	now           func() time.Time
}

// NewBloodRequestService constructs a BloodRequestService. notifyLimit caps donors alerted per emergency.
func NewBloodRequestService(
	requests repository.BloodRequestRepository,
	donors repository.DonorRepository,
	notifications repository.NotificationRepository,
	events broker.Publisher,
	notifyLimit int,
	logger *logrus.Logger,
) BloodRequestService {
	return &bloodRequestService{
		requests:      requests,
		donors:        donors,
		notifications: notifications,
		events:        events,
		notifyLimit:   notifyLimit,
		log:           logger.WithField("component", "blood_request_service"),
		now:           time.Now,
	}
}

var urgencies = map[string]bool{
	model.UrgencyLow:      true,
	model.UrgencyNormal:   true,
	model.UrgencyHigh:     true,
	model.UrgencyCritical: true,
}

var requestStatuses = map[string]bool{
	model.RequestPending:   true,
	model.RequestFulfilled: true,
	model.RequestCancelled: true,
}

func (s *bloodRequestService) List(ctx context.Context, q RequestQuery) ([]model.BloodRequest, error) {
	return s.requests.List(ctx, repository.RequestFilter{
		Status:        q.Status,
		BloodType:     q.BloodType,
		EmergencyOnly: q.EmergencyOnly,
	})
}

func (s *bloodRequestService) Create(ctx context.Context, in CreateRequestInput) (*model.BloodRequest, error) {
	br, err := s.build(in)
	if err != nil {
		return nil, err
	}
	return s.requests.Create(ctx, br)
}

func (s *bloodRequestService) build(in CreateRequestInput) (*model.BloodRequest, error) {
	if !matching.ValidBloodType(in.BloodType) {
		return nil, ErrInvalidBloodType
	}
	if in.UnitsNeeded <= 0 {
		return nil, invalid("units_needed must be positive")
	}
	urgency := in.Urgency
	if urgency == "" {
		urgency = model.UrgencyNormal
	}
	if !urgencies[urgency] {
		return nil, invalid("unknown urgency %q", urgency)
	}

	now := s.now().UTC()
	return &model.BloodRequest{
		ID:           uuid.New().String(),
		RequesterID:  in.RequesterID,
		HospitalID:   in.HospitalID,
		PatientName:  in.PatientName,
		BloodType:    in.BloodType,
		UnitsNeeded:  in.UnitsNeeded,
		Urgency:      urgency,
		IsEmergency:  in.IsEmergency,
		Status:       model.RequestPending,
		City:         in.City,
		ContactPhone: in.ContactPhone,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (s *bloodRequestService) CreateEmergency(ctx context.Context, in CreateRequestInput) (*EmergencyResult, error) {
	in.IsEmergency = true
	in.Urgency = model.UrgencyCritical

	br, err := s.build(in)
	if err != nil {
		return nil, err
	}
	stored, err := s.requests.Create(ctx, br)
	if err != nil {
		return nil, err
	}

	log := s.log.WithFields(logrus.Fields{"request_id": stored.ID, "blood_type": stored.BloodType})
	compatible := matching.CompatibleDonors(stored.BloodType)
	notified := s.notifyDonors(ctx, log, stored, compatible)

	err = s.events.Publish(ctx, broker.Event{
		Type: broker.EventEmergencyRequest,
		Key:  stored.ID,
		Data: map[string]any{
			"request_id":       stored.ID,
			"blood_type":       stored.BloodType,
			"units_needed":     stored.UnitsNeeded,
			"city":             stored.City,
			"hospital_id":      stored.HospitalID,
			"compatible_types": compatible,
			"notified_donors":  notified,
		},
	})
	if err != nil {
		log.WithError(err).Warn("emergency_event_publish_failed")
	}

	return &EmergencyResult{Request: stored, NotifiedDonors: notified}, nil
}

// notifyDonors alerts available compatible donors and returns how many were notified.
func (s *bloodRequestService) notifyDonors(ctx context.Context, log *logrus.Entry, br *model.BloodRequest, compatible []string) int {
	donors, err := s.donors.List(ctx, repository.DonorFilter{
		BloodTypes:    compatible,
		AvailableOnly: true,
		Limit:         s.notifyLimit,
	})
	if err != nil {
		log.WithError(err).Warn("emergency_donor_lookup_failed")
		return 0
	}
	if len(donors) == 0 {
		return 0
	}

	data, err := json.Marshal(map[string]string{"request_id": br.ID})
	if err != nil {
		log.WithError(err).Warn("emergency_payload_failed")
		return 0
	}
	message := EmergencyMessage(br.BloodType, br.City, br.UnitsNeeded)
	now := s.now().UTC()

	ns := make([]model.Notification, 0, len(donors))
	for _, d := range donors {
		ns = append(ns, model.Notification{
			ID:        uuid.New().String(),
			UserID:    d.ID,
			Title:     "Emergency Blood Request",
			Message:   message,
			Type:      model.NotificationEmergency,
			Data:      data,
			CreatedAt: now,
		})
	}
	if err := s.notifications.CreateBatch(ctx, ns); err != nil {
		log.WithError(err).WithField("donors", len(ns)).Warn("emergency_notify_failed")
		return 0
	}
	return len(ns)
}

// EmergencyMessage is the text sent to donors for an emergency request.
func EmergencyMessage(bloodType, city string, units int) string {
	where := city
	if where == "" {
		where = "your area"
	}
	return fmt.Sprintf("Urgent need for %s blood in %s. %d unit(s) required.", bloodType, where, units)
}

func (s *bloodRequestService) UpdateStatus(ctx context.Context, id, status string) (*model.BloodRequest, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if !requestStatuses[status] {
		return nil, ErrInvalidStatus
	}
	br, err := s.requests.UpdateStatus(ctx, id, status, s.now().UTC())
	if err != nil {
		return nil, notFound("blood request", err)
	}
	return br, nil
}
