package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"bloodlink/internal/model"
	"bloodlink/internal/repository"
)

// HospitalService lists verified hospitals.
type HospitalService interface {
	List(ctx context.Context, city string, bloodBankOnly bool) ([]model.Hospital, error)
}

type hospitalService struct {
	hospitals repository.HospitalRepository
}

func NewHospitalService(hospitals repository.HospitalRepository) HospitalService {
	return &hospitalService{hospitals: hospitals}
}

func (s *hospitalService) List(ctx context.Context, city string, bloodBankOnly bool) ([]model.Hospital, error) {
	return s.hospitals.List(ctx, repository.HospitalFilter{City: strings.TrimSpace(city), BloodBankOnly: bloodBankOnly})
}

// CreateEventInput is the donation drive payload.
type CreateEventInput struct {
	HospitalID  *string    `json:"hospital_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	EventType   string     `json:"event_type"`
	City        string     `json:"city"`
	Location    string     `json:"location"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// EventService lists and creates donation drives.
type EventService interface {
	List(ctx context.Context, city, eventType string) ([]model.Event, error)
	Create(ctx context.Context, in CreateEventInput) (*model.Event, error)
}

type eventService struct {
	events repository.EventRepository
	now    func() time.Time
}

func NewEventService(events repository.EventRepository) EventService {
	return &eventService{events: events, now: time.Now}
}

func (s *eventService) List(ctx context.Context, city, eventType string) ([]model.Event, error) {
	return s.events.List(ctx, repository.EventFilter{City: strings.TrimSpace(city), EventType: eventType})
}

func (s *eventService) Create(ctx context.Context, in CreateEventInput) (*model.Event, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, invalid("title is required")
	}
	if in.StartDate.IsZero() {
		return nil, invalid("start_date is required")
	}
	if in.EndDate != nil && in.EndDate.Before(in.StartDate) {
		return nil, invalid("end_date must not be before start_date")
	}
	eventType := in.EventType
	if eventType == "" {
		eventType = "camp"
	}

	return s.events.Create(ctx, &model.Event{
		ID:          uuid.New().String(),
		HospitalID:  in.HospitalID,
		Title:       title,
		Description: in.Description,
		EventType:   eventType,
		City:        in.City,
		Location:    in.Location,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		IsActive:    true,
		CreatedAt:   s.now().UTC(),
	})
}
