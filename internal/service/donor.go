package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"bloodlink/internal/auth"
	"bloodlink/internal/matching"
	"bloodlink/internal/model"
	"bloodlink/internal/repository"
)

// DonorQuery filters the public donor directory.
type DonorQuery struct {
	BloodType     string
	City          string
	AvailableOnly bool
}

// RegisterDonorInput is the self-registration payload.
type RegisterDonorInput struct {
	FullName    string   `json:"full_name"`
	Phone       string   `json:"phone"`
	BloodType   string   `json:"blood_type"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Address     string   `json:"address"`
	DateOfBirth string   `json:"date_of_birth"`
	Gender      string   `json:"gender"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	IsAvailable *bool    `json:"is_available"`
}

// MatchInput asks for donors able to supply BloodType, optionally near a point.
type MatchInput struct {
	BloodType string   `json:"blood_type"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	RadiusKm  *float64 `json:"radius_km"`
}

// DonorMatchView is a matched donor with its distance from the search origin.
type DonorMatchView struct {
	model.Donor
	DistanceKm *float64 `json:"distance_km"`
}

// MatchResult lists matched donors nearest first.
type MatchResult struct {
	Matches         []DonorMatchView `json:"matches"`
	Total           int              `json:"total"`
	CompatibleTypes []string         `json:"compatible_types"`
}

// ContactInput asks a donor to donate, optionally for a specific request.
type ContactInput struct {
	DonorID       string `json:"donor_id"`
	Message       string `json:"message"`
	RequestID     string `json:"request_id"`
	RequesterName string `json:"requester_name"`
}

// DonorService covers the donor directory, registration, matching and contact.
type DonorService interface {
	// List returns donors with contact details stripped, most donations first.
	List(ctx context.Context, q DonorQuery) ([]model.Donor, error)

	// Register creates the donor profile for the authenticated identity.
	Register(ctx context.Context, id auth.Identity, in RegisterDonorInput) (*model.Donor, error)

	// Match finds available donors of every compatible type. Radius filtering applies
	// only when both coordinates are given.
	Match(ctx context.Context, in MatchInput) (*MatchResult, error)

	// Contact notifies a donor. When RequestID is set the donor is linked to that
	// request; a failure to link is logged and does not fail the call.
	Contact(ctx context.Context, in ContactInput) error
}

type donorService struct {
	donors        repository.DonorRepository
	notifications repository.NotificationRepository
	radiusKm      float64
	log           *logrus.Entry
	now           func() time.Time
}

// NewDonorService constructs a DonorService. defaultRadiusKm applies when a match omits radius_km.
func NewDonorService(donors repository.DonorRepository, notifications repository.NotificationRepository, defaultRadiusKm float64, logger *logrus.Logger) DonorService {
	return &donorService{
		donors:        donors,
		notifications: notifications,
		radiusKm:      defaultRadiusKm,
		log:           logger.WithField("component", "donor_service"),
		now:           time.Now,
	}
}

func (s *donorService) List(ctx context.Context, q DonorQuery) ([]model.Donor, error) {
	donors, err := s.donors.List(ctx, repository.DonorFilter{
		BloodType:     q.BloodType,
		City:          strings.TrimSpace(q.City),
		AvailableOnly: q.AvailableOnly,
	})
	if err != nil {
		return nil, err
	}
	for i := range donors {
		donors[i] = publicDonor(donors[i])
	}
	return donors, nil
}

func (s *donorService) Register(ctx context.Context, id auth.Identity, in RegisterDonorInput) (*model.Donor, error) {
	if !matching.ValidBloodType(in.BloodType) {
		return nil, ErrInvalidBloodType
	}
	if err := validatePosition(in.Latitude, in.Longitude); err != nil {
		return nil, err
	}
	dob, err := parseOptionalDate("date_of_birth", in.DateOfBirth)
	if err != nil {
		return nil, err
	}

	_, err = s.donors.FindByAuthID(ctx, id.AuthID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("donor profile %w", ErrAlreadyExists)
	case !errors.Is(err, sql.ErrNoRows):
		return nil, err
	}

	name := strings.TrimSpace(in.FullName)
	if name == "" {
		name = id.FullName
	}
	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}

	now := s.now().UTC()
	return s.donors.Create(ctx, &model.Donor{
		ID:          uuid.New().String(),
		AuthID:      id.AuthID,
		Email:       id.Email,
		FullName:    name,
		Phone:       in.Phone,
		BloodType:   in.BloodType,
		City:        in.City,
		State:       in.State,
		Address:     in.Address,
		DateOfBirth: dob,
		Gender:      in.Gender,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		IsDonor:     true,
		IsAvailable: available,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *donorService) Match(ctx context.Context, in MatchInput) (*MatchResult, error) {
	if in.BloodType == "" {
		return nil, invalid("blood_type is required")
	}
	radius := s.radiusKm
	if in.RadiusKm != nil {
		if *in.RadiusKm < 0 {
			return nil, invalid("radius_km must not be negative")
		}
		if *in.RadiusKm > 0 {
			radius = *in.RadiusKm
		}
	}

	compatible := matching.CompatibleDonors(in.BloodType)
	donors, err := s.donors.List(ctx, repository.DonorFilter{
		BloodTypes:    compatible,
		AvailableOnly: true,
	})
	if err != nil {
		return nil, err
	}

	matches := make([]DonorMatchView, 0, len(donors))
	if in.Latitude != nil && in.Longitude != nil {
		origin := matching.Coordinates{Latitude: *in.Latitude, Longitude: *in.Longitude}
		if err := origin.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		for _, r := range matching.FilterByRadius(origin, donors, radius) {
			matches = append(matches, DonorMatchView{Donor: publicDonor(r.Item), DistanceKm: r.DistanceKm})
		}
	} else {
		for _, d := range donors {
			matches = append(matches, DonorMatchView{Donor: publicDonor(d)})
		}
	}

	return &MatchResult{Matches: matches, Total: len(matches), CompatibleTypes: compatible}, nil
}

func (s *donorService) Contact(ctx context.Context, in ContactInput) error {
	if in.DonorID == "" {
		return invalid("donor_id is required")
	}
	if _, err := s.donors.FindByID(ctx, in.DonorID); err != nil {
		return notFound("donor", err)
	}

	message := strings.TrimSpace(in.Message)
	if message == "" {
		from := in.RequesterName
		if from == "" {
			from = "a patient in need"
		}
		message = "You have a new blood donation request from " + from + "."
	}

	data, err := json.Marshal(map[string]string{
		"request_id":     in.RequestID,
		"requester_name": in.RequesterName,
	})
	if err != nil {
		return err
	}

	now := s.now().UTC()
	err = s.notifications.CreateBatch(ctx, []model.Notification{{
		ID:        uuid.New().String(),
		UserID:    in.DonorID,
		Title:     "New Blood Donation Request",
		Message:   message,
		Type:      model.NotificationDonationRequest,
		Data:      data,
		CreatedAt: now,
	}})
	if err != nil {
		return fmt.Errorf("notify donor: %w", err)
	}

	if in.RequestID != "" {
		err := s.notifications.UpsertMatch(ctx, model.DonorMatch{
			RequestID:  in.RequestID,
			DonorID:    in.DonorID,
			Status:     model.MatchNotified,
			NotifiedAt: now,
		})
		if err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{
				"request_id": in.RequestID,
				"donor_id":   in.DonorID,
			}).Warn("donor_match_upsert_failed")
		}
	}
	return nil
}

// publicDonor drops contact and identity details from a directory entry.
func publicDonor(d model.Donor) model.Donor {
	d.AuthID = ""
	d.Email = ""
	d.Phone = ""
	d.Address = ""
	d.DateOfBirth = nil
	d.Gender = ""
	return d
}

// validatePosition accepts no coordinates or a valid pair.
func validatePosition(lat, lon *float64) error {
	if lat == nil && lon == nil {
		return nil
	}
	if lat == nil || lon == nil {
		return invalid("latitude and longitude must be given together")
	}
	if err := (matching.Coordinates{Latitude: *lat, Longitude: *lon}).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

func parseOptionalDate(field, v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, invalid("%s must be YYYY-MM-DD", field)
	}
	return &t, nil
}
