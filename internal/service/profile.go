package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"bloodlink/internal/auth"
	"bloodlink/internal/matching"
	"bloodlink/internal/model"
	"bloodlink/internal/repository"
)

// ProfileView is the authenticated caller plus their donor profile, if any.
type ProfileView struct {
	Authenticated bool          `json:"authenticated"`
	User          auth.Identity `json:"user"`
	Profile       *model.Donor  `json:"profile"`
}

// ProfileInput holds the fields a user may change on their own profile. Nil fields are left alone.
type ProfileInput struct {
	FullName    *string `json:"full_name"`
	Phone       *string `json:"phone"`
	BloodType   *string `json:"blood_type"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Address     *string `json:"address"`
	DateOfBirth *string `json:"date_of_birth"`
	Gender      *string `json:"gender"`
	IsAvailable *bool   `json:"is_available"`
}

// ProfileService reads and upserts the caller's own profile.
type ProfileService interface {
	Get(ctx context.Context, id auth.Identity) (*ProfileView, error)
	// Save updates the profile owned by id, creating it on first use.
	Save(ctx context.Context, id auth.Identity, in ProfileInput) (*model.Donor, error)
}

type profileService struct {
	donors repository.DonorRepository
	now    func() time.Time
}

func NewProfileService(donors repository.DonorRepository) ProfileService {
	return &profileService{donors: donors, now: time.Now}
}

func (s *profileService) Get(ctx context.Context, id auth.Identity) (*ProfileView, error) {
	view := &ProfileView{Authenticated: true, User: id}
	profile, err := s.donors.FindByAuthID(ctx, id.AuthID)
	switch {
	case err == nil:
		view.Profile = profile
	case !errors.Is(err, sql.ErrNoRows):
		return nil, err
	}
	return view, nil
}

func (s *profileService) Save(ctx context.Context, id auth.Identity, in ProfileInput) (*model.Donor, error) {
	if in.BloodType != nil && !matching.ValidBloodType(*in.BloodType) {
		return nil, ErrInvalidBloodType
	}
	var dob *time.Time
	if in.DateOfBirth != nil {
		var err error
		if dob, err = parseOptionalDate("date_of_birth", *in.DateOfBirth); err != nil {
			return nil, err
		}
	}

	now := s.now().UTC()
	_, err := s.donors.FindByAuthID(ctx, id.AuthID)
	if err == nil {
		fields := map[string]any{
			"email":      id.Email,
			"is_donor":   true,
			"updated_at": now,
		}
		setString(fields, "full_name", in.FullName)
		setString(fields, "phone", in.Phone)
		setString(fields, "blood_type", in.BloodType)
		setString(fields, "city", in.City)
		setString(fields, "state", in.State)
		setString(fields, "address", in.Address)
		setString(fields, "gender", in.Gender)
		if in.DateOfBirth != nil {
			fields["date_of_birth"] = dob
		}
		if in.IsAvailable != nil {
			fields["is_available"] = *in.IsAvailable
		}
		return s.donors.UpdateByAuthID(ctx, id.AuthID, fields)
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	if in.BloodType == nil {
		return nil, invalid("blood_type is required")
	}
	d := &model.Donor{
		ID:          uuid.New().String(),
		AuthID:      id.AuthID,
		Email:       id.Email,
		FullName:    deref(in.FullName),
		Phone:       deref(in.Phone),
		BloodType:   *in.BloodType,
		City:        deref(in.City),
		State:       deref(in.State),
		Address:     deref(in.Address),
		DateOfBirth: dob,
		Gender:      deref(in.Gender),
		IsDonor:     true,
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if d.FullName == "" {
		d.FullName = id.FullName
	}
	if in.IsAvailable != nil {
		d.IsAvailable = *in.IsAvailable
	}
	return s.donors.Create(ctx, d)
}

func setString(fields map[string]any, column string, v *string) {
	if v != nil {
		fields[column] = *v
	}
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
