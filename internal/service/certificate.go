package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"bloodlink/internal/certificate"
	"bloodlink/internal/model"
	"bloodlink/internal/repository"
	"bloodlink/internal/storage"
)

const pdfContentType = "application/pdf"

// IssueCertificateInput names the donor and, optionally, the donation being recognised.
type IssueCertificateInput struct {
	UserID     string  `json:"user_id"`
	DonationID *string `json:"donation_id"`
}

// IssuedCertificate is a stored certificate with a time-limited download link.
type IssuedCertificate struct {
	Certificate *model.Certificate `json:"certificate"`
	DownloadURL string             `json:"download_url,omitempty"`
}

// CertificateService issues and serves donation certificates.
type CertificateService interface {
	List(ctx context.Context, userID string) ([]model.Certificate, error)

	// Issue numbers and renders a certificate, uploads the PDF, then saves the record.
	// The upload is removed again if the record cannot be saved.
	Issue(ctx context.Context, in IssueCertificateInput) (*IssuedCertificate, error)

	// DownloadURL returns a pre-signed link to the certificate PDF.
	DownloadURL(ctx context.Context, id string) (string, error)

	// Open streams the certificate PDF.
	Open(ctx context.Context, id string) (io.ReadCloser, storage.ObjectInfo, error)
}

type certificateService struct {
	store     storage.Storage
	certs     repository.CertificateRepository
	donors    repository.DonorRepository
	donations repository.DonationRepository
	expiry    time.Duration
	log       *logrus.Entry
	now       func() time.Time
}

// NewCertificateService constructs a CertificateService. Download links are valid for expiry.
func NewCertificateService(
	store storage.Storage,
	certs repository.CertificateRepository,
	donors repository.DonorRepository,
	donations repository.DonationRepository,
	expiry time.Duration,
	logger *logrus.Logger,
) CertificateService {
	return &certificateService{
		store:     store,
		certs:     certs,
		donors:    donors,
		donations: donations,
		expiry:    expiry,
		log:       logger.WithField("component", "certificate_service"),
		now:       time.Now,
	}
}

func (s *certificateService) List(ctx context.Context, userID string) ([]model.Certificate, error) {
	return s.certs.List(ctx, userID)
}

func (s *certificateService) Issue(ctx context.Context, in IssueCertificateInput) (*IssuedCertificate, error) {
	if in.UserID == "" {
		return nil, invalid("user_id is required")
	}
	donor, err := s.donors.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, notFound("donor", err)
	}

	now := s.now().UTC()
	data := certificate.Data{
		DonorName:  donor.FullName,
		BloodType:  donor.BloodType,
		IssuedDate: now,
		Units:      1,
	}
	if in.DonationID != nil && *in.DonationID != "" {
		donation, err := s.donations.FindByID(ctx, *in.DonationID)
		if err != nil {
			return nil, notFound("donation", err)
		}
		if donation.DonorID != donor.ID {
			return nil, invalid("donation belongs to another donor")
		}
		data.DonationDate = &donation.DonationDate
		data.Units = donation.UnitsDonated
	}

	number, err := certificate.NewNumber(now)
	if err != nil {
		return nil, fmt.Errorf("generate certificate number: %w", err)
	}
	data.Number = number

	var buf bytes.Buffer
	if err := certificate.Render(&buf, data); err != nil {
		return nil, err
	}

	key := storage.CertificateKey(donor.ID, number)
	obj, err := s.store.Put(ctx, key, &buf, storage.PutObjectOptions{
		Size:        int64(buf.Len()),
		ContentType: pdfContentType,
		Metadata:    map[string]string{"certificate-number": number},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	issued := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	stored, err := s.certs.Create(ctx, &model.Certificate{
		ID:                uuid.New().String(),
		UserID:            donor.ID,
		DonationID:        in.DonationID,
		CertificateNumber: number,
		IssuedDate:        issued,
		StoragePath:       obj.Key,
		CreatedAt:         now,
	})
	if err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	out := &IssuedCertificate{Certificate: stored}
	if url, err := s.store.PresignGet(ctx, stored.StoragePath, s.expiry); err != nil {
		s.log.WithError(err).WithField("certificate_id", stored.ID).Warn("certificate_presign_failed")
	} else {
		out.DownloadURL = url
	}
	return out, nil
}

func (s *certificateService) find(ctx context.Context, id string) (*model.Certificate, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	c, err := s.certs.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("certificate", err)
	}
	if c.StoragePath == "" {
		return nil, fmt.Errorf("certificate document %w", ErrNotFound)
	}
	return c, nil
}

func (s *certificateService) DownloadURL(ctx context.Context, id string) (string, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return "", err
	}
	return s.store.PresignGet(ctx, c.StoragePath, s.expiry)
}

func (s *certificateService) Open(ctx context.Context, id string) (io.ReadCloser, storage.ObjectInfo, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, storage.ObjectInfo{}, err
	}
	return s.store.Get(ctx, c.StoragePath)
}
