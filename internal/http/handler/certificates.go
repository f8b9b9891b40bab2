package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"bloodlink/internal/service"
)

// ListCertificates godoc
// @Summary List certificates
// @Tags certificates
// @Produce json
// @Param user_id query string false "Donor ID"
// @Success 200 {object} map[string][]model.Certificate
// @Failure 400 {object} errorPayload
// @Router /api/certificates [get]
func ListCertificates(svc service.CertificateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Query("user_id")
		if malformedID(userID) {
			return writeInvalidID(c)
		}
		certs, err := svc.List(c.UserContext(), userID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"certificates": certs})
	}
}

// IssueCertificate godoc
// @Summary Issue a donation certificate
// @Description Renders the PDF, stores it and returns the record with a download link.
// @Tags certificates
// @Accept json
// @Produce json
// @Param body body service.IssueCertificateInput true "Certificate"
// @Success 201 {object} service.IssuedCertificate
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/certificates [post]
func IssueCertificate(svc service.CertificateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.IssueCertificateInput
		if err := c.BodyParser(&in); err != nil {
			return writeInvalidBody(c)
		}
		if malformedID(in.UserID, optionalID(in.DonationID)) {
			return writeInvalidID(c)
		}
		res, err := svc.Issue(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// CertificateDownloadURL godoc
// @Summary Pre-signed certificate link
// @Tags certificates
// @Produce json
// @Param id path string true "Certificate ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/certificates/{id}/download [get]
func CertificateDownloadURL(svc service.CertificateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeInvalidID(c)
		}
		url, err := svc.DownloadURL(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"download_url": url})
	}
}

// CertificateFile godoc
// @Summary Stream the certificate PDF
// @Tags certificates
// @Produce application/pdf
// @Param id path string true "Certificate ID"
// @Success 200 {file} binary
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/certificates/{id}/file [get]
func CertificateFile(svc service.CertificateService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeInvalidID(c)
		}
		rc, info, err := svc.Open(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}

		ct := info.ContentType
		if ct == "" {
			ct = "application/pdf"
		}
		c.Set(fiber.HeaderContentType, ct)
		c.Set(fiber.HeaderContentDisposition, `inline; filename="`+id+`.pdf"`)
		// fasthttp closes the stream once the body is written.
		if info.Size > 0 {
			return c.SendStream(rc, int(info.Size))
		}
		return c.SendStream(rc)
	}
}
