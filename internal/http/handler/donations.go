package handler

import (
	"github.com/gofiber/fiber/v2"

	"bloodlink/internal/service"
)

// ListDonations godoc
// @Summary List donations
// @Tags donations
// @Produce json
// @Param donor_id query string false "Donor ID"
// @Param status query string false "scheduled, completed or cancelled"
// @Success 200 {object} map[string][]model.Donation
// @Failure 400 {object} errorPayload
// @Router /api/donations [get]
func ListDonations(svc service.DonationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := service.DonationQuery{
			DonorID: c.Query("donor_id"),
			Status:  c.Query("status"),
		}
		if malformedID(q.DonorID) {
			return writeInvalidID(c)
		}
		donations, err := svc.List(c.UserContext(), q)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"donations": donations})
	}
}

// RecordDonation godoc
// @Summary Record a donation
// @Description Credits the donor; a completed donation also marks them unavailable.
// @Tags donations
// @Accept json
// @Produce json
// @Param body body service.RecordDonationInput true "Donation"
// @Success 201 {object} map[string]model.Donation
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/donations [post]
func RecordDonation(svc service.DonationService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.RecordDonationInput
		if err := c.BodyParser(&in); err != nil {
			return writeInvalidBody(c)
		}
		if malformedID(in.DonorID, optionalID(in.HospitalID)) {
			return writeInvalidID(c)
		}
		d, err := svc.Record(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"donation": d})
	}
}
