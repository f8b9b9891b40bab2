package handler

import (
	"github.com/gofiber/fiber/v2"

	"bloodlink/internal/http/middleware"
	"bloodlink/internal/service"
)

// ListDonors godoc
// @Summary List donors
// @Description Public donor directory, most donations first. Contact details are omitted.
// @Tags donors
// @Produce json
// @Param blood_type query string false "Exact blood type"
// @Param city query string false "Case-insensitive city substring"
// @Param available query bool false "Only available donors"
// @Success 200 {object} map[string][]model.Donor
// @Router /api/donors [get]
func ListDonors(svc service.DonorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		donors, err := svc.List(c.UserContext(), service.DonorQuery{
			BloodType:     c.Query("blood_type"),
			City:          c.Query("city"),
			AvailableOnly: c.QueryBool("available"),
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"donors": donors})
	}
}

// RegisterDonor godoc
// @Summary Register as a donor
// @Tags donors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body service.RegisterDonorInput true "Donor profile"
// @Success 201 {object} map[string]model.Donor
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Router /api/donors [post]
func RegisterDonor(svc service.DonorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := middleware.IdentityFromCtx(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		var in service.RegisterDonorInput
		if err := c.BodyParser(&in); err != nil {
			return writeInvalidBody(c)
		}
		donor, err := svc.Register(c.UserContext(), *id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"donor": donor})
	}
}

// MatchDonors godoc
// @Summary Find compatible donors
// @Description Available donors whose blood can be given to blood_type, nearest first when coordinates are given.
// @Tags donors
// @Accept json
// @Produce json
// @Param body body service.MatchInput true "Search"
// @Success 200 {object} service.MatchResult
// @Failure 400 {object} errorPayload
// @Router /api/donors/match [post]
func MatchDonors(svc service.DonorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.MatchInput
		if err := c.BodyParser(&in); err != nil {
			return writeInvalidBody(c)
		}
		res, err := svc.Match(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// ContactDonor godoc
// @Summary Ask a donor to donate
// @Tags donors
// @Accept json
// @Produce json
// @Param body body service.ContactInput true "Contact request"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/donors/contact [post]
func ContactDonor(svc service.DonorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.ContactInput
		if err := c.BodyParser(&in); err != nil {
			return writeInvalidBody(c)
		}
		if malformedID(in.DonorID, in.RequestID) {
			return writeInvalidID(c)
		}
		if in.RequesterName == "" {
			if id, ok := middleware.IdentityFromCtx(c); ok {
				in.RequesterName = id.FullName
			}
		}
		if err := svc.Contact(c.UserContext(), in); err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
