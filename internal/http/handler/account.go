package handler

import (
	"github.com/gofiber/fiber/v2"

	"bloodlink/internal/http/middleware"
	"bloodlink/internal/service"
)

// CheckEligibility godoc
// @Summary Donation eligibility check
// @Description Unanswered metrics are not checked. The result is stored when user_id is given.
// @Tags health-check
// @Accept json
// @Produce json
// @Param body body service.HealthCheckInput true "Questionnaire"
// @Success 200 {object} service.HealthCheckResult
// @Failure 400 {object} errorPayload
// @Router /api/health-check [post]
func CheckEligibility(svc service.EligibilityService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.HealthCheckInput
		if err := c.BodyParser(&in); err != nil {
			return writeInvalidBody(c)
		}
		if malformedID(in.UserID) {
			return writeInvalidID(c)
		}
		res, err := svc.Check(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetDashboard godoc
// @Summary Landing page statistics
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.Dashboard
// @Router /api/dashboard [get]
func GetDashboard(svc service.DashboardService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d, err := svc.Get(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(d)
	}
}

// GetProfile godoc
// @Summary The caller's profile
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} service.ProfileView
// @Failure 401 {object} errorPayload
// @Router /api/profile [get]
func GetProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := middleware.IdentityFromCtx(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		view, err := svc.Get(c.UserContext(), *id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(view)
	}
}

// SaveProfile godoc
// @Summary Create or update the caller's profile
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body service.ProfileInput true "Fields to change"
// @Success 200 {object} map[string]model.Donor
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Router /api/profile [post]
func SaveProfile(svc service.ProfileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := middleware.IdentityFromCtx(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		var in service.ProfileInput
		if err := c.BodyParser(&in); err != nil {
			return writeInvalidBody(c)
		}
		profile, err := svc.Save(c.UserContext(), *id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"profile": profile})
	}
}
