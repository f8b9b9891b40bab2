package handler

import (
	"github.com/gofiber/fiber/v2"

	"bloodlink/internal/service"
)

// ListHospitals godoc
// @Summary List verified hospitals
// @Tags hospitals
// @Produce json
// @Param city query string false "Case-insensitive city substring"
// @Param has_blood_bank query bool false "Only hospitals with a blood bank"
// @Success 200 {object} map[string][]model.Hospital
// @Router /api/hospitals [get]
func ListHospitals(svc service.HospitalService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		hospitals, err := svc.List(c.UserContext(), c.Query("city"), c.QueryBool("has_blood_bank"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"hospitals": hospitals})
	}
}

// ListEvents godoc
// @Summary List active donation events
// @Tags events
// @Produce json
// @Param city query string false "Case-insensitive city substring"
// @Param event_type query string false "Event type"
// @Success 200 {object} map[string][]model.Event
// @Router /api/events [get]
func ListEvents(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		events, err := svc.List(c.UserContext(), c.Query("city"), c.Query("event_type"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"events": events})
	}
}

// CreateEvent godoc
// @Summary Create a donation event
// @Tags events
// @Accept json
// @Produce json
// @Param body body service.CreateEventInput true "Event"
// @Success 201 {object} map[string]model.Event
// @Failure 400 {object} errorPayload
// @Router /api/events [post]
func CreateEvent(svc service.EventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreateEventInput
		if err := c.BodyParser(&in); err != nil {
			return writeInvalidBody(c)
		}
		if malformedID(optionalID(in.HospitalID)) {
			return writeInvalidID(c)
		}
		e, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"event": e})
	}
}
