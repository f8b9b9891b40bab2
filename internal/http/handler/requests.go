package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"bloodlink/internal/service"
)

// ListBloodRequests godoc
// @Summary List blood requests
// @Tags blood-requests
// @Produce json
// @Param status query string false "pending, fulfilled or cancelled"
// @Param blood_type query string false "Exact blood type"
// @Param emergency query bool false "Only emergencies"
// @Success 200 {object} map[string][]model.BloodRequest
// @Router /api/blood-requests [get]
func ListBloodRequests(svc service.BloodRequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requests, err := svc.List(c.UserContext(), service.RequestQuery{
			Status:        c.Query("status"),
			BloodType:     c.Query("blood_type"),
			EmergencyOnly: c.QueryBool("emergency"),
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"requests": requests})
	}
}

// CreateBloodRequest godoc
// @Summary Create a blood request
// @Tags blood-requests
// @Accept json
// @Produce json
// @Param body body service.CreateRequestInput true "Request"
// @Success 201 {object} map[string]model.BloodRequest
// @Failure 400 {object} errorPayload
// @Router /api/blood-requests [post]
func CreateBloodRequest(svc service.BloodRequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreateRequestInput
		if err := c.BodyParser(&in); err != nil {
			return writeInvalidBody(c)
		}
		if malformedID(optionalID(in.RequesterID), optionalID(in.HospitalID)) {
			return writeInvalidID(c)
		}
		br, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"request": br})
	}
}

// CreateEmergencyRequest godoc
// @Summary Broadcast an emergency request
// @Description Stores a critical request and alerts available compatible donors.
// @Tags blood-requests
// @Accept json
// @Produce json
// @Param body body service.CreateRequestInput true "Request"
// @Success 201 {object} service.EmergencyResult
// @Failure 400 {object} errorPayload
// @Router /api/blood-requests/emergency [post]
func CreateEmergencyRequest(svc service.BloodRequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreateRequestInput
		if err := c.BodyParser(&in); err != nil {
			return writeInvalidBody(c)
		}
		if malformedID(optionalID(in.RequesterID), optionalID(in.HospitalID)) {
			return writeInvalidID(c)
		}
		res, err := svc.CreateEmergency(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

type statusBody struct {
	Status string `json:"status"`
}

// UpdateBloodRequestStatus godoc
// @Summary Change a request's status
// @Tags blood-requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param body body statusBody true "New status"
// @Success 200 {object} map[string]model.BloodRequest
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/blood-requests/{id}/status [patch]
func UpdateBloodRequestStatus(svc service.BloodRequestService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeInvalidID(c)
		}
		var body statusBody
		if err := c.BodyParser(&body); err != nil {
			return writeInvalidBody(c)
		}
		br, err := svc.UpdateStatus(c.UserContext(), id, body.Status)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"request": br})
	}
}
