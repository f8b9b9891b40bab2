package handler

import (
	"github.com/gofiber/fiber/v2"

	"bloodlink/internal/service"
)

// GetQueue godoc
// @Summary A day's donation queue
// @Tags queue
// @Produce json
// @Param hospital_id query string false "Hospital ID"
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} service.QueueDay
// @Failure 400 {object} errorPayload
// @Router /api/queue [get]
func GetQueue(svc service.QueueService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		hospitalID := c.Query("hospital_id")
		if malformedID(hospitalID) {
			return writeInvalidID(c)
		}
		day, err := svc.Day(c.UserContext(), hospitalID, c.Query("date"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(day)
	}
}

// JoinQueue godoc
// @Summary Book a queue slot
// @Tags queue
// @Accept json
// @Produce json
// @Param body body service.EnqueueInput true "Booking"
// @Success 201 {object} service.EnqueueResult
// @Failure 400 {object} errorPayload
// @Router /api/queue [post]
func JoinQueue(svc service.QueueService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.EnqueueInput
		if err := c.BodyParser(&in); err != nil {
			return writeInvalidBody(c)
		}
		if malformedID(in.HospitalID, in.DonorID) {
			return writeInvalidID(c)
		}
		res, err := svc.Enqueue(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

type queueStatusBody struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// UpdateQueueStatus godoc
// @Summary Move a queue entry
// @Description waiting, in_progress or completed; check-in and completion times are stamped.
// @Tags queue
// @Accept json
// @Produce json
// @Param body body queueStatusBody true "Transition"
// @Success 200 {object} map[string]model.QueueEntry
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/queue [put]
func UpdateQueueStatus(svc service.QueueService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body queueStatusBody
		if err := c.BodyParser(&body); err != nil {
			return writeInvalidBody(c)
		}
		if malformedID(body.ID) {
			return writeInvalidID(c)
		}
		e, err := svc.UpdateStatus(c.UserContext(), body.ID, body.Status)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"queue_entry": e})
	}
}
