package handler

import (
	"github.com/gofiber/fiber/v2"

	"bloodlink/internal/service"
)

// ListInventory godoc
// @Summary Blood stock
// @Description Stock rows with severity plus per-type totals.
// @Tags inventory
// @Produce json
// @Param hospital_id query string false "Hospital ID"
// @Param blood_type query string false "Exact blood type"
// @Success 200 {object} service.InventoryResult
// @Failure 400 {object} errorPayload
// @Router /api/inventory [get]
func ListInventory(svc service.InventoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := service.InventoryQuery{
			HospitalID: c.Query("hospital_id"),
			BloodType:  c.Query("blood_type"),
		}
		if malformedID(q.HospitalID) {
			return writeInvalidID(c)
		}
		res, err := svc.List(c.UserContext(), q)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// UpdateInventory godoc
// @Summary Overwrite stock counts
// @Tags inventory
// @Accept json
// @Produce json
// @Param body body service.UpdateInventoryInput true "Counts"
// @Success 200 {object} map[string]service.InventoryView
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /api/inventory [put]
func UpdateInventory(svc service.InventoryService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.UpdateInventoryInput
		if err := c.BodyParser(&in); err != nil {
			return writeInvalidBody(c)
		}
		if malformedID(in.ID) {
			return writeInvalidID(c)
		}
		item, err := svc.Update(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"inventory": item})
	}
}
