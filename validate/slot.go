package validate

import (
	"errors"

	"driving_school_manager/constants"
	"driving_school_manager/model"
	"driving_school_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateSlot validates a driving-lesson or driving-test booking request and
// stashes the parsed input for the handler.
func CreateSlot() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateSlotInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		if _, err := utils.ParseISODate(input.Date); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD", err)
		}
		if !utils.IsValidClock(input.Start) || !utils.IsValidClock(input.End) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "start and end must be HH:MM", nil)
		}
		if input.Start >= input.End {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "start must be before end", nil)
		}

		if input.Recurrence != "" && input.Recurrence != "none" {
			if input.RecurrenceEndDate == "" {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "recurrenceEndDate is required for recurring bookings", nil)
			}
			end, err := utils.ParseISODate(input.RecurrenceEndDate)
			if err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "recurrenceEndDate must be YYYY-MM-DD", err)
			}
			start, _ := utils.ParseISODate(input.Date)
			if end.Before(start) {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "recurrenceEndDate is before the start date", errors.New("invalid range"))
			}
		}

		c.Locals("slotInput", input)
		return c.Next()
	}
}

func UpdateSlot(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateSlotInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("updateInput", input)
		return GetById(key)(c)
	}
}
