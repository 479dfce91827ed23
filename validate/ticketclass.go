package validate

import (
	"driving_school_manager/constants"
	"driving_school_manager/model"
	"driving_school_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateTicketClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTicketClassInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		if _, err := utils.ParseISODate(input.Date); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD", err)
		}
		if !utils.IsValidClock(input.Hour) || !utils.IsValidClock(input.EndHour) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "hour and endHour must be HH:MM", nil)
		}
		if input.Hour >= input.EndHour {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "hour must be before endHour", nil)
		}

		c.Locals("createInput", input)
		return c.Next()
	}
}

func UpdateTicketClass(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateTicketClassInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		if input.Date != nil {
			if _, err := utils.ParseISODate(*input.Date); err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD", err)
			}
		}
		if input.Hour != nil && !utils.IsValidClock(*input.Hour) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "hour must be HH:MM", nil)
		}
		if input.EndHour != nil && !utils.IsValidClock(*input.EndHour) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "endHour must be HH:MM", nil)
		}

		c.Locals("updateInput", input)
		return GetById(key)(c)
	}
}

func CreateStudentRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateStudentRequestInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("requestInput", input)
		return c.Next()
	}
}

// EnrollmentAction validates the accept/reject PATCH body.
func EnrollmentAction() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EnrollmentActionInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}

		c.Locals("actionInput", input)
		return c.Next()
	}
}
