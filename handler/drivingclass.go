package handler

import (
	"driving_school_manager/constants"
	"driving_school_manager/database"
	"driving_school_manager/model"
	"driving_school_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetDrivingClasses(c *fiber.Ctx) error {
	var classes []model.DrivingClass
	if err := database.DB.Order("title ASC").Find(&classes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to fetch driving classes", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, classes)
}

func GetDrivingClassById(c *fiber.Ctx) error {
	classId := c.Locals("inputId").(int)

	var class model.DrivingClass
	if err := database.DB.First(&class, classId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DRIVING_CLASS_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, class)
}

func CreateDrivingClass(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateDrivingClassInput)

	var class model.DrivingClass
	copier.Copy(&class, &input)

	if err := database.DB.Create(&class).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to create driving class", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, class)
}

func UpdateDrivingClass(c *fiber.Ctx) error {
	classId := c.Locals("inputId").(int)
	input := c.Locals("updateInput").(model.UpdateDrivingClassInput)

	var class model.DrivingClass
	if err := database.DB.First(&class, classId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DRIVING_CLASS_NOT_FOUND, err)
	}

	if input.Title != nil {
		class.Title = *input.Title
	}
	if input.Overview != nil {
		class.Overview = *input.Overview
	}
	if input.Length != nil {
		class.Length = *input.Length
	}
	if input.Price != nil {
		class.Price = *input.Price
	}

	if err := database.DB.Save(&class).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to update driving class", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, class)
}

func DeleteDrivingClass(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	if err := database.DB.Delete(&model.DrivingClass{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to delete driving classes", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}
