package handler

import (
	"driving_school_manager/constants"
	"driving_school_manager/database"
	"driving_school_manager/model"
	"driving_school_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"github.com/jinzhu/copier"
)

func GetLocations(c *fiber.Ctx) error {
	var locations []model.Location
	if err := database.DB.Order("title ASC").Find(&locations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to fetch locations", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, locations)
}

func GetLocationBySlug(c *fiber.Ctx) error {
	var location model.Location
	if err := database.DB.Where("slug = ?", c.Params("slug")).First(&location).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.LOCATION_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, location)
}

func CreateLocation(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateLocationInput)

	var location model.Location
	copier.Copy(&location, &input)
	location.Slug = slug.Make(input.Title)
	location.Active = true

	if err := database.DB.Create(&location).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to create location", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, location)
}

func UpdateLocation(c *fiber.Ctx) error {
	locationId := c.Locals("inputId").(int)
	input := c.Locals("updateInput").(model.UpdateLocationInput)

	var location model.Location
	if err := database.DB.First(&location, locationId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.LOCATION_NOT_FOUND, err)
	}

	if input.Title != nil {
		location.Title = *input.Title
		location.Slug = slug.Make(*input.Title)
	}
	if input.Zone != nil {
		location.Zone = *input.Zone
	}
	if input.Description != nil {
		location.Description = *input.Description
	}
	if input.Active != nil {
		location.Active = *input.Active
	}

	if err := database.DB.Save(&location).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to update location", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, location)
}

func DeleteLocation(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	if err := database.DB.Delete(&model.Location{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to delete locations", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}
