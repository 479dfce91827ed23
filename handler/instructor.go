package handler

import (
	"driving_school_manager/constants"
	"driving_school_manager/database"
	"driving_school_manager/model"
	"driving_school_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetInstructors(c *fiber.Ctx) error {
	filter := new(model.FilterInstructorInput)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Instructor{})
	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}
	if filter.Search != "" {
		db = db.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)

	var instructors []model.Instructor
	if err := db.Order("name ASC").Find(&instructors).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to fetch instructors", err)
	}

	response := &model.ResponseCustom{
		Rows:       instructors,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetInstructorById(c *fiber.Ctx) error {
	instructorId := c.Locals("inputId").(int)

	var instructor model.Instructor
	if err := database.DB.First(&instructor, instructorId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.INSTRUCTOR_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, instructor)
}

func CreateInstructor(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateInstructorInput)

	var instructor model.Instructor
	copier.Copy(&instructor, &input)
	instructor.Active = true

	if err := database.DB.Create(&instructor).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to create instructor", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, instructor)
}

func UpdateInstructor(c *fiber.Ctx) error {
	instructorId := c.Locals("inputId").(int)
	input := c.Locals("updateInput").(model.UpdateInstructorInput)

	var instructor model.Instructor
	if err := database.DB.First(&instructor, instructorId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.INSTRUCTOR_NOT_FOUND, err)
	}

	if input.Name != nil {
		instructor.Name = *input.Name
	}
	if input.Email != nil {
		instructor.Email = *input.Email
	}
	if input.Phone != nil {
		instructor.Phone = *input.Phone
	}
	if input.PhotoUrl != nil {
		instructor.PhotoUrl = *input.PhotoUrl
	}
	if input.Active != nil {
		instructor.Active = *input.Active
	}

	if err := database.DB.Save(&instructor).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to update instructor", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, instructor)
}

func DeleteInstructor(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	if err := database.DB.Where("instructor_id IN ?", input.IDs).Delete(&model.Slot{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to delete instructor slots", err)
	}
	if err := database.DB.Delete(&model.Instructor{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to delete instructors", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}
