package handler

import (
	"driving_school_manager/constants"
	"driving_school_manager/database"
	"driving_school_manager/model"
	"driving_school_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetCustomers(c *fiber.Ctx) error {
	filter := new(model.FilterCustomerInput)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Customer{})
	if filter.Search != "" {
		db = db.Where("name LIKE ? OR email LIKE ?", "%"+filter.Search+"%", "%"+filter.Search+"%")
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)

	var customers []model.Customer
	if err := db.Order("name ASC").Find(&customers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to fetch customers", err)
	}

	response := &model.ResponseCustom{
		Rows:       customers,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetCustomerById(c *fiber.Ctx) error {
	customerId := c.Locals("inputId").(int)

	var customer model.Customer
	if err := database.DB.First(&customer, customerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CUSTOMER_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}
