package handler

import (
	"driving_school_manager/constants"
	"driving_school_manager/database"
	"driving_school_manager/model"
	"driving_school_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetProducts(c *fiber.Ctx) error {
	db := database.DB.Model(&model.Product{})
	if category := c.Query("category"); category != "" {
		db = db.Where("category = ?", category)
	}

	var products []model.Product
	if err := db.Order("title ASC").Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to fetch products", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, products)
}

func GetProductById(c *fiber.Ctx) error {
	productId := c.Locals("inputId").(int)

	var product model.Product
	if err := database.DB.First(&product, productId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRODUCT_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func CreateProduct(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateProductInput)

	var product model.Product
	copier.Copy(&product, &input)
	product.Active = true

	if err := database.DB.Create(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to create product", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, product)
}

func UpdateProduct(c *fiber.Ctx) error {
	productId := c.Locals("inputId").(int)
	input := c.Locals("updateInput").(model.UpdateProductInput)

	var product model.Product
	if err := database.DB.First(&product, productId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRODUCT_NOT_FOUND, err)
	}

	if input.Title != nil {
		product.Title = *input.Title
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Duration != nil {
		product.Duration = *input.Duration
	}
	if input.Active != nil {
		product.Active = *input.Active
	}

	if err := database.DB.Save(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to update product", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func DeleteProduct(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	if err := database.DB.Delete(&model.Product{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to delete products", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}
