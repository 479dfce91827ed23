package handler

import (
	"errors"
	"time"

	"driving_school_manager/constants"
	"driving_school_manager/database"
	"driving_school_manager/logger"
	"driving_school_manager/model"
	"driving_school_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetTicketClasses(c *fiber.Ctx) error {
	filter := new(model.FilterTicketClassInput)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.TicketClass{})
	if filter.LocationId > 0 {
		db = db.Where("location_id = ?", filter.LocationId)
	}
	if filter.ClassId > 0 {
		db = db.Where("driving_class_id = ?", filter.ClassId)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.StartDate != "" {
		db = db.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		db = db.Where("date <= ?", filter.EndDate)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)

	var classes []model.TicketClass
	if err := db.
		Preload("Location").
		Preload("DrivingClass").
		Preload("Students").
		Preload("StudentRequests").
		Order("date ASC, hour ASC").
		Find(&classes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to fetch ticket classes", err)
	}

	response := &model.ResponseCustom{
		Rows:       classes,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetTicketClassById(c *fiber.Ctx) error {
	classId := c.Locals("inputId").(int)

	var class model.TicketClass
	if err := database.DB.
		Preload("Location").
		Preload("DrivingClass").
		Preload("Students.Customer").
		Preload("StudentRequests.Customer").
		First(&class, classId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_CLASS_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, class)
}

func CreateTicketClass(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateTicketClassInput)
	db := database.DB

	var location model.Location
	if err := db.First(&location, input.LocationId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.LOCATION_NOT_FOUND, err)
	}
	var drivingClass model.DrivingClass
	if err := db.First(&drivingClass, input.DrivingClassId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.DRIVING_CLASS_NOT_FOUND, err)
	}

	var class model.TicketClass
	copier.Copy(&class, &input)
	class.PublicCode = uuid.NewString()
	class.Status = model.TicketClassStatusActive

	if err := db.Create(&class).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to create ticket class", err)
	}

	PublishNotification(fiber.Map{"type": "ticket_class_created", "classId": class.ID})

	return utils.SuccessResponse(c, fiber.StatusCreated, class)
}

func UpdateTicketClass(c *fiber.Ctx) error {
	classId := c.Locals("inputId").(int)
	input := c.Locals("updateInput").(model.UpdateTicketClassInput)

	var class model.TicketClass
	if err := database.DB.First(&class, classId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_CLASS_NOT_FOUND, err)
	}

	if input.LocationId != nil {
		class.LocationId = *input.LocationId
	}
	if input.DrivingClassId != nil {
		class.DrivingClassId = *input.DrivingClassId
	}
	if input.Date != nil {
		class.Date = *input.Date
	}
	if input.Hour != nil {
		class.Hour = *input.Hour
	}
	if input.EndHour != nil {
		class.EndHour = *input.EndHour
	}
	if input.Duration != nil {
		class.Duration = *input.Duration
	}
	if input.Spots != nil {
		class.Spots = *input.Spots
	}
	if input.Status != nil {
		class.Status = *input.Status
	}

	if err := database.DB.Save(&class).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to update ticket class", err)
	}

	PublishNotification(fiber.Map{"type": "ticket_class_updated", "classId": class.ID})

	return utils.SuccessResponse(c, fiber.StatusOK, class)
}

func DeleteTicketClass(c *fiber.Ctx) error {
	classId := c.Locals("inputId").(int)

	var class model.TicketClass
	if err := database.DB.First(&class, classId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_CLASS_NOT_FOUND, err)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_class_id = ?", class.ID).Delete(&model.StudentRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Where("ticket_class_id = ?", class.ID).Delete(&model.TicketClassStudent{}).Error; err != nil {
			return err
		}
		return tx.Delete(&class).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to delete ticket class", err)
	}

	PublishNotification(fiber.Map{"type": "ticket_class_deleted", "classId": class.ID})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": class.ID})
}

// CreateStudentRequest files a pending enrollment application for a class.
func CreateStudentRequest(c *fiber.Ctx) error {
	classId := c.Locals("inputId").(int)
	input := c.Locals("requestInput").(model.CreateStudentRequestInput)
	db := database.DB

	var class model.TicketClass
	if err := db.First(&class, classId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_CLASS_NOT_FOUND, err)
	}

	var customer model.Customer
	if err := db.First(&customer, input.StudentId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CUSTOMER_NOT_FOUND, err)
	}

	var enrolled int64
	db.Model(&model.TicketClassStudent{}).
		Where("ticket_class_id = ? AND customer_id = ?", class.ID, customer.ID).
		Count(&enrolled)
	if enrolled > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ALREADY_ENROLLED, nil)
	}

	var pending int64
	db.Model(&model.StudentRequest{}).
		Where("ticket_class_id = ? AND customer_id = ?", class.ID, customer.ID).
		Count(&pending)
	if pending > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.REQUEST_ALREADY_PENDING, nil)
	}

	var taken int64
	db.Model(&model.TicketClassStudent{}).Where("ticket_class_id = ?", class.ID).Count(&taken)
	if int(taken) >= class.Spots {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.TICKET_CLASS_FULL, nil)
	}

	request := model.StudentRequest{
		RequestId:     uuid.NewString(),
		TicketClassId: class.ID,
		CustomerId:    customer.ID,
		RequestDate:   time.Now(),
		Status:        model.RequestStatusPending,
		PaymentMethod: input.PaymentMethod,
	}
	if err := db.Create(&request).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to create student request", err)
	}

	PublishNotification(fiber.Map{
		"type":      "enrollment_requested",
		"classId":   class.ID,
		"studentId": customer.ID,
	})

	return utils.SuccessResponse(c, fiber.StatusCreated, request)
}

// UpdateEnrollment handles the admin accept/reject decision on a pending
// student request. Both outcomes emit a fire-and-forget notification; a
// notification or email failure never rolls the transition back.
func UpdateEnrollment(c *fiber.Ctx) error {
	classId := c.Locals("inputId").(int)
	input := c.Locals("actionInput").(model.EnrollmentActionInput)
	db := database.DB

	var class model.TicketClass
	if err := db.Preload("DrivingClass").Preload("Location").First(&class, classId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_CLASS_NOT_FOUND, err)
	}

	var request model.StudentRequest
	if err := db.
		Where("request_id = ? AND ticket_class_id = ? AND customer_id = ?",
			input.RequestId, class.ID, input.StudentId).
		First(&request).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.STUDENT_REQUEST_NOT_FOUND, err)
	}

	var customer model.Customer
	if err := db.First(&customer, request.CustomerId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CUSTOMER_NOT_FOUND, err)
	}

	switch input.Action {
	case model.EnrollmentActionAccept:
		return acceptRequest(c, class, request, customer)
	case model.EnrollmentActionReject:
		return rejectRequest(c, class, request, customer)
	}
	return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
}

func acceptRequest(c *fiber.Ctx, class model.TicketClass, request model.StudentRequest, customer model.Customer) error {
	db := database.DB
	checkinCode := uuid.NewString()
	alreadyEnrolled := false

	err := db.Transaction(func(tx *gorm.DB) error {
		var enrolled int64
		if err := tx.Model(&model.TicketClassStudent{}).
			Where("ticket_class_id = ? AND customer_id = ?", class.ID, customer.ID).
			Count(&enrolled).Error; err != nil {
			return err
		}

		// Idempotent: an already-enrolled student never gets a second seat,
		// the stale request is just cleaned up.
		if enrolled > 0 {
			alreadyEnrolled = true
			return tx.Delete(&request).Error
		}

		var taken int64
		if err := tx.Model(&model.TicketClassStudent{}).
			Where("ticket_class_id = ?", class.ID).
			Count(&taken).Error; err != nil {
			return err
		}
		if int(taken) >= class.Spots {
			return errors.New(constants.TICKET_CLASS_FULL)
		}

		student := model.TicketClassStudent{
			TicketClassId: class.ID,
			CustomerId:    customer.ID,
			CheckinCode:   checkinCode,
		}
		if err := tx.Create(&student).Error; err != nil {
			return err
		}
		return tx.Delete(&request).Error
	})

	if err != nil {
		if err.Error() == constants.TICKET_CLASS_FULL {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.TICKET_CLASS_FULL, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to accept request", err)
	}

	PublishNotification(fiber.Map{
		"type":      "enrollment_accepted",
		"classId":   class.ID,
		"studentId": customer.ID,
	})

	if !alreadyEnrolled {
		qrPNG, err := utils.EnrollmentQR(checkinCode)
		if err != nil {
			logger.L.Warnf("failed to render check-in QR: %v", err)
		}
		utils.SendEnrollmentDecisionEmail(customer.Email, utils.EnrollmentDecisionData{
			StudentName: customer.Name,
			ClassTitle:  class.DrivingClass.Title,
			Date:        class.Date,
			Hour:        class.Hour,
			Location:    class.Location.Title,
			Accepted:    true,
			CheckinCode: checkinCode,
		}, qrPNG)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":   "Request accepted",
		"classId":   class.ID,
		"studentId": customer.ID,
	})
}

func rejectRequest(c *fiber.Ctx, class model.TicketClass, request model.StudentRequest, customer model.Customer) error {
	if err := database.DB.Delete(&request).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to reject request", err)
	}

	PublishNotification(fiber.Map{
		"type":      "enrollment_rejected",
		"classId":   class.ID,
		"studentId": customer.ID,
	})

	utils.SendEnrollmentDecisionEmail(customer.Email, utils.EnrollmentDecisionData{
		StudentName: customer.Name,
		ClassTitle:  class.DrivingClass.Title,
		Date:        class.Date,
		Hour:        class.Hour,
		Location:    class.Location.Title,
		Accepted:    false,
	}, nil)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":   "Request rejected",
		"classId":   class.ID,
		"studentId": customer.ID,
	})
}
