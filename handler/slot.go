package handler

import (
	"errors"
	"fmt"

	"driving_school_manager/constants"
	"driving_school_manager/database"
	"driving_school_manager/helper"
	"driving_school_manager/model"
	"driving_school_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var errSlotConflict = errors.New("slot conflict")

func CreateDrivingLesson(c *fiber.Ctx) error {
	return createSlot(c, model.SlotKindDrivingLesson)
}

func CreateDrivingTest(c *fiber.Ctx) error {
	return createSlot(c, model.SlotKindDrivingTest)
}

// createSlot books instructor time. A single booking is all-or-nothing: any
// conflict fails the request with 409. A recurring booking is partial-success:
// conflicting dates are skipped and the response reports created vs skipped
// counts; only a fully conflicting expansion fails.
func createSlot(c *fiber.Ctx, kind model.SlotKind) error {
	input := c.Locals("slotInput").(model.CreateSlotInput)
	db := database.DB

	var instructor model.Instructor
	if err := db.First(&instructor, input.InstructorId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.INSTRUCTOR_NOT_FOUND, err)
	}

	recurrence := input.Recurrence
	if recurrence == "" {
		recurrence = "none"
	}

	dates, err := helper.ExpandRecurrence(input.Date, recurrence, input.RecurrenceEndDate)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid recurrence", err)
	}

	var created []model.Slot
	skipped := 0

	// Conflict scan, identity check and insert share one transaction so a
	// concurrent booking can not slip between the check and the write.
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, date := range dates {
			conflict, err := helper.HasScheduleConflict(tx, instructor.ID, date, input.Start, input.End)
			if err != nil {
				return err
			}
			if !conflict {
				exists, err := helper.SlotKeyExists(tx, helper.SlotKey(kind, instructor.ID, date, input.Start))
				if err != nil {
					return err
				}
				conflict = exists
			}

			if conflict {
				if recurrence == "none" {
					return errSlotConflict
				}
				skipped++
				continue
			}

			created = append(created, helper.BuildSlot(kind, instructor.ID, date, input))
		}

		if len(created) == 0 {
			return errSlotConflict
		}

		return tx.Create(&created).Error
	})

	if err != nil {
		if errors.Is(err, errSlotConflict) {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.SCHEDULE_CONFLICT, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to create slots", err)
	}

	PublishNotification(fiber.Map{
		"type":         "schedule_updated",
		"kind":         kind,
		"instructorId": instructor.ID,
	})

	message := fmt.Sprintf("%d events created, %d dates skipped", len(created), skipped)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": message,
		"created": len(created),
		"skipped": skipped,
		"slots":   created,
	})
}

func GetDrivingLessons(c *fiber.Ctx) error {
	return getSlots(c, model.SlotKindDrivingLesson)
}

func GetDrivingTests(c *fiber.Ctx) error {
	return getSlots(c, model.SlotKindDrivingTest)
}

func getSlots(c *fiber.Ctx, kind model.SlotKind) error {
	filter := new(model.FilterSlotInput)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Slot{}).Where("kind = ?", kind)

	if filter.InstructorId > 0 {
		db = db.Where("instructor_id = ?", filter.InstructorId)
	}
	if filter.ClassType != "" && kind == model.SlotKindDrivingLesson {
		db = db.Where("class_type = ?", filter.ClassType)
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

	var slots []model.Slot
	if err := db.Order("date ASC, start_time ASC").Find(&slots).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to fetch slots", err)
	}

	response := &model.ResponseCustom{
		Rows:       slots,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func UpdateDrivingLesson(c *fiber.Ctx) error {
	return updateSlot(c, model.SlotKindDrivingLesson)
}

func UpdateDrivingTest(c *fiber.Ctx) error {
	return updateSlot(c, model.SlotKindDrivingTest)
}

func updateSlot(c *fiber.Ctx, kind model.SlotKind) error {
	slotId := c.Locals("inputId").(int)
	input := c.Locals("updateInput").(model.UpdateSlotInput)

	var slot model.Slot
	if err := database.DB.Where("id = ? AND kind = ?", slotId, kind).First(&slot).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SLOT_NOT_FOUND, err)
	}

	if input.Status != nil {
		slot.Status = *input.Status
	}
	if input.ClassType != nil && kind == model.SlotKindDrivingLesson {
		slot.ClassType = *input.ClassType
	}
	if input.StudentId != nil {
		slot.StudentId = input.StudentId
	}
	if input.StudentName != nil {
		slot.StudentName = *input.StudentName
	}
	if input.Paid != nil {
		slot.Paid = *input.Paid
	}
	if input.PickupLocation != nil {
		slot.PickupLocation = *input.PickupLocation
	}
	if input.DropoffLocation != nil {
		slot.DropoffLocation = *input.DropoffLocation
	}
	if input.SelectedProduct != nil {
		slot.SelectedProduct = input.SelectedProduct
	}
	if input.Amount != nil && kind == model.SlotKindDrivingTest {
		slot.Amount = input.Amount
	}

	if err := database.DB.Save(&slot).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to update slot", err)
	}

	PublishNotification(fiber.Map{
		"type":         "schedule_updated",
		"kind":         kind,
		"instructorId": slot.InstructorId,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, slot)
}

func DeleteDrivingLesson(c *fiber.Ctx) error {
	return deleteSlot(c, model.SlotKindDrivingLesson)
}

func DeleteDrivingTest(c *fiber.Ctx) error {
	return deleteSlot(c, model.SlotKindDrivingTest)
}

func deleteSlot(c *fiber.Ctx, kind model.SlotKind) error {
	slotId := c.Locals("inputId").(int)

	var slot model.Slot
	if err := database.DB.Where("id = ? AND kind = ?", slotId, kind).First(&slot).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SLOT_NOT_FOUND, err)
	}

	if err := database.DB.Delete(&slot).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Unable to delete slot", err)
	}

	PublishNotification(fiber.Map{
		"type":         "schedule_updated",
		"kind":         kind,
		"instructorId": slot.InstructorId,
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": slot.ID})
}
