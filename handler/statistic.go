package handler

import (
	"driving_school_manager/database"
	"driving_school_manager/model"
	"driving_school_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAdminStats powers the dashboard header counters.
func GetAdminStats(c *fiber.Ctx) error {
	db := database.DB
	today := utils.Today()

	var activeInstructors int64
	db.Model(&model.Instructor{}).Where("active = ?", true).Count(&activeInstructors)

	var upcomingSlots int64
	db.Model(&model.Slot{}).
		Where("date >= ? AND status = ?", today, model.SlotStatusAvailable).
		Count(&upcomingSlots)

	var bookedSlots int64
	db.Model(&model.Slot{}).
		Where("date >= ? AND status = ?", today, model.SlotStatusBooked).
		Count(&bookedSlots)

	var upcomingClasses int64
	db.Model(&model.TicketClass{}).
		Where("date >= ? AND status = ?", today, model.TicketClassStatusActive).
		Count(&upcomingClasses)

	var pendingRequests int64
	db.Model(&model.StudentRequest{}).
		Where("status = ?", model.RequestStatusPending).
		Count(&pendingRequests)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"activeInstructors": activeInstructors,
		"upcomingSlots":     upcomingSlots,
		"bookedSlots":       bookedSlots,
		"upcomingClasses":   upcomingClasses,
		"pendingRequests":   pendingRequests,
	})
}
