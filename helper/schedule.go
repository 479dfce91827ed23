package helper

import (
	"driving_school_manager/database"
	"driving_school_manager/logger"
	"driving_school_manager/model"
	"driving_school_manager/utils"

	"github.com/robfig/cron/v3"
)

var slotScheduler *cron.Cron

func StartSlotScheduler() {
	slotScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := slotScheduler.AddFunc("*/5 * * * *", expireOverdueSlots)
	if err != nil {
		logger.L.Errorf("failed to start slot scheduler: %v", err)
		return
	}

	slotScheduler.Start()
	logger.L.Info("slot scheduler started (every 5 minutes)")
}

func expireOverdueSlots() {
	result := database.DB.Model(&model.Slot{}).
		Where("status = ? AND date < ?", model.SlotStatusAvailable, utils.Today()).
		Update("status", model.SlotStatusExpired)

	if result.Error != nil {
		logger.L.Errorf("failed to expire overdue slots: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		logger.L.Infof("expired %d overdue slots", result.RowsAffected)
	}
}

func StopSlotScheduler() {
	if slotScheduler != nil {
		slotScheduler.Stop()
		logger.L.Info("slot scheduler stopped")
	}
}
