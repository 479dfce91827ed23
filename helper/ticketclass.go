package helper

import (
	"time"

	"driving_school_manager/database"
	"driving_school_manager/logger"
	"driving_school_manager/model"
	"driving_school_manager/utils"

	"github.com/go-co-op/gocron/v2"
)

var classScheduler gocron.Scheduler

// AutoFinishTicketClasses flips past-dated classes to finished so they stop
// accepting enrollment requests.
func AutoFinishTicketClasses() {
	result := database.DB.Model(&model.TicketClass{}).
		Where("status = ? AND date < ?", model.TicketClassStatusActive, utils.Today()).
		Update("status", model.TicketClassStatusFinished)

	if result.Error != nil {
		logger.L.Errorf("failed to finish past ticket classes: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		logger.L.Infof("marked %d ticket classes as finished", result.RowsAffected)
	}
}

func StartTicketClassScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.Local),
	)
	if err != nil {
		logger.L.Fatal(err)
	}

	classScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(AutoFinishTicketClasses),
	)
	if err != nil {
		logger.L.Fatal(err)
	}

	s.Start()
	logger.L.Info("ticket class scheduler started (daily 00:05)")
}

func StopTicketClassScheduler() {
	if classScheduler != nil {
		_ = classScheduler.Shutdown()
		logger.L.Info("ticket class scheduler stopped")
	}
}
