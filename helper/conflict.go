package helper

import (
	"driving_school_manager/model"

	"gorm.io/gorm"
)

// HasScheduleConflict reports whether any existing slot of the instructor on
// the given date overlaps [start,end). Ranges are half-open: slots that only
// touch at an endpoint do not conflict. Test and lesson slots are scanned
// together since both consume the same instructor's time.
//
// A scan failure is returned to the caller and must be treated as "unsafe to
// book", never as "no conflict".
func HasScheduleConflict(db *gorm.DB, instructorId uint, date, start, end string) (bool, error) {
	var overlapping int64
	err := db.Model(&model.Slot{}).
		Where("instructor_id = ? AND date = ?", instructorId, date).
		Where("start_time < ? AND end_time > ?", end, start).
		Count(&overlapping).Error
	if err != nil {
		return true, err
	}
	return overlapping > 0, nil
}

// SlotKeyExists checks the deterministic identity inside the creation
// transaction so an exact resubmission is rejected instead of left to the
// unique index alone.
func SlotKeyExists(db *gorm.DB, key string) (bool, error) {
	var n int64
	err := db.Model(&model.Slot{}).Where("slot_key = ?", key).Count(&n).Error
	if err != nil {
		return true, err
	}
	return n > 0, nil
}
