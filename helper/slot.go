package helper

import (
	"fmt"

	"driving_school_manager/model"

	"github.com/jinzhu/copier"
)

// SlotKey derives the deterministic identity of a booking from what makes it
// logically unique: kind, instructor, date and start time.
func SlotKey(kind model.SlotKind, instructorId uint, date, start string) string {
	return fmt.Sprintf("%s-%d-%s-%s", kind, instructorId, date, start)
}

// BuildSlot materializes one slot for a (possibly expanded) booking date.
func BuildSlot(kind model.SlotKind, instructorId uint, date string, input model.CreateSlotInput) model.Slot {
	var slot model.Slot
	copier.Copy(&slot, &input)

	slot.Kind = kind
	slot.InstructorId = instructorId
	slot.Date = date
	slot.SlotKey = SlotKey(kind, instructorId, date, input.Start)
	if slot.Status == "" {
		slot.Status = model.SlotStatusAvailable
	}

	// kind-specific fields
	switch kind {
	case model.SlotKindDrivingLesson:
		slot.Amount = nil
	case model.SlotKindDrivingTest:
		slot.ClassType = ""
	}

	return slot
}
