package helper

import (
	"fmt"
	"testing"

	"driving_school_manager/database"
	"driving_school_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func seedSlot(t *testing.T, db *gorm.DB, kind model.SlotKind, instructorId uint, date, start, end string) {
	slot := model.Slot{
		SlotKey:      SlotKey(kind, instructorId, date, start),
		Kind:         kind,
		InstructorId: instructorId,
		Date:         date,
		Start:        start,
		End:          end,
		Status:       model.SlotStatusAvailable,
	}
	require.NoError(t, db.Create(&slot).Error)
}

func TestHasScheduleConflict(t *testing.T) {
	db := newTestDB(t)
	seedSlot(t, db, model.SlotKindDrivingLesson, 1, "2026-05-01", "10:00", "12:00")

	cases := []struct {
		name       string
		date       string
		start, end string
		want       bool
	}{
		{"disjoint before", "2026-05-01", "08:00", "09:30", false},
		{"touching start is not a conflict", "2026-05-01", "08:00", "10:00", false},
		{"touching end is not a conflict", "2026-05-01", "12:00", "13:00", false},
		{"overlaps head", "2026-05-01", "09:00", "10:30", true},
		{"overlaps tail", "2026-05-01", "11:00", "13:00", true},
		{"contained", "2026-05-01", "10:30", "11:00", true},
		{"containing", "2026-05-01", "09:00", "13:00", true},
		{"identical", "2026-05-01", "10:00", "12:00", true},
		{"other date", "2026-05-02", "10:00", "12:00", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := HasScheduleConflict(db, 1, tc.date, tc.start, tc.end)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHasScheduleConflictOtherInstructor(t *testing.T) {
	db := newTestDB(t)
	seedSlot(t, db, model.SlotKindDrivingLesson, 1, "2026-05-01", "10:00", "12:00")

	got, err := HasScheduleConflict(db, 2, "2026-05-01", "10:00", "12:00")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestHasScheduleConflictAcrossKinds(t *testing.T) {
	// A test booking consumes the same instructor time as a lesson booking,
	// so the scan must cover both collections.
	db := newTestDB(t)
	seedSlot(t, db, model.SlotKindDrivingTest, 1, "2026-05-01", "09:00", "10:00")

	got, err := HasScheduleConflict(db, 1, "2026-05-01", "09:30", "11:00")
	require.NoError(t, err)
	assert.True(t, got)
}

func TestHasScheduleConflictFailsClosed(t *testing.T) {
	// No migration: the scan errors and must report "conflict", never a
	// silent pass that would allow a double booking.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	got, err := HasScheduleConflict(db, 1, "2026-05-01", "10:00", "11:00")
	assert.Error(t, err)
	assert.True(t, got)
}

func TestSlotKeyDeterministic(t *testing.T) {
	a := SlotKey(model.SlotKindDrivingLesson, 7, "2026-05-01", "10:00")
	b := SlotKey(model.SlotKindDrivingLesson, 7, "2026-05-01", "10:00")
	assert.Equal(t, a, b)
	assert.Equal(t, "driving_lesson-7-2026-05-01-10:00", a)

	c := SlotKey(model.SlotKindDrivingTest, 7, "2026-05-01", "10:00")
	assert.NotEqual(t, a, c)
}
