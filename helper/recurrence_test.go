package helper

import (
	"testing"
	"time"

	"driving_school_manager/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandRecurrenceNone(t *testing.T) {
	dates, err := ExpandRecurrence("2026-01-05", "none", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-01-05"}, dates)

	dates, err = ExpandRecurrence("2026-01-05", "", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-01-05"}, dates)
}

func TestExpandRecurrenceDaily(t *testing.T) {
	dates, err := ExpandRecurrence("2026-01-01", "daily", "2026-01-05")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2026-01-01", "2026-01-02", "2026-01-03", "2026-01-04", "2026-01-05",
	}, dates)
}

func TestExpandRecurrenceWeeklyKeepsWeekday(t *testing.T) {
	// 2026-01-05 is a Monday; four weeks later is 2026-02-02.
	start, err := utils.ParseISODate("2026-01-05")
	require.NoError(t, err)
	require.Equal(t, time.Monday, start.Weekday())

	dates, err := ExpandRecurrence("2026-01-05", "weekly", "2026-02-02")
	require.NoError(t, err)
	require.Len(t, dates, 5)

	for _, d := range dates {
		day, err := utils.ParseISODate(d)
		require.NoError(t, err)
		assert.Equal(t, time.Monday, day.Weekday(), "date %s should be a Monday", d)
	}
}

func TestExpandRecurrenceMonthlyFromThe31st(t *testing.T) {
	// February has no 31st; the day of month normalizes instead of crashing.
	dates, err := ExpandRecurrence("2026-01-31", "monthly", "2026-04-30")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-01-31", "2026-03-03", "2026-04-03"}, dates)
}

func TestExpandRecurrenceAlwaysIncludesStart(t *testing.T) {
	dates, err := ExpandRecurrence("2026-03-10", "weekly", "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-03-10"}, dates)
}

func TestExpandRecurrenceRejectsOverlongRange(t *testing.T) {
	_, err := ExpandRecurrence("2020-01-01", "daily", "2022-01-01")
	assert.ErrorIs(t, err, ErrRecurrenceTooLong)
}

func TestExpandRecurrenceInvalidInput(t *testing.T) {
	_, err := ExpandRecurrence("01/05/2026", "daily", "2026-01-10")
	assert.Error(t, err)

	_, err = ExpandRecurrence("2026-01-10", "daily", "")
	assert.Error(t, err)

	_, err = ExpandRecurrence("2026-01-10", "daily", "2026-01-05")
	assert.Error(t, err)
}
