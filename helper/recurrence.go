package helper

import (
	"errors"
	"fmt"

	"driving_school_manager/utils"
)

// MaxRecurrenceDates caps how many dates one booking may expand to; a
// malformed or abusive range is rejected instead of looping.
const MaxRecurrenceDates = 366

var ErrRecurrenceTooLong = fmt.Errorf("recurrence expands to more than %d dates", MaxRecurrenceDates)

// ExpandRecurrence produces the ordered, inclusive list of YYYY-MM-DD dates a
// repeating booking applies to. The start date is always included. Weekly
// recurrence stays anchored to the start date's weekday even when calendar
// irregularities would drift it; monthly recurrence lets the day of month
// normalize when the target month is shorter (Jan 31 -> Mar 3).
func ExpandRecurrence(startDate, recurrence, endDate string) ([]string, error) {
	start, err := utils.ParseISODate(startDate)
	if err != nil {
		return nil, errors.New("invalid start date, expected YYYY-MM-DD")
	}

	if recurrence == "" || recurrence == "none" {
		return []string{start.Format(utils.ISODate)}, nil
	}

	end, err := utils.ParseISODate(endDate)
	if err != nil {
		return nil, errors.New("invalid recurrence end date, expected YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, errors.New("recurrence end date is before the start date")
	}

	anchor := start.Weekday()
	var dates []string
	for d := start; !d.After(end); {
		dates = append(dates, d.Format(utils.ISODate))
		if len(dates) > MaxRecurrenceDates {
			return nil, ErrRecurrenceTooLong
		}

		switch recurrence {
		case "daily":
			d = d.AddDate(0, 0, 1)
		case "weekly":
			d = d.AddDate(0, 0, 7)
			if d.Weekday() != anchor {
				d = d.AddDate(0, 0, int(anchor-d.Weekday()))
			}
		case "monthly":
			d = d.AddDate(0, 1, 0)
		default:
			return nil, fmt.Errorf("unknown recurrence %q", recurrence)
		}
	}

	return dates, nil
}
