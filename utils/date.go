package utils

import (
	"strconv"
	"strings"
	"time"
)

const ISODate = "2006-01-02"

// ParseISODate parses a plain YYYY-MM-DD calendar date.
func ParseISODate(s string) (time.Time, error) {
	return time.Parse(ISODate, s)
}

func Today() string {
	return time.Now().Format(ISODate)
}

// IsValidClock reports whether s is a 24h "HH:MM" string.
func IsValidClock(s string) bool {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return false
	}
	return true
}
