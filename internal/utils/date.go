package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/vitalog/internal/constants"
)

// Today returns today's date string (YYYY-MM-DD) in the local calendar day.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// ParseDate validates a date string against the standard format.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", date, err)
	}
	return t, nil
}

// DateOrToday returns the given date if set, otherwise today's date.
func DateOrToday(date string) (string, error) {
	if date == "" {
		return Today(), nil
	}
	if _, err := ParseDate(date); err != nil {
		return "", err
	}
	return date, nil
}
