package api

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	timeOfDayPattern    = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	calendarDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

var (
	errMissingField = errors.New("missing required field")
	errBadTimeOfDay = errors.New("time entries must be HH:MM")
	errBadDate      = errors.New("date must be YYYY-MM-DD")
	errBadTimestamp = errors.New("timestamps must be ISO-8601")
)

func validateMedicationCreate(input medicationCreateInput) error {
	if strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.Dosage) == "" ||
		strings.TrimSpace(input.Frequency) == "" {
		return errMissingField
	}
	if len(input.Times) == 0 {
		return errMissingField
	}
	return validateTimesOfDay(input.Times)
}

func validateMedicationUpdate(input medicationUpdateInput) error {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return errMissingField
	}
	if input.Times != nil {
		if err := validateTimesOfDay(input.Times); err != nil {
			return err
		}
	}
	return nil
}

func validateTimesOfDay(times []string) error {
	for _, timeOfDay := range times {
		if !timeOfDayPattern.MatchString(timeOfDay) {
			return errBadTimeOfDay
		}
	}
	return nil
}

func validateCalendarDate(date string) error {
	if !calendarDatePattern.MatchString(date) {
		return errBadDate
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return errBadDate
	}
	return nil
}

// parseTimestamp accepts the ISO-8601 forms that cross the HTTP
// boundary; dates stay plain strings but timestamps become time values
// here, at the edge.
func parseTimestamp(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, errBadTimestamp
}
