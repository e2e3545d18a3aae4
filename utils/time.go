package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTimeFormat is returned for clock strings that are not "HH:MM".
// Callers should treat it as a data-entry error, not a server fault.
var ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

// TimeToMinutes parses an "HH:MM" 24-hour clock string into minutes since
// midnight.
func TimeToMinutes(timeStr string) (int, error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return 0, ErrInvalidTimeFormat
	}

	hours, hoursErr := strconv.Atoi(parts[0])
	minutes, minutesErr := strconv.Atoi(parts[1])
	if hoursErr != nil || minutesErr != nil {
		return 0, ErrInvalidTimeFormat
	}
	if hours < 0 || minutes < 0 || minutes > 59 {
		return 0, ErrInvalidTimeFormat
	}

	return hours*60 + minutes, nil
}

// MinutesToTime formats minutes since midnight as a zero-padded "HH:MM"
// string. Values of 1440 and above produce an hour of 24 or more rather than
// wrapping; the UI surfaces those as "ends after midnight".
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// CalculateEndTime returns startTime shifted forward by durationMin.
func CalculateEndTime(startTime string, durationMin int) (string, error) {
	start, err := TimeToMinutes(startTime)
	if err != nil {
		return "", err
	}
	return MinutesToTime(start + durationMin), nil
}
