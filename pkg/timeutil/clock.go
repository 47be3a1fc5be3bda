// Package timeutil converts between wall-clock "HH:MM" strings and minutes
// since midnight, and parses the human duration strings used by the timeline.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// MinutesPerDay is the exclusive upper bound of a wall-clock day.
	MinutesPerDay = 24 * 60
	// DefaultStartMinutes is used for missing times (09:00).
	DefaultStartMinutes = 9 * 60
	// DefaultStart is DefaultStartMinutes as a clock string.
	DefaultStart = "09:00"
)

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// TimeToMinutes parses "HH:MM" into minutes since midnight. An empty value
// yields DefaultStartMinutes. Unparsable components count as zero, so the
// function never fails.
func TimeToMinutes(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultStartMinutes
	}
	hh, mm, _ := strings.Cut(s, ":")
	hours, err := strconv.Atoi(hh)
	if err != nil {
		hours = 0
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil {
		minutes = 0
	}
	return hours*60 + minutes
}

// MinutesToTime formats minutes since midnight as zero-padded "HH:MM".
// Callers clamp to [0, MinutesPerDay) first; there is no wraparound.
func MinutesToTime(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// IsValidTime reports whether s is a strict 24-hour "HH:MM" value.
func IsValidTime(s string) bool {
	return clockPattern.MatchString(s)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
