package timeutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	durationPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitMinutes     = map[string]int{
		"m":       1,
		"min":     1,
		"mins":    1,
		"minute":  1,
		"minutes": 1,
		"h":       60,
		"hr":      60,
		"hrs":     60,
		"hour":    60,
		"hours":   60,
	}
)

// ParseDuration parses a human-friendly duration such as "90m", "2h" or
// "1h30m" and returns the number of minutes along with a canonical label.
// A bare number is read as minutes.
func ParseDuration(input string) (int, string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		return 0, "", fmt.Errorf("duration is required")
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		if n <= 0 {
			return 0, "", fmt.Errorf("duration must be greater than zero")
		}
		return n, FormatDuration(n), nil
	}

	remaining := trimmed
	total := 0
	for len(remaining) > 0 {
		matches := durationPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return 0, "", fmt.Errorf("invalid duration segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return 0, "", fmt.Errorf("invalid duration value %q: %w", matches[1], err)
		}
		base, ok := unitMinutes[matches[2]]
		if !ok {
			return 0, "", fmt.Errorf("unsupported duration unit %q", matches[2])
		}
		total += value * base
		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return 0, "", fmt.Errorf("duration must be greater than zero")
	}
	return total, FormatDuration(total), nil
}

// FormatDuration renders minutes using hour/minute tokens, e.g. "1h30m".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%dm", h, m)
	}
}

// RoundHours rounds minutes to the nearest whole hour, halves away from zero.
func RoundHours(minutes int) int {
	return int(math.Round(float64(minutes) / 60))
}

// DurationNote is the annotation the timeline appends to activity notes.
func DurationNote(minutes int) string {
	return fmt.Sprintf("Duration: ~%d hour(s)", RoundHours(minutes))
}
