package options

import (
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/tripcraft/pkg/itinerary"
)

// ResolveDay finds a day by id or by 1-based position.
func ResolveDay(it *itinerary.Itinerary, ref string) (itinerary.Day, int, error) {
	ref = strings.TrimSpace(ref)
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(it.Days) {
			return itinerary.Day{}, 0, fmt.Errorf("day %d out of range (1-%d)", n, len(it.Days))
		}
		return it.Days[n-1], n - 1, nil
	}
	if i := it.DayIndex(ref); i >= 0 {
		return it.Days[i], i, nil
	}
	return itinerary.Day{}, 0, fmt.Errorf("no day %q", ref)
}

// ResolveActivity finds an activity by id or by DAY.POS, both 1-based, and
// returns it with its day and index.
func ResolveActivity(it *itinerary.Itinerary, ref string) (itinerary.Activity, itinerary.Day, int, error) {
	ref = strings.TrimSpace(ref)
	if dayRef, pos, ok := strings.Cut(ref, "."); ok {
		if n, err := strconv.Atoi(pos); err == nil {
			d, _, err := ResolveDay(it, dayRef)
			if err != nil {
				return itinerary.Activity{}, itinerary.Day{}, 0, err
			}
			if n < 1 || n > len(d.Activities) {
				return itinerary.Activity{}, itinerary.Day{}, 0, fmt.Errorf("activity %d out of range in %q", n, d.Name)
			}
			return d.Activities[n-1], d, n - 1, nil
		}
	}
	a, dayID, ok := it.FindActivity(ref)
	if !ok {
		return itinerary.Activity{}, itinerary.Day{}, 0, fmt.Errorf("no activity %q", ref)
	}
	d, _ := it.FindDay(dayID)
	return a, d, d.ActivityIndex(a.ID), nil
}

// Position parses a 1-based index argument into a 0-based one.
func Position(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("position must be a positive number, got %q", arg)
	}
	return n - 1, nil
}
