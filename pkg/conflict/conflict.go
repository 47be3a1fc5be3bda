// Package conflict finds a free start time for an activity entering a day.
//
// Two activities conflict when their times resolve to the same minute of the
// day. Unscheduled activities never occupy a slot.
package conflict

import (
	"errors"

	"tableflip.dev/tripcraft/pkg/itinerary"
	"tableflip.dev/tripcraft/pkg/timeutil"
)

const (
	// Step is the search increment in minutes.
	Step = 30
	// WrapTo is where the search restarts once it runs past midnight.
	WrapTo = timeutil.DefaultStartMinutes
	// MaxAttempts bounds the search on a saturated day.
	MaxAttempts = 48
)

// ErrFullyBooked is returned by Resolve when no free slot exists.
var ErrFullyBooked = errors.New("conflict: no free time slot in day")

// Result is the outcome of FindAvailableTime.
type Result struct {
	Time        string
	Adjusted    bool
	FullyBooked bool
}

// Conflicts reports whether candidate lands on a minute already taken by one
// of existing.
func Conflicts(existing []itinerary.Activity, candidate string) bool {
	if candidate == "" {
		return false
	}
	return taken(occupied(existing), timeutil.TimeToMinutes(candidate))
}

// FindAvailableTime returns candidate when it is free, otherwise the first
// free time found by stepping forward in Step minute increments. After
// MaxAttempts failed attempts the original candidate is returned with
// FullyBooked set.
func FindAvailableTime(existing []itinerary.Activity, candidate string) Result {
	if candidate == "" {
		return Result{}
	}
	slots := occupied(existing)
	want := timeutil.TimeToMinutes(candidate)
	if !taken(slots, want) {
		return Result{Time: candidate}
	}

	cand := want
	for i := 0; i < MaxAttempts; i++ {
		cand += Step
		if cand >= timeutil.MinutesPerDay {
			cand = WrapTo
		}
		if !taken(slots, cand) {
			t := timeutil.MinutesToTime(cand)
			return Result{Time: t, Adjusted: t != candidate}
		}
	}
	return Result{Time: candidate, FullyBooked: true}
}

// Resolve is FindAvailableTime with the saturated case reported as
// ErrFullyBooked.
func Resolve(existing []itinerary.Activity, candidate string) (string, error) {
	r := FindAvailableTime(existing, candidate)
	if r.FullyBooked {
		return candidate, ErrFullyBooked
	}
	return r.Time, nil
}

// ResolveFunc adapts FindAvailableTime to itinerary.ResolveFunc.
func ResolveFunc(existing []itinerary.Activity, candidate string) (string, bool) {
	r := FindAvailableTime(existing, candidate)
	return r.Time, r.FullyBooked
}

func occupied(existing []itinerary.Activity) map[int]struct{} {
	slots := make(map[int]struct{}, len(existing))
	for _, a := range existing {
		if !a.Scheduled() {
			continue
		}
		slots[timeutil.TimeToMinutes(a.Time)] = struct{}{}
	}
	return slots
}

func taken(slots map[int]struct{}, m int) bool {
	_, ok := slots[m]
	return ok
}
