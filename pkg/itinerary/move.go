package itinerary

// ResolveFunc picks a time for an activity arriving in a day that already
// holds existing. fullyBooked reports that no free slot was found.
type ResolveFunc func(existing []Activity, candidate string) (resolved string, fullyBooked bool)

// MoveOutcome describes what MoveActivity did.
type MoveOutcome struct {
	Moved        bool     `json:"moved"`
	Activity     Activity `json:"activity"`
	SourceDayID  string   `json:"sourceDayId"`
	DestDayID    string   `json:"destinationDayId"`
	OriginalTime string   `json:"originalTime,omitempty"`
	ResolvedTime string   `json:"resolvedTime,omitempty"`
	Adjusted     bool     `json:"adjusted"`
	FullyBooked  bool     `json:"fullyBooked"`
}

// MoveActivity transfers an activity from one day to the end of another as a
// single transition. The time is passed through resolve against the
// destination's current activities. A nil resolve keeps the time as-is.
//
// The input is returned unchanged when either day or the activity is missing,
// or when source and destination are the same day.
func MoveActivity(it *Itinerary, sourceDayID, destDayID, activityID string, resolve ResolveFunc) (*Itinerary, MoveOutcome) {
	none := MoveOutcome{SourceDayID: sourceDayID, DestDayID: destDayID}
	if it == nil || sourceDayID == destDayID {
		return it, none
	}
	src, ok := it.FindDay(sourceDayID)
	if !ok {
		return it, none
	}
	act, ok := src.FindActivity(activityID)
	if !ok {
		return it, none
	}
	dst, ok := it.FindDay(destDayID)
	if !ok {
		return it, none
	}

	resolved, booked := act.Time, false
	if resolve != nil {
		resolved, booked = resolve(dst.Activities, act.Time)
	}
	if booked {
		resolved = act.Time
	}

	moved := act
	moved.Time = resolved

	src, _ = src.RemoveActivity(activityID)
	dst = dst.AppendActivity(moved)

	days := make([]Day, len(it.Days))
	for i, d := range it.Days {
		switch d.ID {
		case sourceDayID:
			days[i] = src
		case destDayID:
			days[i] = dst
		default:
			days[i] = d
		}
	}

	return it.WithDays(days), MoveOutcome{
		Moved:        true,
		Activity:     moved,
		SourceDayID:  sourceDayID,
		DestDayID:    destDayID,
		OriginalTime: act.Time,
		ResolvedTime: resolved,
		Adjusted:     resolved != act.Time,
		FullyBooked:  booked,
	}
}
