package itinerary

import "tableflip.dev/tripcraft/pkg/reorder"

// WithTitle returns a copy of the itinerary with a new title. Days are shared.
func (it *Itinerary) WithTitle(title string) *Itinerary {
	return &Itinerary{Title: title, Days: it.Days}
}

// WithDays returns a copy of the itinerary that owns the given day slice.
func (it *Itinerary) WithDays(days []Day) *Itinerary {
	return &Itinerary{Title: it.Title, Days: days}
}

// AppendDay returns a new itinerary with d added at the end.
func (it *Itinerary) AppendDay(d Day) *Itinerary {
	days := make([]Day, 0, len(it.Days)+1)
	days = append(days, it.Days...)
	days = append(days, d)
	return it.WithDays(days)
}

// MapDay rebuilds the day list, replacing the day whose id matches with the
// result of fn. Other days are carried over as-is. The boolean reports
// whether a day matched.
func (it *Itinerary) MapDay(id string, fn func(Day) Day) (*Itinerary, bool) {
	found := false
	days := make([]Day, len(it.Days))
	for i, d := range it.Days {
		if d.ID == id {
			found = true
			d = fn(d)
		}
		days[i] = d
	}
	if !found {
		return it, false
	}
	return it.WithDays(days), true
}

// RemoveDay returns a new itinerary without the day. Its activities go with it.
func (it *Itinerary) RemoveDay(id string) (*Itinerary, bool) {
	days := make([]Day, 0, len(it.Days))
	for _, d := range it.Days {
		if d.ID != id {
			days = append(days, d)
		}
	}
	if len(days) == len(it.Days) {
		return it, false
	}
	return it.WithDays(days), true
}

// ReorderDays moves the day at from to to.
func (it *Itinerary) ReorderDays(from, to int) (*Itinerary, bool) {
	if !reorder.Valid(len(it.Days), from, to) || from == to {
		return it, false
	}
	return it.WithDays(reorder.Move(it.Days, from, to)), true
}

// WithName returns the day renamed.
func (d Day) WithName(name string) Day {
	d.Name = name
	return d
}

// AppendActivity returns the day with a added at the end.
func (d Day) AppendActivity(a Activity) Day {
	acts := make([]Activity, 0, len(d.Activities)+1)
	acts = append(acts, d.Activities...)
	d.Activities = append(acts, a)
	return d
}

// MapActivity rebuilds the activity list, replacing the matching activity
// with the result of fn.
func (d Day) MapActivity(id string, fn func(Activity) Activity) (Day, bool) {
	found := false
	acts := make([]Activity, len(d.Activities))
	for i, a := range d.Activities {
		if a.ID == id {
			found = true
			a = fn(a)
		}
		acts[i] = a
	}
	if !found {
		return d, false
	}
	d.Activities = acts
	return d, true
}

// RemoveActivity returns the day without the activity, preserving the order
// of the rest.
func (d Day) RemoveActivity(id string) (Day, bool) {
	acts := make([]Activity, 0, len(d.Activities))
	for _, a := range d.Activities {
		if a.ID != id {
			acts = append(acts, a)
		}
	}
	if len(acts) == len(d.Activities) {
		return d, false
	}
	d.Activities = acts
	return d, true
}

// ReorderActivities moves the activity at from to to.
func (d Day) ReorderActivities(from, to int) (Day, bool) {
	if !reorder.Valid(len(d.Activities), from, to) || from == to {
		return d, false
	}
	d.Activities = reorder.Move(d.Activities, from, to)
	return d, true
}

// ReplaceDay swaps in d for the day sharing its id.
func (it *Itinerary) ReplaceDay(d Day) (*Itinerary, bool) {
	return it.MapDay(d.ID, func(Day) Day { return d })
}
