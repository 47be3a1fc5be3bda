// Package itinerary defines the trip data model: an ordered list of days, each
// owning an ordered list of activities. Values are treated as immutable; every
// helper returns a new aggregate and leaves its input untouched.
package itinerary

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultTitle is used when no stored itinerary exists.
const DefaultTitle = "My Dream Vacation"

// Itinerary is the top-level aggregate.
type Itinerary struct {
	Title string `json:"title" yaml:"title"`
	Days  []Day  `json:"days" yaml:"days"`
}

// Day is an ordered container of activities.
type Day struct {
	ID         string     `json:"id" yaml:"id"`
	Name       string     `json:"name" yaml:"name"`
	Activities []Activity `json:"activities" yaml:"activities"`
}

// Activity is a named task owned by exactly one day. An empty Time means the
// activity is unscheduled.
type Activity struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Time  string `json:"time,omitempty" yaml:"time,omitempty"`
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// New returns an empty itinerary with the default title.
func New() *Itinerary {
	return &Itinerary{Title: DefaultTitle, Days: []Day{}}
}

// NewDayID returns a fresh day identifier.
func NewDayID() string {
	return "day-" + uuid.NewString()
}

// NewActivityID returns a fresh activity identifier.
func NewActivityID() string {
	return "activity-" + uuid.NewString()
}

// Scheduled reports whether the activity has a time.
func (a Activity) Scheduled() bool {
	return strings.TrimSpace(a.Time) != ""
}

// DayIndex returns the position of the day with the given id, or -1.
func (it *Itinerary) DayIndex(id string) int {
	if it == nil {
		return -1
	}
	for i, d := range it.Days {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// FindDay returns the day with the given id.
func (it *Itinerary) FindDay(id string) (Day, bool) {
	i := it.DayIndex(id)
	if i < 0 {
		return Day{}, false
	}
	return it.Days[i], true
}

// FindActivity searches every day for the activity id and returns it together
// with the id of the owning day.
func (it *Itinerary) FindActivity(id string) (Activity, string, bool) {
	if it == nil {
		return Activity{}, "", false
	}
	for _, d := range it.Days {
		if a, ok := d.FindActivity(id); ok {
			return a, d.ID, true
		}
	}
	return Activity{}, "", false
}

// ActivityCount is the number of activities across all days.
func (it *Itinerary) ActivityCount() int {
	if it == nil {
		return 0
	}
	n := 0
	for _, d := range it.Days {
		n += len(d.Activities)
	}
	return n
}

// ActivityIndex returns the position of the activity within the day, or -1.
func (d Day) ActivityIndex(id string) int {
	for i, a := range d.Activities {
		if a.ID == id {
			return i
		}
	}
	return -1
}

// FindActivity returns the activity with the given id.
func (d Day) FindActivity(id string) (Activity, bool) {
	i := d.ActivityIndex(id)
	if i < 0 {
		return Activity{}, false
	}
	return d.Activities[i], true
}

// Clone returns a deep copy.
func (it *Itinerary) Clone() *Itinerary {
	if it == nil {
		return nil
	}
	out := &Itinerary{Title: it.Title, Days: make([]Day, len(it.Days))}
	for i, d := range it.Days {
		out.Days[i] = d.Clone()
	}
	return out
}

// Clone returns a deep copy of the day.
func (d Day) Clone() Day {
	acts := make([]Activity, len(d.Activities))
	copy(acts, d.Activities)
	d.Activities = acts
	return d
}
