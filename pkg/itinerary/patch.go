package itinerary

import "strings"

// ActivityInput carries the fields of a new activity.
type ActivityInput struct {
	Name  string
	Time  string
	Notes string
}

// ActivityPatch is a partial update. Nil fields are left unchanged.
type ActivityPatch struct {
	Name  *string
	Time  *string
	Notes *string
}

// String returns a pointer to s, for building patches.
func String(s string) *string { return &s }

// Empty reports whether the patch changes nothing.
func (p ActivityPatch) Empty() bool {
	return p.Name == nil && p.Time == nil && p.Notes == nil
}

// Apply merges the patch into a. The id is never changed.
func (p ActivityPatch) Apply(a Activity) Activity {
	if p.Name != nil {
		a.Name = strings.TrimSpace(*p.Name)
	}
	if p.Time != nil {
		a.Time = strings.TrimSpace(*p.Time)
	}
	if p.Notes != nil {
		a.Notes = *p.Notes
	}
	return a
}
