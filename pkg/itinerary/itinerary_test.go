package itinerary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() *Itinerary {
	return &Itinerary{
		Title: "Coast Trip",
		Days: []Day{
			{ID: "day-1", Name: "Arrival", Activities: []Activity{
				{ID: "a1", Name: "Check in", Time: "15:00"},
				{ID: "a2", Name: "Dinner", Time: "19:00", Notes: "book ahead"},
			}},
			{ID: "day-2", Name: "Beach", Activities: []Activity{
				{ID: "b1", Name: "Surf", Time: "09:00"},
			}},
			{ID: "day-3", Name: "Home", Activities: []Activity{}},
		},
	}
}

func TestNewDefaults(t *testing.T) {
	it := New()
	assert.Equal(t, DefaultTitle, it.Title)
	assert.Empty(t, it.Days)
	assert.NotNil(t, it.Days)
}

func TestIDs(t *testing.T) {
	d1, d2 := NewDayID(), NewDayID()
	assert.True(t, strings.HasPrefix(d1, "day-"))
	assert.NotEqual(t, d1, d2)
	assert.True(t, strings.HasPrefix(NewActivityID(), "activity-"))
}

func TestFind(t *testing.T) {
	it := sample()

	d, ok := it.FindDay("day-2")
	require.True(t, ok)
	assert.Equal(t, "Beach", d.Name)

	_, ok = it.FindDay("missing")
	assert.False(t, ok)

	a, dayID, ok := it.FindActivity("a2")
	require.True(t, ok)
	assert.Equal(t, "day-1", dayID)
	assert.Equal(t, "Dinner", a.Name)

	assert.Equal(t, 3, it.ActivityCount())
	assert.Equal(t, 0, (*Itinerary)(nil).ActivityCount())
}

func TestMapDayLeavesInputAlone(t *testing.T) {
	it := sample()
	next, ok := it.MapDay("day-1", func(d Day) Day { return d.WithName("Landing") })
	require.True(t, ok)
	assert.Equal(t, "Landing", next.Days[0].Name)
	assert.Equal(t, "Arrival", it.Days[0].Name)

	same, ok := it.MapDay("nope", func(d Day) Day { return d })
	assert.False(t, ok)
	assert.Same(t, it, same)
}

func TestRemoveDayCascades(t *testing.T) {
	it := sample()
	next, ok := it.RemoveDay("day-1")
	require.True(t, ok)
	assert.Len(t, next.Days, 2)
	_, _, found := next.FindActivity("a1")
	assert.False(t, found)
	assert.Len(t, it.Days, 3)
}

func TestReorderDays(t *testing.T) {
	it := sample()
	next, ok := it.ReorderDays(0, 2)
	require.True(t, ok)
	assert.Equal(t, []string{"day-2", "day-3", "day-1"}, dayIDs(next))
	assert.Equal(t, []string{"day-1", "day-2", "day-3"}, dayIDs(it))

	_, ok = it.ReorderDays(1, 1)
	assert.False(t, ok)
	_, ok = it.ReorderDays(0, 9)
	assert.False(t, ok)
}

func TestActivityHelpers(t *testing.T) {
	d := sample().Days[0]

	added := d.AppendActivity(Activity{ID: "a3", Name: "Walk"})
	assert.Len(t, added.Activities, 3)
	assert.Len(t, d.Activities, 2)

	edited, ok := d.MapActivity("a1", func(a Activity) Activity {
		a.Time = "16:00"
		return a
	})
	require.True(t, ok)
	assert.Equal(t, "16:00", edited.Activities[0].Time)
	assert.Equal(t, "15:00", d.Activities[0].Time)

	removed, ok := d.RemoveActivity("a1")
	require.True(t, ok)
	assert.Equal(t, "a2", removed.Activities[0].ID)

	swapped, ok := d.ReorderActivities(1, 0)
	require.True(t, ok)
	assert.Equal(t, "a2", swapped.Activities[0].ID)
	assert.Equal(t, "19:00", swapped.Activities[0].Time)
}

func TestReplaceDay(t *testing.T) {
	it := sample()
	next, ok := it.ReplaceDay(Day{ID: "day-3", Name: "Departure"})
	require.True(t, ok)
	assert.Equal(t, "Departure", next.Days[2].Name)
	assert.Equal(t, "Home", it.Days[2].Name)
}

func TestCloneIsDeep(t *testing.T) {
	it := sample()
	c := it.Clone()
	c.Days[0].Activities[0].Name = "changed"
	assert.Equal(t, "Check in", it.Days[0].Activities[0].Name)
}

func dayIDs(it *Itinerary) []string {
	ids := make([]string, 0, len(it.Days))
	for _, d := range it.Days {
		ids = append(ids, d.ID)
	}
	return ids
}
