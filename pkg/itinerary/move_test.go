package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keep(_ []Activity, candidate string) (string, bool) { return candidate, false }

func TestMoveActivityNoConflict(t *testing.T) {
	it := sample()
	next, out := MoveActivity(it, "day-1", "day-2", "a2", keep)
	require.True(t, out.Moved)
	assert.False(t, out.Adjusted)
	assert.Equal(t, "19:00", out.ResolvedTime)

	assert.Len(t, next.Days[0].Activities, 1)
	require.Len(t, next.Days[1].Activities, 2)
	moved := next.Days[1].Activities[1]
	assert.Equal(t, Activity{ID: "a2", Name: "Dinner", Time: "19:00", Notes: "book ahead"}, moved)

	assert.Len(t, it.Days[0].Activities, 2)
	assert.Len(t, it.Days[1].Activities, 1)
	assert.Equal(t, it.ActivityCount(), next.ActivityCount())
}

func TestMoveActivityAdjustsTime(t *testing.T) {
	it := sample()
	var seen []Activity
	resolve := func(existing []Activity, candidate string) (string, bool) {
		seen = existing
		return "09:30", false
	}
	next, out := MoveActivity(it, "day-2", "day-1", "b1", resolve)
	require.True(t, out.Moved)
	assert.True(t, out.Adjusted)
	assert.Equal(t, "09:00", out.OriginalTime)
	assert.Equal(t, "09:30", next.Days[0].Activities[2].Time)
	assert.Len(t, seen, 2)
	assert.Empty(t, next.Days[1].Activities)
}

func TestMoveActivityFullyBookedKeepsTime(t *testing.T) {
	booked := func([]Activity, string) (string, bool) { return "", true }
	next, out := MoveActivity(sample(), "day-2", "day-1", "b1", booked)
	require.True(t, out.Moved)
	assert.True(t, out.FullyBooked)
	assert.False(t, out.Adjusted)
	assert.Equal(t, "09:00", next.Days[0].Activities[2].Time)
}

func TestMoveActivityMisses(t *testing.T) {
	it := sample()
	cases := []struct{ src, dst, id string }{
		{"nope", "day-2", "a1"},
		{"day-1", "nope", "a1"},
		{"day-1", "day-2", "nope"},
		{"day-1", "day-1", "a1"},
	}
	for _, c := range cases {
		next, out := MoveActivity(it, c.src, c.dst, c.id, keep)
		assert.False(t, out.Moved)
		assert.Same(t, it, next)
	}
}
