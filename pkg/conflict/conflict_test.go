package conflict

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/tripcraft/pkg/itinerary"
	"tableflip.dev/tripcraft/pkg/timeutil"
)

func acts(times ...string) []itinerary.Activity {
	out := make([]itinerary.Activity, 0, len(times))
	for i, t := range times {
		out = append(out, itinerary.Activity{ID: string(rune('a' + i)), Name: "x", Time: t})
	}
	return out
}

func TestFindAvailableTime(t *testing.T) {
	tests := map[string]struct {
		existing  []itinerary.Activity
		candidate string
		want      Result
	}{
		"free slot": {
			existing:  acts("10:00"),
			candidate: "09:00",
			want:      Result{Time: "09:00"},
		},
		"single conflict": {
			existing:  acts("09:00"),
			candidate: "09:00",
			want:      Result{Time: "09:30", Adjusted: true},
		},
		"chained conflict": {
			existing:  acts("09:00", "09:30"),
			candidate: "09:00",
			want:      Result{Time: "10:00", Adjusted: true},
		},
		"empty day": {
			candidate: "14:15",
			want:      Result{Time: "14:15"},
		},
		"unscheduled candidate": {
			existing: acts("09:00"),
			want:     Result{},
		},
		"unscheduled existing ignored": {
			existing:  acts("", ""),
			candidate: "09:00",
			want:      Result{Time: "09:00"},
		},
		"wraps past midnight": {
			existing:  acts("23:45"),
			candidate: "23:45",
			want:      Result{Time: "09:00", Adjusted: true},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, FindAvailableTime(tc.existing, tc.candidate))
		})
	}
}

func TestFindAvailableTimeFullyBooked(t *testing.T) {
	var times []string
	for m := 0; m < timeutil.MinutesPerDay; m += Step {
		times = append(times, timeutil.MinutesToTime(m))
	}
	got := FindAvailableTime(acts(times...), "09:00")
	assert.True(t, got.FullyBooked)
	assert.False(t, got.Adjusted)
	assert.Equal(t, "09:00", got.Time)

	_, err := Resolve(acts(times...), "09:00")
	assert.True(t, errors.Is(err, ErrFullyBooked))
}

func TestResolve(t *testing.T) {
	got, err := Resolve(acts("09:00"), "09:00")
	require.NoError(t, err)
	assert.Equal(t, "09:30", got)
}

func TestConflicts(t *testing.T) {
	assert.True(t, Conflicts(acts("09:00"), "09:00"))
	assert.False(t, Conflicts(acts("09:00"), "09:15"))
	assert.False(t, Conflicts(acts("09:00"), ""))
}

func TestResolveFunc(t *testing.T) {
	got, booked := ResolveFunc(acts("12:00"), "12:00")
	assert.Equal(t, "12:30", got)
	assert.False(t, booked)
}
