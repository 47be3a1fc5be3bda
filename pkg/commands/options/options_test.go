package options

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/tripcraft/pkg/itinerary"
)

func trip() *itinerary.Itinerary {
	return &itinerary.Itinerary{Title: "T", Days: []itinerary.Day{
		{ID: "d1", Name: "One", Activities: []itinerary.Activity{{ID: "a1", Name: "A"}, {ID: "a2", Name: "B"}}},
		{ID: "day-x", Name: "Two", Activities: []itinerary.Activity{{ID: "b1", Name: "C"}}},
	}}
}

func TestResolveDay(t *testing.T) {
	d, i, err := ResolveDay(trip(), "2")
	require.NoError(t, err)
	assert.Equal(t, "day-x", d.ID)
	assert.Equal(t, 1, i)

	d, _, err = ResolveDay(trip(), "d1")
	require.NoError(t, err)
	assert.Equal(t, "One", d.Name)

	_, _, err = ResolveDay(trip(), "3")
	assert.Error(t, err)
	_, _, err = ResolveDay(trip(), "nope")
	assert.Error(t, err)
}

func TestResolveActivity(t *testing.T) {
	a, d, i, err := ResolveActivity(trip(), "1.2")
	require.NoError(t, err)
	assert.Equal(t, "a2", a.ID)
	assert.Equal(t, "d1", d.ID)
	assert.Equal(t, 1, i)

	a, d, _, err = ResolveActivity(trip(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "C", a.Name)
	assert.Equal(t, "day-x", d.ID)

	_, _, _, err = ResolveActivity(trip(), "1.9")
	assert.Error(t, err)
	_, _, _, err = ResolveActivity(trip(), "zzz")
	assert.Error(t, err)
}

func TestPosition(t *testing.T) {
	n, err := Position("3")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	_, err = Position("0")
	assert.Error(t, err)
}

func TestActivityPatchOnlyChangedFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "edit"}
	o := &ActivityOptions{}
	AddActivityArgs(cmd, o, true)
	require.NoError(t, cmd.Flags().Parse([]string{"--time", "10:15"}))

	require.NoError(t, o.Validate())
	p := o.Patch()
	assert.Nil(t, p.Name)
	assert.Nil(t, p.Notes)
	require.NotNil(t, p.Time)
	assert.Equal(t, "10:15", *p.Time)
}

func TestActivityValidate(t *testing.T) {
	o := &ActivityOptions{Time: "25:00"}
	assert.Error(t, o.Validate())
	o.Time = ""
	assert.NoError(t, o.Validate())
}

func TestGestureTravel(t *testing.T) {
	o := &GestureOptions{To: "10:00"}
	px, err := o.Travel(540, 1)
	require.NoError(t, err)
	assert.Equal(t, float64(60), px)

	o = &GestureOptions{Duration: "90m"}
	px, err = o.Travel(60, 2)
	require.NoError(t, err)
	assert.Equal(t, float64(60), px)

	o = &GestureOptions{By: 37}
	px, err = o.Travel(0, 1)
	require.NoError(t, err)
	assert.Equal(t, float64(37), px)

	_, err = (&GestureOptions{To: "9"}).Travel(0, 1)
	assert.Error(t, err)
}

func TestViewOptionsDays(t *testing.T) {
	all := &ViewOptions{}
	days, pos, err := all.Days(trip())
	require.NoError(t, err)
	assert.Len(t, days, 2)
	assert.Equal(t, []int{1, 2}, pos)

	one := &ViewOptions{Day: "day-x"}
	days, pos, err = one.Days(trip())
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "Two", days[0].Name)
	assert.Equal(t, []int{2}, pos)

	_, _, err = (&ViewOptions{Day: "5"}).Days(trip())
	assert.Error(t, err)
}

func TestViewOptionsFlags(t *testing.T) {
	o := &ViewOptions{}
	cmd := &cobra.Command{Use: "x", RunE: func(*cobra.Command, []string) error { return nil }}
	AddShowIDArgs(cmd, o)
	AddDayFilterArgs(cmd, o)
	require.NoError(t, cmd.ParseFlags([]string{"-k", "--day", "2"}))
	assert.True(t, o.ShowID)
	assert.Equal(t, "2", o.Day)
}
