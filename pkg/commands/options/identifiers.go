package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tripcraft/pkg/itinerary"
)

// ViewOptions selects what a read command prints.
type ViewOptions struct {
	ShowID bool
	Day    string
}

func AddShowIDArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each day and activity.")
}

func AddDayFilterArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().StringVarP(&o.Day, "day", "d", "",
		"Only show this day, by position or id.")
}

// Days returns the days to print with their 1-based positions. Without a
// --day filter every day is returned.
func (o *ViewOptions) Days(it *itinerary.Itinerary) ([]itinerary.Day, []int, error) {
	if o.Day == "" {
		pos := make([]int, len(it.Days))
		for i := range pos {
			pos[i] = i + 1
		}
		return it.Days, pos, nil
	}
	d, i, err := ResolveDay(it, o.Day)
	if err != nil {
		return nil, nil, err
	}
	return []itinerary.Day{d}, []int{i + 1}, nil
}
