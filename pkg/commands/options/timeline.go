package options

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/tripcraft/pkg/timeutil"
)

// GestureOptions describes a scripted drag or resize.
type GestureOptions struct {
	By       float64
	To       string
	Duration string
}

func AddDragArgs(cmd *cobra.Command, o *GestureOptions) {
	cmd.Flags().Float64Var(&o.By, "by", 0,
		"Pointer travel in pixels; positive moves later.")
	cmd.Flags().StringVar(&o.To, "to", "",
		"Target start time as HH:MM, converted to pointer travel.")
}

func AddResizeArgs(cmd *cobra.Command, o *GestureOptions) {
	cmd.Flags().Float64Var(&o.By, "by", 0,
		"Pointer travel in pixels; positive makes the block longer.")
	cmd.Flags().StringVar(&o.Duration, "duration", "",
		"Target duration such as 90m or 1h30m, converted to pointer travel.")
}

// Travel returns the pointer travel in pixels for a gesture on a value that
// currently sits at current minutes.
func (o *GestureOptions) Travel(current int, pixelsPerMinute float64) (float64, error) {
	switch {
	case o.To != "":
		if !timeutil.IsValidTime(o.To) {
			return 0, errors.New("--to must be HH:MM")
		}
		return float64(timeutil.TimeToMinutes(o.To)-current) * pixelsPerMinute, nil
	case o.Duration != "":
		minutes, _, err := timeutil.ParseDuration(o.Duration)
		if err != nil {
			return 0, err
		}
		return float64(minutes-current) * pixelsPerMinute, nil
	default:
		return o.By, nil
	}
}
