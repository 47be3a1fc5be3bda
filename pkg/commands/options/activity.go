package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tripcraft/pkg/itinerary"
	"tableflip.dev/tripcraft/pkg/timeutil"
)

// ActivityOptions holds the editable fields of an activity.
type ActivityOptions struct {
	Name  string
	Time  string
	Notes string

	cmd *cobra.Command
}

// AddActivityArgs registers --time and --notes, plus --name when withName.
func AddActivityArgs(cmd *cobra.Command, o *ActivityOptions, withName bool) {
	o.cmd = cmd
	if withName {
		cmd.Flags().StringVar(&o.Name, "name", "",
			"New activity name.")
	}
	cmd.Flags().StringVarP(&o.Time, "time", "t", "",
		"Start time as HH:MM (24-hour). Empty leaves the activity unscheduled.")
	cmd.Flags().StringVarP(&o.Notes, "notes", "n", "",
		"Free-form notes.")
}

// Validate checks the time flag when it was given.
func (o *ActivityOptions) Validate() error {
	t := strings.TrimSpace(o.Time)
	if t != "" && !timeutil.IsValidTime(t) {
		return fmt.Errorf("invalid --time %q, want HH:MM", o.Time)
	}
	return nil
}

// Input builds the fields of a new activity named name.
func (o *ActivityOptions) Input(name string) itinerary.ActivityInput {
	return itinerary.ActivityInput{Name: name, Time: o.Time, Notes: o.Notes}
}

// Patch includes only the flags that were set on the command line.
func (o *ActivityOptions) Patch() itinerary.ActivityPatch {
	var p itinerary.ActivityPatch
	if o.changed("name") {
		p.Name = itinerary.String(o.Name)
	}
	if o.changed("time") {
		p.Time = itinerary.String(o.Time)
	}
	if o.changed("notes") {
		p.Notes = itinerary.String(o.Notes)
	}
	return p
}

func (o *ActivityOptions) changed(flag string) bool {
	if o.cmd == nil {
		return false
	}
	f := o.cmd.Flags().Lookup(flag)
	return f != nil && f.Changed
}
