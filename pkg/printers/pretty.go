package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tripcraft/pkg/app"
	"tableflip.dev/tripcraft/pkg/itinerary"
)

// PrettyPrint renders itineraries as colored text tables.
type PrettyPrint struct {
	Out    io.Writer
	ShowID bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

// Title prints the itinerary title.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// DayHeader prints a day name with its position and activity count.
func (pp *PrettyPrint) DayHeader(position int, d itinerary.Day) {
	t := color.New(color.Bold)
	c := color.New(color.Faint)

	_, _ = t.Fprintf(pp.out(), "Day %d: %s", position, d.Name)
	if pp.ShowID {
		_, _ = c.Fprintf(pp.out(), " [%s]", d.ID)
	}
	_, _ = c.Fprintf(pp.out(), " - %d", len(d.Activities))
	switch len(d.Activities) {
	case 1:
		_, _ = c.Fprintln(pp.out(), " activity")
	default:
		_, _ = c.Fprintln(pp.out(), " activities")
	}
}

// Activities prints the activities of a day in their stored order.
func (pp *PrettyPrint) Activities(acts []itinerary.Activity) {
	if len(acts) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), "  none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	tm := color.New(color.FgCyan)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	for i, a := range acts {
		when := "--:--"
		if a.Scheduled() {
			when = a.Time
		}
		row := []interface{}{fmt.Sprintf("  %d.", i+1), tm.Sprint(when), a.Name, faint.Sprint(a.Notes)}
		if pp.ShowID {
			row = append([]interface{}{y.Sprint(a.ID)}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	_, _ = fmt.Fprintln(pp.out())
}

// Itinerary prints the title and every day.
func (pp *PrettyPrint) Itinerary(it *itinerary.Itinerary) {
	pp.Title(it.Title)
	_, _ = fmt.Fprintln(pp.out())
	if len(it.Days) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(pp.out(), "No days yet. Add one with `tripcraft day add`.")
		return
	}
	for i, d := range it.Days {
		pp.DayHeader(i+1, d)
		pp.Activities(d.Activities)
	}
}

// Report prints per-day statistics.
func (pp *PrettyPrint) Report(r app.ReportResult) {
	pp.Title(r.Title)

	warn := color.New(color.FgYellow)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("DAY", "NAME", "ACTIVITIES", "SCHEDULED", "SPAN", "CLASHES")
	for _, d := range r.Days {
		span := "-"
		if d.First != "" {
			span = d.First + "-" + d.Last
		}
		clashes := "-"
		if len(d.Clashes) > 0 {
			clashes = warn.Sprint(strings.Join(d.Clashes, ","))
		}
		tbl.AddRow(d.Position, d.Day.Name, len(d.Day.Activities), d.Scheduled, span, clashes)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)

	c := color.New(color.Faint)
	_, _ = c.Fprintf(pp.out(), "%d days, %d activities, %d scheduled\n", len(r.Days), r.Total, r.Scheduled)
}
