package app

import (
	"context"
	"sort"

	"tableflip.dev/tripcraft/pkg/itinerary"
	"tableflip.dev/tripcraft/pkg/timeutil"
)

// DayReport summarises one day.
type DayReport struct {
	Day         itinerary.Day
	Position    int
	Scheduled   int
	Unscheduled int
	// First and Last are the earliest and latest scheduled times, empty when
	// nothing is scheduled.
	First string
	Last  string
	// Clashes lists times held by more than one activity, in time order.
	Clashes []string
}

// ReportResult summarises the whole itinerary.
type ReportResult struct {
	Title     string
	Days      []DayReport
	Total     int
	Scheduled int
}

// Report summarises the current itinerary.
func (s *Service) Report(ctx context.Context) (ReportResult, error) {
	if err := ctx.Err(); err != nil {
		return ReportResult{}, err
	}
	return BuildReport(s.Snapshot()), nil
}

// BuildReport summarises it without touching it.
func BuildReport(it *itinerary.Itinerary) ReportResult {
	res := ReportResult{Title: it.Title, Days: make([]DayReport, 0, len(it.Days))}
	for i, d := range it.Days {
		dr := DayReport{Day: d, Position: i + 1}
		seen := make(map[int]int)
		first, last := -1, -1
		for _, a := range d.Activities {
			if !a.Scheduled() {
				dr.Unscheduled++
				continue
			}
			dr.Scheduled++
			m := timeutil.TimeToMinutes(a.Time)
			seen[m]++
			if first < 0 || m < first {
				first = m
			}
			if m > last {
				last = m
			}
		}
		if first >= 0 {
			dr.First = timeutil.MinutesToTime(first)
			dr.Last = timeutil.MinutesToTime(last)
		}
		clashes := make([]int, 0)
		for m, n := range seen {
			if n > 1 {
				clashes = append(clashes, m)
			}
		}
		sort.Ints(clashes)
		for _, m := range clashes {
			dr.Clashes = append(dr.Clashes, timeutil.MinutesToTime(m))
		}
		res.Total += len(d.Activities)
		res.Scheduled += dr.Scheduled
		res.Days = append(res.Days, dr)
	}
	return res
}
