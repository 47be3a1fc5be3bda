package printers

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/tripcraft/pkg/timeline"
	"tableflip.dev/tripcraft/pkg/timeutil"
)

// TimelineView draws blocks on a vertical axis, one text line per
// MinutesPerLine minutes.
type TimelineView struct {
	Width          int
	MinutesPerLine int
	Color          bool
}

const (
	defaultTimelineWidth = 36
	defaultMinutesLine   = 30
)

func (v TimelineView) styles() (heading, label, box, name, notes lipgloss.Style) {
	heading = lipgloss.NewStyle()
	label = lipgloss.NewStyle().Width(15)
	box = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	name = lipgloss.NewStyle().Bold(true)
	notes = lipgloss.NewStyle()
	if v.Color {
		heading = heading.Bold(true).Underline(true)
		label = label.Foreground(lipgloss.Color("241"))
		box = box.BorderForeground(lipgloss.Color("63"))
		name = name.Foreground(lipgloss.Color("218"))
		notes = notes.Faint(true)
	}
	return heading, label, box, name, notes
}

// Render lays out blocks in start order. Block heights follow their
// durations.
func (v TimelineView) Render(title string, blocks []timeline.Block) string {
	width := v.Width
	if width <= 0 {
		width = defaultTimelineWidth
	}
	perLine := v.MinutesPerLine
	if perLine <= 0 {
		perLine = defaultMinutesLine
	}
	heading, label, box, name, notes := v.styles()

	sorted := make([]timeline.Block, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartMinutes < sorted[j].StartMinutes
	})

	rows := []string{heading.Render(title)}
	if len(sorted) == 0 {
		rows = append(rows, "  nothing scheduled")
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}

	inner := width - 4
	for i, b := range sorted {
		lines := b.Duration / perLine
		if lines < 1 {
			lines = 1
		}
		body := []string{name.Render(b.Name)}
		if b.Notes != "" {
			for _, l := range strings.Split(wordwrap.String(b.Notes, inner), "\n") {
				body = append(body, notes.Render(l))
			}
		}
		for len(body) < lines {
			body = append(body, "")
		}
		block := box.Width(width).Render(strings.Join(body, "\n"))
		when := label.Render(fmt.Sprintf("%d %s-%s", i, b.Start(), b.End()))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, when, block))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Timeline writes the rendered view of blocks to w.
func Timeline(w io.Writer, v TimelineView, title string, blocks []timeline.Block) error {
	_, err := fmt.Fprintln(w, v.Render(title, blocks))
	return err
}

// BlockSummary is a one-line description of a block, used after a gesture.
func BlockSummary(b timeline.Block) string {
	return fmt.Sprintf("%s %s-%s (%s)", b.Name, b.Start(), b.End(), timeutil.FormatDuration(b.Duration))
}
