package commands

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/tripcraft/pkg/commands/options"
	"tableflip.dev/tripcraft/pkg/printers"
	"tableflip.dev/tripcraft/pkg/timeline"
)

func addTimeline(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "timeline",
		Aliases: []string{"tl"},
		Short:   "View a day on a time axis, or drag and resize its activities.",
		Long: `Drag and resize replay a pointer gesture on the day's timeline. Starts
snap to the grid and durations stay between the configured bounds. Releasing
the gesture writes every activity of the day back with its timeline time and
a duration note.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTimelineShow(cmd)
	addTimelineDrag(cmd)
	addTimelineResize(cmd)

	topLevel.AddCommand(cmd)
}

func addTimelineShow(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "show <day>",
		Short: "Draw a day as a timeline.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return withSession(cmd, func(ctx context.Context, s *session) error {
				d, _, err := options.ResolveDay(s.svc.Snapshot(), args[0])
				if err != nil {
					return err
				}
				sched := timeline.New(d, nil, s.cfg.Timeline())
				if oo.JSON {
					return oo.PrintJSON(sched.Blocks())
				}
				return printers.Timeline(color.Output, printers.TimelineView{Color: oo.Color()}, d.Name, sched.Blocks())
			})
		},
		ValidArgsFunction: completeDayArg,
	}
	topLevel.AddCommand(cmd)
}

type gesture int

const (
	drag gesture = iota
	resize
)

func addTimelineDrag(topLevel *cobra.Command) {
	g := &options.GestureOptions{}
	cmd := &cobra.Command{
		Use:   "drag <day> <position>",
		Short: "Drag an activity up or down the timeline.",
		Example: `
tripcraft timeline drag 1 2 --by 37
tripcraft timeline drag 1 2 --to 14:00
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runGesture(cmd, drag, g, args)
		},
		ValidArgsFunction: completeDayArg,
	}
	options.AddDragArgs(cmd, g)
	topLevel.AddCommand(cmd)
}

func addTimelineResize(topLevel *cobra.Command) {
	g := &options.GestureOptions{}
	cmd := &cobra.Command{
		Use:   "resize <day> <position>",
		Short: "Stretch or shrink an activity on the timeline.",
		Example: `
tripcraft timeline resize 1 2 --duration 90m
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runGesture(cmd, resize, g, args)
		},
		ValidArgsFunction: completeDayArg,
	}
	options.AddResizeArgs(cmd, g)
	topLevel.AddCommand(cmd)
}

func runGesture(cmd *cobra.Command, kind gesture, g *options.GestureOptions, args []string) error {
	index, err := options.Position(args[1])
	if err != nil {
		return oo.HandleError(err)
	}
	return withSession(cmd, func(ctx context.Context, s *session) error {
		d, _, err := options.ResolveDay(s.svc.Snapshot(), args[0])
		if err != nil {
			return err
		}
		sched := timeline.New(d, s.svc, s.cfg.Timeline())
		if index >= len(sched.Blocks()) {
			return fmt.Errorf("%w: %s has %d activities", timeline.ErrIndex, d.Name, len(sched.Blocks()))
		}
		b := sched.Blocks()[index]
		ppm := sched.Config().PixelsPerMinute()

		switch kind {
		case drag:
			travel, err := g.Travel(b.StartMinutes, ppm)
			if err != nil {
				return err
			}
			if err := sched.BeginDrag(index, 0); err != nil {
				return err
			}
			sched.PointerMove(travel)
		case resize:
			travel, err := g.Travel(b.Duration, ppm)
			if err != nil {
				return err
			}
			if err := sched.BeginResize(index, 0); err != nil {
				return err
			}
			sched.PointerMove(travel)
		}

		moved := sched.Blocks()[index]
		if _, err := sched.Release(ctx); err != nil {
			return err
		}
		if oo.JSON {
			return oo.PrintJSON(moved)
		}
		fmt.Fprintln(color.Output, printers.BlockSummary(moved))
		return nil
	})
}
