package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tripcraft/pkg/commands/options"
	"tableflip.dev/tripcraft/pkg/printers"
)

func addDay(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "day",
		Aliases: []string{"days"},
		Short:   "Add, rename, delete, list or reorder days.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addDayAdd(cmd)
	addDayRename(cmd)
	addDayDelete(cmd)
	addDayList(cmd)
	addDayReorder(cmd)

	topLevel.AddCommand(cmd)
}

func addDayAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Append a day to the end of the trip.",
		Example: `
tripcraft day add Lisbon
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return withSession(cmd, func(ctx context.Context, s *session) error {
				d, err := s.svc.AddDay(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}
				if oo.JSON {
					return oo.PrintJSON(d)
				}
				return nil
			})
		},
	}
	topLevel.AddCommand(cmd)
}

func addDayRename(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rename <day> <name>",
		Short: "Rename a day. Days are addressed by id or position.",
		Example: `
tripcraft day rename 2 Sintra
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return withSession(cmd, func(ctx context.Context, s *session) error {
				d, _, err := options.ResolveDay(s.svc.Snapshot(), args[0])
				if err != nil {
					return err
				}
				return s.svc.UpdateDayName(ctx, d.ID, strings.Join(args[1:], " "))
			})
		},
		ValidArgsFunction: completeDayArg,
	}
	topLevel.AddCommand(cmd)
}

func addDayDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete <day>",
		Aliases: []string{"rm"},
		Short:   "Delete a day and all of its activities.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return withSession(cmd, func(ctx context.Context, s *session) error {
				d, _, err := options.ResolveDay(s.svc.Snapshot(), args[0])
				if err != nil {
					return err
				}
				return s.svc.DeleteDay(ctx, d.ID)
			})
		},
		ValidArgsFunction: completeDayArg,
	}
	topLevel.AddCommand(cmd)
}

func addDayList(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List days with their activity counts.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return withSession(cmd, func(ctx context.Context, s *session) error {
				it := s.svc.Snapshot()
				if oo.JSON {
					return oo.PrintJSON(it.Days)
				}
				pp := &printers.PrettyPrint{ShowID: vo.ShowID}
				for i, d := range it.Days {
					pp.DayHeader(i+1, d)
				}
				return nil
			})
		},
	}
	options.AddShowIDArgs(cmd, vo)
	topLevel.AddCommand(cmd)
}

func addDayReorder(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reorder <from> <to>",
		Short: "Move the day at position from to position to.",
		Example: `
tripcraft day reorder 1 3
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			from, err := options.Position(args[0])
			if err != nil {
				return oo.HandleError(err)
			}
			to, err := options.Position(args[1])
			if err != nil {
				return oo.HandleError(err)
			}
			return withSession(cmd, func(ctx context.Context, s *session) error {
				return s.svc.ReorderDays(ctx, from, to)
			})
		},
	}
	topLevel.AddCommand(cmd)
}
