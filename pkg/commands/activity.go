package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tripcraft/pkg/commands/options"
)

func addActivity(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "activity",
		Aliases: []string{"act", "a"},
		Short:   "Add, edit, delete, reorder or move activities.",
		Long: `Activities are addressed by id or as DAY.POS, for example 2.1 is the
first activity of the second day.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addActivityAdd(cmd)
	addActivityEdit(cmd)
	addActivityDelete(cmd)
	addActivityReorder(cmd)
	addActivityMove(cmd)

	topLevel.AddCommand(cmd)
}

func addActivityAdd(topLevel *cobra.Command) {
	ao := &options.ActivityOptions{}
	cmd := &cobra.Command{
		Use:   "add <day> <name>",
		Short: "Append an activity to a day.",
		Example: `
tripcraft activity add 1 Pastel de nata --time 09:30 --notes "Manteigaria"
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := ao.Validate(); err != nil {
				return oo.HandleError(err)
			}
			return withSession(cmd, func(ctx context.Context, s *session) error {
				d, _, err := options.ResolveDay(s.svc.Snapshot(), args[0])
				if err != nil {
					return err
				}
				a, err := s.svc.AddActivity(ctx, d.ID, ao.Input(strings.Join(args[1:], " ")))
				if err != nil {
					return err
				}
				if oo.JSON {
					return oo.PrintJSON(a)
				}
				return nil
			})
		},
		ValidArgsFunction: completeDayArg,
	}
	options.AddActivityArgs(cmd, ao, false)
	topLevel.AddCommand(cmd)
}

func addActivityEdit(topLevel *cobra.Command) {
	ao := &options.ActivityOptions{}
	cmd := &cobra.Command{
		Use:   "edit <activity>",
		Short: "Change the name, time or notes of an activity. Unset flags are kept.",
		Example: `
tripcraft activity edit 1.2 --time 14:00
tripcraft activity edit activity-6b1f... --notes ""
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if err := ao.Validate(); err != nil {
				return oo.HandleError(err)
			}
			return withSession(cmd, func(ctx context.Context, s *session) error {
				a, d, _, err := options.ResolveActivity(s.svc.Snapshot(), args[0])
				if err != nil {
					return err
				}
				patch := ao.Patch()
				if patch.Empty() {
					return nil
				}
				return s.svc.UpdateActivity(ctx, d.ID, a.ID, patch)
			})
		},
	}
	options.AddActivityArgs(cmd, ao, true)
	topLevel.AddCommand(cmd)
}

func addActivityDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete <activity>",
		Aliases: []string{"rm"},
		Short:   "Delete an activity.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return withSession(cmd, func(ctx context.Context, s *session) error {
				a, d, _, err := options.ResolveActivity(s.svc.Snapshot(), args[0])
				if err != nil {
					return err
				}
				return s.svc.DeleteActivity(ctx, d.ID, a.ID)
			})
		},
	}
	topLevel.AddCommand(cmd)
}

func addActivityReorder(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reorder <day> <from> <to>",
		Short: "Move an activity within its day. Times are not changed.",
		Example: `
tripcraft activity reorder 1 3 1
`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			from, err := options.Position(args[1])
			if err != nil {
				return oo.HandleError(err)
			}
			to, err := options.Position(args[2])
			if err != nil {
				return oo.HandleError(err)
			}
			return withSession(cmd, func(ctx context.Context, s *session) error {
				d, _, err := options.ResolveDay(s.svc.Snapshot(), args[0])
				if err != nil {
					return err
				}
				return s.svc.ReorderActivities(ctx, d.ID, from, to)
			})
		},
		ValidArgsFunction: completeDayArg,
	}
	topLevel.AddCommand(cmd)
}

func addActivityMove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "move <activity> <day>",
		Short: "Move an activity to the end of another day, shifting its time if it clashes.",
		Example: `
tripcraft activity move 1.2 3
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return withSession(cmd, func(ctx context.Context, s *session) error {
				it := s.svc.Snapshot()
				a, src, _, err := options.ResolveActivity(it, args[0])
				if err != nil {
					return err
				}
				dst, _, err := options.ResolveDay(it, args[1])
				if err != nil {
					return err
				}
				out, err := s.svc.MoveActivity(ctx, src.ID, dst.ID, a.ID)
				if err != nil {
					return err
				}
				if oo.JSON {
					return oo.PrintJSON(out)
				}
				return nil
			})
		},
	}
	topLevel.AddCommand(cmd)
}
