package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tripcraft/pkg/commands/options"
	"tableflip.dev/tripcraft/pkg/printers"
)

func addShow(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}
	report := false

	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"ls"},
		Short:   "Show the itinerary.",
		Example: `
tripcraft show
tripcraft show --show-id
tripcraft show --report
tripcraft show --day 2
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return withSession(cmd, func(ctx context.Context, s *session) error {
				if report {
					r, err := s.svc.Report(ctx)
					if err != nil {
						return err
					}
					if oo.JSON {
						return oo.PrintJSON(r)
					}
					(&printers.PrettyPrint{ShowID: vo.ShowID}).Report(r)
					return nil
				}
				it := s.svc.Snapshot()
				if vo.Day == "" {
					if oo.JSON {
						return printers.JSON(cmd.OutOrStdout(), it)
					}
					(&printers.PrettyPrint{ShowID: vo.ShowID}).Itinerary(it)
					return nil
				}
				days, pos, err := vo.Days(it)
				if err != nil {
					return err
				}
				if oo.JSON {
					return oo.PrintJSON(days[0])
				}
				pp := &printers.PrettyPrint{ShowID: vo.ShowID}
				pp.DayHeader(pos[0], days[0])
				pp.Activities(days[0].Activities)
				return nil
			})
		},
	}

	options.AddShowIDArgs(cmd, vo)
	options.AddDayFilterArgs(cmd, vo)
	cmd.Flags().BoolVar(&report, "report", false, "Show per-day statistics instead of activities.")

	topLevel.AddCommand(cmd)
}
