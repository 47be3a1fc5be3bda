package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

func addTitle(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "title <text>",
		Short: "Rename the itinerary.",
		Example: `
tripcraft title Summer in Portugal
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return withSession(cmd, func(ctx context.Context, s *session) error {
				return s.svc.UpdateTitle(ctx, strings.Join(args, " "))
			})
		},
	}

	topLevel.AddCommand(cmd)
}
