package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tableflip.dev/tripcraft/pkg/printers"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reprint the itinerary whenever it changes on disk.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return withSession(cmd, func(ctx context.Context, s *session) error {
				ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()

				events, err := s.svc.Watch(ctx)
				if err != nil {
					return err
				}
				render := func() error {
					if oo.JSON {
						return printers.JSON(cmd.OutOrStdout(), s.svc.Snapshot())
					}
					(&printers.PrettyPrint{}).Itinerary(s.svc.Snapshot())
					return nil
				}
				if err := render(); err != nil {
					return err
				}
				for ev := range events {
					s.logger.Debug("store changed", zap.Stringer("event", ev.Type))
					if err := s.svc.Load(ctx); err != nil {
						if ctx.Err() != nil {
							return nil
						}
						return err
					}
					if err := render(); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	topLevel.AddCommand(cmd)
}
