package commands

import (
	"context"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tableflip.dev/tripcraft/pkg/app"
	"tableflip.dev/tripcraft/pkg/logging"
	"tableflip.dev/tripcraft/pkg/notify"
	"tableflip.dev/tripcraft/pkg/store"
)

// session is the wiring shared by every command that touches the itinerary.
type session struct {
	cfg    store.Config
	logger *zap.Logger
	svc    *app.Service
	closer io.Closer
	store  store.Persistence
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger, closer, err := logging.New(cfg.Logging())
	if err != nil {
		return nil, err
	}
	p, err := store.Load(cfg, store.WithLogger(logger))
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	n := notify.Log(logger)
	if !oo.JSON {
		n = notify.Multi(notify.Printer(color.Output), n)
	}
	svc := app.New(p, app.WithLogger(logger), app.WithNotifier(n))
	s := &session{cfg: cfg, logger: logger, svc: svc, closer: closer, store: p}
	if err := svc.Load(ctx); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *session) Close() {
	if c, ok := s.store.(io.Closer); ok {
		if err := c.Close(); err != nil {
			s.logger.Warn("closing store", zap.Error(err))
		}
	}
	_ = s.logger.Sync()
	_ = s.closer.Close()
}

// withSession opens a session, runs fn and routes its error through the
// output options.
func withSession(cmd *cobra.Command, fn func(ctx context.Context, s *session) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := openSession(ctx)
	if err != nil {
		return oo.HandleError(err)
	}
	defer s.Close()
	return oo.HandleError(fn(ctx, s))
}
