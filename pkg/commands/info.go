package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"tableflip.dev/tripcraft/pkg/store"
)

type infoResult struct {
	Path       string  `json:"path"`
	Backend    string  `json:"backend"`
	Key        string  `json:"key"`
	Title      string  `json:"title"`
	Days       int     `json:"days"`
	Activities int     `json:"activities"`
	LogLevel   string  `json:"logLevel"`
	LogFormat  string  `json:"logFormat"`
	LogOutput  string  `json:"logOutput"`
	HourHeight float64 `json:"hourHeight"`
	Snap       int     `json:"snapMinutes"`
}

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the itinerary and where it is stored.",
		Example: `
tripcraft info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return withSession(cmd, func(_ context.Context, s *session) error {
				it := s.svc.Snapshot()
				grid := s.cfg.Timeline()
				log := s.cfg.Logging()
				res := infoResult{
					Path:       s.cfg.BasePath(),
					Backend:    s.cfg.Backend(),
					Key:        store.Key,
					Title:      it.Title,
					Days:       len(it.Days),
					Activities: it.ActivityCount(),
					LogLevel:   log.Level,
					LogFormat:  log.Format,
					LogOutput:  log.Output,
					HourHeight: grid.HourHeight,
					Snap:       grid.Snap,
				}
				if oo.JSON {
					return oo.PrintJSON(res)
				}

				tbl := uitable.New()
				tbl.Separator = "  "
				tbl.AddRow("Store:", fmt.Sprintf("%s (%s)", filepath.Clean(res.Path), res.Backend))
				tbl.AddRow("Key:", res.Key)
				tbl.AddRow("Title:", res.Title)
				tbl.AddRow("Days:", res.Days)
				tbl.AddRow("Activities:", res.Activities)
				tbl.AddRow("Log:", fmt.Sprintf("%s %s -> %s", res.LogLevel, res.LogFormat, res.LogOutput))
				tbl.AddRow("Timeline:", fmt.Sprintf("%gpx/hour, %d minute snap", res.HourHeight, res.Snap))
				_, _ = fmt.Fprintln(color.Output, tbl)
				return nil
			})
		},
	}

	topLevel.AddCommand(cmd)
}
