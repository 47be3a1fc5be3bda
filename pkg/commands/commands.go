package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/tripcraft/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "tripcraft",
		Short: base.Wrap80("Plan a trip day by day: days, timed activities, and a draggable timeline, stored locally."),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			oo.ApplyColor()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, oo)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addShow(topLevel)
	addTitle(topLevel)
	addDay(topLevel)
	addActivity(topLevel)
	addTimeline(topLevel)
	addExport(topLevel)
	addWatch(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
