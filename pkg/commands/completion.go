package commands

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tripcraft/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(tripcraft completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(tripcraft completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// dayCompletions offers stored day ids matching toComplete.
func dayCompletions(toComplete string) []string {
	p, err := store.Load(nil)
	if err != nil {
		return nil
	}
	if c, ok := p.(io.Closer); ok {
		defer c.Close()
	}
	it, err := p.Load(context.Background())
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(it.Days))
	for _, d := range it.Days {
		if strings.HasPrefix(d.ID, toComplete) {
			ids = append(ids, d.ID+"\t"+d.Name)
		}
	}
	return ids
}

func completeDayArg(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return dayCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
}
