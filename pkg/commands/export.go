package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/tripcraft/pkg/printers"
)

func addExport(topLevel *cobra.Command) {
	file := ""
	format := "json"

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the itinerary as JSON, YAML or text.",
		Example: `
tripcraft export > trip.json
tripcraft export --file trip.txt --format text
tripcraft export --format yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return withSession(cmd, func(_ context.Context, s *session) error {
				w := color.Output
				if file != "" {
					f, err := os.Create(file)
					if err != nil {
						return fmt.Errorf("export: %w", err)
					}
					defer f.Close()
					w = f
					color.NoColor = true
				}
				switch format {
				case "json":
					return printers.JSON(w, s.svc.Snapshot())
				case "yaml":
					return printers.YAML(w, s.svc.Snapshot())
				case "text":
					(&printers.PrettyPrint{Out: w}).Itinerary(s.svc.Snapshot())
					return nil
				default:
					return fmt.Errorf("export: unknown format %q, want json, yaml or text", format)
				}
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Write to this file instead of stdout.")
	cmd.Flags().StringVar(&format, "format", "json", "Output format. One of 'json', 'yaml' or 'text'.")

	topLevel.AddCommand(cmd)
}
