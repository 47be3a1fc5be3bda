package options

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// OutputOptions
type OutputOptions struct {
	JSON    bool
	NoColor bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.PersistentFlags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
	cmd.PersistentFlags().BoolVar(&po.NoColor, "no-color", false,
		"Disable colored output.")
}

// ApplyColor turns color off when asked to or when stdout is not a terminal.
func (o *OutputOptions) ApplyColor() {
	fd := os.Stdout.Fd()
	if o.NoColor || o.JSON || !(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) {
		color.NoColor = true
	}
}

// Color reports whether styled output is enabled.
func (o *OutputOptions) Color() bool {
	return !color.NoColor
}

func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}

// PrintJSON writes v as indented JSON.
func (o *OutputOptions) PrintJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(color.Output, string(b))
	return err
}
