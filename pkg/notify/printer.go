package notify

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// Printer writes notifications to w, one per line, with a colored title.
func Printer(w io.Writer) Notifier {
	return Func(func(n Notification) {
		c := successColor
		switch n.Kind {
		case Warning:
			c = warningColor
		case Error:
			c = errorColor
		}
		if n.Description == "" {
			fmt.Fprintln(w, c.Sprint(n.Title))
			return
		}
		fmt.Fprintf(w, "%s %s\n", c.Sprint(n.Title), n.Description)
	})
}
