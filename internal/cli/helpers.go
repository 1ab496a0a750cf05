package cli

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintError writes a one-line diagnostic to w.
// The prefix is styled only when w is a color-capable terminal.
func PrintError(w io.Writer, err error) {
	out := termenv.NewOutput(w)
	prefix := out.String("Error:").Foreground(out.Color("1")).Bold()
	fmt.Fprintf(w, "%s %v\n", prefix, err)
}
