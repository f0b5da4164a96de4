// internal/printer/printer.go
package printer

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
)

// Printer writes colored status lines for the terminal. Artifacts carry the
// machine-readable output; this is operator feedback only.
type Printer struct {
	w io.Writer
}

func New(w io.Writer) *Printer { return &Printer{w: w} }

// Successf prints a green success line.
func (p *Printer) Successf(format string, a ...any) {
	_, _ = green.Fprintf(p.w, "✓ "+format+"\n", a...)
}

// Warnf prints a yellow warning line.
func (p *Printer) Warnf(format string, a ...any) {
	_, _ = yellow.Fprintf(p.w, "! "+format+"\n", a...)
}

// Infof prints an uncolored line.
func (p *Printer) Infof(format string, a ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", a...)
}
