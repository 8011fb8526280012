package cli

import (
	"fmt"
	"io"
	"os"
)

// Printer is where user-visible output goes, which is STDERR by default.
// It's also the default destination of the [CommandSet] logger.
type Printer struct {
	out io.Writer
}

var _ io.Writer = (*Printer)(nil)

func NewPrinter() *Printer {
	return &Printer{out: os.Stderr}
}

// Redirect sends all further output to writer, including log output.
func (p *Printer) Redirect(writer io.Writer) {
	p.out = writer
}

func (p *Printer) Write(data []byte) (int, error) {
	return p.out.Write(data)
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}
