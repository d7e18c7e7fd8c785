package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/data-apis/bakegen/src/matrix"
)

const sectionWidth = 61 // inner width between │ and line end

// Printer formats and writes generation summaries.
type Printer struct {
	Writer io.Writer
	Color  bool
}

// NewPrinter creates a printer writing to stdout with color auto-detection.
func NewPrinter() *Printer {
	return &Printer{
		Writer: os.Stdout,
		Color:  isTerminal(),
	}
}

// Matrix prints the generated build matrix: one row per target with its
// resolved tag and cache mode, base first.
func (p *Printer) Matrix(res *matrix.Result) {
	p.header(fmt.Sprintf("Build matrix (%d targets)", len(res.Graph.Leaves)+1))

	for _, t := range res.Graph.Targets() {
		kind := " "
		if t.Kind == matrix.KindBase {
			kind = "*"
		}
		p.row("%s %-20s %-28s cache=%s", kind, t.Name, res.Tags[t.Name], res.Policies[t.Name].Mode)
	}

	p.separator()
	p.row("package %-14s base increment %s", res.Snapshot.Package, res.Snapshot.Base)
	p.footer()
}

// Wrote prints where the document landed.
func (p *Printer) Wrote(path string, n int) {
	fmt.Fprintf(p.Writer, "\n    wrote %s (%d bytes)\n", path, n)
}

func (p *Printer) header(name string) {
	label := fmt.Sprintf("── %s ", name)
	fill := sectionWidth + 4 - len(label) - 2
	if fill < 1 {
		fill = 1
	}
	line := label + strings.Repeat("─", fill) + "──"
	if p.Color {
		fmt.Fprintf(p.Writer, "\n    \033[2;36m%s\033[0m\n", line)
	} else {
		fmt.Fprintf(p.Writer, "\n    %s\n", line)
	}
}

func (p *Printer) row(format string, args ...any) {
	fmt.Fprintf(p.Writer, "    │ %s\n", fmt.Sprintf(format, args...))
}

func (p *Printer) separator() {
	fmt.Fprintf(p.Writer, "    ├%s\n", strings.Repeat("─", sectionWidth))
}

func (p *Printer) footer() {
	fmt.Fprintf(p.Writer, "    └%s\n", strings.Repeat("─", sectionWidth))
}

// isTerminal reports whether stdout is a character device.
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
