package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// PrettyPrint renders records for a terminal.
type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

var (
	bold  = color.New(color.Bold)
	faint = color.New(color.Faint)
	idCol = color.New(color.FgHiYellow, color.Italic, color.Faint)
)

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprint(pp.out(), title)
	_, _ = faint.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = faint.Fprintf(pp.out(), " %s\n", noun)
	default:
		_, _ = faint.Fprintf(pp.out(), " %ss\n", noun)
	}
}

// None prints the empty-list marker.
func (pp *PrettyPrint) None() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Note prints a single confirmation line.
func (pp *PrettyPrint) Note(format string, args ...any) {
	_, _ = color.New(color.FgGreen).Fprintf(pp.out(), format+"\n", args...)
}

func (pp *PrettyPrint) table(header ...string) *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	cells := make([]any, 0, len(header)+1)
	if pp.ShowID {
		cells = append(cells, bold.Sprint("ID"))
	}
	for _, h := range header {
		cells = append(cells, bold.Sprint(h))
	}
	tbl.AddRow(cells...)
	return tbl
}

func (pp *PrettyPrint) row(tbl *uitable.Table, id string, cells ...any) {
	if pp.ShowID {
		cells = append([]any{idCol.Sprint(id)}, cells...)
	}
	tbl.AddRow(cells...)
}

func (pp *PrettyPrint) flush(tbl *uitable.Table) {
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func km(v float64) string {
	return fmt.Sprintf("%.1f km", v)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
