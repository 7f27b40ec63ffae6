package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/cyberride/pkg/model"
)

// Calendar prints the month containing on: a compact grid with event days
// highlighted, then one line per day.
func (pp *PrettyPrint) Calendar(now, on time.Time, events ...model.CalendarEvent) {
	then := time.Date(on.Year(), on.Month(), 1, 1, 0, 0, 0, time.Local)

	count := make([]int, DaysIn(then))
	for _, e := range events {
		if e.Date.Set() && e.Date.SameMonth(then) {
			count[e.Date.Local().Day()-1]++
		}
	}
	pp.PrintMonthCount(then, count)
	pp.PrintMonthLong(now, then, events...)
}

const width = len("11 12 13 14 15 16 17") // an example week

func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	out := pp.out()
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", then.Month(), then.Year())
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(out, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", max(width-mid-len(m), 0)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(out, "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			_, _ = l2.Fprintf(out, "%2d ", i+1)
		} else {
			_, _ = l1.Fprintf(out, "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(out, "\n")
		}
	}
	_, _ = fmt.Fprint(out, "\n\n")
}

func (pp *PrettyPrint) PrintMonthLong(now, then time.Time, events ...model.CalendarEvent) {
	out := pp.out()
	p := color.New()
	b := color.New(color.Bold)
	s := color.New(color.Underline)
	bs := color.New(color.Underline, color.Bold)

	now = now.Local()
	d := StartDay(then)
	for i := 0; i < DaysIn(then); i++ {
		today := now.Month() == then.Month() && now.Year() == then.Year() && now.Day() == i+1
		printer := p
		switch {
		case d == time.Sunday && today:
			printer = bs
		case d == time.Sunday:
			printer = s
		case today:
			printer = b
		}
		_, _ = printer.Fprintf(out, "%2d %s", i+1, d.String()[0:1])

		found := false
		for _, e := range events {
			if !e.Date.Set() {
				continue
			}
			l := e.Date.Local()
			if l.Year() != then.Year() || l.Month() != then.Month() || l.Day() != i+1 {
				continue
			}
			if found {
				_, _ = p.Fprint(out, "    ")
			}
			found = true
			mark := "○"
			if e.Completed {
				mark = good.Sprint("✔")
			}
			_, _ = p.Fprintf(out, "  %s %s\n", mark, e.String())
		}
		d++
		if d > time.Saturday {
			d = time.Sunday
		}
		if !found {
			_, _ = p.Fprint(out, "\n")
		}
	}
	pp.NewLine()
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Local().Year(), then.Local().Month()+1, 1, 1, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
