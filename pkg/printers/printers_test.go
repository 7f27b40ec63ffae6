package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/cyberride/pkg/model"
)

func init() {
	color.NoColor = true
}

func TestDaysIn(t *testing.T) {
	tests := map[time.Time]int{
		time.Date(2024, 2, 10, 0, 0, 0, 0, time.Local):  29,
		time.Date(2025, 2, 1, 0, 0, 0, 0, time.Local):   28,
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.Local): 31,
	}
	for in, want := range tests {
		if got := DaysIn(in); got != want {
			t.Fatalf("%v: expected %d, got %d", in, want, got)
		}
	}
	if got := StartDay(time.Date(2025, 6, 20, 0, 0, 0, 0, time.Local)); got != time.Sunday {
		t.Fatalf("expected June 2025 to start on Sunday, got %s", got)
	}
	if got := NextMonth(time.Date(2025, 12, 31, 0, 0, 0, 0, time.Local)); got.Month() != time.January || got.Year() != 2026 {
		t.Fatalf("unexpected next month %v", got)
	}
}

func TestCalendarListsEvents(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)
	pp.Calendar(now, now,
		model.CalendarEvent{Title: "Chain Lubrication", Icon: "⛓️", Date: model.At(now.AddDate(0, 0, 4))},
		model.CalendarEvent{Title: "Next month", Date: model.At(now.AddDate(0, 1, 0))},
	)
	out := buf.String()
	if !strings.Contains(out, "June 2025") {
		t.Fatalf("missing month header:\n%s", out)
	}
	if !strings.Contains(out, "14 S  ○ ⛓️ Chain Lubrication") {
		t.Fatalf("missing event line:\n%s", out)
	}
	if strings.Contains(out, "Next month") {
		t.Fatalf("event from another month listed:\n%s", out)
	}
}

func TestMileageTable(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, ShowID: true}
	pp.Mileage(model.MileageEntry{ID: "mile-1", Kilometers: 12.5, TotalKilometers: 112.5, Notes: "commute"})
	out := buf.String()
	for _, want := range []string{"Mileage - 1 entry", "mile-1", "12.5 km", "112.5 km", "commute"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestStructuredYAML(t *testing.T) {
	var buf bytes.Buffer
	v := model.MileageEntry{ID: "mile-1", Kilometers: 3}
	if err := Structured(&buf, "yaml", v); err != nil {
		t.Fatalf("structured: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "kilometers: 3") || !strings.Contains(out, "date: null") {
		t.Fatalf("unexpected yaml:\n%s", out)
	}
	if err := Structured(&buf, "xml", v); err == nil {
		t.Fatalf("expected an error for an unknown format")
	}
}

func TestEmit(t *testing.T) {
	var buf bytes.Buffer
	pp := &PrettyPrint{Out: &buf}
	called := false
	if err := pp.Emit("", nil, func(*PrettyPrint) { called = true }); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if !called || buf.Len() != 0 {
		t.Fatalf("expected pretty path only, called=%v out=%q", called, buf.String())
	}

	if err := pp.Emit("json", map[string]int{"fills": 2}, func(*PrettyPrint) { t.Fatalf("pretty called for json") }); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if !strings.Contains(buf.String(), `"fills": 2`) {
		t.Fatalf("unexpected json:\n%s", buf.String())
	}
}
